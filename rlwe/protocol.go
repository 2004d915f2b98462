// Package rlwe implements the Ring-Learning-With-Errors key exchange
// protocol: key generation, response, and finalization, plus the
// signal/reconciliation step that turns two approximately-equal ring
// elements into an exactly-equal shared bit string.
package rlwe

import (
	"time"

	"rlwekex/internal/telemetry"
	"rlwekex/internal/trace"
	"rlwekex/rand"
	"rlwekex/ring"
)

// PrivateKeypair holds the initiator's secret material in NTT space:
// the public random polynomial A and the short secret S. Produced by
// Generate, consumed by Parse, never reused across exchanges.
type PrivateKeypair struct {
	A, S ring.Poly
}

// PublicKeypair is polymorphic in role: on the request side its fields
// are (A, P); on the response side the same two fields carry (W, Pr)
// where W is the signal polynomial lifted into NTT space. Both fields
// have length n and live in NTT space.
type PublicKeypair struct {
	A, P ring.Poly
}

// Generate draws a fresh initiator keypair: a public random polynomial
// a, a short secret s, and a short error e, returning private {a, s}
// and public {a, p = a⊙s + 2e}, all in NTT space.
func Generate(d *ring.Descriptor, src *rand.Source) (PrivateKeypair, PublicKeypair, error) {
	start := time.Now()
	defer func() { telemetry.Global.Record("generate", uint64(time.Since(start).Nanoseconds())) }()

	a, err := d.Uniform(src)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}
	aNTT, err := d.NTT(a)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}

	s, err := d.Error(src)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}
	sNTT, err := d.NTT(s)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}

	e, err := d.Error(src)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}
	eNTT, err := d.NTT(e)
	if err != nil {
		return PrivateKeypair{}, PublicKeypair{}, err
	}

	p := d.AddPointwise(d.MulPointwise(aNTT, sNTT), d.ScalePointwise(eNTT, 2))

	trace.Stage("[rlwe] Generate n=%d q=%d\n", d.Size(), d.Q)
	return PrivateKeypair{A: aNTT, S: sNTT}, PublicKeypair{A: aNTT, P: p}, nil
}

// Respond consumes an initiator's public keypair and produces the
// responder's shared bits plus its own public keypair (W, Pr) to send
// back. The signal w is computed from the responder's raw k_r before
// the NTT, and the shared bits come from reconciling k_r against w.
func Respond(d *ring.Descriptor, src *rand.Source, pub PublicKeypair) ([]byte, PublicKeypair, error) {
	start := time.Now()
	defer func() { telemetry.Global.Record("respond", uint64(time.Since(start).Nanoseconds())) }()

	sR, err := d.Error(src)
	if err != nil {
		return nil, PublicKeypair{}, err
	}
	sRNTT, err := d.NTT(sR)
	if err != nil {
		return nil, PublicKeypair{}, err
	}

	eR, err := d.Error(src)
	if err != nil {
		return nil, PublicKeypair{}, err
	}
	eRNTT, err := d.NTT(eR)
	if err != nil {
		return nil, PublicKeypair{}, err
	}

	e2R, err := d.Error(src)
	if err != nil {
		return nil, PublicKeypair{}, err
	}
	e2RNTT, err := d.NTT(e2R)
	if err != nil {
		return nil, PublicKeypair{}, err
	}

	pR := d.AddPointwise(d.MulPointwise(pub.A, sRNTT), d.ScalePointwise(eRNTT, 2))
	kR := d.AddPointwise(d.MulPointwise(pub.P, sRNTT), d.ScalePointwise(e2RNTT, 2))

	kRRaw, err := d.InvNTT(kR)
	if err != nil {
		return nil, PublicKeypair{}, err
	}
	w := Signal(kRRaw, d.Q)
	wPoly := make(ring.Poly, d.Size())
	for i, bit := range w {
		wPoly[i] = int32(bit)
	}
	wNTT, err := d.NTT(wPoly)
	if err != nil {
		return nil, PublicKeypair{}, err
	}

	sharedBits, err := Reconcile(d, kR, wNTT)
	if err != nil {
		return nil, PublicKeypair{}, err
	}

	trace.Stage("[rlwe] Respond n=%d q=%d\n", d.Size(), d.Q)
	return sharedBits, PublicKeypair{A: wNTT, P: pR}, nil
}

// Parse consumes the initiator's private keypair and the responder's
// public response, reconciling the initiator's view of k against the
// responder's signal to recover the same shared bits.
func Parse(d *ring.Descriptor, src *rand.Source, priv PrivateKeypair, resp PublicKeypair) ([]byte, error) {
	start := time.Now()
	defer func() { telemetry.Global.Record("parse", uint64(time.Since(start).Nanoseconds())) }()

	e2I, err := d.Error(src)
	if err != nil {
		return nil, err
	}
	e2INTT, err := d.NTT(e2I)
	if err != nil {
		return nil, err
	}

	kI := d.AddPointwise(d.MulPointwise(resp.P, priv.S), d.ScalePointwise(e2INTT, 2))

	trace.Stage("[rlwe] Parse n=%d q=%d\n", d.Size(), d.Q)
	return Reconcile(d, kI, resp.A)
}
