// Package ring implements the negacyclic polynomial ring arithmetic that
// underlies the RLWE key exchange: modular exponentiation, primitive-root
// discovery, and a memoized Number-Theoretic Transform over
// Z_q[X]/(X^n + 1).
package ring

import (
	"fmt"

	"rlwekex/internal/trace"
	"rlwekex/internal/xerrors"
)

// Descriptor is an immutable ring Z_q[X]/(X^n+1) with n = 2^NLog and Q
// prime, Q ≡ 1 (mod 2n). It is pure data plus a cache of derived
// constants (psi, psiInv, nInv, twiddle tables) computed once at
// construction so that NTT calls never re-run the root search.
//
// Two presets are recognized by the facade layer (Medium, High); any
// other (NLog, Q) pair is "Custom". Construction checks only that Q
// admits a primitive 2n-th root of unity; primality of Q is not checked.
type Descriptor struct {
	NLog uint32
	Q    int32

	n          int32
	psi        int32
	psiInv     int32
	nInv       int32
	fwdTwiddle []int32 // fwdTwiddle[k] = psi^bitrev(k, log2 n), k in [1, n)
	invTwiddle []int32 // invTwiddle[k] = psiInv^bitrev(k, log2 n)
}

// New constructs the ring Z_q[X]/(X^n+1) for n = 2^nLog, validating
// that q admits a primitive 2n-th root of unity and caching every
// constant the NTT needs. Returns InvalidRing if no such root exists.
func New(nLog uint32, q int32) (*Descriptor, error) {
	return newDescriptor(nLog, q)
}

func newDescriptor(nLog uint32, q int32) (*Descriptor, error) {
	n := int32(1) << nLog
	trace.Stage("[ring] New nLog=%d q=%d n=%d\n", nLog, q, n)

	psi, ok := primitive2NthRoot(n, q)
	if !ok {
		return nil, fmt.Errorf("ring.New(%d, %d): %w", nLog, q, xerrors.ErrInvalidRing)
	}
	psiInv := inverse(psi, q)
	nInv := inverse(n, q)

	d := &Descriptor{
		NLog: nLog,
		Q:    q,
		n:    n,
	}
	d.fwdTwiddle = twiddleTable(psi, n, q)
	d.invTwiddle = twiddleTable(psiInv, n, q)
	d.psi = psi
	d.psiInv = psiInv
	d.nInv = nInv
	return d, nil
}

// Size returns n, the ring's degree (the length of every Poly).
func (d *Descriptor) Size() int32 { return d.n }

// Psi returns the memoized primitive 2n-th root of unity.
func (d *Descriptor) Psi() int32 { return d.psi }

// PrimitiveNthRoot returns the memoized primitive n-th root of unity
// (an order-n element of Z_q^*, i.e. psi^2).
func (d *Descriptor) PrimitiveNthRoot() int32 { return power64(d.psi, 2, d.Q) }

// Primitive2NthRoot returns the memoized primitive 2n-th root of unity
// used as the NTT's twiddle base.
func (d *Descriptor) Primitive2NthRoot() int32 { return d.psi }

// twiddleTable builds the flat, sequentially-indexed zeta table used by
// the iterative Cooley-Tukey butterfly: table[k] = root^bitrev(k, log2 n)
// for k in [1, n). As the butterfly's stage counter m doubles (1, 2, 4,
// ..., n/2) and its inner counter i ranges over [0, m), m+i sweeps
// [1, n) exactly once in order — so a single flat table indexed by a
// running counter reproduces spec's per-stage
// psi^bitreverse(m+i, log2 n) twiddle without recomputing bitrev or
// exponentiating inside the hot loop. table[0] is unused (stage m=0
// never occurs) and left as 1.
func twiddleTable(root, n, q int32) []int32 {
	logN := 0
	for (int32(1) << logN) < n {
		logN++
	}
	table := make([]int32, n)
	table[0] = 1
	for k := int32(1); k < n; k++ {
		e := bitReverse(uint32(k), uint32(logN))
		table[k] = power64(root, int64(e), q)
	}
	return table
}
