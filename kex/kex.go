// Package kex is the public façade over the RLWE key exchange: three
// functions (Request, Respond, Finalise) plus the wire (de)serialization
// they share. Everything below the byte boundary is rlwe/ring/rand;
// this package's only job is bytes in, bytes out.
package kex

import (
	"encoding/binary"
	"fmt"

	"rlwekex/internal/xerrors"
	"rlwekex/rand"
	"rlwekex/rlwe"
	"rlwekex/ring"
)

// Security selects the ring parameters for an exchange. Medium and
// High are the two recognized presets (n_log=9/q=25601 and
// n_log=10/q=40961); Custom lets the caller assert any (nLog, q) pair
// that satisfies the ring's invariant.
type Security struct {
	nLog uint32
	q    int32
}

// Medium is the n_log=9, q=25601 preset.
var Medium = Security{nLog: 9, q: 25601}

// High is the n_log=10, q=40961 preset, named by spec.md's Data Model
// alongside Medium but absent from the original source's Security enum
// (which only implemented Medium) — restored here as a supplemented
// dropped feature.
var High = Security{nLog: 10, q: 40961}

// Custom builds a Security value for caller-chosen ring parameters.
// The caller is responsible for the (nLog, q) pair admitting a
// primitive 2n-th root of unity; ring.New surfaces InvalidRing if not.
func Custom(nLog uint32, q int32) Security {
	return Security{nLog: nLog, q: q}
}

func (s Security) descriptor() (*ring.Descriptor, error) {
	return ring.New(s.nLog, s.q)
}

// Request builds a fresh initiator keypair under the given security
// level and returns the private keypair bytes (kept by the caller) and
// the request envelope bytes (sent to the peer).
func Request(level Security) (privateBytes, requestBytes []byte, err error) {
	d, err := level.descriptor()
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Request: %w", err)
	}
	src, err := rand.NewSource()
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Request: %w", err)
	}

	priv, pub, err := rlwe.Generate(d, src)
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Request: %w", err)
	}

	privateBytes = encodeKeypair(priv.A, priv.S)
	requestBytes = encodeEnvelope(d, pub.A, pub.P)
	return privateBytes, requestBytes, nil
}

// Respond decodes a request envelope, runs the responder side of the
// protocol, and returns the responder's derived shared-key bytes plus
// the response envelope bytes to send back.
func Respond(requestBytes []byte) (sharedKeyBytes, responseBytes []byte, err error) {
	d, pub, err := decodeEnvelope(requestBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Respond: %w", err)
	}
	src, err := rand.NewSource()
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Respond: %w", err)
	}

	shared, resp, err := rlwe.Respond(d, src, pub)
	if err != nil {
		return nil, nil, fmt.Errorf("kex.Respond: %w", err)
	}

	responseBytes = encodeEnvelope(d, resp.A, resp.P)
	return packBits(shared), responseBytes, nil
}

// Finalise decodes the initiator's own private keypair bytes and the
// peer's response envelope, runs the initiator side of reconciliation,
// and returns the initiator's derived shared-key bytes.
func Finalise(privateBytes, responseBytes []byte) ([]byte, error) {
	d, resp, err := decodeEnvelope(responseBytes)
	if err != nil {
		return nil, fmt.Errorf("kex.Finalise: %w", err)
	}

	a, s, err := decodeKeypair(privateBytes, d.Size())
	if err != nil {
		return nil, fmt.Errorf("kex.Finalise: %w", err)
	}
	priv := rlwe.PrivateKeypair{A: a, S: s}

	src, err := rand.NewSource()
	if err != nil {
		return nil, fmt.Errorf("kex.Finalise: %w", err)
	}

	shared, err := rlwe.Parse(d, src, priv, resp)
	if err != nil {
		return nil, fmt.Errorf("kex.Finalise: %w", err)
	}
	return packBits(shared), nil
}

// packBits groups a length-n vector of 0/1 bytes into ceil(n/8) bytes:
// bit i*8+j becomes the j-th (LSB-first) bit of output byte i. This is
// the bit-packed shared-key wire format spec.md's open question
// resolves in favor of; the earlier raw-i32-word scheme is historical
// and not implemented here.
func packBits(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// encodeKeypair packs two length-n polynomials as concatenated
// little-endian i32 words: first, second.
func encodeKeypair(first, second ring.Poly) []byte {
	n := len(first)
	out := make([]byte, 8*n)
	for i, v := range first {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}
	base := 4 * n
	for i, v := range second {
		binary.LittleEndian.PutUint32(out[base+4*i:], uint32(v))
	}
	return out
}

// decodeKeypair is the inverse of encodeKeypair given the expected
// ring size n.
func decodeKeypair(b []byte, n int32) (first, second ring.Poly, err error) {
	if len(b) != int(8*n) {
		return nil, nil, xerrors.ErrMalformedWire
	}
	first = make(ring.Poly, n)
	second = make(ring.Poly, n)
	for i := range first {
		first[i] = int32(binary.LittleEndian.Uint32(b[4*i:]))
	}
	base := int(4 * n)
	for i := range second {
		second[i] = int32(binary.LittleEndian.Uint32(b[base+4*i:]))
	}
	return first, second, nil
}

// encodeEnvelope prepends the ring's modulus and exponent to a public
// keypair's wire bytes: i32 modulus | u32 exponent | 8n-byte keypair.
func encodeEnvelope(d *ring.Descriptor, a, p ring.Poly) []byte {
	body := encodeKeypair(a, p)
	out := make([]byte, 8+len(body))
	binary.LittleEndian.PutUint32(out[0:], uint32(d.Q))
	binary.LittleEndian.PutUint32(out[4:], d.NLog)
	copy(out[8:], body)
	return out
}

// decodeEnvelope is the inverse of encodeEnvelope: it reconstructs the
// ring descriptor from the modulus/exponent prefix, then decodes the
// trailing public keypair against that ring's size.
func decodeEnvelope(b []byte) (*ring.Descriptor, rlwe.PublicKeypair, error) {
	if len(b) < 8 {
		return nil, rlwe.PublicKeypair{}, xerrors.ErrMalformedWire
	}
	q := int32(binary.LittleEndian.Uint32(b[0:]))
	nLog := binary.LittleEndian.Uint32(b[4:])
	if q < 2 || nLog < 1 || nLog > 30 {
		return nil, rlwe.PublicKeypair{}, xerrors.ErrMalformedWire
	}

	d, err := ring.New(nLog, q)
	if err != nil {
		return nil, rlwe.PublicKeypair{}, err
	}

	a, p, err := decodeKeypair(b[8:], d.Size())
	if err != nil {
		return nil, rlwe.PublicKeypair{}, err
	}
	return d, rlwe.PublicKeypair{A: a, P: p}, nil
}
