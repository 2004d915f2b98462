package ring

import "rlwekex/internal/xerrors"

// Poly is a ring element: n coefficients in Z_q, representative range
// [0, q). Whether a given Poly is in coefficient space or NTT space is
// a contract carried by the calling API, not encoded in the type — a
// mismatch is a programmer error, exactly as spec describes.
type Poly []int32

// NTT computes the forward negacyclic Number-Theoretic Transform: a
// coefficient-space polynomial of length n goes in, the evaluation of
// that polynomial at the n odd powers of psi (psi, psi^3, ..., psi^(2n-1))
// comes out, in natural index order.
//
// The algorithm runs log2(n) Cooley-Tukey stages with doubling block
// count m = 1, 2, 4, ..., n/2; within stage m, the m blocks of span
// 2*(n/(2m)) each use a single twiddle psi^bitrev(m+i, log2 n) for
// their n/(2m) butterflies. That staged pass leaves the result in
// bit-reversed order, so a trailing BitReverse permutation restores
// natural order, exactly as spec's algorithm description lays out.
//
// All butterfly arithmetic widens to int64: at the High preset
// (q=40961) two reduced coefficients multiply to nearly 2^31, which
// overflows a 32-bit signed accumulator — the original source's latent
// bug this module does not repeat.
func (d *Descriptor) NTT(p Poly) (Poly, error) {
	if int32(len(p)) != d.n {
		return nil, xerrors.ErrMalformedWire
	}
	out := make(Poly, d.n)
	copy(out, p)
	q := int64(d.Q)

	for m := int32(1); m < d.n; m *= 2 {
		t := d.n / (2 * m)
		for i := int32(0); i < m; i++ {
			zeta := int64(d.fwdTwiddle[m+i])
			base := 2 * i * t
			for j := base; j < base+t; j++ {
				u := int64(out[j])
				v := (int64(out[j+t]) * zeta) % q
				out[j] = int32((u + v) % q)
				out[j+t] = int32(((u-v)%q + q) % q)
			}
		}
	}
	return bitReversePoly(out, d.logN()), nil
}

// InvNTT computes the inverse transform: the staged forward pass leaves
// a bit-reversed intermediate, so InvNTT first un-does NTT's trailing
// permutation by bit-reversing its (natural-order) input, then runs the
// same stages in decreasing block-count order with psi^-1, then scales
// every coefficient by n^-1 mod q.
func (d *Descriptor) InvNTT(p Poly) (Poly, error) {
	if int32(len(p)) != d.n {
		return nil, xerrors.ErrMalformedWire
	}
	out := bitReversePoly(p, d.logN())
	q := int64(d.Q)

	for m := d.n / 2; m >= 1; m /= 2 {
		t := d.n / (2 * m)
		for i := int32(0); i < m; i++ {
			zeta := int64(d.invTwiddle[m+i])
			base := 2 * i * t
			for j := base; j < base+t; j++ {
				u := int64(out[j])
				v := int64(out[j+t])
				out[j] = int32((u + v) % q)
				diff := (u - v) % q
				if diff < 0 {
					diff += q
				}
				out[j+t] = int32((diff * zeta) % q)
			}
		}
	}

	nInv := int64(d.nInv)
	for i := range out {
		out[i] = int32((int64(out[i]) * nInv) % q)
	}
	return out, nil
}

func (d *Descriptor) logN() uint32 {
	logN := uint32(0)
	for (int32(1) << logN) < d.n {
		logN++
	}
	return logN
}

func bitReversePoly(p Poly, logN uint32) Poly {
	out := make(Poly, len(p))
	for i := range p {
		out[bitReverse(uint32(i), logN)] = p[i]
	}
	return out
}

// BitReverse returns the integer whose low k bits are x's low k bits
// reversed.
func BitReverse(x, k uint32) uint32 {
	return bitReverse(x, k)
}

func bitReverse(x, k uint32) uint32 {
	var out uint32
	for i := uint32(0); i < k; i++ {
		out = (out << 1) | (x & 1)
		x >>= 1
	}
	return out
}

// Pad zero-extends v to length n. v longer than n is an error; v
// already of length n is a no-op copy.
func (d *Descriptor) Pad(v []int32) (Poly, error) {
	if int32(len(v)) > d.n {
		return nil, xerrors.ErrPadTooLong
	}
	out := make(Poly, d.n)
	copy(out, v)
	return out, nil
}
