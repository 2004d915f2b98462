package rlwe

import "rlwekex/ring"

// Signal marks, for each coefficient of a coefficient-space polynomial
// v, which of the two "safe" reconciliation zones it falls in: 0 when
// v[i] lies in the central band [q/4, 3q/4] (near q/2), 1 otherwise
// (near 0). The boundaries are inclusive on both ends.
func Signal(v ring.Poly, q int32) []int {
	lo := q / 4
	hi := 3 * q / 4
	out := make([]int, len(v))
	for i, c := range v {
		if c >= lo && c <= hi {
			out[i] = 0
		} else {
			out[i] = 1
		}
	}
	return out
}

// Reconcile computes, pointwise in NTT space, y = x + w·(q-1)/2, then
// inverse-transforms y and reduces every coefficient mod 2, yielding
// the length-n shared bit vector as one byte per bit (0 or 1).
//
// Correctness is probabilistic, not absolute: both parties compute
// k ≈ a⊙s_g⊙s_r up to a small additive error term, and subtracting
// q/2·signal(k) before reducing mod 2 cancels that error with high
// probability — provided the error norms and q keep the worst-case
// drift under q/8. A disagreement here is not a bug; callers wanting
// guaranteed agreement must run a confirmation round out of scope of
// this package.
func Reconcile(d *ring.Descriptor, x, w ring.Poly) ([]byte, error) {
	half := (d.Q - 1) / 2
	y := d.AddPointwise(x, d.ScalePointwise(w, int32(half)))

	raw, err := d.InvNTT(y)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(raw))
	for i, c := range raw {
		out[i] = byte(((c % 2) + 2) % 2)
	}
	return out, nil
}
