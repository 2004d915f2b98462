package ring

import "rlwekex/rand"

// Uniform draws n words from src and reduces each into [0, q) by
// taking the absolute value mod q, producing a uniformly sampled ring
// element. Used for the public "a" polynomial shared by both parties.
func (d *Descriptor) Uniform(src *rand.Source) (Poly, error) {
	out := make(Poly, d.n)
	for i := range out {
		w, err := src.NextInt32()
		if err != nil {
			return nil, err
		}
		v := int64(w)
		if v < 0 {
			v = -v
		}
		out[i] = int32(v % int64(d.Q))
	}
	return out, nil
}

// Error draws an error polynomial from the centered binomial
// distribution of parameter 2: each coefficient is popcount(a) -
// popcount(b) for two independent 2-bit draws a, b, giving values in
// {-2, -1, 0, 1, 2} with the usual binomial weights. This is the
// module's resolution of the spec's open question on the error
// distribution's exact shape (see DESIGN.md).
func (d *Descriptor) Error(src *rand.Source) (Poly, error) {
	out := make(Poly, d.n)
	for i := range out {
		w, err := src.NextUint32()
		if err != nil {
			return nil, err
		}
		a := w & 0x3
		b := (w >> 2) & 0x3
		coeff := int32(popcount2(a)) - int32(popcount2(b))
		out[i] = ((coeff % d.Q) + d.Q) % d.Q
	}
	return out, nil
}

// popcount2 counts set bits in a 2-bit value (0..3), yielding 0, 1, or 2.
func popcount2(x uint32) int {
	return int(x&1) + int((x>>1)&1)
}
