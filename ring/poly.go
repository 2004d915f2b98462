package ring

// AddPointwise returns a+b mod q, coefficient by coefficient. Valid in
// either coefficient or NTT space — addition commutes with the
// transform either way.
func (d *Descriptor) AddPointwise(a, b Poly) Poly {
	out := make(Poly, d.n)
	q := int64(d.Q)
	for i := range out {
		out[i] = int32((int64(a[i]) + int64(b[i])) % q)
	}
	return out
}

// MulPointwise returns a⊙b mod q, coefficient by coefficient. In NTT
// space this is ring multiplication; in coefficient space it has no
// ring-theoretic meaning and is provided only as the same primitive.
func (d *Descriptor) MulPointwise(a, b Poly) Poly {
	out := make(Poly, d.n)
	q := int64(d.Q)
	for i := range out {
		out[i] = int32((int64(a[i]) * int64(b[i])) % q)
	}
	return out
}

// ScalePointwise returns a scaled by the scalar c mod q.
func (d *Descriptor) ScalePointwise(a Poly, c int32) Poly {
	out := make(Poly, d.n)
	q := int64(d.Q)
	cc := int64(c) % q
	if cc < 0 {
		cc += q
	}
	for i := range out {
		out[i] = int32((int64(a[i]) * cc) % q)
	}
	return out
}
