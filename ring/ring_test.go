package ring

import (
	"testing"
)

// primitiveNthRoot(4, 7681) and primitive2NthRoot(4, 7681) reproduce the
// canonical values spec.md's own worked example gives for this ring
// (see original_source/src/rlwe.rs's doctest, which uses the same
// n=4, q=7681 ring).
func TestPrimitiveRootsMatchWorkedExample(t *testing.T) {
	z, ok := primitiveNthRoot(4, 7681)
	if !ok || z != 3383 {
		t.Fatalf("primitiveNthRoot(4, 7681) = (%d, %v), want (3383, true)", z, ok)
	}

	psi, ok := primitive2NthRoot(4, 7681)
	if !ok || psi != 1925 {
		t.Fatalf("primitive2NthRoot(4, 7681) = (%d, %v), want (1925, true)", psi, ok)
	}
}

func TestNewRejectsRingWithNoPrimitiveRoot(t *testing.T) {
	if _, err := New(4, 5); err == nil {
		t.Fatalf("New(4, 5): want error, got nil")
	}
}

// NTT on [1,2,3,4] over n=4, q=7681 must reproduce the worked example's
// evaluation at psi^1, psi^3, psi^5, psi^7.
func TestNTTMatchesWorkedExample(t *testing.T) {
	d, err := New(2, 7681)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := d.NTT(Poly{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NTT: %v", err)
	}
	want := Poly{1467, 2807, 3471, 7621}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NTT(%v)[%d] = %d, want %d", Poly{1, 2, 3, 4}, i, got[i], want[i])
		}
	}
}

func TestNTTRoundTrip(t *testing.T) {
	d, err := New(4, 25601)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in := Poly{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	freq, err := d.NTT(in)
	if err != nil {
		t.Fatalf("NTT: %v", err)
	}
	back, err := d.InvNTT(freq)
	if err != nil {
		t.Fatalf("InvNTT: %v", err)
	}
	for i := range in {
		if back[i] != in[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, back[i], in[i])
		}
	}
}

// Negacyclic convolution via NTT must match the schoolbook polynomial
// product reduced mod (X^n+1, q).
func TestNTTMultiplicationHomomorphism(t *testing.T) {
	d, err := New(4, 25601)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := Poly{1, 0, 2, 0, 3, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	b := Poly{5, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	want := negacyclicMul(a, b, 25601)

	fa, err := d.NTT(a)
	if err != nil {
		t.Fatalf("NTT a: %v", err)
	}
	fb, err := d.NTT(b)
	if err != nil {
		t.Fatalf("NTT b: %v", err)
	}
	fc := make(Poly, len(fa))
	for i := range fc {
		fc[i] = int32((int64(fa[i]) * int64(fb[i])) % 25601)
	}
	got, err := d.InvNTT(fc)
	if err != nil {
		t.Fatalf("InvNTT: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mul mismatch at %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func negacyclicMul(a, b Poly, q int32) Poly {
	n := len(a)
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := i + j
			sign := int64(1)
			if k >= n {
				k -= n
				sign = -1
			}
			v := sign * int64(a[i]) * int64(b[j])
			out[k] = int32(((int64(out[k]) + v) % int64(q) + int64(q)) % int64(q))
		}
	}
	return out
}

func TestBitReverseInvolution(t *testing.T) {
	for _, x := range []uint32{0, 1, 5, 13, 255} {
		r := BitReverse(x, 8)
		back := BitReverse(r, 8)
		if back != x {
			t.Fatalf("BitReverse not involutive for %d: got %d after round trip", x, back)
		}
	}
}

func TestPadNoOpAndError(t *testing.T) {
	d, err := New(2, 7681)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := d.Pad([]int32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	for i, v := range []int32{1, 2, 3, 4} {
		if got[i] != v {
			t.Fatalf("Pad no-op mismatch at %d: got %d, want %d", i, got[i], v)
		}
	}

	if _, err := d.Pad([]int32{1, 2, 3, 4, 5}); err == nil {
		t.Fatalf("Pad with oversized input: want error, got nil")
	}
}

func TestPowerRejectsNegativeExponent(t *testing.T) {
	if _, err := Power(2, -1, 7681); err == nil {
		t.Fatalf("Power with negative exponent: want error, got nil")
	}
}
