package rlwe

import (
	"testing"

	"rlwekex/rand"
	"rlwekex/ring"
)

// Scenario from spec's worked example: n_log=2, q=7681.
func TestSignalWorkedExample(t *testing.T) {
	got := Signal(ring.Poly{2, 3, 4096, 7661}, 7681)
	want := []int{1, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Signal(...)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSignalBoundaries(t *testing.T) {
	q := int32(7681)
	lo := q / 4
	hi := 3 * q / 4
	got := Signal(ring.Poly{lo, hi, 0, q - 1}, q)
	want := []int{0, 0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Signal boundary [%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func newMediumRing(t *testing.T) *ring.Descriptor {
	t.Helper()
	d, err := ring.New(9, 25601)
	if err != nil {
		t.Fatalf("ring.New(Medium): %v", err)
	}
	return d
}

func TestKeyAgreementMajority(t *testing.T) {
	d := newMediumRing(t)

	const runs = 20
	agree := 0
	for i := 0; i < runs; i++ {
		srcG, err := rand.NewSource()
		if err != nil {
			t.Fatalf("NewSource: %v", err)
		}
		srcR, err := rand.NewSource()
		if err != nil {
			t.Fatalf("NewSource: %v", err)
		}

		priv, pub, err := Generate(d, srcG)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		sharedR, resp, err := Respond(d, srcR, pub)
		if err != nil {
			t.Fatalf("Respond: %v", err)
		}
		sharedI, err := Parse(d, srcG, priv, resp)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		if bytesEqual(sharedR, sharedI) {
			agree++
		}
	}

	if agree < runs-2 {
		t.Fatalf("key agreement: only %d/%d runs agreed", agree, runs)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
