package ring

import (
	"testing"

	"rlwekex/rand"
)

func TestUniformStaysInRange(t *testing.T) {
	d, err := New(4, 25601)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src, err := rand.NewSource()
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	p, err := d.Uniform(src)
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}
	if int32(len(p)) != d.Size() {
		t.Fatalf("Uniform returned %d coefficients, want %d", len(p), d.Size())
	}
	for _, c := range p {
		if c < 0 || c >= d.Q {
			t.Fatalf("coefficient %d out of range [0, %d)", c, d.Q)
		}
	}
}

func TestErrorStaysInCenteredBinomialRange(t *testing.T) {
	d, err := New(4, 25601)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src, err := rand.NewSource()
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	p, err := d.Error(src)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	for _, c := range p {
		// centered-binomial(2) coefficients lie in {-2,...,2} mod q
		if c != 0 && c != 1 && c != 2 && c != d.Q-1 && c != d.Q-2 {
			t.Fatalf("coefficient %d outside centered-binomial(2) support mod q", c)
		}
	}
}
