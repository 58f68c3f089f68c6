package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewRandomGenerator()
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if len(first) != DefaultSize*2 {
		t.Fatalf("expected %d hex chars, got %d", DefaultSize*2, len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}
