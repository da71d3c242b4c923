package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		v, err := g.NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if len(v) != 32 {
			t.Fatalf("expected 32 chars for 24 bytes, got %d", len(v))
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = struct{}{}
	}
}
