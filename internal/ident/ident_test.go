package ident

import "testing"

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}

func TestNew_Length(t *testing.T) {
	id := New()
	if len(id) != 36 {
		t.Errorf("New() length = %d, want 36", len(id))
	}
}

func TestNewShort_Length(t *testing.T) {
	id := NewShort()
	if len(id) != 8 {
		t.Errorf("NewShort() length = %d, want 8", len(id))
	}
}

func TestNewShort_HexOnly(t *testing.T) {
	id := NewShort()
	for _, r := range id {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			t.Errorf("NewShort() contains non-hex rune %q in %q", r, id)
		}
	}
}
