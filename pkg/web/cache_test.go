package web

import "testing"

func TestCache(t *testing.T) {
	c := newCache(2)
	if idx := c.index(1); idx != -1 {
		t.Fatalf("expected empty cache to miss, got %d", idx)
	}

	if idx := c.add(1, 0, []byte{1}); idx != 0 {
		t.Errorf("expected slot 0, got %d", idx)
	}
	if idx := c.add(2, 0, []byte{2}); idx != 1 {
		t.Errorf("expected slot 1, got %d", idx)
	}
	if idx := c.index(2); idx != 1 {
		t.Errorf("expected hash 2 in slot 1, got %d", idx)
	}

	// the ring wraps and evicts the oldest entry
	if idx := c.add(3, 0, []byte{3}); idx != 0 {
		t.Errorf("expected slot 0 after wrapping, got %d", idx)
	}
	if idx := c.index(1); idx != -1 {
		t.Errorf("expected hash 1 to be evicted, got slot %d", idx)
	}

	c.enabled = false
	if idx := c.index(3); idx != -1 {
		t.Errorf("expected disabled cache to miss, got %d", idx)
	}
}
