package lru

import "testing"

func mustNew(t *testing.T, capacity int) *Cache[string] {
	t.Helper()
	c, err := New[string](capacity)
	if err != nil {
		t.Fatalf("New(%d): %v", capacity, err)
	}
	return c
}

func TestRejectsInvalidCapacity(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := New[string](n); err == nil {
			t.Fatalf("New(%d): expected error", n)
		}
	}
}

func TestGetMarksRecent(t *testing.T) {
	c := mustNew(t, 2)
	c.Set("a", "1")
	c.Set("b", "2")

	// Touch "a" so "b" becomes the eviction candidate.
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("Get(a): ok=%v v=%q", ok, v)
	}
	c.Set("c", "3")

	if c.Contains("b") {
		t.Fatalf("expected b evicted")
	}
	if !c.Contains("a") || !c.Contains("c") {
		t.Fatalf("expected a and c retained")
	}
}

func TestSetReplacesWithoutGrowing(t *testing.T) {
	c := mustNew(t, 2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("a", "1'")

	if c.Len() != 2 {
		t.Fatalf("Len after replace: got %d want 2", c.Len())
	}
	if v, _ := c.Get("a"); v != "1'" {
		t.Fatalf("replace did not stick: %q", v)
	}
	// The replace touched "a"; inserting now must evict "b".
	c.Set("c", "3")
	if c.Contains("b") {
		t.Fatalf("expected b evicted after replace touched a")
	}
}

func TestCapacityNeverExceeded(t *testing.T) {
	c := mustNew(t, 3)
	keys := []string{"a", "b", "c", "d", "e", "f", "a", "c", "g"}
	for _, k := range keys {
		c.Set(k, k)
		if c.Len() > 3 {
			t.Fatalf("capacity exceeded: %d entries", c.Len())
		}
	}
	if c.Len() != 3 {
		t.Fatalf("expected full cache, got %d", c.Len())
	}
}

func TestEvictsOldestFirst(t *testing.T) {
	c := mustNew(t, 2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3") // evicts a

	if c.Contains("a") {
		t.Fatalf("expected a evicted")
	}
	if v, ok := c.Get("b"); !ok || v != "2" {
		t.Fatalf("Get(b): ok=%v v=%q", ok, v)
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	c := mustNew(t, 2)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("Len after Clear: got %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("Get(a) after Clear should miss")
	}

	// Still bounded at the original capacity.
	c.Set("x", "1")
	c.Set("y", "2")
	c.Set("z", "3")
	if c.Len() != 2 {
		t.Fatalf("capacity changed after Clear: %d", c.Len())
	}
}
