//go:build rc_opt_trackblocks

package rc

import "testing"

func TestStats(t *testing.T) {
	before := Stats()

	a := New(&plain{})
	b := NewArray(make([]plain, 3))
	w := a.Weak()
	mid := Stats()
	if mid.Allocated-before.Allocated != 2 || mid.Live-before.Live != 2 {
		t.Fatalf("after create: %+v -> %+v", before, mid)
	}

	a.Reset()
	b.Reset()
	mid = Stats()
	if mid.Destroyed-before.Destroyed != 2 || mid.Live != before.Live {
		t.Fatalf("after release: %+v -> %+v", before, mid)
	}
	if mid.Retained-before.Retained != 1 {
		t.Fatalf("observed block not retained: %+v -> %+v", before, mid)
	}

	w.Reset()
	after := Stats()
	if after.Deallocated-before.Deallocated != 2 || after.Retained != before.Retained {
		t.Fatalf("after observers: %+v -> %+v", before, after)
	}
}
