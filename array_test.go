package rc

import (
	"strings"
	"testing"
)

type elem struct {
	id  int
	log *[]int
}

func (e *elem) Destroy() {
	*e.log = append(*e.log, e.id)
}

func newElems(n int, log *[]int) []elem {
	s := make([]elem, n)
	for i := range s {
		s[i] = elem{id: i, log: log}
	}
	return s
}

func TestSharedArray_DestroysEveryElementInReverse(t *testing.T) {
	var log []int
	a := NewArray(newElems(5, &log))
	b := a.Clone()
	if a.Len() != 5 || a.UseCount() != 2 {
		t.Fatalf("len=%d use=%d", a.Len(), a.UseCount())
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i).id != i {
			t.Fatalf("At(%d)=%d", i, a.At(i).id)
		}
	}
	a.At(2).id = 20
	if b.Slice()[2].id != 20 {
		t.Fatalf("handles do not share storage")
	}
	a.Reset()
	if len(log) != 0 {
		t.Fatalf("destroyed with an owner left: %v", log)
	}
	b.Reset()
	want := []int{4, 3, 20, 1, 0}
	if len(log) != len(want) {
		t.Fatalf("destroy log %v want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("destroy log %v want %v", log, want)
		}
	}
}

func TestSharedArray_Empty(t *testing.T) {
	var log []int
	a := NewArray(newElems(0, &log))
	if a.Valid() || a.Len() != 0 || a.UseCount() != 0 || a.cb != nil {
		t.Fatalf("empty slice adopted")
	}
	if !a.Weak().Expired() {
		t.Fatalf("weak of empty array not expired")
	}
	if a.String() != "SharedArray(nil)" {
		t.Fatalf("string %q", a.String())
	}
	a.Reset()
}

func TestSharedArray_Deleter(t *testing.T) {
	data := []int{1, 2, 3}
	var got []int
	calls := 0
	a := NewArrayWithDeleter(data, func(s []int) {
		calls++
		got = s
	})
	a.Reset()
	if calls != 1 || len(got) != 3 || &got[0] != &data[0] {
		t.Fatalf("deleter calls=%d got=%v", calls, got)
	}

	var log []int
	b := NewSharedArrayWithDeleter[SingleThreaded](newElems(2, &log), nil)
	b.Reset()
	if len(log) != 2 {
		t.Fatalf("nil deleter did not use default release: %v", log)
	}
}

func TestSharedArray_MoveCopySwap(t *testing.T) {
	var log []int
	a := NewSharedArray[SingleThreaded](newElems(3, &log))
	b := a.Move()
	if a.Valid() || b.UseCount() != 1 {
		t.Fatalf("Move")
	}
	var c SharedArray[elem, SingleThreaded]
	c.CopyFrom(&b)
	if !c.Equal(b) || !c.SameOwner(b) || b.UseCount() != 2 {
		t.Fatalf("CopyFrom")
	}
	var d SharedArray[elem, SingleThreaded]
	d.MoveFrom(&c)
	if c.Valid() || !d.Equal(b) || b.UseCount() != 2 {
		t.Fatalf("MoveFrom")
	}
	d.MoveFrom(&d)
	d.Swap(&a)
	if d.Valid() || !a.Equal(b) {
		t.Fatalf("Swap")
	}
	if !strings.Contains(a.String(), "len=3") {
		t.Fatalf("string %q", a.String())
	}
	a.Reset()
	b.Reset()
	if len(log) != 3 {
		t.Fatalf("log %v", log)
	}
}

func TestWeakArray(t *testing.T) {
	var log []int
	a := NewArray(newElems(4, &log))
	w := a.Weak()
	v := w.Clone()
	if w.WeakCount() != 2 || w.UseCount() != 1 {
		t.Fatalf("weak=%d use=%d", w.WeakCount(), w.UseCount())
	}
	l := w.Lock()
	if !l.Equal(a) || l.Len() != 4 || l.UseCount() != 2 {
		t.Fatalf("lock got len=%d use=%d", l.Len(), l.UseCount())
	}
	l.Reset()
	a.Reset()
	if !w.Expired() || w.Lock().Valid() {
		t.Fatalf("expected expired")
	}
	if len(log) != 4 {
		t.Fatalf("log %v", log)
	}
	m := v.Move()
	if v.cb != nil {
		t.Fatalf("Move")
	}
	cb := w.cb
	m.Reset()
	w.Reset()
	if cb.state() != stateDeallocated {
		t.Fatalf("state %v", cb.state())
	}
}

func TestSharedArray_ResetToAndUnique(t *testing.T) {
	var log, dlog []int
	a := NewSharedArray[SingleThreaded](newElems(2, &log))
	if !a.Unique() {
		t.Fatalf("fresh array not unique")
	}
	b := a.Clone()
	if a.Unique() || b.Unique() {
		t.Fatalf("two owners reported unique")
	}
	b.Reset()

	a.ResetTo(newElems(3, &log))
	if len(log) != 2 || a.Len() != 3 || !a.Unique() {
		t.Fatalf("ResetTo: log %v len=%d", log, a.Len())
	}
	var got int
	a.ResetWithDeleter(newElems(1, &dlog), func(s []elem) { got = len(s) })
	if len(log) != 5 || a.Len() != 1 {
		t.Fatalf("ResetWithDeleter: log %v len=%d", log, a.Len())
	}
	a.ResetTo(nil)
	if a.Valid() || got != 1 || len(dlog) != 0 {
		t.Fatalf("ResetTo(nil): valid=%v deleter=%d dlog=%v", a.Valid(), got, dlog)
	}
}

func TestWeakArray_CopyMoveAssign(t *testing.T) {
	var log []int
	a := NewArray(newElems(2, &log))
	b := NewArray(newElems(3, &log))

	w := NewWeakArray(a)
	var v WeakArray[elem, ThreadSafe]
	v.CopyFrom(&w)
	if !v.SameOwner(w) || w.WeakCount() != 2 {
		t.Fatalf("CopyFrom: weak_count=%d", w.WeakCount())
	}
	v.CopyFrom(&v)
	if w.WeakCount() != 2 {
		t.Fatalf("self CopyFrom: weak_count=%d", w.WeakCount())
	}

	v.Assign(b)
	if !v.Observes(b) || v.Observes(a) || w.WeakCount() != 1 || v.WeakCount() != 1 {
		t.Fatalf("Assign: %d/%d", w.WeakCount(), v.WeakCount())
	}
	if l := v.Lock(); l.Len() != 3 {
		t.Fatalf("Lock after Assign: len=%d", l.Len())
	} else {
		l.Reset()
	}

	var u WeakArray[elem, ThreadSafe]
	u.MoveFrom(&w)
	if w.cb != nil || !u.Observes(a) || u.WeakCount() != 1 {
		t.Fatalf("MoveFrom")
	}
	u.MoveFrom(&u)
	if !u.Observes(a) {
		t.Fatalf("self MoveFrom")
	}

	a.Reset()
	if !u.Expired() || len(log) != 2 {
		t.Fatalf("expired=%v log %v", u.Expired(), log)
	}
	cb := u.cb
	u.Reset()
	if cb.state() != stateDeallocated {
		t.Fatalf("state %v", cb.state())
	}
	v.Reset()
	b.Reset()
	if len(log) != 5 {
		t.Fatalf("log %v", log)
	}
}
