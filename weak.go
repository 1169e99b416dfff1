package rc

// Weak observes an object owned by Shared handles without keeping it
// alive. It keeps only the control block, never the object, and Lock is the
// only way to reach the object through it.
//
// The zero value is an empty observer: it never had an owner, Lock returns
// an empty Shared and Expired reports true. There is no way to build a
// Weak from a raw pointer.
//
// As with Shared, copy with Clone and release with Reset.
type Weak[T any, P Policy] struct {
	cb *controlBlock[P]
}

// NewWeak returns an observer of s's object.
func NewWeak[T any, P Policy](s Shared[T, P]) Weak[T, P] {
	return s.Weak()
}

// Clone returns another observer of the same object.
func (w *Weak[T, P]) Clone() Weak[T, P] {
	if w.cb == nil || !w.cb.addWeakRef() {
		return Weak[T, P]{}
	}
	return *w
}

// Move transfers w to the result, leaving w empty.
func (w *Weak[T, P]) Move() Weak[T, P] {
	m := *w
	w.cb = nil
	return m
}

// CopyFrom makes w observe src's object, releasing what w observed.
func (w *Weak[T, P]) CopyFrom(src *Weak[T, P]) {
	c := src.Clone()
	w.Reset()
	*w = c
}

// MoveFrom transfers src to w, leaving src empty.
func (w *Weak[T, P]) MoveFrom(src *Weak[T, P]) {
	if w == src {
		return
	}
	m := src.Move()
	w.Reset()
	*w = m
}

// Assign makes w observe s's object, releasing what w observed.
func (w *Weak[T, P]) Assign(s Shared[T, P]) {
	n := s.Weak()
	w.Reset()
	*w = n
}

// Reset stops observing. If w was the last reference of any kind, the
// control block is retired.
func (w *Weak[T, P]) Reset() {
	cb := w.cb
	w.cb = nil
	if cb != nil {
		cb.releaseWeakRef()
	}
}

// Lock returns a new owner of the observed object, or an empty Shared if
// the object has already been released. A non-empty result never refers
// to a released object, under any interleaving.
func (w Weak[T, P]) Lock() Shared[T, P] {
	if w.cb == nil || !w.cb.tryPromote() {
		return Shared[T, P]{}
	}
	return Shared[T, P]{ptr: (*T)(w.cb.obj), cb: w.cb}
}

// Expired reports whether the observed object has been released. Under
// ThreadSafe a false result may be stale the instant it returns; use Lock
// for a consistent view.
func (w Weak[T, P]) Expired() bool {
	return w.cb == nil || w.cb.useCountIsZero()
}

// UseCount returns the number of Shared owners of the observed object.
func (w Weak[T, P]) UseCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.strongCount()
}

// WeakCount returns the number of Weak observers of the object.
func (w Weak[T, P]) WeakCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.weakCount()
}

// Observes reports whether w observes the object owned by s.
func (w Weak[T, P]) Observes(s Shared[T, P]) bool {
	return w.cb != nil && w.cb == s.cb
}

// SameOwner reports whether w and o share a control block.
func (w Weak[T, P]) SameOwner(o Weak[T, P]) bool {
	return w.cb == o.cb
}
