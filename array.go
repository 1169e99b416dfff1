package rc

import (
	"fmt"
	"unsafe"
)

// SharedArray is the array form of Shared: it owns a []T as one object.
// The default release action calls Destroy on every element, last element
// first, when *T implements Destroyer.
//
// Copy, move and release rules are those of Shared.
type SharedArray[T any, P Policy] struct {
	s  []T
	cb *controlBlock[P]
}

// NewArray adopts s into a ThreadSafe SharedArray with the default release
// action. An empty s yields an empty handle.
func NewArray[T any](s []T) SharedArray[T, ThreadSafe] {
	return NewSharedArray[ThreadSafe](s)
}

// NewArrayWithDeleter adopts s into a ThreadSafe SharedArray whose release
// action is deleter.
func NewArrayWithDeleter[T any](s []T, deleter func([]T)) SharedArray[T, ThreadSafe] {
	return NewSharedArrayWithDeleter[ThreadSafe](s, deleter)
}

// NewSharedArray adopts the elements of s with the default release action.
// An empty s yields an empty handle and no control block.
func NewSharedArray[P Policy, T any](s []T) SharedArray[T, P] {
	if len(s) == 0 {
		return SharedArray[T, P]{}
	}
	return adoptArray[P](s, arrayRelease[T]())
}

// NewSharedArrayWithDeleter adopts the elements of s with deleter as the
// release action. A nil deleter selects the default release action.
func NewSharedArrayWithDeleter[P Policy, T any](s []T, deleter func([]T)) SharedArray[T, P] {
	if len(s) == 0 {
		return SharedArray[T, P]{}
	}
	if deleter == nil {
		return adoptArray[P](s, arrayRelease[T]())
	}
	return adoptArray[P](s, arrayDeleter(deleter))
}

func adoptArray[P Policy, T any](s []T, release releaseFunc) SharedArray[T, P] {
	s = s[:len(s):len(s)]
	return SharedArray[T, P]{
		s:  s,
		cb: newControlBlock[P](unsafe.Pointer(unsafe.SliceData(s)), len(s), release),
	}
}

// Clone returns a new owner of the same array.
func (a *SharedArray[T, P]) Clone() SharedArray[T, P] {
	if a.cb != nil {
		a.cb.addStrongRef()
	}
	return *a
}

// Move transfers ownership out of a, leaving a empty.
func (a *SharedArray[T, P]) Move() SharedArray[T, P] {
	m := *a
	*a = SharedArray[T, P]{}
	return m
}

// CopyFrom makes a another owner of src's array, releasing what a held.
func (a *SharedArray[T, P]) CopyFrom(src *SharedArray[T, P]) {
	c := src.Clone()
	a.Reset()
	*a = c
}

// MoveFrom transfers ownership from src to a, leaving src empty.
func (a *SharedArray[T, P]) MoveFrom(src *SharedArray[T, P]) {
	if a == src {
		return
	}
	m := src.Move()
	a.Reset()
	*a = m
}

// Reset releases a's reference and leaves a empty.
func (a *SharedArray[T, P]) Reset() {
	cb := a.cb
	*a = SharedArray[T, P]{}
	if cb != nil {
		cb.releaseStrongRef()
	}
}

// ResetTo releases a's reference and adopts s with the default release
// action.
func (a *SharedArray[T, P]) ResetTo(s []T) {
	n := NewSharedArray[P](s)
	a.Reset()
	*a = n
}

// ResetWithDeleter releases a's reference and adopts s with deleter.
func (a *SharedArray[T, P]) ResetWithDeleter(s []T, deleter func([]T)) {
	n := NewSharedArrayWithDeleter[P](s, deleter)
	a.Reset()
	*a = n
}

// Swap exchanges the contents of a and o.
func (a *SharedArray[T, P]) Swap(o *SharedArray[T, P]) {
	*a, *o = *o, *a
}

// At returns a pointer to element i. It panics if i is out of range, like
// indexing the slice.
func (a SharedArray[T, P]) At(i int) *T {
	return &a.s[i]
}

// Len returns the number of elements, 0 for an empty handle.
func (a SharedArray[T, P]) Len() int {
	return len(a.s)
}

// Slice returns the managed elements. The slice must not be retained past
// the handle's reference.
func (a SharedArray[T, P]) Slice() []T {
	return a.s
}

// UseCount returns the number of owners, 0 for an empty handle.
func (a SharedArray[T, P]) UseCount() int {
	if a.cb == nil {
		return 0
	}
	return a.cb.strongCount()
}

// Unique reports whether a is the only owner.
func (a SharedArray[T, P]) Unique() bool {
	return a.UseCount() == 1
}

// Valid reports whether a manages an array.
func (a SharedArray[T, P]) Valid() bool {
	return a.s != nil
}

// Equal reports whether a and o manage arrays starting at the same address.
func (a SharedArray[T, P]) Equal(o SharedArray[T, P]) bool {
	return unsafe.SliceData(a.s) == unsafe.SliceData(o.s)
}

// SameOwner reports whether a and o share a control block.
func (a SharedArray[T, P]) SameOwner(o SharedArray[T, P]) bool {
	return a.cb == o.cb
}

// Weak returns an observer of a's array.
func (a SharedArray[T, P]) Weak() WeakArray[T, P] {
	if a.cb == nil || !a.cb.addWeakRef() {
		return WeakArray[T, P]{}
	}
	return WeakArray[T, P]{cb: a.cb}
}

func (a SharedArray[T, P]) String() string {
	if a.s == nil {
		return "SharedArray(nil)"
	}
	return fmt.Sprintf("SharedArray(%p, len=%d, use_count=%d)", unsafe.SliceData(a.s), len(a.s), a.UseCount())
}

// WeakArray observes an array owned by SharedArray handles. It is to
// SharedArray what Weak is to Shared.
type WeakArray[T any, P Policy] struct {
	cb *controlBlock[P]
}

// NewWeakArray returns an observer of a's array.
func NewWeakArray[T any, P Policy](a SharedArray[T, P]) WeakArray[T, P] {
	return a.Weak()
}

// Clone returns another observer of the same array.
func (w *WeakArray[T, P]) Clone() WeakArray[T, P] {
	if w.cb == nil || !w.cb.addWeakRef() {
		return WeakArray[T, P]{}
	}
	return *w
}

// Move transfers w to the result, leaving w empty.
func (w *WeakArray[T, P]) Move() WeakArray[T, P] {
	m := *w
	w.cb = nil
	return m
}

// CopyFrom makes w observe src's array, releasing what w observed.
func (w *WeakArray[T, P]) CopyFrom(src *WeakArray[T, P]) {
	c := src.Clone()
	w.Reset()
	*w = c
}

// MoveFrom transfers src to w, leaving src empty.
func (w *WeakArray[T, P]) MoveFrom(src *WeakArray[T, P]) {
	if w == src {
		return
	}
	m := src.Move()
	w.Reset()
	*w = m
}

// Assign makes w observe a's array, releasing what w observed.
func (w *WeakArray[T, P]) Assign(a SharedArray[T, P]) {
	n := a.Weak()
	w.Reset()
	*w = n
}

// Reset stops observing.
func (w *WeakArray[T, P]) Reset() {
	cb := w.cb
	w.cb = nil
	if cb != nil {
		cb.releaseWeakRef()
	}
}

// Lock returns a new owner of the observed array, or an empty SharedArray
// if it has already been released.
func (w WeakArray[T, P]) Lock() SharedArray[T, P] {
	if w.cb == nil || !w.cb.tryPromote() {
		return SharedArray[T, P]{}
	}
	return SharedArray[T, P]{s: unsafe.Slice((*T)(w.cb.obj), w.cb.n), cb: w.cb}
}

// Expired reports whether the observed array has been released.
func (w WeakArray[T, P]) Expired() bool {
	return w.cb == nil || w.cb.useCountIsZero()
}

// UseCount returns the number of SharedArray owners.
func (w WeakArray[T, P]) UseCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.strongCount()
}

// WeakCount returns the number of WeakArray observers.
func (w WeakArray[T, P]) WeakCount() int {
	if w.cb == nil {
		return 0
	}
	return w.cb.weakCount()
}

// Observes reports whether w observes the array owned by a.
func (w WeakArray[T, P]) Observes(a SharedArray[T, P]) bool {
	return w.cb != nil && w.cb == a.cb
}

// SameOwner reports whether w and o share a control block.
func (w WeakArray[T, P]) SameOwner(o WeakArray[T, P]) bool {
	return w.cb == o.cb
}
