package rc

import (
	"fmt"
	"unsafe"
)

// Shared is a reference-counted owning handle to a *T.
//
// Every Shared and Weak handle of one object share a single control block.
// The object's release action runs exactly once, when the last Shared
// handle is Reset; the block itself is retired when the last Weak handle is
// gone as well.
//
// Go copies structs on assignment without running any code, so plain
// assignment aliases a handle without taking a reference. Use Clone or
// CopyFrom to copy, Move or MoveFrom to transfer, and Reset where a
// destructor would run. The zero value is an empty handle.
//
// P selects the counting policy: ThreadSafe handles may be used from any
// number of goroutines, SingleThreaded ones must stay on one. Shared does
// not synchronize access to the managed object itself.
type Shared[T any, P Policy] struct {
	ptr *T
	cb  *controlBlock[P]
}

// New adopts ptr into a ThreadSafe Shared handle with the default release
// action. A nil ptr yields an empty handle.
func New[T any](ptr *T) Shared[T, ThreadSafe] {
	return NewShared[ThreadSafe](ptr)
}

// NewWithDeleter adopts ptr into a ThreadSafe Shared handle whose release
// action is deleter.
func NewWithDeleter[T any](ptr *T, deleter func(*T)) Shared[T, ThreadSafe] {
	return NewSharedWithDeleter[ThreadSafe](ptr, deleter)
}

// NewShared adopts ptr with the default release action and allocates a
// control block with one strong reference and no observers. A nil ptr
// yields an empty handle and no block.
//
//	s := rc.NewShared[rc.SingleThreaded](&Node{})
func NewShared[P Policy, T any](ptr *T) Shared[T, P] {
	if ptr == nil {
		return Shared[T, P]{}
	}
	return adopt[P](ptr, scalarRelease[T]())
}

// NewSharedWithDeleter adopts ptr with a caller-supplied release action,
// for resources that are not released by Destroy, e.g. externally
// allocated buffers. A nil ptr yields an empty handle and deleter is never
// called; a nil deleter selects the default release action.
func NewSharedWithDeleter[P Policy, T any](ptr *T, deleter func(*T)) Shared[T, P] {
	if ptr == nil {
		return Shared[T, P]{}
	}
	if deleter == nil {
		return adopt[P](ptr, scalarRelease[T]())
	}
	return adopt[P](ptr, scalarDeleter(deleter))
}

func adopt[P Policy, T any](ptr *T, release releaseFunc) Shared[T, P] {
	return Shared[T, P]{
		ptr: ptr,
		cb:  newControlBlock[P](unsafe.Pointer(ptr), 1, release),
	}
}

// Clone returns a new owner of the same object.
func (s *Shared[T, P]) Clone() Shared[T, P] {
	if s.cb != nil {
		s.cb.addStrongRef()
	}
	return *s
}

// Move transfers ownership out of s, leaving s empty. The reference count
// does not change.
func (s *Shared[T, P]) Move() Shared[T, P] {
	m := *s
	*s = Shared[T, P]{}
	return m
}

// CopyFrom makes s another owner of src's object, releasing what s held.
// Assigning a handle to itself is a no-op.
func (s *Shared[T, P]) CopyFrom(src *Shared[T, P]) {
	c := src.Clone()
	s.Reset()
	*s = c
}

// MoveFrom transfers ownership from src to s, releasing what s held and
// leaving src empty.
func (s *Shared[T, P]) MoveFrom(src *Shared[T, P]) {
	if s == src {
		return
	}
	m := src.Move()
	s.Reset()
	*s = m
}

// Reset releases s's reference and leaves s empty. If s was the last
// owner, the release action runs before Reset returns. Reset on an empty
// handle does nothing.
func (s *Shared[T, P]) Reset() {
	cb := s.cb
	*s = Shared[T, P]{}
	if cb != nil {
		cb.releaseStrongRef()
	}
}

// ResetTo releases s's reference and adopts ptr with the default release
// action.
func (s *Shared[T, P]) ResetTo(ptr *T) {
	n := NewShared[P](ptr)
	s.Reset()
	*s = n
}

// ResetWithDeleter releases s's reference and adopts ptr with deleter.
func (s *Shared[T, P]) ResetWithDeleter(ptr *T, deleter func(*T)) {
	n := NewSharedWithDeleter[P](ptr, deleter)
	s.Reset()
	*s = n
}

// Swap exchanges the contents of s and o.
func (s *Shared[T, P]) Swap(o *Shared[T, P]) {
	*s, *o = *o, *s
}

// Get returns the managed pointer, or nil for an empty handle.
func (s Shared[T, P]) Get() *T {
	return s.ptr
}

// UseCount returns the number of Shared handles owning the object, or 0
// for an empty handle. Under ThreadSafe it may be stale by the time it
// returns.
func (s Shared[T, P]) UseCount() int {
	if s.cb == nil {
		return 0
	}
	return s.cb.strongCount()
}

// Unique reports whether s is the only owner.
func (s Shared[T, P]) Unique() bool {
	return s.UseCount() == 1
}

// Valid reports whether s manages an object.
func (s Shared[T, P]) Valid() bool {
	return s.ptr != nil
}

// Equal reports whether s and o manage the same address.
func (s Shared[T, P]) Equal(o Shared[T, P]) bool {
	return s.ptr == o.ptr
}

// SameOwner reports whether s and o share a control block.
func (s Shared[T, P]) SameOwner(o Shared[T, P]) bool {
	return s.cb == o.cb
}

// Weak returns an observer of s's object. The observer of an empty handle
// is empty.
func (s Shared[T, P]) Weak() Weak[T, P] {
	if s.cb == nil || !s.cb.addWeakRef() {
		return Weak[T, P]{}
	}
	return Weak[T, P]{cb: s.cb}
}

func (s Shared[T, P]) String() string {
	if s.ptr == nil {
		return "Shared(nil)"
	}
	return fmt.Sprintf("Shared(%p, use_count=%d)", s.ptr, s.UseCount())
}
