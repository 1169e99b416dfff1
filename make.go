package rc

import (
	"fmt"
	"unsafe"
)

// MakeConfig defines configurable Make and MakeArray options.
type MakeConfig[T any] struct {
	alloc Allocator[T]
	init  func(*T)
}

// WithAllocator makes Make and MakeArray obtain storage from alloc and
// return it there on release. Defaults to HeapAllocator.
func WithAllocator[T any](alloc Allocator[T]) func(*MakeConfig[T]) {
	return func(c *MakeConfig[T]) {
		c.alloc = alloc
	}
}

// WithInit runs fn on each newly allocated object, in index order, before
// the handle is returned.
func WithInit[T any](fn func(*T)) func(*MakeConfig[T]) {
	return func(c *MakeConfig[T]) {
		c.init = fn
	}
}

func newMakeConfig[T any](options []func(*MakeConfig[T])) *MakeConfig[T] {
	c := &MakeConfig[T]{}
	for _, o := range options {
		o(c)
	}
	if c.alloc == nil {
		c.alloc = HeapAllocator[T]{}
	}
	return c
}

// releaseFor returns the release action for storage from alloc. Heap
// storage needs no deallocation, so it gets the static default release.
func releaseFor[T any](alloc Allocator[T]) releaseFunc {
	if _, ok := alloc.(HeapAllocator[T]); ok {
		return arrayRelease[T]()
	}
	return allocatedRelease(alloc)
}

// allocate obtains n elements from alloc, clipped to capacity n. A slice of
// the wrong length is handed back to alloc and reported as
// ErrAllocationLength.
func allocate[T any](alloc Allocator[T], n int) ([]T, error) {
	s, err := alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	if len(s) != n {
		alloc.Deallocate(s)
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAllocationLength, len(s), n)
	}
	return s[:n:n], nil
}

// Make allocates a T and returns its first owner. On release the object is
// destroyed (see Destroyer) and its storage handed back to the allocator.
// An allocator error is returned unmodified; a slice of the wrong length
// fails with ErrAllocationLength.
//
//	s, err := rc.Make[rc.ThreadSafe](rc.WithInit(func(c *Conn) { c.id = 7 }))
func Make[P Policy, T any](options ...func(*MakeConfig[T])) (Shared[T, P], error) {
	c := newMakeConfig(options)
	s, err := allocate(c.alloc, 1)
	if err != nil {
		return Shared[T, P]{}, err
	}
	ptr := &s[0]
	if c.init != nil {
		c.init(ptr)
	}
	return adopt[P](ptr, releaseFor(c.alloc)), nil
}

// MakeArray allocates n elements and returns their first owner. A zero n
// yields an empty handle without allocating; a negative n fails with
// ErrNegativeLength. An allocator error is returned unmodified; a slice of
// the wrong length fails with ErrAllocationLength.
func MakeArray[P Policy, T any](n int, options ...func(*MakeConfig[T])) (SharedArray[T, P], error) {
	if n < 0 {
		return SharedArray[T, P]{}, ErrNegativeLength
	}
	if n == 0 {
		return SharedArray[T, P]{}, nil
	}
	c := newMakeConfig(options)
	s, err := allocate(c.alloc, n)
	if err != nil {
		return SharedArray[T, P]{}, err
	}
	if c.init != nil {
		for i := range s {
			c.init(&s[i])
		}
	}
	return SharedArray[T, P]{
		s:  s,
		cb: newControlBlock[P](unsafe.Pointer(unsafe.SliceData(s)), n, releaseFor(c.alloc)),
	}, nil
}
