package rc

import (
	"errors"
	"sync"
	"unsafe"

	"go.uber.org/atomic"
)

var (
	// ErrAllocatorExhausted is returned by BoundedAllocator when an
	// allocation would exceed its limit.
	ErrAllocatorExhausted = errors.New("rc: allocator exhausted")
	// ErrNegativeLength is returned by MakeArray for a negative length.
	ErrNegativeLength = errors.New("rc: negative array length")
	// ErrAllocationLength is returned when an Allocator hands back a slice
	// whose length differs from the requested count.
	ErrAllocationLength = errors.New("rc: allocator returned wrong length")
)

// Allocator provides storage for objects created by Make and MakeArray.
//
// Allocate(n) must return a slice of length n; any other length fails the
// Make call with ErrAllocationLength, and that slice is passed straight back
// to Deallocate. Otherwise Deallocate receives the same n elements with
// length and capacity n, after the release action has destroyed them.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(s []T)
}

// HeapAllocator allocates from the Go heap; Deallocate leaves the memory
// to the garbage collector.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	return make([]T, n), nil
}

func (HeapAllocator[T]) Deallocate([]T) {}

// PoolAllocator recycles single-object storage through a sync.Pool.
// Arrays are served from the heap. Storage is zeroed before it is pooled.
// The zero value is ready to use; a PoolAllocator must not be copied after
// first use.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

func (a *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 1 {
		if p, _ := a.pool.Get().(*T); p != nil {
			return unsafe.Slice(p, 1), nil
		}
	}
	return make([]T, n), nil
}

func (a *PoolAllocator[T]) Deallocate(s []T) {
	if len(s) != 1 {
		return
	}
	var zero T
	s[0] = zero
	a.pool.Put(&s[0])
}

// BoundedAllocator caps the number of live elements allocated through it
// and forwards to another Allocator.
type BoundedAllocator[T any] struct {
	next  Allocator[T]
	limit int64
	live  atomic.Int64
}

// NewBoundedAllocator returns an allocator that fails with
// ErrAllocatorExhausted once limit elements are live. A nil next uses
// HeapAllocator.
func NewBoundedAllocator[T any](limit int, next Allocator[T]) *BoundedAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &BoundedAllocator[T]{next: next, limit: int64(limit)}
}

func (a *BoundedAllocator[T]) Allocate(n int) ([]T, error) {
	if a.live.Add(int64(n)) > a.limit {
		a.live.Sub(int64(n))
		return nil, ErrAllocatorExhausted
	}
	s, err := allocate(a.next, n)
	if err != nil {
		a.live.Sub(int64(n))
		return nil, err
	}
	return s, nil
}

func (a *BoundedAllocator[T]) Deallocate(s []T) {
	a.next.Deallocate(s)
	a.live.Sub(int64(len(s)))
}

// Live returns the number of elements currently allocated.
func (a *BoundedAllocator[T]) Live() int {
	return int(a.live.Load())
}
