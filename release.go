package rc

import "unsafe"

// Destroyer is implemented by types that hold resources beyond memory.
// When *T implements Destroyer, the default release action calls Destroy
// on the managed object, or on every element of a managed array in reverse
// index order. Otherwise the default release action does nothing and the
// memory is left to the garbage collector.
type Destroyer interface {
	Destroy()
}

// scalarRelease returns the default release action for a single T.
// The result is a static function value, so adopting a pointer with the
// default release action allocates nothing but the control block.
func scalarRelease[T any]() releaseFunc {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		return destroyScalar[T]
	}
	return nil
}

// arrayRelease returns the default release action for a []T.
func arrayRelease[T any]() releaseFunc {
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		return destroyArray[T]
	}
	return nil
}

func destroyScalar[T any](obj unsafe.Pointer, _ int) {
	any((*T)(obj)).(Destroyer).Destroy()
}

func destroyArray[T any](obj unsafe.Pointer, n int) {
	s := unsafe.Slice((*T)(obj), n)
	for i := n - 1; i >= 0; i-- {
		any(&s[i]).(Destroyer).Destroy()
	}
}

func scalarDeleter[T any](deleter func(*T)) releaseFunc {
	return func(obj unsafe.Pointer, _ int) {
		deleter((*T)(obj))
	}
}

func arrayDeleter[T any](deleter func([]T)) releaseFunc {
	return func(obj unsafe.Pointer, n int) {
		deleter(unsafe.Slice((*T)(obj), n))
	}
}

// allocatedRelease destroys the elements like the default array release,
// then returns their storage to alloc.
func allocatedRelease[T any](alloc Allocator[T]) releaseFunc {
	destroy := arrayRelease[T]()
	return func(obj unsafe.Pointer, n int) {
		if destroy != nil {
			destroy(obj, n)
		}
		alloc.Deallocate(unsafe.Slice((*T)(obj), n))
	}
}
