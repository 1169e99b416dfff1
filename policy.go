package rc

import "github.com/llxisdsh/rc/atomicx"

// Policy selects how a handle instantiation maintains its reference
// counts. It is a compile-time capability selector: the type set is closed
// to ThreadSafe and SingleThreaded, and the chosen type is a zero-size type
// parameter, so no per-operation dispatch happens at run time.
type Policy interface {
	ThreadSafe | SingleThreaded

	// increment adds one reference; the caller already holds a valid one.
	increment(addr *uintptr)
	// decrement drops one reference and returns the updated count.
	decrement(addr *uintptr) uintptr
	// incrementIfNonZero adds one reference unless the count is zero.
	incrementIfNonZero(addr *uintptr) bool
	// load returns the current count; advisory under concurrency.
	load(addr *uintptr) uintptr
}

// ThreadSafe routes every count operation through atomicx. Handles of this
// policy may be cloned, reset and promoted from any number of goroutines
// concurrently.
type ThreadSafe struct{}

//go:nosplit
func (ThreadSafe) increment(addr *uintptr) {
	atomicx.FetchAdd(addr, 1, atomicx.Relaxed)
}

// The acquire half makes every write to the managed object by other owners
// visible to the goroutine that performs the final decrement.
//
//go:nosplit
func (ThreadSafe) decrement(addr *uintptr) uintptr {
	return atomicx.FetchSub(addr, 1, atomicx.AcqRel) - 1
}

func (ThreadSafe) incrementIfNonZero(addr *uintptr) bool {
	cur := atomicx.Load(addr, atomicx.Relaxed)
	for cur != 0 {
		if atomicx.CompareAndSwapWeak(addr, &cur, cur+1, atomicx.AcqRel) {
			return true
		}
	}
	return false
}

//go:nosplit
func (ThreadSafe) load(addr *uintptr) uintptr {
	return atomicx.Load(addr, atomicx.Relaxed)
}

// SingleThreaded maintains counts with plain arithmetic. All handles
// sharing a control block must be confined to one goroutine at a time;
// anything else is a data race.
type SingleThreaded struct{}

//go:nosplit
func (SingleThreaded) increment(addr *uintptr) {
	*addr++
}

//go:nosplit
func (SingleThreaded) decrement(addr *uintptr) uintptr {
	*addr--
	return *addr
}

//go:nosplit
func (SingleThreaded) incrementIfNonZero(addr *uintptr) bool {
	if *addr == 0 {
		return false
	}
	*addr++
	return true
}

//go:nosplit
func (SingleThreaded) load(addr *uintptr) uintptr {
	return *addr
}
