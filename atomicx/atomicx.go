// Package atomicx provides load, store, read-modify-write and fence
// operations over register-width integers, parameterized by a C11-style
// memory order.
//
// The contract is uniform across architectures. Read-modify-write operations
// always go through sync/atomic. Relaxed and acquire loads, and relaxed and
// release stores, become plain memory accesses on total-store-order
// architectures (amd64, 386, s390x) unless the binary is built with -race or
// a stricter rc_opt_atomiclevel_* tag.
//
// 64-bit words must be 64-bit aligned on 32-bit platforms, as with
// sync/atomic.
package atomicx

import (
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/rc/internal/opt"
)

// Word is the set of integer types accepted by this package.
// Other widths are rejected at compile time.
type Word interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~uintptr
}

//goland:noinspection ALL
const (
	plainLoads  = (opt.AtomicLevel == -1 && opt.IsTSO) || opt.AtomicLevel >= 1
	plainStores = (opt.AtomicLevel == -1 && opt.IsTSO) || opt.AtomicLevel >= 2
)

//go:nosplit
func is32[T Word]() bool {
	return unsafe.Sizeof(T(0)) == unsafe.Sizeof(uint32(0))
}

// Load returns the value at addr.
//
//go:nosplit
func Load[T Word](addr *T, order MemoryOrder) T {
	if is32[T]() {
		//goland:noinspection ALL
		if plainLoads && order.plainLoad() {
			return *addr
		}
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
	//goland:noinspection ALL
	if plainLoads && bits.UintSize >= 64 && order.plainLoad() {
		return *addr
	}
	return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}

// Store writes val to addr.
//
//go:nosplit
func Store[T Word](addr *T, val T, order MemoryOrder) {
	if is32[T]() {
		//goland:noinspection ALL
		if plainStores && order.plainStore() {
			*addr = val
			return
		}
		atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), uint32(val))
		return
	}
	//goland:noinspection ALL
	if plainStores && bits.UintSize >= 64 && order.plainStore() {
		*addr = val
		return
	}
	atomic.StoreUint64((*uint64)(unsafe.Pointer(addr)), uint64(val))
}

// Exchange stores val to addr and returns the previous value.
//
//go:nosplit
func Exchange[T Word](addr *T, val T, _ MemoryOrder) T {
	if is32[T]() {
		return T(atomic.SwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(val)))
	}
	return T(atomic.SwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(val)))
}

// FetchAdd adds delta to the value at addr and returns the value
// immediately prior to the addition.
//
//go:nosplit
func FetchAdd[T Word](addr *T, delta T, _ MemoryOrder) T {
	if is32[T]() {
		d := uint32(delta)
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), d) - d)
	}
	d := uint64(delta)
	return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), d) - d)
}

// FetchSub subtracts delta from the value at addr and returns the value
// immediately prior to the subtraction.
//
//go:nosplit
func FetchSub[T Word](addr *T, delta T, _ MemoryOrder) T {
	if is32[T]() {
		d := uint32(delta)
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), -d) + d)
	}
	d := uint64(delta)
	return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), -d) + d)
}

// CompareAndSwap stores desired at addr iff the current value equals
// *expected and reports whether it did. On failure the location is left
// unchanged and the observed value is written back to *expected.
// It never fails spuriously.
func CompareAndSwap[T Word](addr *T, expected *T, desired T, _ MemoryOrder) bool {
	for {
		if cas(addr, *expected, desired) {
			return true
		}
		// The value may have returned to *expected between the failed CAS
		// and the reload; retry so failure always reports a different value.
		if cur := loadStrict(addr); cur != *expected {
			*expected = cur
			return false
		}
	}
}

// CompareAndSwapWeak is like CompareAndSwap but may fail spuriously, in
// which case *expected may be left equal to the current value. Use it in
// retry loops.
//
//go:nosplit
func CompareAndSwapWeak[T Word](addr *T, expected *T, desired T, _ MemoryOrder) bool {
	if cas(addr, *expected, desired) {
		return true
	}
	*expected = loadStrict(addr)
	return false
}

//go:nosplit
func cas[T Word](addr *T, old, new T) bool {
	if is32[T]() {
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(old), uint32(new))
	}
	return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(old), uint64(new))
}

//go:nosplit
func loadStrict[T Word](addr *T) T {
	if is32[T]() {
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
	return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}
