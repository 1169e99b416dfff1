package rc

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/llxisdsh/rc/internal/opt"
)

// releaseFunc is a type-erased release action. obj is the managed object
// (or the first element of a managed array) and n the element count, which
// is 1 for single objects.
type releaseFunc func(obj unsafe.Pointer, n int)

// controlBlock is the single allocation shared by every Shared and Weak
// handle of one managed object.
//
// counts.weak carries the observers plus one implicit reference owned by
// the strong holders as a group; that reference is dropped when the strong
// count reaches zero, so exactly one goroutine observes the weak count reach
// zero and deallocates the block.
type controlBlock[P Policy] struct {
	counts  blockCounts
	obj     unsafe.Pointer
	n       int
	release releaseFunc
}

type blockState uint8

const (
	// stateLive: strong > 0, the managed object is alive.
	stateLive blockState = iota
	// stateStrongExpired: strong == 0, observers remain, object destroyed.
	stateStrongExpired
	// stateDeallocated: no references of either kind remain.
	stateDeallocated
)

func (s blockState) String() string {
	switch s {
	case stateLive:
		return "live"
	case stateStrongExpired:
		return "strong_expired"
	default:
		return "deallocated"
	}
}

func newControlBlock[P Policy](obj unsafe.Pointer, n int, release releaseFunc) *controlBlock[P] {
	b := &controlBlock[P]{obj: obj, n: n, release: release}
	b.counts.strong = 1
	b.counts.weak = 1
	//goland:noinspection ALL
	if opt.TrackBlocks {
		blockStats.allocated.Inc()
	}
	//goland:noinspection ALL
	if opt.Debug {
		watchBlock(b)
	}
	return b
}

//go:nosplit
func (b *controlBlock[P]) addStrongRef() {
	var p P
	p.increment(&b.counts.strong)
}

func (b *controlBlock[P]) releaseStrongRef() {
	var p P
	if n := p.decrement(&b.counts.strong); n != 0 {
		//goland:noinspection ALL
		if opt.Debug && n == ^uintptr(0) {
			overRelease("strong", unsafe.Pointer(b))
		}
		return
	}
	b.destroyObject()
	b.releaseWeakRef()
}

// addWeakRef registers an observer. It refuses once the block has been
// deallocated.
func (b *controlBlock[P]) addWeakRef() bool {
	var p P
	return p.incrementIfNonZero(&b.counts.weak)
}

func (b *controlBlock[P]) releaseWeakRef() {
	var p P
	n := p.decrement(&b.counts.weak)
	if n == 0 {
		b.deallocate()
		return
	}
	//goland:noinspection ALL
	if opt.Debug && n == ^uintptr(0) {
		overRelease("weak", unsafe.Pointer(b))
	}
}

// tryPromote acquires a strong reference iff the object is still alive.
func (b *controlBlock[P]) tryPromote() bool {
	var p P
	return p.incrementIfNonZero(&b.counts.strong)
}

func (b *controlBlock[P]) strongCount() int {
	var p P
	return int(p.load(&b.counts.strong))
}

// weakCount returns the number of observers, excluding the implicit
// reference of the strong holders.
func (b *controlBlock[P]) weakCount() int {
	var p P
	strong := p.load(&b.counts.strong)
	weak := p.load(&b.counts.weak)
	if strong != 0 && weak != 0 {
		weak--
	}
	return int(weak)
}

func (b *controlBlock[P]) useCountIsZero() bool {
	var p P
	return p.load(&b.counts.strong) == 0
}

func (b *controlBlock[P]) state() blockState {
	var p P
	switch {
	case p.load(&b.counts.strong) != 0:
		return stateLive
	case p.load(&b.counts.weak) != 0:
		return stateStrongExpired
	default:
		return stateDeallocated
	}
}

// destroyObject runs the release action on the managed object only.
// The block stays allocated for any remaining observers, but drops its
// reference to the object.
func (b *controlBlock[P]) destroyObject() {
	obj, n, release := b.obj, b.n, b.release
	b.obj, b.release = nil, nil
	if release != nil {
		release(obj, n)
	}
	//goland:noinspection ALL
	if opt.TrackBlocks {
		blockStats.destroyed.Inc()
	}
}

// deallocate retires the block. Its memory belongs to the Go heap and is
// reclaimed once the last handle value referencing it is gone.
func (b *controlBlock[P]) deallocate() {
	//goland:noinspection ALL
	if opt.TrackBlocks {
		blockStats.deallocated.Inc()
	}
	//goland:noinspection ALL
	if opt.Debug {
		Logger().Debug("rc: control block deallocated",
			zap.Uintptr("block", uintptr(unsafe.Pointer(b))))
	}
}
