package atomicx

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/llxisdsh/rc/internal/opt"
)

// fence is the private location touched by ThreadFence; padded so that the
// locked instruction never contends with unrelated data.
var fence struct {
	_    cpu.CacheLinePad
	word uint32
	_    cpu.CacheLinePad
}

// ThreadFence establishes a synchronization point of the given order
// without touching any caller-visible location.
//
// Relaxed is a no-op. On TSO the hardware already provides acquire and
// release ordering, so only SeqCst issues a locked instruction; the call is
// never inlined and therefore also bounds compiler reordering.
//
//go:noinline
func ThreadFence(order MemoryOrder) {
	switch order {
	case Relaxed:
		return
	case SeqCst:
	default:
		//goland:noinspection ALL
		if opt.IsTSO {
			return
		}
	}
	atomic.AddUint32(&fence.word, 0)
}
