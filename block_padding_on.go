//go:build rc_opt_enablepadding

package rc

import (
	"unsafe"

	"github.com/llxisdsh/rc/internal/opt"
)

// blockCounts holds the strong and weak reference counts of a control
// block, accessed through the block's Policy.
//
// With rc_opt_enablepadding, each count sits on its own cache line so that
// heavy Clone/Reset traffic does not slow down Weak handles observing the
// same block, and the block does not share a line with its neighbours.
// If turned on, every control block occupies a few cache lines.
//
//lint:ignore U1000 prevents false sharing
type blockCounts struct {
	_      [opt.CacheLineSize]byte
	strong uintptr
	_      [opt.CacheLineSize - unsafe.Sizeof(uintptr(0))%opt.CacheLineSize]byte
	weak   uintptr
	_      [opt.CacheLineSize - unsafe.Sizeof(uintptr(0))%opt.CacheLineSize]byte
}
