package rc

import (
	"runtime"
	"unsafe"

	"go.uber.org/zap"
)

// overRelease reports a reference released more often than it was taken,
// which only happens when a handle was duplicated by plain assignment.
func overRelease(kind string, b unsafe.Pointer) {
	Logger().Error("rc: reference count released too often",
		zap.String("count", kind),
		zap.Uintptr("block", uintptr(b)))
	panic("rc: " + kind + " reference count released too often")
}

// watchBlock reports blocks that become unreachable while their object is
// still owned: the last Shared handle was dropped without Reset, so the
// release action never ran.
func watchBlock[P Policy](b *controlBlock[P]) {
	runtime.SetFinalizer(b, func(b *controlBlock[P]) {
		switch st := b.state(); st {
		case stateLive:
			Logger().Warn("rc: control block collected with live owners, release action never ran",
				zap.Int("use_count", b.strongCount()),
				zap.Int("weak_count", b.weakCount()))
		case stateStrongExpired:
			Logger().Debug("rc: control block collected with unreleased observers",
				zap.Int("weak_count", b.weakCount()))
		}
	})
}
