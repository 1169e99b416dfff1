//go:build !race

package opt

import "runtime"

// Race reports whether the binary is built with the race detector.
const Race = false

// IsTSO reports a total-store-order architecture; on TSO, plain reads and
// writes of pointers and native word-sized integers are not reordered by
// the hardware.
const IsTSO = runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "386" ||
	runtime.GOARCH == "s390x"
