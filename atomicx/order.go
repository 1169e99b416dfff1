package atomicx

// MemoryOrder selects the ordering constraint of an atomic operation.
//
// Go's sync/atomic operations are sequentially consistent, so a stronger
// order than requested is always a valid implementation. Weaker orders only
// relax loads and stores, and only where the build's atomic level allows it.
type MemoryOrder uint8

const (
	// Relaxed guarantees atomicity only.
	Relaxed MemoryOrder = iota
	// Consume is treated as Acquire.
	Consume
	// Acquire on a load keeps subsequent memory operations after it.
	Acquire
	// Release on a store keeps preceding memory operations before it.
	Release
	// AcqRel combines Acquire and Release for read-modify-write operations.
	AcqRel
	// SeqCst additionally imposes a single total order over all SeqCst
	// operations.
	SeqCst
)

var orderNames = [...]string{
	Relaxed: "relaxed",
	Consume: "consume",
	Acquire: "acquire",
	Release: "release",
	AcqRel:  "acq_rel",
	SeqCst:  "seq_cst",
}

func (o MemoryOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "seq_cst"
}

// plainLoad reports whether a load with this order may be a plain read.
// Release and AcqRel are meaningless on a load and are strengthened.
//
//go:nosplit
func (o MemoryOrder) plainLoad() bool {
	return o <= Acquire
}

// plainStore reports whether a store with this order may be a plain write.
// Consume, Acquire and AcqRel are meaningless on a store and are strengthened.
//
//go:nosplit
func (o MemoryOrder) plainStore() bool {
	return o == Relaxed || o == Release
}
