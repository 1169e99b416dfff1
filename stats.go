package rc

import (
	"go.uber.org/atomic"
	"golang.org/x/sys/cpu"
)

var blockStats struct {
	allocated   atomic.Int64
	_           cpu.CacheLinePad
	destroyed   atomic.Int64
	_           cpu.CacheLinePad
	deallocated atomic.Int64
}

// BlockStats is a snapshot of the package-wide control block counters.
// The counters are maintained only in builds with the rc_opt_trackblocks
// tag; otherwise every field is zero.
//
// Warning: the statistics are intended for diagnostics and leak hunting in
// tests, not for production logic.
type BlockStats struct {
	// Allocated is the number of control blocks created.
	Allocated int64
	// Destroyed is the number of managed objects whose release action has
	// run, i.e. blocks that left the live state.
	Destroyed int64
	// Deallocated is the number of control blocks retired after both the
	// strong and the weak references reached zero.
	Deallocated int64
	// Live is the number of blocks whose object is still owned.
	Live int64
	// Retained is the number of blocks still referenced by any handle,
	// owners or observers.
	Retained int64
}

// Stats returns the current control block counters. Counters are read one
// at a time, so the snapshot is only consistent in quiescent state.
func Stats() BlockStats {
	s := BlockStats{
		Deallocated: blockStats.deallocated.Load(),
		Destroyed:   blockStats.destroyed.Load(),
		Allocated:   blockStats.allocated.Load(),
	}
	s.Live = s.Allocated - s.Destroyed
	s.Retained = s.Allocated - s.Deallocated
	return s
}
