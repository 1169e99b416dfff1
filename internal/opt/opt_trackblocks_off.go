//go:build !rc_opt_trackblocks

package opt

// TrackBlocks enables global control block counters reported by rc.Stats.
// The counters are shared by all goroutines, so they are off by default.
const TrackBlocks = false
