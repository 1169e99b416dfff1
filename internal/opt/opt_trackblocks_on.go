//go:build rc_opt_trackblocks

package opt

// TrackBlocks enables global control block counters reported by rc.Stats.
const TrackBlocks = true
