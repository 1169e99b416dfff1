//go:build race

package opt

// Race reports whether the binary is built with the race detector.
const Race = true

// Under race detector, disable TSO optimizations so every access stays
// visible to the detector.
const IsTSO = false
