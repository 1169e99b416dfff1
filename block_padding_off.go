//go:build !rc_opt_enablepadding

package rc

// blockCounts holds the strong and weak reference counts of a control
// block, accessed through the block's Policy.
type blockCounts struct {
	strong uintptr
	weak   uintptr
}
