//go:build !rc_debug

package opt

// Debug enables reference-count assertions, leak reports and debug logging.
// By default, it is turned off.
const Debug = false
