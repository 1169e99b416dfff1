//go:build !rc_opt_atomiclevel_0 && !rc_opt_atomiclevel_1 && !rc_opt_atomiclevel_2

package opt

// AtomicLevel:
//   - -1: Auto. Plain relaxed/acquire loads and relaxed/release stores on TSO.
//   - 0: Both reads and writes are atomic.
//   - 1: Reads are non-atomic, writes are atomic.
//   - 2: Neither reads nor writes are atomic (requires a strong memory model).
//
// Read-modify-write operations and sequentially consistent accesses are
// always atomic.
const AtomicLevel = -1
