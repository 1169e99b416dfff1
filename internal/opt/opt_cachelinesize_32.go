//go:build rc_opt_cachelinesize_32

package opt

const CacheLineSize uintptr = 32
