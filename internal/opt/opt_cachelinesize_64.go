//go:build rc_opt_cachelinesize_64

package opt

const CacheLineSize uintptr = 64
