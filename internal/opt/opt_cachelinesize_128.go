//go:build rc_opt_cachelinesize_128

package opt

const CacheLineSize uintptr = 128
