//go:build rc_opt_cachelinesize_256

package opt

const CacheLineSize uintptr = 256
