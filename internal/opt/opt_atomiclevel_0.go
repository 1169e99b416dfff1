//go:build rc_opt_atomiclevel_0

package opt

const AtomicLevel = 0
