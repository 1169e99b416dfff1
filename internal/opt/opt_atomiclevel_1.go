//go:build rc_opt_atomiclevel_1

package opt

const AtomicLevel = 1
