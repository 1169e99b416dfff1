//go:build rc_opt_atomiclevel_2

package opt

const AtomicLevel = 2
