// Package opt holds build-time options shared by rc and atomicx.
//
// Every option is a constant selected by a build tag, so disabled paths are
// removed by the compiler.
package opt
