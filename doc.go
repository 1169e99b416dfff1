// Package rc provides reference-counted shared ownership for Go values
// whose lifetime must end deterministically: buffers handed out by a pool,
// file descriptors, native resources, slab entries.
//
// Shared owns an object through a control block holding a strong and a
// weak count. Weak observes the same block without owning the object; Lock
// turns it back into a Shared while the object is alive. SharedArray and
// WeakArray are the array forms. When the last Shared is Reset, the
// object's release action runs exactly once: Destroy for types implementing
// Destroyer, a custom deleter, or nothing at all.
//
// Handles are parameterized by a counting Policy chosen at compile time:
//
//	s := rc.New(&Conn{})                         // Shared[Conn, ThreadSafe]
//	l := rc.NewShared[rc.SingleThreaded](&Node{}) // plain arithmetic counts
//
//	c := s.Clone() // use_count 2
//	w := s.Weak()
//	s.Reset()
//	if o := w.Lock(); o.Valid() {
//		// o keeps the object alive until o.Reset.
//		o.Reset()
//	}
//	c.Reset() // Conn.Destroy runs here
//	w.Reset()
//
// Go has no copy constructors or destructors. Assigning a handle with =
// aliases it without taking a reference; copy with Clone, transfer with
// Move, and release with Reset. Cycles are not collected: break them with
// Weak.
//
// Build tags:
//   - rc_debug: detect over-release, report leaked blocks through Logger.
//   - rc_opt_trackblocks: maintain the counters returned by Stats.
//   - rc_opt_enablepadding: place each count on its own cache line.
//   - rc_opt_atomiclevel_{0,1,2}, rc_opt_cachelinesize_{32,64,128,256}:
//     see package atomicx.
package rc
