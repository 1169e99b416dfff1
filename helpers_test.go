package rc

import "sync/atomic"

// tracked counts Destroy calls.
type tracked struct {
	id        int
	destroyed *atomic.Int32
}

func (p *tracked) Destroy() {
	p.destroyed.Add(1)
}

func newTracked(id int) (*tracked, *atomic.Int32) {
	var n atomic.Int32
	return &tracked{id: id, destroyed: &n}, &n
}

// plain has no Destroy method.
type plain struct {
	v int
}
