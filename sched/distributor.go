package sched

import "sync/atomic"

// Distributor is a round-robin index generator over 0..N-1. It carries no
// other state and is safe for concurrent callers.
type Distributor struct {
	size    uint64
	counter atomic.Uint64
}

// NewDistributor creates a distributor over the given number of slots.
// Sizes below one are clamped to one.
func NewDistributor(size int) *Distributor {
	if size < 1 {
		size = 1
	}
	return &Distributor{size: uint64(size)}
}

// Next returns the current index and advances, wrapping after size-1.
func (d *Distributor) Next() int {
	return int((d.counter.Add(1) - 1) % d.size)
}

// Size returns the number of slots.
func (d *Distributor) Size() int {
	return int(d.size)
}
