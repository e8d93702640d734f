// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring[T] stores typed values directly in its slots. Same cursor machinery
// as Buffer, without the raw-bytes item contract.

package ring

import (
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/cursor"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity SPSC ring of values of type T. Unlike the
// power-of-two-only rings common elsewhere, any capacity in [1, 2^31-1]
// is accepted; power-of-two capacities take the bitmask fast path.
type Ring[T any] struct {
	rd cursor.Index
	_  [64]byte
	wr cursor.Index
	_  [64]byte

	slots    []T
	capacity uint32
	split    atomic.Bool
}

// New allocates a typed ring. Capacity outside [1, 2^31-1] panics: the
// bound comes from packing the doubled cursor range into 32 bits.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 || capacity > cursor.MaxCapacity {
		panic("ring: capacity must be in [1, 2^31-1]")
	}
	return &Ring[T]{
		slots:    make([]T, capacity),
		capacity: uint32(capacity),
	}
}

// IsEmpty reports whether the ring holds no items.
func (r *Ring[T]) IsEmpty() bool {
	return r.rd.Load() == r.wr.Load()
}

// Len returns the number of committed, unconsumed items.
func (r *Ring[T]) Len() int {
	return int(cursor.WrapDist(r.wr.Load(), r.rd.Load(), r.capacity))
}

// IsFull reports whether occupancy equals capacity.
func (r *Ring[T]) IsFull() bool {
	return r.Len() == int(r.capacity)
}

// Cap returns the fixed slot count.
func (r *Ring[T]) Cap() int {
	return int(r.capacity)
}

// WriterFront returns a pointer to the next write slot for in-place
// population, or nil when full. The same slot is returned until Commit.
func (r *Ring[T]) WriterFront() *T {
	if r.IsFull() {
		return nil
	}
	return &r.slots[cursor.Mask(r.wr.Load(), r.capacity)]
}

// Commit publishes the write slot by advancing the write cursor.
func (r *Ring[T]) Commit() api.ErrCode {
	if r.IsFull() {
		return api.BufFull
	}
	r.wr.WrapInc(r.capacity)
	return api.Ok
}

// Push stores val and commits it as one step.
func (r *Ring[T]) Push(val T) api.ErrCode {
	if r.IsFull() {
		return api.BufFull
	}
	r.slots[cursor.Mask(r.wr.Load(), r.capacity)] = val
	r.wr.WrapInc(r.capacity)
	return api.Ok
}

// ReaderFront returns a pointer to the oldest committed slot, or nil when
// empty. The slot belongs to the ring until Pop.
func (r *Ring[T]) ReaderFront() *T {
	if r.IsEmpty() {
		return nil
	}
	return &r.slots[cursor.Mask(r.rd.Load(), r.capacity)]
}

// Pop consumes the current read slot. The slot value is not cleared; it is
// overwritten by a later producer pass.
func (r *Ring[T]) Pop() api.ErrCode {
	if r.IsEmpty() {
		return api.BufEmpty
	}
	r.rd.WrapInc(r.capacity)
	return api.Ok
}

// Enqueue adds an item; returns false if full. Adapter for api.Ring.
func (r *Ring[T]) Enqueue(item T) bool {
	return r.Push(item) == api.Ok
}

// Dequeue removes and returns the oldest item; ok is false if empty.
// The value is copied out before the cursor advances, so the slot may be
// safely reused by the producer immediately after.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	p := r.ReaderFront()
	if p == nil {
		return zero, false
	}
	val := *p
	r.rd.WrapInc(r.capacity)
	return val, true
}
