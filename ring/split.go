// File: ring/split.go
// Author: momentics <momentics@gmail.com>
//
// Once-only split of a Ring into its two sides. Handing each execution
// context only its own half makes the one-writer/one-reader discipline a
// type-level property instead of a calling convention.

package ring

import "github.com/momentics/hioload-ring/api"

// Producer is the write half of a split ring.
type Producer[T any] struct {
	r *Ring[T]
}

// Front returns the next write slot, or nil when full.
func (p *Producer[T]) Front() *T { return p.r.WriterFront() }

// Commit publishes the slot returned by Front.
func (p *Producer[T]) Commit() api.ErrCode { return p.r.Commit() }

// Push stores val and commits it as one step.
func (p *Producer[T]) Push(val T) api.ErrCode { return p.r.Push(val) }

// IsFull reports whether the ring is at capacity.
func (p *Producer[T]) IsFull() bool { return p.r.IsFull() }

// Consumer is the read half of a split ring.
type Consumer[T any] struct {
	r *Ring[T]
}

// Peek returns the oldest committed slot, or nil when empty. The slot stays
// owned by the ring until Pop.
func (c *Consumer[T]) Peek() *T { return c.r.ReaderFront() }

// Pop consumes the slot returned by Peek.
func (c *Consumer[T]) Pop() api.ErrCode { return c.r.Pop() }

// Len returns the current occupancy.
func (c *Consumer[T]) Len() int { return c.r.Len() }

// IsEmpty reports whether the ring holds no items.
func (c *Consumer[T]) IsEmpty() bool { return c.r.IsEmpty() }

// Split hands out the producer and consumer halves of r. It succeeds exactly
// once over the ring's lifetime; later calls fail with api.ErrAlreadySplit.
func (r *Ring[T]) Split() (*Producer[T], *Consumer[T], error) {
	if !r.split.CompareAndSwap(false, true) {
		return nil, nil, api.ErrAlreadySplit
	}
	return &Producer[T]{r: r}, &Consumer[T]{r: r}, nil
}
