// File: pool/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spill is an unbounded FIFO for items a bounded SPSC ring cannot hold.
// The ring stays the lock-free fast path; Spill is the slow path a consumer
// falls back to when it must absorb a burst instead of exerting backpressure.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/ring"
)

// Spill is a growable FIFO of T. The underlying queue is unsynchronized, so
// access is mutex-guarded; this is deliberate, the spill path is not a hot
// path.
type Spill[T any] struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewSpill creates an empty spill queue.
func NewSpill[T any]() *Spill[T] {
	return &Spill[T]{q: queue.New()}
}

// Add appends an item.
func (s *Spill[T]) Add(val T) {
	s.mu.Lock()
	s.q.Add(val)
	s.mu.Unlock()
}

// Remove pops the oldest item; ok is false if the spill is empty.
func (s *Spill[T]) Remove() (val T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.q.Length() == 0 {
		return val, false
	}
	return s.q.Remove().(T), true
}

// Len returns the number of spilled items.
func (s *Spill[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Length()
}

// DrainFrom moves everything currently buffered in the consumer half into
// the spill, in FIFO order, and reports how many items moved. Must be called
// from the consumer context, like any other consumer-side operation.
func (s *Spill[T]) DrainFrom(c *ring.Consumer[T]) int {
	moved := 0
	for {
		p := c.Peek()
		if p == nil {
			return moved
		}
		s.Add(*p)
		c.Pop()
		moved++
	}
}
