// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC ring buffer contracts shared across the library.

package api

// ErrCode is the closed result set returned by every ring mutating
// operation. Queries never fail and return plain values.
type ErrCode int

const (
	// Ok signals the operation completed and advanced exactly one cursor.
	Ok ErrCode = iota
	// BufFull signals a producer-side operation was rejected; no state changed.
	BufFull
	// BufEmpty signals a consumer-side operation was rejected; no state changed.
	BufEmpty
)

// String implements fmt.Stringer.
func (c ErrCode) String() string {
	switch c {
	case Ok:
		return "ok"
	case BufFull:
		return "buffer full"
	case BufEmpty:
		return "buffer empty"
	default:
		return "unknown"
	}
}

// Err maps a code onto its sentinel error. Ok maps to nil.
func (c ErrCode) Err() error {
	switch c {
	case BufFull:
		return ErrBufFull
	case BufEmpty:
		return ErrBufEmpty
	default:
		return nil
	}
}

// ByteRing is the raw byte-slot SPSC ring contract.
//
// Exactly one execution context may use the producer side (WriterFront,
// Commit, Push) and exactly one the consumer side (ReaderFront, Pop).
// Each side mutates only its own cursor; occupancy is derived from both.
type ByteRing interface {
	// IsEmpty reports whether the ring holds no items.
	IsEmpty() bool
	// IsFull reports whether occupancy equals capacity.
	IsFull() bool
	// Len returns the current number of items, in [0, Cap()].
	Len() int
	// Cap returns the fixed slot count.
	Cap() int
	// ItemSize returns the fixed byte width of one slot.
	ItemSize() int
	// WriterFront returns the next write slot, or nil when full.
	// Repeated calls without Commit return the same slot.
	WriterFront() []byte
	// Commit publishes the slot returned by WriterFront.
	Commit() ErrCode
	// Push copies one item into the ring and commits it.
	Push(item []byte) ErrCode
	// ReaderFront returns the oldest committed slot, or nil when empty.
	// The slot stays owned by the ring until Pop.
	ReaderFront() []byte
	// Pop consumes the slot returned by ReaderFront. No data moves.
	Pop() ErrCode
}

// Ring is a typed ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}
