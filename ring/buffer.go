// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is the raw byte-slot SPSC ring over caller-owned storage.

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/cursor"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Buffer)(nil)

// Buffer is a fixed-capacity SPSC ring of fixed-size byte records.
//
// The backing storage is supplied at construction, must hold at least
// capacity*itemSize bytes, and stays owned by the caller for the buffer's
// whole lifetime; the buffer never frees, grows, or reallocates it.
type Buffer struct {
	rd cursor.Index
	_  [64]byte // keep the consumer cursor off the producer's cache line
	wr cursor.Index
	_  [64]byte

	capacity uint32
	itemSize uint32
	storage  []byte
}

// NewBuffer builds a ring of capacity fixed-size slots over storage.
// It fails with api.ErrInvalidCapacity, api.ErrInvalidItemSize, or
// api.ErrStorageTooSmall; it never allocates slot memory itself.
func NewBuffer(storage []byte, capacity, itemSize int) (*Buffer, error) {
	if capacity <= 0 || capacity > cursor.MaxCapacity {
		return nil, api.ErrInvalidCapacity
	}
	if itemSize <= 0 {
		return nil, api.ErrInvalidItemSize
	}
	need := int64(capacity) * int64(itemSize)
	if int64(len(storage)) < need {
		return nil, api.ErrStorageTooSmall
	}
	return &Buffer{
		capacity: uint32(capacity),
		itemSize: uint32(itemSize),
		storage:  storage[:need:need],
	}, nil
}

// IsEmpty reports whether the ring holds no items. Raw, un-masked cursor
// equality is the empty condition.
func (b *Buffer) IsEmpty() bool {
	return b.rd.Load() == b.wr.Load()
}

// Len returns the number of committed, unconsumed items.
func (b *Buffer) Len() int {
	return int(cursor.WrapDist(b.wr.Load(), b.rd.Load(), b.capacity))
}

// IsFull reports whether occupancy equals capacity.
func (b *Buffer) IsFull() bool {
	return b.Len() == int(b.capacity)
}

// Cap returns the fixed slot count.
func (b *Buffer) Cap() int {
	return int(b.capacity)
}

// ItemSize returns the fixed byte width of one slot.
func (b *Buffer) ItemSize() int {
	return int(b.itemSize)
}

// WriterFront returns the next write slot for in-place population, or nil
// when the ring is full. Repeated calls without an intervening Commit return
// the same slot; the producer owns its contents until Commit.
func (b *Buffer) WriterFront() []byte {
	if b.IsFull() {
		return nil
	}
	return b.slot(b.wr.Load())
}

// Commit publishes whatever the producer placed in the write slot by
// advancing the write cursor one slot. Rejected with BufFull when occupancy
// already equals capacity; nothing changes on rejection.
func (b *Buffer) Commit() api.ErrCode {
	if b.IsFull() {
		return api.BufFull
	}
	b.wr.WrapInc(b.capacity)
	return api.Ok
}

// Push copies item into the write slot and commits it as one step. When the
// ring is full it returns BufFull and copies nothing. len(item) must equal
// ItemSize; a mismatch is a caller bug and panics.
func (b *Buffer) Push(item []byte) api.ErrCode {
	if len(item) != int(b.itemSize) {
		panic("ring: item length does not match slot size")
	}
	slot := b.WriterFront()
	if slot == nil {
		return api.BufFull
	}
	copy(slot, item)
	b.wr.WrapInc(b.capacity)
	return api.Ok
}

// ReaderFront returns the oldest committed slot, or nil when the ring is
// empty. The slot belongs to the ring until Pop; the consumer must finish
// with it before popping, since Pop moves no data.
func (b *Buffer) ReaderFront() []byte {
	if b.IsEmpty() {
		return nil
	}
	return b.slot(b.rd.Load())
}

// Pop consumes the current read slot by advancing the read cursor one slot.
// Rejected with BufEmpty when the ring is empty; nothing changes on
// rejection.
func (b *Buffer) Pop() api.ErrCode {
	if b.IsEmpty() {
		return api.BufEmpty
	}
	b.rd.WrapInc(b.capacity)
	return api.Ok
}

// slot returns the itemSize-wide storage view the cursor maps to.
func (b *Buffer) slot(c uint32) []byte {
	off := int(cursor.Mask(c, b.capacity)) * int(b.itemSize)
	return b.storage[off : off+int(b.itemSize) : off+int(b.itemSize)]
}
