// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotPool recycles backing-storage regions for ring.Buffer instances that
// share one geometry (capacity, itemSize). The ring itself never allocates;
// the pool is the collaborator that owns region lifecycle.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/cursor"
)

// Ensure compile-time interface compliance.
var _ api.SlotProvider = (*SlotPool)(nil)

// SlotPool hands out regions of capacity*itemSize bytes.
type SlotPool struct {
	regionSize int
	pool       sync.Pool

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewSlotPool creates a pool for rings of the given geometry. Validation
// matches ring.NewBuffer so a pooled region always satisfies it.
func NewSlotPool(capacity, itemSize int) (*SlotPool, error) {
	if capacity <= 0 || capacity > cursor.MaxCapacity {
		return nil, api.ErrInvalidCapacity
	}
	if itemSize <= 0 {
		return nil, api.ErrInvalidItemSize
	}
	return &SlotPool{regionSize: capacity * itemSize}, nil
}

// RegionSize returns the byte length of regions this pool hands out.
func (p *SlotPool) RegionSize() int {
	return p.regionSize
}

// Get returns a region of exactly capacity*itemSize bytes. Reused regions
// are returned as-is; ring slots are fully overwritten before they are ever
// read, so no zeroing happens here.
func (p *SlotPool) Get() []byte {
	if r := p.pool.Get(); r != nil {
		p.totalFree.Add(-1)
		return r.([]byte)
	}
	p.totalAlloc.Add(1)
	return make([]byte, p.regionSize)
}

// Put returns a region for reuse once no ring references it. Regions of a
// foreign size are dropped on the floor for the GC.
func (p *SlotPool) Put(region []byte) {
	if len(region) != p.regionSize {
		return
	}
	p.totalFree.Add(1)
	p.pool.Put(region) //nolint:staticcheck // SA6002: the slice header allocation is fine here
}

// Stats reports allocation accounting. InUse counts regions handed out and
// not yet returned.
func (p *SlotPool) Stats() api.SlotPoolStats {
	alloc := p.totalAlloc.Load()
	free := p.totalFree.Load()
	return api.SlotPoolStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}
