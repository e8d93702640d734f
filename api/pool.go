// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Backing-storage provisioning contracts.

package api

// SlotProvider hands out backing-storage regions for byte rings of one fixed
// geometry. The region stays owned by the caller for the whole lifetime of
// the ring built on top of it; Put must only be called once the ring is gone.
type SlotProvider interface {
	// Get returns a region of exactly capacity*itemSize bytes.
	Get() []byte
	// Put returns a region for reuse. Regions of a foreign size are dropped.
	Put(region []byte)
	// Stats exposes allocation accounting for observability.
	Stats() SlotPoolStats
}

// SlotPoolStats aggregates region allocation/reuse counters.
type SlotPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
