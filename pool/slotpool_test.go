// File: pool/slotpool_test.go
// Author: momentics <momentics@gmail.com>

package pool_test

import (
	"testing"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
	"github.com/momentics/hioload-ring/ring"
)

func TestSlotPoolRegionFitsRing(t *testing.T) {
	p, err := pool.NewSlotPool(7, 8)
	if err != nil {
		t.Fatalf("NewSlotPool: %v", err)
	}
	region := p.Get()
	if len(region) != 56 {
		t.Fatalf("region length %d, want 56", len(region))
	}
	b, err := ring.NewBuffer(region, 7, 8)
	if err != nil {
		t.Fatalf("NewBuffer over pooled region: %v", err)
	}
	if rc := b.Push(make([]byte, 8)); rc != api.Ok {
		t.Fatalf("push: %v", rc)
	}
}

func TestSlotPoolReuseAndStats(t *testing.T) {
	p, err := pool.NewSlotPool(4, 16)
	if err != nil {
		t.Fatalf("NewSlotPool: %v", err)
	}
	r1 := p.Get()
	if got := p.Stats(); got.TotalAlloc != 1 || got.InUse != 1 {
		t.Fatalf("after Get: %+v", got)
	}
	p.Put(r1)
	if got := p.Stats(); got.InUse != 0 {
		t.Fatalf("after Put: %+v", got)
	}
	// Foreign-sized regions are dropped, not pooled.
	p.Put(make([]byte, 3))
	if got := p.Stats(); got.TotalFree != 1 {
		t.Fatalf("after foreign Put: %+v", got)
	}
}

func TestSlotPoolValidation(t *testing.T) {
	if _, err := pool.NewSlotPool(0, 8); err != api.ErrInvalidCapacity {
		t.Errorf("zero capacity: err = %v", err)
	}
	if _, err := pool.NewSlotPool(8, 0); err != api.ErrInvalidItemSize {
		t.Errorf("zero item size: err = %v", err)
	}
}
