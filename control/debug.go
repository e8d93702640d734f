// File: control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterRing installs occupancy probes for a byte ring under the given
// name prefix: <name>.len, <name>.cap, <name>.item_size, <name>.full.
// All of them are pure queries; either side may be running while they fire.
func (dp *DebugProbes) RegisterRing(name string, r api.ByteRing) {
	dp.RegisterProbe(name+".len", func() any { return r.Len() })
	dp.RegisterProbe(name+".cap", func() any { return r.Cap() })
	dp.RegisterProbe(name+".item_size", func() any { return r.ItemSize() })
	dp.RegisterProbe(name+".full", func() any { return r.IsFull() })
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
