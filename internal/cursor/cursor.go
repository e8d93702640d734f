// File: internal/cursor/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Doubled-range cursor arithmetic for SPSC rings.
//
// A cursor is a free-running 32-bit counter that is never reduced modulo the
// capacity directly. For non-power-of-two capacities it is kept inside
// [0, 2N-1] after every advance; for power-of-two capacities the natural
// uint32 wraparound already reproduces the doubled-range behavior. Keeping
// cursors un-masked until the moment of storage access makes raw equality
// mean "empty" and a distance of N mean "full", with no extra flag and no
// sacrificed slot.

package cursor

import "sync/atomic"

// MaxCapacity is the largest supported slot count. The doubled range
// [0, 2N-1] must fit a uint32, so N stays below 2^31.
const MaxCapacity = 1<<31 - 1

// IsPowerOfTwo reports whether n is nonzero with exactly one set bit.
func IsPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// Index is one side's cursor cell. The owning side advances it with WrapInc;
// the peer side only loads it to derive occupancy. The atomic cell gives the
// owner's advance release semantics and the peer's read acquire semantics,
// which is what makes the two-goroutine SPSC crossing sound.
type Index struct {
	cell atomic.Uint32
}

// Load returns the raw, un-masked cursor value.
func (x *Index) Load() uint32 {
	return x.cell.Load()
}

// WrapInc advances the cursor by exactly one slot. Only the owning side may
// call it. For non-power-of-two n the result is folded back into [0, 2n-1];
// power-of-two n relies on natural uint32 truncation.
func (x *Index) WrapInc(n uint32) {
	v := x.cell.Load() + 1
	if !IsPowerOfTwo(n) && v > 2*n-1 {
		v -= 2 * n
	}
	x.cell.Store(v)
}

// WrapDist returns a-b as a wrap-aware distance. Both operands must have been
// produced by WrapInc against the same n, so the raw difference is at most
// one doubled range off; a single ±2n correction brings it into [0, 2n-1],
// and under the SPSC usage contract the result is in [0, n].
func WrapDist(a, b, n uint32) uint32 {
	raw := a - b
	if !IsPowerOfTwo(n) {
		if int32(raw) < 0 {
			raw += 2 * n
		} else if raw > 2*n-1 {
			raw -= 2 * n
		}
	}
	return raw
}

// Mask maps a cursor onto its storage slot in [0, n-1]. Cursors live in
// [0, 2n-1], at most one wrap-length past the base range, so a single
// conditional subtraction suffices for non-power-of-two n.
func Mask(v, n uint32) uint32 {
	if IsPowerOfTwo(n) {
		return v & (n - 1)
	}
	if v > n-1 {
		return v - n
	}
	return v
}
