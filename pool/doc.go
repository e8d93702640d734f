// Package pool provisions memory around SPSC rings: recycled backing-storage
// regions for byte rings of a fixed geometry, and an unbounded spill queue
// for consumers that must absorb bursts a bounded ring rejects.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package pool
