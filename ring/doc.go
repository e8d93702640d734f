// Package ring implements fixed-capacity single-producer/single-consumer
// ring buffers with free-running doubled-range cursors.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two variants are provided:
//
//   - Buffer: raw fixed-size byte slots over caller-owned backing storage,
//     for constrained or interrupt-style pipelines where the storage region
//     outlives the ring and no allocation may happen on the data path.
//   - Ring[T]: typed slots stored directly in the ring, with an optional
//     once-only Split into Producer/Consumer halves.
//
// Both support arbitrary positive capacities up to 2^31-1; power-of-two
// capacities take the cheaper bitmask path.
//
// Concurrency contract: exactly one goroutine may drive the producer side
// and exactly one the consumer side. Cursors are atomic cells, so the two
// sides may run on different cores without extra synchronization; the
// owner's advance publishes the slot (release) and the peer's occupancy
// read observes it (acquire). Slot views returned by WriterFront and
// ReaderFront belong to their side until Commit or Pop. No operation
// blocks, retries, or allocates.
package ring
