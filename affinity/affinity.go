// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files guarded by build tags.
//
// An SPSC pipeline gets its latency profile from keeping the producer and
// consumer on fixed, distinct cores; these helpers pin the calling OS thread
// so the ring's two sides stop migrating.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU on supported
// platforms. On unsupported platforms it returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and binds that thread to
// cpuID. Callers that want to undo the lock use runtime.UnlockOSThread.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}
