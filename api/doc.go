// Package api defines the public contracts of hioload-ring: result codes,
// sentinel errors, the raw byte-slot ring interface, the typed ring
// interface, and storage provisioning.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The package is dependency-free so implementations, pools, and telemetry
// can share types without import cycles.
package api
