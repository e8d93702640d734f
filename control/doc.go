// Package control provides runtime introspection for ring pipelines:
// a concurrent-safe metrics registry and a debug probe registry with
// ready-made occupancy probes for any byte ring.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Probes read only the ring's side-effect-free queries, so registering them
// never perturbs producer or consumer cursors.
package control
