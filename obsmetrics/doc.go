// Package obsmetrics wires the scheduler's and pathfind engine's optional
// Metrics hooks to Prometheus collectors, served over HTTP the way
// mpisat-qumo/internal/cli/relay.go registers promhttp.Handler() on its
// mux. A nil *Set is valid and satisfies both hook interfaces as a no-op,
// since every hook method checks its own receiver before touching a
// collector; Handler is the one method that needs a non-nil Set.
package obsmetrics
