// Package pathfind implements the ramp-constrained shortest-path engine
// (spec.md §4.7): Dijkstra over package rgraph's Graph, driven by package
// heap's IndexedHeap, reusing caller-owned scratch weight/predecessor
// arrays across queries.
//
// Grounded on original_source/graphL.c's GDijkstra (the ramp commitment
// check reads the predecessor's role exactly as GDijkstra does) and on the
// teacher's dijkstra package for the Go shape: a stateless engine over
// caller-supplied scratch, rather than a Dijkstra object that owns its own
// arrays — because this engine's whole point is NOT owning them, so the
// scratch-reuse optimisation in package heap is visible to the caller.
package pathfind
