// Package park implements the park model (spec.md §4.5): it owns the grid,
// the access-type dictionary, the ramps-by-floor index, the compiled
// routing graph, the parked-vehicle registry and the reusable Dijkstra
// scratch state, and exposes the restriction and occupancy mutators the
// scheduler drives.
//
// Grounded on original_source/gestor.c's ParkModel-equivalent global state
// (the grid, the hash table, the graph and the scratch arrays it threads
// through every handler) and on the teacher's builder package for the
// "owns the graph, exposes mutators, returns sentinel errors" shape.
package park
