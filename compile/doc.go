// Package compile builds the routing graph (package rgraph) from a static
// grid (package grid): one pass over every cell, emitting drive edges,
// walk edges, drive-walk bridges, ramp edges, entrance ingress edges and
// access-to-sink edges, following the six-step procedure and the
// neighbour-admissibility table from spec.md §4.6.
//
// This is new code with no direct original_source analogue — the C
// implementation built its graph inline inside main's setup routine. The
// six-step shape and the admissibility predicates it calls
// (grid.IsDriveTarget etc.) are themselves grounded in graphL.c's
// GinsertEdge/GactivateNode usage and in the teacher's gridgraph package's
// "compile a structured shape into a generic graph" pattern
// (gridgraph.NewGridGraph -> core.Graph).
package compile
