// Package rgraph implements a weighted directed graph over dense integer
// node ids, with a per-node active/inactive flag used to model temporary
// restrictions without touching the edge set.
//
// What:
//
//   - Nodes are identified by NodeID (0..N-1); adjacency is an array of
//     edge-lists indexed by NodeID, not a map — the node space is known in
//     full at construction time (compiled once from a cell grid).
//   - Deactivating a node makes it invisible to traversal: OutEdges still
//     reports its edges (the edge set is immutable once inserted), but the
//     shortest-path engine in package pathfind skips inactive nodes when
//     popped, which is equivalent to "no outgoing edges and no incoming
//     traffic" per spec.
//
// Why:
//
//   - Restriction windows (spec.md §3/§4.5) need O(1) activate/deactivate
//     without mutating or rebuilding the edge list, so repeated apply/release
//     cycles over a run stay cheap.
//
// Complexity:
//
//   - NewGraph:    O(n)
//   - InsertEdge:  O(1) amortized
//   - Activate / Deactivate / IsActive: O(1)
//   - OutEdges:    O(1) to obtain the slice (iteration is O(degree))
package rgraph
