// Package heap implements an indexed binary min-heap keyed by an external
// weight array owned by the caller.
//
// What:
//
//   - Heap order is maintained over node ids 0..N-1, comparing wt[node] values
//     the caller mutates directly (no copies, no wrapper items).
//   - DecreaseOrUpdate repositions a single node in O(log N) after its weight
//     has been lowered by the caller.
//   - Reset restores wt/st only for the subtree actually touched by the last
//     search, avoiding O(N) reinitialisation between repeated queries over the
//     same graph (see Reset).
//
// Why:
//
//   - Dijkstra over a routing graph that is queried thousands of times (one
//     query per vehicle) cannot afford to re-zero two O(N) arrays per query;
//     an indexed heap with partial reset makes per-query cost proportional to
//     the reachable set, not to the graph size.
//
// Complexity:
//
//   - Init:              O(N)
//   - DecreaseOrUpdate:   O(log N)
//   - ExtractMin:         O(log N)
//   - Reinsert:           O(log N)
//   - Reset:              O(R) where R is the number of nodes touched since
//     the last Reset (NOT O(N)).
//
// Errors:
//
//   - DecreaseOrUpdate/Reinsert with a node outside [0, N) is a programming
//     error (undefined behavior, matching the contract in spec.md §4.1) —
//     callers that index by construction (NodeID ranges computed from the
//     grid) never hit this in practice.
package heap
