package rgraph

import "fmt"

// NodeID identifies a node in the routing graph. Its range is partitioned
// into three disjoint bands by the caller (drive / walk / sink node ids) —
// see grid.Dims for the partition functions; rgraph itself is agnostic
// to that partition and only requires 0 <= id < NodeCount().
type NodeID int

// Edge is a single directed, weighted connection between two nodes.
type Edge struct {
	To     NodeID
	Weight int64
}

// Graph is an adjacency-list weighted directed graph over a dense,
// known-in-advance node space, with a per-node active flag.
//
// Edges are never removed once inserted — restrictions are modeled purely
// by (de)activating nodes, matching spec.md §4.2 ("restrictions are modeled
// by node deactivation").
type Graph struct {
	adj    [][]Edge
	active []bool
}

// NewGraph allocates a Graph over n nodes (ids 0..n-1), all initially active.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	return &Graph{
		adj:    make([][]Edge, n),
		active: activeAll(n),
	}
}

func activeAll(n int) []bool {
	a := make([]bool, n)
	for i := range a {
		a[i] = true
	}
	return a
}

// NodeCount returns the number of nodes the graph was built with.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// InsertEdge adds a directed edge u -> v with the given weight. Weight must
// be non-negative; the shortest-path engine assumes this and does not
// re-validate it per call for performance.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(u, v NodeID, weight int64) {
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
}

// Activate marks node n as traversable.
// Complexity: O(1).
func (g *Graph) Activate(n NodeID) {
	g.active[n] = true
}

// Deactivate marks node n as non-traversable. Its edges remain in the
// adjacency list (OutEdges still returns them); pathfind is responsible for
// skipping inactive nodes on pop.
// Complexity: O(1).
func (g *Graph) Deactivate(n NodeID) {
	g.active[n] = false
}

// IsActive reports whether node n currently participates in traversal.
// Complexity: O(1).
func (g *Graph) IsActive(n NodeID) bool {
	return g.active[n]
}

// OutEdges returns the (immutable) list of edges leaving node n, regardless
// of n's active flag — callers that need the active-aware view should check
// IsActive before calling this during traversal (pathfind does).
// Complexity: O(1) to obtain the slice.
func (g *Graph) OutEdges(n NodeID) []Edge {
	return g.adj[n]
}

// String renders a compact per-node edge listing, useful in test failures.
func (g *Graph) String() string {
	s := ""
	for u := range g.adj {
		s += fmt.Sprintf("%d[active=%v]:", u, g.active[u])
		for _, e := range g.adj[u] {
			s += fmt.Sprintf(" ->%d(%d)", e.To, e.Weight)
		}
		s += "\n"
	}
	return s
}
