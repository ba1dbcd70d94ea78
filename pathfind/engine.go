package pathfind

import (
	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/heap"
	"github.com/gridpark/parkrouter/rgraph"
)

// Metrics receives per-query instrumentation. Implementations must be
// nil-safe callers' responsibility — Engine checks for nil before every
// call, so passing no Metrics costs nothing (SPEC_FULL.md §4.12: the
// optional, nil-safe dependency every unit test can ignore).
type Metrics interface {
	ObserveHeapPops(n int)
}

// Engine runs ramp-constrained Dijkstra over a fixed grid/graph pair. It
// holds no per-query state itself — wt, pred and the heap are owned by the
// caller and threaded through Route so the same Engine can serve many
// queries against the same routing graph without reallocating anything.
type Engine struct {
	cfg     *grid.Config
	dims    *grid.Dims
	graph   *rgraph.Graph
	metrics Metrics
}

// NewEngine builds an Engine over a compiled grid/dims/graph triple (as
// produced by package compile).
func NewEngine(cfg *grid.Config, dims *grid.Dims, graph *rgraph.Graph) *Engine {
	return &Engine{cfg: cfg, dims: dims, graph: graph}
}

// NewEngineWithMetrics is NewEngine plus a Metrics sink that records the
// number of heap pops each Route call performs (the observable counterpart
// of spec.md §8's scratch-reuse property).
func NewEngineWithMetrics(cfg *grid.Config, dims *grid.Dims, graph *rgraph.Graph, metrics Metrics) *Engine {
	return &Engine{cfg: cfg, dims: dims, graph: graph, metrics: metrics}
}

// Route runs Dijkstra from source to dest, using h/wt/pred as scratch.
// Preconditions: wt[source] == heap.Unreachable and h is in its
// "everything at rest" state (true right after Init, or after a prior
// query's Reset) before calling this.
//
// Route deliberately leaves wt and pred populated with this query's result
// when it returns — the trace reconstructor (package trace) reads pred
// immediately afterward. Callers must call Reset once they are done reading
// pred, before the next Route call.
//
// Returns the shortest cost to dest and true, or heap.Unreachable and false
// if dest is not reachable from source under the graph's current active set.
func (e *Engine) Route(h *heap.IndexedHeap, wt []int64, pred []int, source, dest rgraph.NodeID) (int64, bool) {
	wt[source] = 0
	pred[source] = heap.NoNode
	h.DecreaseOrUpdate(int(source))

	pops := 0
	for !h.IsEmpty() {
		u := rgraph.NodeID(h.ExtractMin())
		pops++

		if !e.graph.IsActive(u) {
			continue
		}
		if u == dest {
			e.reportPops(pops)
			return wt[u], true
		}

		vertical, restrict := e.rampCommitment(u, pred)

		for _, edge := range e.graph.OutEdges(u) {
			if !e.graph.IsActive(edge.To) {
				continue
			}
			if restrict && edge.To != vertical {
				continue
			}
			if cand := wt[u] + edge.Weight; cand < wt[edge.To] {
				wt[edge.To] = cand
				pred[edge.To] = int(u)
				h.DecreaseOrUpdate(int(edge.To))
			}
		}
	}

	e.reportPops(pops)
	return heap.Unreachable, false
}

func (e *Engine) reportPops(n int) {
	if e.metrics != nil {
		e.metrics.ObserveHeapPops(n)
	}
}

// Reset restores wt/pred/h to their at-rest state for the next query, once
// the caller has finished reading this query's pred chain.
func (e *Engine) Reset(h *heap.IndexedHeap, pred []int) {
	h.Reset(pred, e.graph.NodeCount())
}

// rampCommitment reports whether popped node u is a ramp cell entered
// laterally (not via ramp-to-ramp chaining), in which case only its
// vertical neighbor (in the same plane, one floor up or down per the ramp's
// direction) may be relaxed. restrict is false for every non-ramp node, and
// for a ramp whose predecessor was itself a ramp on the same column — that
// chain may continue laterally at the top or bottom (spec.md §4.7).
func (e *Engine) rampCommitment(u rgraph.NodeID, pred []int) (vertical rgraph.NodeID, restrict bool) {
	kind, coord, _ := e.dims.Classify(u)
	if kind == grid.KindSink {
		return 0, false
	}

	role := e.cfg.RoleAt(coord)
	if !grid.IsRamp(role) {
		return 0, false
	}

	if p := pred[u]; p != heap.NoNode {
		predKind, predCoord, _ := e.dims.Classify(rgraph.NodeID(p))
		if predKind == kind && predCoord.X == coord.X && predCoord.Y == coord.Y && grid.IsRamp(e.cfg.RoleAt(predCoord)) {
			return 0, false
		}
	}

	dz := 1
	if role == grid.RoleRampDown {
		dz = -1
	}
	up := coord.Add(0, 0, dz)
	if !e.cfg.InBounds(up) {
		return 0, true // committed to the ramp but it has no vertical continuation: a dead end
	}

	if kind == grid.KindDrive {
		return e.dims.DriveID(up), true
	}
	return e.dims.WalkID(up), true
}
