package compile

import (
	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/rgraph"
)

// Edge weights, per spec.md §3's edge table.
const (
	WeightDriveLateral int64 = 1
	WeightDriveRamp    int64 = 2
	WeightWalkLateral  int64 = 3
	WeightWalkRamp     int64 = 6
	WeightBridge       int64 = 0
	WeightSink         int64 = 0
	WeightEntrance     int64 = 1
)

// Result is the output of a compile pass: the populated routing graph plus
// the supporting indices the park model needs to drive restriction
// mutators (the access-type dictionary and the ramps-by-floor index).
type Result struct {
	Graph        *rgraph.Graph
	Dims         *grid.Dims
	Dict         *grid.TypeDict
	RampsByFloor [][]grid.Coord
}

// Build compiles cfg into a routing graph in a single pass over every cell,
// following spec.md §4.6's six steps in order.
func Build(cfg *grid.Config) *Result {
	dict := grid.NewTypeDict(cfg.AccessPoints)
	dims := grid.NewDims(cfg, dict)
	g := rgraph.NewGraph(dims.NodeCount())

	ramps := make([][]grid.Coord, cfg.P)

	// Step 1: ramp cells (u/d) — record, vertical drive/walk edges, plus
	// lateral drive/walk edges like any other drivable/walkable cell.
	cfg.EachCell(func(c grid.Coord, r grid.Role) {
		if !grid.IsRamp(r) {
			return
		}
		ramps[c.Z] = append(ramps[c.Z], c)

		dz := 1
		if r == grid.RoleRampDown {
			dz = -1
		}
		up := c.Add(0, 0, dz)
		if cfg.InBounds(up) {
			g.InsertEdge(dims.DriveID(c), dims.DriveID(up), WeightDriveRamp)
			g.InsertEdge(dims.WalkID(c), dims.WalkID(up), WeightWalkRamp)
		}

		emitLateral(cfg, dims, g, c, r)
	})

	// Step 2: plain driveway cells — lateral drive and walk edges.
	cfg.EachCell(func(c grid.Coord, r grid.Role) {
		if r != grid.RoleDriveway {
			return
		}
		emitLateral(cfg, dims, g, c, r)
	})

	// Steps 3-4: spot cells ('.' and 'x') — deactivate occupied spots,
	// then (for both) lateral walk edges and the drive->walk bridge.
	cfg.EachCell(func(c grid.Coord, r grid.Role) {
		if r != grid.RoleFreeSpot && r != grid.RoleOccupiedSpot {
			return
		}
		if r == grid.RoleOccupiedSpot {
			g.Deactivate(dims.DriveID(c))
		}
		emitLateral(cfg, dims, g, c, r)
		g.InsertEdge(dims.DriveID(c), dims.WalkID(c), WeightBridge)
	})

	// Step 5: entrances — single one-way ingress edge into the interior.
	for _, e := range cfg.Entrances {
		if inner, ok := innerNeighbor(cfg, e.At); ok {
			g.InsertEdge(dims.DriveID(e.At), dims.DriveID(inner), WeightEntrance)
		}
	}

	// Step 6: access points — zero-cost edge into their type's sink.
	for _, a := range cfg.AccessPoints {
		idx, err := dict.IndexOf(a.Type)
		if err != nil {
			continue // unreachable: dict was built from these same access points
		}
		g.InsertEdge(dims.WalkID(a.At), dims.SinkID(idx), WeightSink)
	}

	return &Result{Graph: g, Dims: dims, Dict: dict, RampsByFloor: ramps}
}

// emitLateral adds the horizontal drive and/or walk edges from c to its
// orthogonal neighbors, gated by the emitter/target admissibility tables.
func emitLateral(cfg *grid.Config, dims *grid.Dims, g *rgraph.Graph, c grid.Coord, r grid.Role) {
	driveEmits := grid.IsDriveEmitter(r)
	walkEmits := grid.IsWalkEmitter(r)
	if !driveEmits && !walkEmits {
		return
	}

	for _, off := range grid.Orthogonal4 {
		n := c.Add(off[0], off[1], off[2])
		if !cfg.InBounds(n) {
			continue
		}
		nr := cfg.RoleAt(n)

		if driveEmits && grid.IsDriveTarget(nr) {
			g.InsertEdge(dims.DriveID(c), dims.DriveID(n), WeightDriveLateral)
		}
		if walkEmits && grid.IsWalkTarget(nr) {
			g.InsertEdge(dims.WalkID(c), dims.WalkID(n), WeightWalkLateral)
		}
	}
}

// innerNeighbor finds the unique in-bounds orthogonal neighbor of an
// entrance cell that is itself drivable — the inner neighbor the entrance's
// one-way ingress edge points to.
func innerNeighbor(cfg *grid.Config, at grid.Coord) (grid.Coord, bool) {
	for _, off := range grid.Orthogonal4 {
		n := at.Add(off[0], off[1], off[2])
		if cfg.InBounds(n) && grid.IsDriveTarget(cfg.RoleAt(n)) {
			return n, true
		}
	}
	return grid.Coord{}, false
}
