package park

import (
	"fmt"

	"github.com/gridpark/parkrouter/compile"
	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/heap"
	"github.com/gridpark/parkrouter/registry"
	"github.com/gridpark/parkrouter/rgraph"
)

// Park owns every piece of mutable state the core needs at steady state:
// the grid, the compiled routing graph, the parked-vehicle registry and the
// reusable Dijkstra scratch buffers. A *Park is not safe for concurrent use
// (spec.md §5 — single executor, no locking discipline).
type Park struct {
	cfg  *grid.Config
	dims *grid.Dims
	dict *grid.TypeDict
	ramp [][]grid.Coord

	graph *rgraph.Graph
	reg   *registry.Registry

	availPerFloor []int64
	availTotal    int64

	ScratchWeight []int64
	ScratchPred   []int
	Heap          *heap.IndexedHeap

	built bool
}

// New allocates a Park over cfg. The routing graph is not yet built — call
// Compile before any mutator or query.
func New(cfg *grid.Config) *Park {
	return &Park{cfg: cfg, availPerFloor: make([]int64, cfg.P)}
}

// Compile builds the routing graph, the access-type dictionary, the
// ramps-by-floor index and the reusable Dijkstra scratch state, and counts
// the initial per-floor and total available spots.
func (p *Park) Compile() {
	res := compile.Build(p.cfg)
	p.graph = res.Graph
	p.dims = res.Dims
	p.dict = res.Dict
	p.ramp = res.RampsByFloor
	spots := 0
	p.cfg.EachCell(func(c grid.Coord, r grid.Role) {
		if r == grid.RoleFreeSpot || r == grid.RoleOccupiedSpot {
			spots++
		}
	})
	p.reg = registry.New(max(1, spots))

	p.ScratchWeight = make([]int64, p.dims.NodeCount())
	p.ScratchPred = make([]int, p.dims.NodeCount())
	for i := range p.ScratchWeight {
		p.ScratchWeight[i] = heap.Unreachable
		p.ScratchPred[i] = heap.NoNode
	}
	p.Heap = heap.Init(p.ScratchWeight, p.dims.NodeCount())

	p.cfg.EachCell(func(c grid.Coord, r grid.Role) {
		if r == grid.RoleFreeSpot {
			p.availPerFloor[c.Z]++
			p.availTotal++
		}
	})

	p.built = true
}

// Graph exposes the compiled routing graph, e.g. for the shortest-path
// engine (package pathfind).
func (p *Park) Graph() *rgraph.Graph { return p.graph }

// Dims exposes the node-id partition, e.g. for translating a requested
// access type into its sink node.
func (p *Park) Dims() *grid.Dims { return p.dims }

// Dict exposes the access-type dictionary.
func (p *Park) Dict() *grid.TypeDict { return p.dict }

// AvailableTotal returns the current number of available free spots across
// the whole park.
func (p *Park) AvailableTotal() int64 { return p.availTotal }

// AvailablePerFloor returns the current number of available free spots on
// floor z.
func (p *Park) AvailablePerFloor(z int) int64 { return p.availPerFloor[z] }

// IsFull reports whether no spot is currently available anywhere.
func (p *Park) IsFull() bool { return p.availTotal == 0 }

func (p *Park) ensureBuilt() error {
	if !p.built {
		return ErrGraphNotBuilt
	}
	return nil
}

// RestrictCell deactivates drive(c) and walk(c). If c is currently a free
// spot, it is removed from total and per-floor availability.
func (p *Park) RestrictCell(c grid.Coord) error {
	if err := p.ensureBuilt(); err != nil {
		return err
	}
	if !p.cfg.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	p.graph.Deactivate(p.dims.DriveID(c))
	p.graph.Deactivate(p.dims.WalkID(c))

	if p.cfg.RoleAt(c) == grid.RoleFreeSpot {
		p.availPerFloor[c.Z]--
		p.availTotal--
	}
	return nil
}

// ReleaseCell is the inverse of RestrictCell.
func (p *Park) ReleaseCell(c grid.Coord) error {
	if err := p.ensureBuilt(); err != nil {
		return err
	}
	if !p.cfg.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	p.graph.Activate(p.dims.DriveID(c))
	p.graph.Activate(p.dims.WalkID(c))

	if p.cfg.RoleAt(c) == grid.RoleFreeSpot {
		p.availPerFloor[c.Z]++
		p.availTotal++
	}
	return nil
}

// RestrictFloor deactivates every entrance node and every ramp node (drive
// and walk copies) on floor z, and removes that floor's currently-available
// spots from the total (the per-floor counter itself is left untouched, so
// ReleaseFloor can restore the total exactly).
func (p *Park) RestrictFloor(z int) error {
	if err := p.ensureBuilt(); err != nil {
		return err
	}
	if z < 0 || z >= p.cfg.P {
		return fmt.Errorf("%w: floor %d", ErrOutOfBounds, z)
	}

	for _, e := range p.cfg.Entrances {
		if e.At.Z == z {
			p.graph.Deactivate(p.dims.DriveID(e.At))
		}
	}
	for _, r := range p.ramp[z] {
		p.graph.Deactivate(p.dims.DriveID(r))
		p.graph.Deactivate(p.dims.WalkID(r))
	}

	p.availTotal -= p.availPerFloor[z]
	return nil
}

// ReleaseFloor is the inverse of RestrictFloor.
func (p *Park) ReleaseFloor(z int) error {
	if err := p.ensureBuilt(); err != nil {
		return err
	}
	if z < 0 || z >= p.cfg.P {
		return fmt.Errorf("%w: floor %d", ErrOutOfBounds, z)
	}

	for _, e := range p.cfg.Entrances {
		if e.At.Z == z {
			p.graph.Activate(p.dims.DriveID(e.At))
		}
	}
	for _, r := range p.ramp[z] {
		p.graph.Activate(p.dims.DriveID(r))
		p.graph.Activate(p.dims.WalkID(r))
	}

	p.availTotal += p.availPerFloor[z]
	return nil
}

// ParkVehicle records that vehicleID now occupies spot: the cell's role
// becomes 'x', its drive-node is deactivated, and availability is
// decremented. Called by the scheduler after a successful route, once the
// trace reconstructor has identified which spot the path actually used.
func (p *Park) ParkVehicle(vehicleID string, spot grid.Coord) {
	p.cfg.SetRoleAt(spot, grid.RoleOccupiedSpot)
	p.graph.Deactivate(p.dims.DriveID(spot))
	p.availPerFloor[spot.Z]--
	p.availTotal--
	p.reg.Insert(vehicleID, int(p.dims.DriveID(spot)))
}

// ClearSpotByCoord reactivates spot's drive-node, sets its role back to
// free, and restores availability. It does not touch the registry — use
// ClearSpotByID when departing by vehicle id.
func (p *Park) ClearSpotByCoord(spot grid.Coord) error {
	if err := p.ensureBuilt(); err != nil {
		return err
	}
	if !p.cfg.InBounds(spot) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, spot)
	}
	if p.cfg.RoleAt(spot) != grid.RoleOccupiedSpot {
		return fmt.Errorf("%w: %v", ErrNotOccupied, spot)
	}

	p.cfg.SetRoleAt(spot, grid.RoleFreeSpot)
	p.graph.Activate(p.dims.DriveID(spot))
	p.availPerFloor[spot.Z]++
	p.availTotal++
	return nil
}

// ClearSpotByID looks up id in the registry, frees its spot exactly as
// ClearSpotByCoord does, and removes the registry entry. It returns the
// freed coordinate so the caller can emit the departure trace record.
func (p *Park) ClearSpotByID(id string) (grid.Coord, error) {
	if err := p.ensureBuilt(); err != nil {
		return grid.Coord{}, err
	}

	nodeID := p.reg.Lookup(id)
	if nodeID == registry.NotFound {
		return grid.Coord{}, ErrUnknownVehicle
	}

	kind, spot, _ := p.dims.Classify(rgraph.NodeID(nodeID))
	if kind != grid.KindDrive {
		return grid.Coord{}, ErrUnknownVehicle
	}

	if err := p.ClearSpotByCoord(spot); err != nil {
		return grid.Coord{}, err
	}
	p.reg.Delete(id)
	return spot, nil
}
