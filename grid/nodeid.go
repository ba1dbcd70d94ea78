package grid

import "github.com/gridpark/parkrouter/rgraph"

// Kind classifies a NodeID as belonging to the drive plane, the walk plane,
// or the sink band — see spec.md §3's node-numbering scheme.
type Kind int

const (
	KindDrive Kind = iota
	KindWalk
	KindSink
)

// Dims partitions the routing graph's dense node-id space over a Config:
// every cell gets one drive node and one walk node, and every access type
// gets one sink node, laid out as three contiguous bands:
//
//	drive(x,y,z) = x + N*y + N*M*z                     in [0, cellCount)
//	walk(x,y,z)  = drive(x,y,z) + cellCount             in [cellCount, 2*cellCount)
//	sink(t)      = 2*cellCount + t                      in [2*cellCount, 2*cellCount+T)
//
// Dims is the single authority for this arithmetic; no other package may
// compute a NodeID by hand (spec.md §9's "manual index arithmetic -> typed
// node ids" design note).
type Dims struct {
	N, M, P   int
	cellCount int
	sinkCount int
}

// NewDims derives a Dims from a Config and a TypeDict.
func NewDims(cfg *Config, dict *TypeDict) *Dims {
	cellCount := cfg.N * cfg.M * cfg.P
	return &Dims{
		N: cfg.N, M: cfg.M, P: cfg.P,
		cellCount: cellCount,
		sinkCount: dict.Len(),
	}
}

// NodeCount returns the total number of nodes the routing graph must be
// sized for: 2*cellCount + sinkCount.
func (d *Dims) NodeCount() int {
	return 2*d.cellCount + d.sinkCount
}

// CellCount returns N*M*P, the fixed offset between a cell's drive node and
// its walk node (walk(c) = drive(c) + CellCount()). Exposed for the trace
// reconstructor, which detects the drive->walk bridge step by this exact
// difference, mirroring the original implementation's node-id arithmetic.
func (d *Dims) CellCount() int {
	return d.cellCount
}

// RowStride returns N*M, the difference between the node ids of vertically
// adjacent cells (same x, y, z differing by one floor) in either plane.
// Exposed for the trace reconstructor's ramp-tick detection.
func (d *Dims) RowStride() int {
	return d.N * d.M
}

func (d *Dims) cellIndex(c Coord) int {
	return c.X + d.N*c.Y + d.N*d.M*c.Z
}

// DriveID returns the drive-plane node for coordinate c.
func (d *Dims) DriveID(c Coord) rgraph.NodeID {
	return rgraph.NodeID(d.cellIndex(c))
}

// WalkID returns the walk-plane node for coordinate c.
func (d *Dims) WalkID(c Coord) rgraph.NodeID {
	return rgraph.NodeID(d.cellCount + d.cellIndex(c))
}

// SinkID returns the sink node for access-type index idx (as produced by
// TypeDict.IndexOf).
func (d *Dims) SinkID(typeIdx int) rgraph.NodeID {
	return rgraph.NodeID(2*d.cellCount + typeIdx)
}

// Classify inverts a NodeID back to its Kind, Coord (drive/walk) or sink
// type index. For KindSink, the returned Coord is the zero value and typeIdx
// holds the access-type index; for KindDrive/KindWalk, typeIdx is -1.
func (d *Dims) Classify(id rgraph.NodeID) (kind Kind, c Coord, typeIdx int) {
	n := int(id)
	switch {
	case n < d.cellCount:
		return KindDrive, d.coordOf(n), -1
	case n < 2*d.cellCount:
		return KindWalk, d.coordOf(n - d.cellCount), -1
	default:
		return KindSink, Coord{}, n - 2*d.cellCount
	}
}

func (d *Dims) coordOf(cellIdx int) Coord {
	z := cellIdx / (d.N * d.M)
	rem := cellIdx % (d.N * d.M)
	y := rem / d.N
	x := rem % d.N
	return Coord{X: x, Y: y, Z: z}
}
