package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gridpark/parkrouter/compile"
	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/heap"
	"github.com/gridpark/parkrouter/pathfind"
	"github.com/gridpark/parkrouter/trace"
)

type ReconstructSuite struct {
	suite.Suite
}

func TestReconstructSuite(t *testing.T) {
	suite.Run(t, new(ReconstructSuite))
}

type fakeSink struct {
	records  []trace.Record
	summary  trace.Summary
	hasSumm  bool
}

func (f *fakeSink) Emit(rec trace.Record)      { f.records = append(f.records, rec) }
func (f *fakeSink) EmitSummary(s trace.Summary) { f.summary = s; f.hasSumm = true }

func (f *fakeSink) kinds() []byte {
	var ks []byte
	for _, r := range f.records {
		ks = append(ks, r.Kind)
	}
	return ks
}

// route compiles cfg, runs Dijkstra from source to the sink for accessType,
// and returns the engine's scratch pred array plus the route's cost.
func route(s *ReconstructSuite, cfg *grid.Config, source grid.Coord, accessType byte) (*compile.Result, []int64, []int, int64) {
	res := compile.Build(cfg)
	engine := pathfind.NewEngine(cfg, res.Dims, res.Graph)

	n := res.Dims.NodeCount()
	wt := make([]int64, n)
	pred := make([]int, n)
	for i := range wt {
		wt[i] = heap.Unreachable
		pred[i] = heap.NoNode
	}
	h := heap.Init(wt, n)

	idx, err := res.Dict.IndexOf(accessType)
	s.Require().NoError(err)

	srcID := res.Dims.DriveID(source)
	destID := res.Dims.SinkID(idx)

	cost, reachable := engine.Route(h, wt, pred, srcID, destID)
	s.Require().True(reachable)

	return res, wt, pred, cost
}

func (s *ReconstructSuite) TestStraightLineSyntheticTurns() {
	require := require.New(s.T())
	// driveway, driveway, free spot, access — no direction changes anywhere.
	cells := []grid.Role{grid.RoleDriveway, grid.RoleDriveway, grid.RoleFreeSpot, grid.RoleAccessMark}
	access := []grid.AccessPoint{{At: grid.Coord{X: 3, Y: 0, Z: 0}, Type: 't'}}
	cfg, err := grid.NewConfig(4, 1, 1, cells, nil, access)
	require.NoError(err)

	res, _, pred, cost := route(s, cfg, grid.Coord{X: 0, Y: 0, Z: 0}, 't')

	sink := &fakeSink{}
	source := res.Dims.DriveID(grid.Coord{X: 0, Y: 0, Z: 0})
	dest := res.Dims.SinkID(mustIdx(s, res, 't'))

	spot := trace.EmitFull(sink, res.Dims, pred, "V1", source, dest, 100, cost)
	require.Equal(grid.Coord{X: 2, Y: 0, Z: 0}, spot)

	require.Equal([]byte{'i', 'm', 'e', 'p', 'a'}, sink.kinds())
	require.True(sink.hasSumm)
	require.Equal(int64(100), sink.summary.TimeIn)
	require.Equal(cost, sink.summary.Cost)

	// Synthetic drive turn at t0+1.
	require.Equal(int64(101), sink.records[1].Time)
}

func (s *ReconstructSuite) TestLShapedPathDetectsRealTurn() {
	require := require.New(s.T())
	// 2x2 grid: (0,0) driveway, (1,0) driveway, (0,1) access 't', (1,1) free spot.
	cells := []grid.Role{
		grid.RoleDriveway, grid.RoleDriveway, // y=0: x=0,1
		grid.RoleAccessMark, grid.RoleFreeSpot, // y=1: x=0,1
	}
	access := []grid.AccessPoint{{At: grid.Coord{X: 0, Y: 1, Z: 0}, Type: 't'}}
	cfg, err := grid.NewConfig(2, 2, 1, cells, nil, access)
	require.NoError(err)

	res, _, pred, cost := route(s, cfg, grid.Coord{X: 0, Y: 0, Z: 0}, 't')

	sink := &fakeSink{}
	source := res.Dims.DriveID(grid.Coord{X: 0, Y: 0, Z: 0})
	dest := res.Dims.SinkID(mustIdx(s, res, 't'))

	spot := trace.EmitFull(sink, res.Dims, pred, "V2", source, dest, 0, cost)
	require.Equal(grid.Coord{X: 1, Y: 1, Z: 0}, spot)

	// A real direction change on the drive side must appear as 'm'.
	require.Contains(sink.kinds(), byte('m'))
	require.Contains(sink.kinds(), byte('a'))
}

func mustIdx(s *ReconstructSuite, res *compile.Result, t byte) int {
	idx, err := res.Dict.IndexOf(t)
	s.Require().NoError(err)
	return idx
}
