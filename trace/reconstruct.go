package trace

import (
	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/rgraph"
)

// EmitFull reconstructs a complete route from source to dest, including the
// initial entry record, and emits it to sink. time is the scheduler's
// request time for this vehicle (tick t0). cost is the total path cost to
// report in the summary. Returns the coordinate of the spot the route
// parked at, so the caller can apply it to the park model.
func EmitFull(sink Sink, dims *grid.Dims, pred []int, vehicleID string, source, dest rgraph.NodeID, time int64, cost int64) grid.Coord {
	return reconstruct(sink, dims, pred, vehicleID, source, dest, true, time, time, cost)
}

// EmitAfterIn reconstructs a route for a vehicle that already emitted its
// entry record while waiting in the queue. requestTime is the vehicle's
// original request time (reported as the summary's t0); clockStart is the
// current scheduler tick the drive segment resumes counting from. cost must
// already include the waiting-time addition (spec.md §4.9's waiting-cost
// rule).
func EmitAfterIn(sink Sink, dims *grid.Dims, pred []int, vehicleID string, source, dest rgraph.NodeID, requestTime, clockStart, cost int64) grid.Coord {
	return reconstruct(sink, dims, pred, vehicleID, source, dest, false, requestTime, clockStart, cost)
}

// reconstruct is the shared engine behind EmitFull/EmitAfterIn: build the
// forward path from the predecessor array, scan the drive segment for
// turns, emit the park event at the drive->walk bridge, scan the walk
// segment for turns, then emit arrival and the summary.
func reconstruct(sink Sink, dims *grid.Dims, pred []int, vehicleID string, source, dest rgraph.NodeID, emitEntry bool, timeIn, clockStart, cost int64) grid.Coord {
	path := buildPath(pred, source, dest)
	cellCount := dims.CellCount()
	rowStride := dims.RowStride()

	coordAt := func(i int) grid.Coord {
		_, c, _ := dims.Classify(path[i])
		return c
	}

	clock := clockStart

	if emitEntry {
		sink.Emit(Record{VehicleID: vehicleID, Kind: KindEntry, Time: clock, At: coordAt(0)})
	}

	// Drive segment: advance until the step that crosses the drive->walk
	// bridge (a difference of exactly CellCount between consecutive nodes).
	j := 1
	sawDriveTurn := false
	for int(path[j+1])-int(path[j]) != cellCount {
		clock++
		if isVerticalStep(path, j, rowStride) {
			clock++
		}
		if isTurn(path, j) {
			sawDriveTurn = true
			sink.Emit(Record{VehicleID: vehicleID, Kind: KindDriveTurn, Time: clock, At: coordAt(j)})
		}
		j++
	}
	if !sawDriveTurn {
		sink.Emit(Record{VehicleID: vehicleID, Kind: KindDriveTurn, Time: timeIn + 1, At: coordAt(1)})
	}

	clock++
	timePark := clock
	spot := coordAt(j)
	sink.Emit(Record{VehicleID: vehicleID, Kind: KindPark, Time: clock, At: spot})

	// Walk segment: j currently indexes the drive-side spot node; skip past
	// its paired walk node (same coordinate, the bridge target) and scan
	// onward the same way.
	spotIdx := j
	j += 2
	sawWalkTurn := false
	for j < len(path)-1 {
		clock++
		if isVerticalStep(path, j, rowStride) {
			clock++
		}
		if isTurn(path, j) {
			sawWalkTurn = true
			sink.Emit(Record{VehicleID: vehicleID, Kind: KindWalkTurn, Time: clock, At: coordAt(j)})
		}
		j++
	}
	if !sawWalkTurn {
		sink.Emit(Record{VehicleID: vehicleID, Kind: KindWalkTurn, Time: timePark + 1, At: coordAt(spotIdx + 2)})
	}

	clock++
	timeArrive := clock
	sink.Emit(Record{VehicleID: vehicleID, Kind: KindArrive, Time: clock, At: coordAt(len(path) - 1)})

	sink.EmitSummary(Summary{
		VehicleID:  vehicleID,
		TimeIn:     timeIn,
		TimePark:   timePark,
		TimeArrive: timeArrive,
		Cost:       cost,
	})

	return spot
}

// buildPath walks pred backward from dest's predecessor to source and
// reverses the result into forward (source-to-dest) order. dest itself
// (the virtual access-type sink) is deliberately excluded: it carries no
// grid coordinate, so the path ends at the real access-point node the sink
// was reached from — the node the "arrive" record is emitted at.
func buildPath(pred []int, source, dest rgraph.NodeID) []rgraph.NodeID {
	var rev []rgraph.NodeID
	cur := rgraph.NodeID(pred[dest])
	for {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		cur = rgraph.NodeID(pred[cur])
	}

	path := make([]rgraph.NodeID, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// isTurn reports whether the path changes direction at index j: the step
// into j differs from the step out of j.
func isTurn(path []rgraph.NodeID, j int) bool {
	into := int(path[j]) - int(path[j-1])
	out := int(path[j+1]) - int(path[j])
	return into != out
}

// isVerticalStep reports whether the step from j-1 to j is a ramp tick
// (node ids a floor apart differ by exactly RowStride).
func isVerticalStep(path []rgraph.NodeID, j, rowStride int) bool {
	delta := int(path[j]) - int(path[j-1])
	return delta == rowStride || delta == -rowStride
}
