package trace

import "github.com/gridpark/parkrouter/grid"

// Record kinds, per spec.md §4.8's event table.
const (
	KindEntry     byte = 'i'
	KindDriveTurn byte = 'm'
	KindPark      byte = 'e'
	KindWalkTurn  byte = 'p'
	KindArrive    byte = 'a'
	KindDeparture byte = 's'
)

// Record is a single timestamped event along a vehicle's route.
type Record struct {
	VehicleID string
	Kind      byte
	Time      int64
	At        grid.Coord
}

// Summary is the terminating record for a completed route: the three
// milestone times and the total path cost (plus any accumulated waiting
// time, added by the caller before constructing this).
type Summary struct {
	VehicleID string
	TimeIn    int64
	TimePark  int64
	TimeArrive int64
	Cost      int64
}

// Sink receives the records and summary a reconstruction produces. Line
// formatting and I/O are the sink's concern (package ioformat provides one
// implementation); package trace never writes anything itself.
type Sink interface {
	Emit(rec Record)
	EmitSummary(s Summary)
}
