package scheduler

import "github.com/gridpark/parkrouter/grid"

// ArrivalOrder is either a vehicle arrival or one of the two departure
// shapes the V-line grammar admits (spec.md §6, supplemented per
// SPEC_FULL.md §6 with the departure-by-coord form original_source/gestor.c
// parses but the distilled grammar omits).
type ArrivalOrder struct {
	ID       string
	Time     int64
	Type     byte       // requested access-type; meaningful for arrivals only
	Entrance grid.Coord // arrival: the entrance coordinate
	Spot     grid.Coord // departure-by-coord: the spot to clear

	IsDeparture bool // true for both departure shapes
	ByCoord     bool // true only for departure-by-coord
}

// ScopeKind distinguishes a cell-window restriction from a floor-window one.
type ScopeKind int

const (
	ScopeCell ScopeKind = iota
	ScopeFloor
)

// RestrictionScope names what a RestrictionOrder applies to.
type RestrictionScope struct {
	Kind  ScopeKind
	Cell  grid.Coord
	Floor int
}

// RestrictionOrder is a temporary map restriction window: the scope is
// restricted at TimeA and released at TimeB (if TimeB >= TimeA).
type RestrictionOrder struct {
	TimeA, TimeB int64
	Scope        RestrictionScope
}
