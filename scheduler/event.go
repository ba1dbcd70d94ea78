package scheduler

import "github.com/gridpark/parkrouter/grid"

// eventKind classifies a merged-stream entry. Same-time ordering comes from
// rank(), not from the declaration order below.
type eventKind int

const (
	evRestrictCellApply eventKind = iota
	evRestrictCellRelease
	evRestrictFloorApply
	evRestrictFloorRelease
	evDepartureByID
	evDepartureByCoord
	evArrival
)

// rank orders same-time events per spec.md §3's data invariant: restriction
// orders before departures, departures before arrivals.
func (k eventKind) rank() int {
	switch k {
	case evRestrictCellApply, evRestrictCellRelease, evRestrictFloorApply, evRestrictFloorRelease:
		return 0
	case evDepartureByID, evDepartureByCoord:
		return 1
	default:
		return 2
	}
}

// isNonArrival reports whether k belongs to the look-ahead guard's set —
// spec.md §4.9's {restriction apply, restriction release, floor
// restriction apply/release, departure-by-coord, departure-by-id}.
func (k eventKind) isNonArrival() bool {
	return k != evArrival
}

// event is one entry of the merged, time-ordered stream the scheduler walks.
type event struct {
	kind  eventKind
	time  int64
	order ArrivalOrder // valid for evArrival/evDepartureByID/evDepartureByCoord
	cell  grid.Coord   // valid for evRestrictCellApply/evRestrictCellRelease
	floor int          // valid for evRestrictFloorApply/evRestrictFloorRelease
}

// merge builds the single non-decreasing, rank-tie-broken event stream from
// the raw arrival and restriction order lists (spec.md §4.9).
func merge(arrivals []ArrivalOrder, restrictions []RestrictionOrder) []event {
	events := make([]event, 0, len(arrivals)+2*len(restrictions))

	for _, a := range arrivals {
		switch {
		case a.ByCoord:
			events = append(events, event{kind: evDepartureByCoord, time: a.Time, order: a})
		case a.IsDeparture:
			events = append(events, event{kind: evDepartureByID, time: a.Time, order: a})
		default:
			events = append(events, event{kind: evArrival, time: a.Time, order: a})
		}
	}

	for _, r := range restrictions {
		switch r.Scope.Kind {
		case ScopeFloor:
			events = append(events, event{kind: evRestrictFloorApply, time: r.TimeA, floor: r.Scope.Floor})
			if r.TimeB >= r.TimeA {
				events = append(events, event{kind: evRestrictFloorRelease, time: r.TimeB, floor: r.Scope.Floor})
			}
		default:
			events = append(events, event{kind: evRestrictCellApply, time: r.TimeA, cell: r.Scope.Cell})
			if r.TimeB >= r.TimeA {
				events = append(events, event{kind: evRestrictCellRelease, time: r.TimeB, cell: r.Scope.Cell})
			}
		}
	}

	sortEvents(events)
	return events
}

// sortEvents is insertion sort by (time, rank) — the input lists are each
// individually small and already close to sorted (spec.md §4.9's "each
// sorted by time" precondition), mirroring the merge-of-two-sorted-lists
// shape original_source/gestor.c's main() builds by hand.
func sortEvents(events []event) {
	for i := 1; i < len(events); i++ {
		for j := i; j > 0 && less(events[j], events[j-1]); j-- {
			events[j], events[j-1] = events[j-1], events[j]
		}
	}
}

func less(a, b event) bool {
	if a.time != b.time {
		return a.time < b.time
	}
	return a.kind.rank() < b.kind.rank()
}
