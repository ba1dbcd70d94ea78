package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/park"
	"github.com/gridpark/parkrouter/pathfind"
	"github.com/gridpark/parkrouter/trace"
	"github.com/gridpark/parkrouter/waitqueue"
)

// Metrics receives scheduler-level counters. Nil-safe: every call site
// checks for nil first, so a Scheduler built without one costs nothing
// (SPEC_FULL.md §4.12).
type Metrics interface {
	VehicleRouted()
	VehicleDeferred()
	SetQueueDepth(n int)
}

// Scheduler merges arrival and restriction orders into a single
// non-decreasing time stream (spec.md §4.9) and drives Park, the Dijkstra
// engine and the trace reconstructor over it.
type Scheduler struct {
	park   *park.Park
	engine *pathfind.Engine
	sink   trace.Sink
	queue  *waitqueue.Queue[ArrivalOrder]
	log    *slog.Logger
	metric Metrics

	strictUnknownVehicle bool
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithMetrics attaches an optional Metrics sink.
func WithMetrics(m Metrics) Option {
	return func(s *Scheduler) { s.metric = m }
}

// WithStrictUnknownVehicle resolves spec.md §9's Open Question about
// departure-by-coord naming a spot that was never registered: when true, the
// condition is logged as an UnknownVehicle-equivalent warning (it already
// never mutates state — see park.ClearSpotByCoord); when false (default)
// the same non-mutating behavior applies silently at info level. Either way
// Park refuses to double-free an already-free cell; this flag only governs
// log verbosity, per rtconfig.RuntimeConfig.Scheduler.StrictUnknownVehicle
// (SPEC_FULL.md §4.11).
func WithStrictUnknownVehicle(strict bool) Option {
	return func(s *Scheduler) { s.strictUnknownVehicle = strict }
}

// New builds a Scheduler over an already-compiled Park, its matching
// pathfind.Engine, and the sink that receives emitted records.
func New(p *park.Park, engine *pathfind.Engine, sink trace.Sink, opts ...Option) *Scheduler {
	s := &Scheduler{
		park:   p,
		engine: engine,
		sink:   sink,
		queue:  waitqueue.New[ArrivalOrder](),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run merges arrivals and restrictions and walks the resulting stream to
// completion, driving Park/pathfind/trace per spec.md §4.9's state machine.
// Vehicles still in the waiting queue when the stream is exhausted are left
// there unserved (spec.md §4.9's documented terminal behavior).
func (s *Scheduler) Run(arrivals []ArrivalOrder, restrictions []RestrictionOrder) error {
	events := merge(arrivals, restrictions)

	for i, e := range events {
		lastOfRun := i == len(events)-1 || events[i+1].time != e.time || !events[i+1].kind.isNonArrival()

		switch e.kind {
		case evArrival:
			s.handleArrival(e.order)

		case evDepartureByID:
			if err := s.handleDepartureByID(e.order); err != nil {
				return err
			}
			if lastOfRun {
				s.retryOnce(e.time)
			}

		case evDepartureByCoord:
			s.handleDepartureByCoord(e.order)
			if lastOfRun {
				s.retryOnce(e.time)
			}

		case evRestrictCellApply:
			if err := s.park.RestrictCell(e.cell); err != nil {
				return err
			}
			s.log.Info("cell restriction applied", "cell", e.cell, "time", e.time)

		case evRestrictCellRelease:
			if err := s.park.ReleaseCell(e.cell); err != nil {
				return err
			}
			s.log.Info("cell restriction released", "cell", e.cell, "time", e.time)
			if lastOfRun {
				s.drainQueue(e.time)
			}

		case evRestrictFloorApply:
			if err := s.park.RestrictFloor(e.floor); err != nil {
				return err
			}
			s.log.Info("floor restriction applied", "floor", e.floor, "time", e.time)

		case evRestrictFloorRelease:
			if err := s.park.ReleaseFloor(e.floor); err != nil {
				return err
			}
			s.log.Info("floor restriction released", "floor", e.floor, "time", e.time)
			if lastOfRun {
				s.drainQueue(e.time)
			}
		}

		s.reportQueueDepth()
	}

	return nil
}

// handleArrival implements spec.md §4.9's arrival state machine.
func (s *Scheduler) handleArrival(o ArrivalOrder) {
	if s.queue.IsEmpty() && !s.park.IsFull() {
		ok, err := s.tryRoute(o, false, o.Time)
		if err != nil {
			s.log.Error("arrival order rejected", "vehicle", o.ID, "error", err)
			return
		}
		if ok {
			if s.metric != nil {
				s.metric.VehicleRouted()
			}
			return
		}
	}

	// Either the queue is non-empty, the park is full, or routing failed
	// (Unreachable) — emit the in-queue record and defer.
	s.sink.Emit(trace.Record{VehicleID: o.ID, Kind: trace.KindEntry, Time: o.Time, At: o.Entrance})
	s.queue.PushBack(o)
	if s.metric != nil {
		s.metric.VehicleDeferred()
	}
}

// tryRoute attempts a route for o, either a just-arrived vehicle (deferred
// == false, emits a full trace via trace.EmitFull) or one pulled off the
// waiting queue at time now (deferred == true, applies spec.md §4.9's
// waiting-cost rule and emits via trace.EmitAfterIn). ok is false for a
// recovered Unreachable condition (the caller defers/re-defers); err is
// non-nil only for UnknownAccessType, which is fatal to this order.
func (s *Scheduler) tryRoute(o ArrivalOrder, deferred bool, now int64) (ok bool, err error) {
	idx, ierr := s.park.Dict().IndexOf(o.Type)
	if ierr != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownAccessType, o.Type)
	}

	source := s.park.Dims().DriveID(o.Entrance)
	dest := s.park.Dims().SinkID(idx)

	cost, reachable := s.engine.Route(s.park.Heap, s.park.ScratchWeight, s.park.ScratchPred, source, dest)
	if !reachable {
		s.engine.Reset(s.park.Heap, s.park.ScratchPred)
		if !deferred {
			s.log.Warn("vehicle unreachable, deferring", "vehicle", o.ID)
		}
		return false, nil
	}

	var spot grid.Coord
	if deferred {
		cost += now - o.Time
		spot = trace.EmitAfterIn(s.sink, s.park.Dims(), s.park.ScratchPred, o.ID, source, dest, o.Time, now, cost)
	} else {
		spot = trace.EmitFull(s.sink, s.park.Dims(), s.park.ScratchPred, o.ID, source, dest, o.Time, cost)
	}
	s.engine.Reset(s.park.Heap, s.park.ScratchPred)
	s.park.ParkVehicle(o.ID, spot)
	return true, nil
}

func (s *Scheduler) handleDepartureByID(o ArrivalOrder) error {
	spot, err := s.park.ClearSpotByID(o.ID)
	if err != nil {
		s.log.Warn("departure for unknown vehicle", "vehicle", o.ID)
		return nil
	}
	s.sink.Emit(trace.Record{VehicleID: o.ID, Kind: trace.KindDeparture, Time: o.Time, At: spot})
	return nil
}

func (s *Scheduler) handleDepartureByCoord(o ArrivalOrder) {
	if err := s.park.ClearSpotByCoord(o.Spot); err != nil {
		level := s.log.Info
		if s.strictUnknownVehicle {
			level = s.log.Warn
		}
		level("departure-by-coord on a spot that was not occupied", "spot", o.Spot)
		return
	}
	s.sink.Emit(trace.Record{VehicleID: o.ID, Kind: trace.KindDeparture, Time: o.Time, At: o.Spot})
}

// retryOnce implements the single-attempt retry phase departure orders get
// (spec.md §4.9: "one spot freed => at most one waiting vehicle can be
// served").
func (s *Scheduler) retryOnce(now int64) {
	if s.queue.IsEmpty() || s.park.IsFull() {
		return
	}
	candidate, ok := s.queue.PopFront()
	if !ok {
		return
	}

	served, err := s.tryRoute(candidate, true, now)
	if err != nil {
		s.log.Error("deferred vehicle rejected", "vehicle", candidate.ID, "error", err)
		return
	}
	if served {
		if s.metric != nil {
			s.metric.VehicleRouted()
		}
		return
	}
	s.queue.PushFront(candidate)
}

// drainQueue implements the while-loop retry phase restriction/floor
// releases get: keep serving deferred vehicles until the queue empties or
// the park fills, per spec.md §4.9.
func (s *Scheduler) drainQueue(now int64) {
	for !s.queue.IsEmpty() && !s.park.IsFull() {
		candidate, ok := s.queue.PopFront()
		if !ok {
			return
		}

		served, err := s.tryRoute(candidate, true, now)
		if err != nil {
			s.log.Error("deferred vehicle rejected", "vehicle", candidate.ID, "error", err)
			continue
		}
		if served {
			if s.metric != nil {
				s.metric.VehicleRouted()
			}
			continue
		}
		s.queue.PushFront(candidate)
		return
	}
}

func (s *Scheduler) reportQueueDepth() {
	if s.metric != nil {
		s.metric.SetQueueDepth(s.queue.Len())
	}
}
