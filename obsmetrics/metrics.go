package obsmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set holds the collectors cmd/parkroutersim exposes at /metrics. It
// implements scheduler.Metrics and pathfind.Metrics structurally — neither
// package imports obsmetrics, so wiring is the caller's job
// (SPEC_FULL.md §4.12).
type Set struct {
	registry         *prometheus.Registry
	vehiclesRouted   prometheus.Counter
	vehiclesDeferred prometheus.Counter
	queueDepth       prometheus.Gauge
	heapPopsPerQuery prometheus.Histogram
}

// New builds a Set registered against a fresh, private Registry (never the
// global DefaultRegisterer, so multiple Sets — e.g. in tests — never
// collide).
func New() *Set {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Set{
		registry: reg,
		vehiclesRouted: factory.NewCounter(prometheus.CounterOpts{
			Name: "parkrouter_vehicles_routed_total",
			Help: "Vehicles successfully routed to a parking spot.",
		}),
		vehiclesDeferred: factory.NewCounter(prometheus.CounterOpts{
			Name: "parkrouter_vehicles_deferred_total",
			Help: "Vehicles deferred to the waiting queue.",
		}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "parkrouter_waiting_queue_depth",
			Help: "Current number of vehicles in the waiting queue.",
		}),
		heapPopsPerQuery: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "parkrouter_heap_pops_per_query",
			Help:    "Heap ExtractMin calls performed per Route query.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// Handler serves the Set's private registry, for mounting at /metrics.
func (m *Set) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// VehicleRouted implements scheduler.Metrics.
func (m *Set) VehicleRouted() {
	if m == nil {
		return
	}
	m.vehiclesRouted.Inc()
}

// VehicleDeferred implements scheduler.Metrics.
func (m *Set) VehicleDeferred() {
	if m == nil {
		return
	}
	m.vehiclesDeferred.Inc()
}

// SetQueueDepth implements scheduler.Metrics.
func (m *Set) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

// ObserveHeapPops implements pathfind.Metrics.
func (m *Set) ObserveHeapPops(n int) {
	if m == nil {
		return
	}
	m.heapPopsPerQuery.Observe(float64(n))
}
