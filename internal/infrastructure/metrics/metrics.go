// Package metrics exposes Prometheus counters for the search, intelligence and
// dialogue subsystems and for the companion HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search operation modes.
const (
	ModeLoud     = "loud"
	ModeSilent   = "silent"
	ModePrefetch = "prefetch"
	ModeRescore  = "rescore"
)

// Operation outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeFailed     = "failed"
	OutcomeCancelled  = "cancelled"
	OutcomeSuperseded = "superseded"
	OutcomeSkipped    = "skipped"
)

var (
	SearchOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_search_operations_total",
			Help: "Leg search operations by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trip_search_duration_seconds",
			Help:    "Backend latency of leg search operations",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"mode"},
	)

	IntelFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_intel_fetches_total",
			Help: "Price intelligence fetches by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	IntelCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_intel_cache_hits_total",
			Help: "Price intelligence lookups served from cache or deduplicated",
		},
		[]string{"kind"},
	)

	DialogueTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_builder_turns_total",
			Help: "Conversational trip builder turns by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "companion_http_requests_total",
			Help: "Companion API requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "companion_http_request_duration_seconds",
			Help:    "Companion API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PrefetchInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trip_search_prefetch_in_flight",
			Help: "Speculative leg searches currently in flight",
		},
	)
)
