// Package metrics holds the Prometheus collectors exported on /metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitExceededTotal prometheus.Counter

	// Booking metrics
	BookingRequestsTotal *prometheus.CounterVec
	BookingTransitions   *prometheus.CounterVec
	ScheduledRunsTotal   *prometheus.CounterVec

	// Cache metrics
	CacheLookupsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path", "status"},
		),
		RateLimitExceededTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_limit_exceeded_total",
				Help: "Requests rejected by the per-IP rate limiter",
			},
		),
		BookingRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banner_booking_requests_total",
				Help: "Booking creation attempts by outcome code",
			},
			[]string{"outcome"},
		),
		BookingTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banner_booking_transitions_total",
				Help: "Booking status transitions",
			},
			[]string{"from", "to"},
		),
		ScheduledRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banner_schedule_runs_total",
				Help: "Scheduled activation/expiry runs by result",
			},
			[]string{"result"},
		),
		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_cache_lookups_total",
				Help: "Zone resolver cache lookups by result",
			},
			[]string{"result"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.RateLimitExceededTotal,
			m.BookingRequestsTotal,
			m.BookingTransitions,
			m.ScheduledRunsTotal,
			m.CacheLookupsTotal,
		)
	}
	return m
}

// NewNop returns collectors that are not registered anywhere, for tests and the CLI
func NewNop() *Metrics {
	return New(nil)
}
