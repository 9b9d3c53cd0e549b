// Package metrics provides Prometheus metrics collection for the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the tracker service.
type Collector struct {
	// Hit metrics
	HitsTotal        *prometheus.CounterVec
	FallbackHits     prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Store metrics
	EndpointsRegistered prometheus.Gauge
	EndpointsUnused     prometheus.Gauge
	ResetsTotal         prometheus.Counter

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
}

// New creates a new metrics collector registered on the default registry.
func New() *Collector {
	return newCollector(promauto.With(prometheus.DefaultRegisterer))
}

// NewWithRegistry creates a new metrics collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	return newCollector(promauto.With(reg))
}

func newCollector(factory promauto.Factory) *Collector {
	return &Collector{
		HitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tracker",
				Name:      "hits_total",
				Help:      "Total number of recorded endpoint hits",
			},
			[]string{"method", "pattern"},
		),
		FallbackHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tracker",
				Name:      "fallback_hits_total",
				Help:      "Hits recorded for endpoints that were never registered",
			},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tracker",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "pattern", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tracker",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		EndpointsRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tracker",
				Name:      "endpoints_registered",
				Help:      "Number of endpoints currently tracked",
			},
		),
		EndpointsUnused: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "tracker",
				Name:      "endpoints_unused",
				Help:      "Number of tracked endpoints with zero hits",
			},
		),
		ResetsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tracker",
				Name:      "resets_total",
				Help:      "Total number of administrative store resets",
			},
		),
		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tracker",
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "tracker",
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
	}
}

// ObserveSummary refreshes the store-level gauges from a summary pass.
func (c *Collector) ObserveSummary(totalEndpoints, unusedEndpoints int) {
	c.EndpointsRegistered.Set(float64(totalEndpoints))
	c.EndpointsUnused.Set(float64(unusedEndpoints))
}
