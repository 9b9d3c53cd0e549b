package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Pavesi99/EndpointTracker/adapters/metrics"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewWithRegistry(reg)

	if c.HitsTotal == nil || c.RequestDuration == nil || c.ResetsTotal == nil {
		t.Fatal("collector has nil metrics")
	}

	c.HitsTotal.WithLabelValues("GET", "/api/users").Inc()
	c.HitsTotal.WithLabelValues("GET", "/api/users").Inc()

	got := testutil.ToFloat64(c.HitsTotal.WithLabelValues("GET", "/api/users"))
	if got != 2 {
		t.Errorf("hits_total = %v, want 2", got)
	}
}

func TestNewWithRegistry_Isolated(t *testing.T) {
	// Two registries must not clash on metric names.
	a := metrics.NewWithRegistry(prometheus.NewRegistry())
	b := metrics.NewWithRegistry(prometheus.NewRegistry())

	a.ResetsTotal.Inc()
	if got := testutil.ToFloat64(b.ResetsTotal); got != 0 {
		t.Errorf("second registry resets_total = %v, want 0", got)
	}
}

func TestObserveSummary(t *testing.T) {
	c := metrics.NewWithRegistry(prometheus.NewRegistry())

	c.ObserveSummary(12, 3)

	if got := testutil.ToFloat64(c.EndpointsRegistered); got != 12 {
		t.Errorf("endpoints_registered = %v, want 12", got)
	}
	if got := testutil.ToFloat64(c.EndpointsUnused); got != 3 {
		t.Errorf("endpoints_unused = %v, want 3", got)
	}
}
