package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	trackerhttp "github.com/Pavesi99/EndpointTracker/adapters/http"
	"github.com/Pavesi99/EndpointTracker/adapters/memory"
	"github.com/Pavesi99/EndpointTracker/adapters/metrics"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestTrack_RecordsRoutePattern(t *testing.T) {
	store := memory.NewUsageStore(memory.UsageStoreConfig{})

	r := chi.NewRouter()
	r.Use(trackerhttp.Track(trackerhttp.TrackConfig{Tracker: store}))
	r.Get("/widgets/{id}", okHandler)

	for _, path := range []string{"/widgets/1", "/widgets/2", "/widgets/3"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	records := store.ListAll()
	if len(records) != 1 {
		t.Fatalf("tracked %d keys, want 1", len(records))
	}
	if records[0].Key != "GET /widgets/{id}" {
		t.Errorf("key = %q, want GET /widgets/{id}", records[0].Key)
	}
	if records[0].HitCount != 3 {
		t.Errorf("hit count = %d, want 3", records[0].HitCount)
	}
}

func TestTrack_SkipsUnmatchedRequests(t *testing.T) {
	store := memory.NewUsageStore(memory.UsageStoreConfig{})

	r := chi.NewRouter()
	r.Use(trackerhttp.Track(trackerhttp.TrackConfig{Tracker: store}))
	r.Get("/known", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if store.TotalRequests() != 0 {
		t.Errorf("total requests = %d, want 0", store.TotalRequests())
	}
}

func TestTrack_SelfRoutesGatedByTrackSelf(t *testing.T) {
	store := memory.NewUsageStore(memory.UsageStoreConfig{})

	r := chi.NewRouter()
	r.Use(trackerhttp.Track(trackerhttp.TrackConfig{Tracker: store, TrackSelf: false}))
	r.Get("/tracker/usage", okHandler)
	r.Get("/app", okHandler)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tracker/usage", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app", nil))

	if store.TotalRequests() != 1 {
		t.Errorf("total requests = %d, want 1 (only /app)", store.TotalRequests())
	}
}

func TestTrack_PrometheusCounters(t *testing.T) {
	store := memory.NewUsageStore(memory.UsageStoreConfig{})
	collector := metrics.NewWithRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(trackerhttp.Track(trackerhttp.TrackConfig{Tracker: store, Metrics: collector}))
	r.Get("/app", okHandler)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app", nil))

	got := testutil.ToFloat64(collector.HitsTotal.WithLabelValues("GET", "/app"))
	if got != 2 {
		t.Errorf("hits_total = %v, want 2", got)
	}
	if inFlight := testutil.ToFloat64(collector.RequestsInFlight); inFlight != 0 {
		t.Errorf("requests_in_flight after completion = %v, want 0", inFlight)
	}
}
