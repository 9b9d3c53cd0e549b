// Package http provides the HTTP surface of the tracker service.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pavesi99/EndpointTracker/adapters/metrics"
	"github.com/Pavesi99/EndpointTracker/config"
	_ "github.com/Pavesi99/EndpointTracker/docs" // swagger docs
	"github.com/Pavesi99/EndpointTracker/domain/tracking"
	"github.com/Pavesi99/EndpointTracker/pkg/jsonapi"
	"github.com/Pavesi99/EndpointTracker/ports"
)

// EndpointUsage represents one tracked endpoint on the wire.
type EndpointUsage struct {
	EndpointPattern string  `json:"endpoint_pattern" example:"GET /api/users/{id}"`
	DisplayName     *string `json:"display_name" example:"Get user"`
	HTTPMethod      *string `json:"http_method" example:"GET"`
	HitCount        int64   `json:"hit_count" example:"42"`
	LastAccessedUTC *string `json:"last_accessed_utc" example:"2026-03-01T10:30:00Z"`
	RegisteredUTC   string  `json:"registered_utc" example:"2026-03-01T09:00:00Z"`
}

// UsageResponse is the full usage summary.
type UsageResponse struct {
	TotalEndpoints  int             `json:"total_endpoints" example:"12"`
	UsedEndpoints   int             `json:"used_endpoints" example:"9"`
	UnusedEndpoints int             `json:"unused_endpoints" example:"3"`
	TotalRequests   int64           `json:"total_requests" example:"1045"`
	Endpoints       []EndpointUsage `json:"endpoints"`
}

// UnusedResponse lists endpoints that were never hit.
type UnusedResponse struct {
	Count     int             `json:"count" example:"3"`
	Endpoints []EndpointUsage `json:"endpoints"`
}

// ResetResponse acknowledges an administrative reset.
type ResetResponse struct {
	Status string `json:"status" example:"reset"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	InstanceID string `json:"instance_id" example:"7f6c1c0a-..."`
}

// VersionResponse represents the version endpoint response.
type VersionResponse struct {
	Service    string `json:"service" example:"tracker"`
	Version    string `json:"version" example:"1.0.0"`
	InstanceID string `json:"instance_id" example:"7f6c1c0a-..."`
}

// Handler serves the tracker's reporting and admin endpoints.
type Handler struct {
	tracker    ports.Tracker
	logger     zerolog.Logger
	metrics    *metrics.Collector
	instanceID string
	version    string
}

// NewHandler creates a new tracker HTTP handler. The metrics collector is
// optional; pass nil to disable Prometheus instrumentation.
func NewHandler(tracker ports.Tracker, logger zerolog.Logger, m *metrics.Collector, instanceID, version string) *Handler {
	return &Handler{
		tracker:    tracker,
		logger:     logger,
		metrics:    m,
		instanceID: instanceID,
		version:    version,
	}
}

// Router builds the full service router: tracker endpoints, health, metrics
// and docs per config, the example API, and the hit-recording middleware
// wrapping everything. Route discovery runs once over the finished tree.
func (h *Handler) Router(cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonapi.WriteNotFound(w, "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonapi.WriteError(w, jsonapi.ErrMethodNotAllowed("method not allowed for this route"))
	})

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(h.logger))
	r.Use(Track(TrackConfig{
		Tracker:   h.tracker,
		Metrics:   h.metrics,
		TrackSelf: cfg.Tracking.TrackSelf,
	}))

	r.Get("/healthz", h.GetHealth)
	r.Get("/version", h.GetVersion)

	r.Route("/tracker", func(r chi.Router) {
		r.Get("/usage", h.GetUsage)
		r.Get("/unused", h.GetUnused)
		r.Post("/reset", h.PostReset)
	})

	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.Handler())
	}
	if cfg.OpenAPI.Enabled {
		r.Get("/docs/*", httpSwagger.Handler())
	}

	MountExample(r)

	// Self endpoints only join the stats when track_self is on; otherwise
	// they would sit in the unused list forever.
	DiscoverFunc(r, h.tracker, func(pattern string) bool {
		return cfg.Tracking.TrackSelf || !SelfRoute(pattern)
	})
	return r
}

// GetUsage returns the full usage summary.
//
//	@Summary		Get endpoint usage
//	@Description	Returns per-endpoint hit counts and aggregate totals, ordered by hit count descending
//	@Tags			Tracker
//	@Produce		json
//	@Success		200	{object}	UsageResponse	"Usage summary"
//	@Router			/tracker/usage [get]
func (h *Handler) GetUsage(w http.ResponseWriter, r *http.Request) {
	s := h.tracker.Summarize()

	if h.metrics != nil {
		h.metrics.ObserveSummary(s.TotalEndpoints, s.UnusedEndpoints)
	}

	writeJSON(w, http.StatusOK, UsageResponse{
		TotalEndpoints:  s.TotalEndpoints,
		UsedEndpoints:   s.UsedEndpoints,
		UnusedEndpoints: s.UnusedEndpoints,
		TotalRequests:   s.TotalRequests,
		Endpoints:       toWire(s.Endpoints),
	})
}

// GetUnused returns endpoints that were registered but never hit.
//
//	@Summary		Get unused endpoints
//	@Description	Returns registered endpoints with zero hits, ordered by key; useful for dead-route detection
//	@Tags			Tracker
//	@Produce		json
//	@Success		200	{object}	UnusedResponse	"Unused endpoints"
//	@Router			/tracker/unused [get]
func (h *Handler) GetUnused(w http.ResponseWriter, r *http.Request) {
	unused := h.tracker.ListUnused()

	writeJSON(w, http.StatusOK, UnusedResponse{
		Count:     len(unused),
		Endpoints: toWire(unused),
	})
}

// PostReset clears all usage data.
//
//	@Summary		Reset usage data
//	@Description	Clears every tracked endpoint and zeroes the global request counter
//	@Tags			Tracker
//	@Produce		json
//	@Success		200	{object}	ResetResponse			"Reset acknowledged"
//	@Failure		405	{object}	jsonapi.ErrorDocument	"Wrong method"
//	@Router			/tracker/reset [post]
func (h *Handler) PostReset(w http.ResponseWriter, r *http.Request) {
	h.tracker.Reset()

	if h.metrics != nil {
		h.metrics.ResetsTotal.Inc()
		h.metrics.ObserveSummary(0, 0)
	}
	h.logger.Warn().Str("remote", r.RemoteAddr).Msg("usage store reset")

	writeJSON(w, http.StatusOK, ResetResponse{Status: "reset"})
}

// GetHealth reports liveness.
//
//	@Summary		Health check
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"Service is healthy"
//	@Router			/healthz [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", InstanceID: h.instanceID})
}

// GetVersion reports the service version.
//
//	@Summary		Service version
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	VersionResponse	"Version info"
//	@Router			/version [get]
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Service:    "tracker",
		Version:    h.version,
		InstanceID: h.instanceID,
	})
}

func toWire(records []tracking.Record) []EndpointUsage {
	out := make([]EndpointUsage, len(records))
	for i, rec := range records {
		e := EndpointUsage{
			EndpointPattern: rec.Key,
			HitCount:        rec.HitCount,
			RegisteredUTC:   rec.RegisteredAt.UTC().Format(time.RFC3339),
		}
		if rec.DisplayName != "" {
			name := rec.DisplayName
			e.DisplayName = &name
		}
		if rec.Method != "" {
			method := rec.Method
			e.HTTPMethod = &method
		}
		if !rec.LastAccessedAt.IsZero() {
			last := rec.LastAccessedAt.UTC().Format(time.RFC3339)
			e.LastAccessedUTC = &last
		}
		out[i] = e
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
