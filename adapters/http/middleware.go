package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Pavesi99/EndpointTracker/adapters/metrics"
	"github.com/Pavesi99/EndpointTracker/domain/tracking"
	"github.com/Pavesi99/EndpointTracker/ports"
)

// TrackConfig configures the hit-recording middleware.
type TrackConfig struct {
	Tracker ports.Tracker
	Metrics *metrics.Collector // optional

	// TrackSelf includes the tracker's own endpoints in the usage stats.
	TrackSelf bool
}

// Track records one hit per completed request. The key is built from the
// request method and the chi route pattern that matched, so all requests to
// /api/users/123 and /api/users/456 land on the same "GET /api/users/{id}"
// record. Requests that matched no route record nothing.
//
// Prometheus request metrics are recorded for every matched route regardless
// of TrackSelf: operational metrics and usage analytics are separate
// concerns.
func Track(cfg TrackConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			if cfg.Metrics != nil {
				cfg.Metrics.RequestsInFlight.Inc()
				defer cfg.Metrics.RequestsInFlight.Dec()
			}

			start := time.Now()
			next.ServeHTTP(ww, r)

			rctx := chi.RouteContext(r.Context())
			if rctx == nil {
				return
			}
			pattern := rctx.RoutePattern()
			if pattern == "" {
				// No route matched; nothing to attribute the hit to.
				return
			}

			if cfg.Metrics != nil {
				cfg.Metrics.RequestDuration.
					WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).
					Observe(time.Since(start).Seconds())
			}

			if !cfg.TrackSelf && SelfRoute(pattern) {
				return
			}

			cfg.Tracker.RecordHit(tracking.RouteKey(r.Method, pattern))
			if cfg.Metrics != nil {
				cfg.Metrics.HitsTotal.WithLabelValues(r.Method, pattern).Inc()
			}
		})
	}
}

// SelfRoute reports whether a route pattern belongs to the tracker's own
// reporting surface rather than the application it observes.
func SelfRoute(pattern string) bool {
	switch pattern {
	case "/healthz", "/version", "/metrics":
		return true
	}
	return strings.HasPrefix(pattern, "/tracker/") || strings.HasPrefix(pattern, "/docs/")
}

// RequestLogger logs one line per request at debug level.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
