package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Pavesi99/EndpointTracker/domain/tracking"
	"github.com/Pavesi99/EndpointTracker/ports"
)

// Discover walks a chi route tree and registers every (method, pattern)
// pair with the tracker. Registration is idempotent, so it is safe to call
// again after the route table changes; endpoints that accumulated hits keep
// their stats.
func Discover(r chi.Routes, tracker ports.Tracker) {
	DiscoverFunc(r, tracker, nil)
}

// DiscoverFunc registers the routes for which keep returns true.
// A nil keep registers everything.
func DiscoverFunc(r chi.Routes, tracker ports.Tracker, keep func(pattern string) bool) {
	chi.Walk(r, func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		if keep != nil && !keep(route) {
			return nil
		}
		tracker.Register(tracking.RouteKey(method, route), "", strings.ToUpper(method))
		return nil
	})
}
