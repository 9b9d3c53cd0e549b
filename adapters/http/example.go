package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountExample mounts a small demo API under /api so the standalone binary
// has trackable application routes out of the box. A deployment embedding
// the tracker into its own service mounts its real routes instead.
func MountExample(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", exampleList)
		r.Post("/users", exampleCreated)
		r.Get("/users/{id}", exampleItem)
		r.Get("/orders/{id}", exampleItem)
	})
}

func exampleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
}

func exampleItem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
}

func exampleCreated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
