package admin

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// RegisterRoutes registers the health check and the /_crm admin endpoints on
// the ops mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /healthz", api.Handle(h.Healthz))
	mux.HandleFunc("POST /_crm/reset", api.Handle(h.Reset))
	mux.HandleFunc("POST /_crm/seed", api.Handle(h.SeedData))
	mux.HandleFunc("GET /_crm/requests", api.Handle(h.Requests))
}
