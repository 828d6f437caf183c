package contacts

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// RegisterRoutes adds all contact endpoints, including the per-contact
// activity listing, to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/contacts", api.Handle(h.List))
	mux.HandleFunc("POST /api/contacts", api.Handle(h.Create))
	mux.HandleFunc("GET /api/contacts/{id}", api.WithID(api.Handle(h.Get)))
	mux.HandleFunc("PUT /api/contacts/{id}", api.WithID(api.Handle(h.Update)))
	mux.HandleFunc("DELETE /api/contacts/{id}", api.WithID(api.Handle(h.Delete)))
	mux.HandleFunc("GET /api/contacts/{id}/activities", api.WithID(api.Handle(h.Activities)))
}
