package companies

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// RegisterRoutes adds all company endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/companies", api.Handle(h.List))
	mux.HandleFunc("POST /api/companies", api.Handle(h.Create))
	mux.HandleFunc("GET /api/companies/{id}", api.WithID(api.Handle(h.Get)))
	mux.HandleFunc("PUT /api/companies/{id}", api.WithID(api.Handle(h.Update)))
	mux.HandleFunc("DELETE /api/companies/{id}", api.WithID(api.Handle(h.Delete)))
}
