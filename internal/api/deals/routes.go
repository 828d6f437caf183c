package deals

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// RegisterRoutes adds all deal endpoints to the given mux. Deals have no
// single fetch or delete.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("GET /api/deals", api.Handle(h.List))
	mux.HandleFunc("POST /api/deals", api.Handle(h.Create))
	mux.HandleFunc("PUT /api/deals/{id}", api.WithID(api.Handle(h.Update)))
}
