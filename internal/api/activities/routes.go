package activities

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// RegisterRoutes adds the activity endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /api/activities", api.Handle(h.Create))
}
