package dashboard

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/store"
)

// Handler serves the dashboard summary.
type Handler struct {
	store *store.Store
}

// Get handles GET /api/dashboard.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.store.Dashboard.Stats(r.Context())
	if err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, stats)
	return nil
}
