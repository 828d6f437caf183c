package activities

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/store"
)

// Handler handles activity HTTP requests. Listing lives under contacts.
type Handler struct {
	store *store.Store
}

// Create handles POST /api/activities.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	var in domain.ActivityCreateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	id, err := h.store.Activities.Create(r.Context(), in)
	if err != nil {
		return err
	}
	api.Created(w, id, "Activity created successfully")
	return nil
}
