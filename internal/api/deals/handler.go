package deals

import (
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/store"
)

// Handler handles deal HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/deals.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	deals, err := h.store.Deals.List(r.Context())
	if err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, deals)
	return nil
}

// Create handles POST /api/deals.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	var in domain.DealCreateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	id, err := h.store.Deals.Create(r.Context(), in)
	if err != nil {
		return err
	}
	api.Created(w, id, "Deal created successfully")
	return nil
}

// Update handles PUT /api/deals/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	var in domain.DealUpdateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	if err := h.store.Deals.Update(r.Context(), r.PathValue("id"), in); err != nil {
		return err
	}
	api.OK(w, "Deal updated successfully")
	return nil
}
