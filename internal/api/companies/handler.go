package companies

import (
	"errors"
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/store"
)

// Handler handles company HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/companies.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	companies, err := h.store.Companies.List(r.Context())
	if err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, companies)
	return nil
}

// Get handles GET /api/companies/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	company, err := h.store.Companies.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.NotFound(w, "Company not found")
			return nil
		}
		return err
	}
	api.WriteJSON(w, http.StatusOK, company)
	return nil
}

// Create handles POST /api/companies.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	var in domain.CompanyCreateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	id, err := h.store.Companies.Create(r.Context(), in)
	if err != nil {
		return err
	}
	api.Created(w, id, "Company created successfully")
	return nil
}

// Update handles PUT /api/companies/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	var in domain.CompanyUpdateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	if err := h.store.Companies.Update(r.Context(), r.PathValue("id"), in); err != nil {
		return err
	}
	api.OK(w, "Company updated successfully")
	return nil
}

// Delete handles DELETE /api/companies/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.store.Companies.Delete(r.Context(), r.PathValue("id")); err != nil {
		return err
	}
	api.OK(w, "Company deleted successfully")
	return nil
}
