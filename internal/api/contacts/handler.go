package contacts

import (
	"errors"
	"net/http"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/store"
)

// Handler handles contact HTTP requests.
type Handler struct {
	store *store.Store
}

// List handles GET /api/contacts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	contacts, err := h.store.Contacts.List(r.Context())
	if err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, contacts)
	return nil
}

// Get handles GET /api/contacts/{id}. The contact and its activities are read
// in two statements without a transaction.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")

	contact, err := h.store.Contacts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.NotFound(w, "Contact not found")
			return nil
		}
		return err
	}

	activities, err := h.store.Activities.ListByContact(r.Context(), id)
	if err != nil {
		return err
	}

	api.WriteJSON(w, http.StatusOK, domain.ContactDetail{Contact: *contact, Activities: activities})
	return nil
}

// Activities handles GET /api/contacts/{id}/activities. The contact itself is
// not looked up, so an unknown id yields an empty list.
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) error {
	activities, err := h.store.Activities.ListByContact(r.Context(), r.PathValue("id"))
	if err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, activities)
	return nil
}

// Create handles POST /api/contacts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	var in domain.ContactCreateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	id, err := h.store.Contacts.Create(r.Context(), in)
	if err != nil {
		return err
	}
	api.Created(w, id, "Contact created successfully")
	return nil
}

// Update handles PUT /api/contacts/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	var in domain.ContactUpdateInput
	if err := api.DecodeJSON(r, &in); err != nil {
		return err
	}

	if err := h.store.Contacts.Update(r.Context(), r.PathValue("id"), in); err != nil {
		return err
	}
	api.OK(w, "Contact updated successfully")
	return nil
}

// Delete handles DELETE /api/contacts/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.store.Contacts.Delete(r.Context(), r.PathValue("id")); err != nil {
		return err
	}
	api.OK(w, "Contact deleted successfully")
	return nil
}
