package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strconv"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/database"
	"github.com/johnwards/crm/internal/domain"
	"github.com/johnwards/crm/internal/seed"
	"github.com/johnwards/crm/internal/store"
)

const (
	defaultRequestLimit = 100
	maxRequestLimit     = 1000
)

// Handler serves the operational endpoints on the ops listener.
type Handler struct {
	store *store.Store
}

// StatusResponse is the body of successful admin calls.
type StatusResponse struct {
	Status string `json:"status"`
}

// RequestsResponse is one page of the request log.
type RequestsResponse struct {
	Results []domain.RequestLogEntry `json:"results"`
	Paging  *Paging                  `json:"paging,omitempty"`
}

// Paging holds the cursor for the next page of request log entries.
type Paging struct {
	Next PagingNext `json:"next"`
}

// PagingNext holds the id cursor to pass back as ?after=.
type PagingNext struct {
	After string `json:"after"`
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) error {
	if err := h.store.DB.PingContext(r.Context()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	api.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	return nil
}

// Reset handles POST /_crm/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) error {
	if err := ResetData(r.Context(), h.store.DB); err != nil {
		return err
	}
	api.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	return nil
}

// SeedData handles POST /_crm/seed. Seeding is a no-op once companies exist.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) error {
	if err := seed.Seed(r.Context(), h.store.DB); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	api.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	return nil
}

// Requests handles GET /_crm/requests. Out of range limits and unparseable
// cursors fall back to the defaults.
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) error {
	limit := defaultRequestLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxRequestLimit {
			limit = n
		}
	}

	after := r.URL.Query().Get("after")
	if _, err := strconv.ParseInt(after, 10, 64); err != nil {
		after = ""
	}

	page, err := h.store.RequestLog.List(r.Context(), limit, after)
	if err != nil {
		return err
	}

	resp := RequestsResponse{Results: page.Results}
	if page.HasMore {
		resp.Paging = &Paging{Next: PagingNext{After: page.After}}
	}
	api.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// ResetData deletes every row from the data tables. The schema and its
// migration history are kept.
func ResetData(ctx context.Context, db *sql.DB) error {
	for _, table := range database.DataTables {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec // table names are hardcoded constants
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return nil
}
