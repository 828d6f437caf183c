// Package server assembles the HTTP handlers for the CRM API and its
// operations listener.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnwards/crm/internal/api"
	"github.com/johnwards/crm/internal/api/activities"
	"github.com/johnwards/crm/internal/api/admin"
	"github.com/johnwards/crm/internal/api/companies"
	"github.com/johnwards/crm/internal/api/contacts"
	"github.com/johnwards/crm/internal/api/dashboard"
	"github.com/johnwards/crm/internal/api/deals"
	"github.com/johnwards/crm/internal/store"
)

// Options controls the optional parts of the API handler.
type Options struct {
	// RequestLog appends every API request to the request_log table.
	RequestLog bool
	// Registerer receives the request metrics. Nil disables metrics.
	Registerer prometheus.Registerer
}

// New returns the API handler: the route table for companies, contacts,
// activities, deals and the dashboard, a catch-all 404, and the middleware
// chain.
func New(s *store.Store, opts Options) http.Handler {
	mux := http.NewServeMux()

	companies.RegisterRoutes(mux, s)
	contacts.RegisterRoutes(mux, s)
	activities.RegisterRoutes(mux, s)
	deals.RegisterRoutes(mux, s)
	dashboard.RegisterRoutes(mux, s)

	// Catch-all: any method and path without a route.
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		api.RouteNotFound(w)
	})

	middlewares := []func(http.Handler) http.Handler{
		api.Recovery(),
		api.RequestID(),
		api.CORS(),
		api.Logging(),
	}
	if opts.RequestLog {
		middlewares = append(middlewares, api.RequestLog(s.RequestLog))
	}
	if opts.Registerer != nil {
		// Innermost, so it sees the request the mux annotates with its pattern.
		middlewares = append(middlewares, api.NewMetrics(opts.Registerer).Middleware())
	}

	return api.Chain(api.Strict(mux), middlewares...)
}

// NewOps returns the operations handler serving /healthz, /metrics from
// gatherer, and the /_crm admin endpoints.
func NewOps(s *store.Store, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	admin.RegisterRoutes(mux, s)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		api.RouteNotFound(w)
	})

	return api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Logging(),
	)
}
