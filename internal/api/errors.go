package api

import (
	"log/slog"
	"net/http"
	"path"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes an ErrorResponse with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// NotFound writes a 404 for a lookup miss, e.g. "Company not found".
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// RouteNotFound writes the 404 returned when no route matches.
func RouteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "Not found")
}

// InternalError logs err and writes a 500 carrying its message.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"correlation_id", CorrelationID(r.Context()),
	)
	msg := err.Error()
	if msg == "" {
		msg = internalErrorMessage
	}
	WriteError(w, http.StatusInternalServerError, msg)
}

// HandlerFunc is an http.HandlerFunc that may fail. Any returned error
// becomes a 500.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to an http.HandlerFunc.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			InternalError(w, r, err)
		}
	}
}

// WithID only lets requests through whose {id} path value is a run of
// decimal digits. Anything else is treated as an unmatched route.
func WithID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isDigits(r.PathValue("id")) {
			RouteNotFound(w)
			return
		}
		next(w, r)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Strict sends requests the mux would otherwise answer loosely to the
// bad-route 404: HEAD, which GET patterns match, and unclean paths such as
// "/api//companies", which the mux redirects.
func Strict(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || path.Clean(r.URL.Path) != r.URL.Path {
			RouteNotFound(w)
			return
		}
		mux.ServeHTTP(w, r)
	})
}
