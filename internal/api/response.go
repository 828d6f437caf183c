package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned by update and delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// Created writes a 201 with the new row's id.
func Created(w http.ResponseWriter, id int64, message string) {
	WriteJSON(w, http.StatusCreated, CreatedResponse{ID: id, Message: message})
}

// OK writes a 200 carrying only a message.
func OK(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// errTrailingData is returned when a body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// DecodeJSON decodes the request body into v. The body must be exactly one
// JSON value; an empty, malformed or trailing-data body is an error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode request body: %w", errTrailingData)
	}
	return nil
}
