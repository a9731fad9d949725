// Package httputil writes JSON responses in the shape shared by all handlers.
package httputil

import (
	"encoding/json"
	"net/http"
)

// Error is a transport-level error: an HTTP status, a stable machine-readable
// code and an optional human-readable description.
type Error struct {
	Status      int
	Code        string
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// NewError builds a transport error.
func NewError(status int, code, description string) *Error {
	return &Error{Status: status, Code: code, Description: description}
}

// Internal is the error written for unexpected failures. Details stay in logs.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "internal_error"}
}

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteError writes e as {"error": code, "error_description": description}.
// Descriptions are never exposed for 5xx responses.
func WriteError(w http.ResponseWriter, e *Error) {
	body := errorBody{Error: e.Code}
	if e.Status < http.StatusInternalServerError {
		body.ErrorDescription = e.Description
	}
	WriteJSON(w, e.Status, body)
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
