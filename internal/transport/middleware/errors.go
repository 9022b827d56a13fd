package middleware

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every client or server error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Info    string `json:"info,omitempty"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// WriteError answers with the API's JSON error body.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Success: false, Error: message})
}
