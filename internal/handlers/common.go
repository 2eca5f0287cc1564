package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body shared by every handler.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: account not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
