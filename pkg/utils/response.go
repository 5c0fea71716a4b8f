package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope every endpoint returns
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes a JSON body with the given status
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error writes the standard error envelope
func Error(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}
