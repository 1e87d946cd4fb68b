package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeValidationError sends the 400 envelope for a failed presence check.
// No store access happens on this path.
func writeValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"message": message,
	})
}

// writeStoreError sends the 500 envelope for a failed store call. The error
// text is passed through verbatim; that leak is part of the published
// contract and flagged rather than suppressed.
func writeStoreError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
