// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/chocolate-not-availabe/blokify/pkg/apperrors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response as {"error": message}
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps an application error onto its HTTP status and
// writes the caller-safe message.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.StatusCode(err), apperrors.UserMessage(err))
}

// decodeBody decodes a JSON request body into v. An empty body is treated as
// an empty object, matching the original backend's tolerance for missing
// bodies.
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}
