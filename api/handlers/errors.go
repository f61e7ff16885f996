// ABOUTME: Maps core error types to HTTP status codes and JSON error bodies
// ABOUTME: A failed request is always distinguishable from an empty result list

package handlers

import (
	"encoding/json"
	"net/http"

	"mediawatch-api/api/dto/responses"
	coreerrors "mediawatch-api/core/errors"
)

// statusFor translates the core error taxonomy into HTTP status codes.
func statusFor(err error) int {
	switch {
	case coreerrors.IsValidation(err):
		return http.StatusBadRequest
	case coreerrors.IsUnknownService(err):
		return http.StatusBadRequest
	case coreerrors.IsFetch(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends a JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), responses.ErrorResponse{Error: err.Error()})
}

// writeJSON serializes v with the status code. Non-ASCII characters are
// preserved literally, matching the snapshot encoding.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
