package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/security"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation
// 400, not-found 404, auth 401, storage corruption and everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var storageErr *domain.StorageReadError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Reasons: validationErr.Reasons})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundErr.Error()})
	case errors.Is(err, security.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidSession),
		errors.Is(err, security.ErrSessionExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.As(err, &storageErr):
		logger.Error("Storage read failure", "path", storageErr.Path, "error", storageErr.Err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: storageErr.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &domain.ValidationError{Reasons: []string{"malformed request body: " + err.Error()}}
	}
	return nil
}
