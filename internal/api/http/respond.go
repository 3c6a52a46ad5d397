package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/security"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeServiceError maps the service sentinels onto HTTP statuses. Unknown
// errors become a generic 500 so internals never leak to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrNotRejected),
		errors.Is(err, service.ErrAccountNotVerified),
		errors.Is(err, service.ErrMissingBiodata):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, service.ErrReasonRequired),
		errors.Is(err, service.ErrIncompleteFields),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidAccessCode),
		errors.Is(err, service.ErrNoVerifiedPayments):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
