package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
)

// writeJSON writes a response body with ok=true merged in by the caller.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// writeError maps the domain error taxonomy onto HTTP status codes.
// OperationFailed details stay in the server log; the client sees only a
// generic failure.
func writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var invalidState *domain.InvalidStateError
	var opFailed *domain.OperationFailedError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error()})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound.Error()})
	case errors.As(err, &invalidState):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidState.Reason})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAdvisoryUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.As(err, &opFailed):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: opFailed.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.ValidationError{Field: "body", Reason: "is not valid JSON"}
	}
	return nil
}
