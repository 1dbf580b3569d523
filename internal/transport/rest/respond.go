package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto HTTP statuses. Generation provider
// failures surface as gateway errors so callers can tell an upstream outage
// from a bug in this service.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		vErr      *domain.ValidationError
		statusErr *provider.StatusError
	)

	switch {
	case errors.As(err, &vErr):
		fields := make([]fieldError, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, provider.ErrUnrecognizedShape),
		errors.Is(err, provider.ErrDecode),
		errors.Is(err, provider.ErrEmptyResult):
		log.ErrorContext(r.Context(), "generation response unusable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "generation service returned an unusable response")
	case errors.As(err, &statusErr):
		log.ErrorContext(r.Context(), "generation request rejected upstream", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "generation service rejected the request")
	case errors.Is(err, provider.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "generation service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type confirmRequest struct {
	Confirm string `json:"confirm"`
}

// requireConfirmation enforces the explicit confirmation step on destructive
// deletes: the body must name the entity kind being removed.
func requireConfirmation(r *http.Request, want domain.EntityType) error {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.NewValidationError("confirm", "required: deletion must name the entity kind")
	}
	if req.Confirm != want.String() {
		return domain.NewValidationError("confirm", "must be "+want.String())
	}
	return nil
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}
