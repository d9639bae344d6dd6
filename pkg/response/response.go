// Package response maps listing errors to client-facing status codes and payloads.
// Callers in a web context use the status; the demo command prints the payload.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// ErrorPayload is the canonical error envelope.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into a status and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, pagination.ErrInvalidSettings):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_page", Message: err.Error()}
	case errors.Is(err, repository.ErrPermissionDenied):
		return http.StatusForbidden, ErrorPayload{Error: "forbidden"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorPayload{Error: "timeout"}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "canceled"}
	default:
		// unknown relations are a configuration problem, not the client's
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}
