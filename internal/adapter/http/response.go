package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// User-facing messages written by the handlers.
const (
	MsgTripNotReady = "The trip is not ready yet. Keep chatting to fill in the missing details."
	MsgDialogueBusy = "Still working on your last message."
	MsgNoLegResult  = "No search result for this leg yet"
	MsgNoTranscript = "No saved conversation for this trip"
	MsgUnknownIntel = "Unknown price intelligence kind"
)

// writeValidationError writes a 400 for a request that failed validation.
func writeValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// writeError maps domain and transport errors to HTTP responses.
func writeError(c echo.Context, err error) error {
	var apiErr *domain.APIError

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return response.SessionExpired(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, domain.ErrTripNotReady):
		return response.Conflict(c, MsgTripNotReady)
	case errors.Is(err, domain.ErrDialogueBusy):
		return response.Conflict(c, MsgDialogueBusy)
	case errors.Is(err, domain.ErrEmptyMessage):
		return response.ValidationErrorWithMessage(c, "message is required")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "")
	case errors.Is(err, usecase.ErrUnknownIntelKind):
		return response.NotFound(c, MsgUnknownIntel)
	case errors.As(err, &apiErr):
		return response.BackendError(c, apiErr.Detail)
	default:
		return response.InternalServerError(c)
	}
}
