package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	// ErrSessionExpired is returned when the backend rejects the bearer token.
	ErrSessionExpired = errors.New("session expired")

	// ErrBackendUnavailable is returned when the backend cannot be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNotFound is returned by stores when a key has no value.
	ErrNotFound = errors.New("not found")

	// ErrTripNotReady is returned when a trip is created before the dialogue is ready.
	ErrTripNotReady = errors.New("trip is not ready to be created")

	// ErrEmptyMessage is returned when a blank chat message is sent.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrDialogueBusy is returned when a turn or creation is already in flight.
	ErrDialogueBusy = errors.New("dialogue is busy")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	// StatusCode is the HTTP status returned by the backend
	StatusCode int

	// Detail is the backend-provided, user-facing message (may be empty)
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

// UserMessage returns the backend detail carried by err, or fallback when
// there is none.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
