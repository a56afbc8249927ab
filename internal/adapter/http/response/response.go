// Package response provides the JSON envelope written by every companion API
// endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents the API response envelope.
type Response struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Data contains the response payload (for successful responses)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details (for error responses)
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message, safe to show to travellers
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeSessionExpired     = "session_expired"
	CodeBackendError       = "backend_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgNotFound           = "Resource not found"
	MsgSessionExpired     = "Your session has expired. Please sign in again."
	MsgBackendError       = "The travel service returned an error"
	MsgServiceUnavailable = "The travel service is currently unavailable"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// Success creates a successful response envelope.
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// Failure creates a failed response envelope.
func Failure(code, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// OK writes a 200 OK envelope around data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Success(data))
}

// Created writes a 201 Created envelope around data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Success(data))
}

// Accepted writes a 202 Accepted envelope for work continuing in the background.
func Accepted(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusAccepted, Success(data))
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func fail(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, Failure(code, message, details))
}
