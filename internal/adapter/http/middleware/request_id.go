// Package middleware provides HTTP middleware for the companion API.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID returns middleware that propagates the caller's X-Request-ID or
// assigns a new UUID, and echoes it on the response. The id is also placed on
// the request context, where the gateway forwards it to the travel backend.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			req := c.Request()
			c.SetRequest(req.WithContext(logger.ContextWithRequestID(req.Context(), reqID)))

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
