package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	if message == "" {
		message = MsgNotFound
	}
	return fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// Conflict writes a 409 Conflict response, used when the request does not fit
// the current dialogue or session state.
func Conflict(c echo.Context, message string) error {
	return fail(c, http.StatusConflict, CodeConflict, message, nil)
}

// SessionExpired writes a 401 Unauthorized response.
func SessionExpired(c echo.Context) error {
	return fail(c, http.StatusUnauthorized, CodeSessionExpired, MsgSessionExpired, nil)
}

// BackendError writes a 502 Bad Gateway response carrying the backend's
// user-facing message when it provided one.
func BackendError(c echo.Context, message string) error {
	if message == "" {
		message = MsgBackendError
	}
	return fail(c, http.StatusBadGateway, CodeBackendError, message, nil)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(c echo.Context) error {
	return fail(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
