package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithOutput(logger.Config{Level: "debug", Format: "json", ServiceName: "test"}, buf)
}

func decodeLog(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be a single JSON line")
	return entry
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates new id"},
		{name: "propagates existing id", incoming: "existing-request-id-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := RequestID()(func(c echo.Context) error {
				ctxID = logger.RequestIDFromContext(c.Request().Context())
				return c.String(http.StatusOK, "ok")
			})
			require.NoError(t, handler(c))

			reqID := rec.Header().Get(RequestIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, reqID)
			} else {
				assert.Len(t, reqID, 36, "should be UUID format")
			}
			assert.Equal(t, reqID, GetRequestID(c), "context ID should match header ID")
			assert.Equal(t, reqID, ctxID, "request context carries the ID for backend calls")
		})
	}
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/legs/leg-1/search?foo=bar", nil)
	req.Header.Set("X-Real-IP", "192.168.1.100")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestIDKey, "test-req-id-123")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/legs/leg-1/search", entry["path"])
	assert.Equal(t, "foo=bar", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "test", entry["service"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "info"},
		{http.StatusNoContent, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusConflict, "warn"},
		{http.StatusBadGateway, "error"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := decodeLog(t, &logBuf)
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})
	require.NoError(t, handler(c), "error is handed to echo's error handler")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(404), decodeLog(t, &logBuf)["status"])
}

func TestRequestLogger_RecordsRouteMetrics(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(logger.Nop()))
	e.GET("/api/v1/legs/:id/result", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/api/v1/legs/:id/result", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"leg-1", "leg-2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/legs/"+id+"/result", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter), "both legs share the route label")
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500Envelope(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)
	c.Set(requestIDKey, "panic-test-id")

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		panic("stack trace test panic")
	})

	assert.NotPanics(t, func() {
		require.NoError(t, handler(c))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	errorObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "internal_error", errorObj["code"])
	assert.Equal(t, "An unexpected error occurred", errorObj["message"])

	entry := decodeLog(t, &logBuf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "panic-test-id", entry["request_id"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.True(t, strings.Contains(stack, "goroutine"), "stack should contain goroutine info")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_HandlesRuntimeErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		var legIDs []string
		_ = legIDs[3]
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeLog(t, &logBuf)["panic"], "index out of range")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/normal", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String(), "should not log anything for normal requests")
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

	handler := RecoverWithConfig(newTestLogger(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack test")
	})
	_ = handler(c)

	assert.NotContains(t, decodeLog(t, &logBuf), "stack")
}

// =====================================================
// Setup Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, decodeLog(t, &logBuf)["request_id"])
}

func TestSetup_RecoveredPanicIsLoggedAs500(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf))

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	lines := strings.Split(strings.TrimSpace(logBuf.String()), "\n")
	require.Len(t, lines, 2, "panic entry then request entry")
	assert.Contains(t, lines[0], "Panic recovered")
	assert.Contains(t, lines[1], `"status":500`)
}
