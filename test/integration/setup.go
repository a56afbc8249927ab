// Package integration runs the companion API end to end: echo routes and
// middleware, the wired core services and a fake travel backend over HTTP.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/corptravel/trip-search-client/internal/adapter/http"
	"github.com/corptravel/trip-search-client/internal/adapter/http/middleware"
	"github.com/corptravel/trip-search-client/internal/app"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/test/mock"
	"github.com/corptravel/trip-search-client/test/testutil"
)

// TestServer wraps an Echo instance serving one client session.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.Handler
	App     *app.App
	Backend *mock.Backend
}

// NewTestServer wires a client session against backend and registers the
// companion routes. Background work is stopped when the test ends.
func NewTestServer(t *testing.T, backend *mock.Backend) *TestServer {
	t.Helper()

	cfg := testutil.Config(backend.Start(t))
	a, err := app.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop())
	handler := httpAdapter.NewHandler(a.Services(), logger.Nop())
	httpAdapter.RegisterRoutes(e, handler)

	t.Cleanup(func() {
		a.Session.Stop()
		handler.Wait()
		_ = a.Close()
	})

	return &TestServer{
		Echo:    e,
		Handler: handler,
		App:     a,
		Backend: backend,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get issues a GET to path.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Post issues a POST to path with an optional JSON body.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Delete issues a DELETE to path.
func (ts *TestServer) Delete(path string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: path})
}

// SearchLeg runs a loud search for legID.
func (ts *TestServer) SearchLeg(legID string) Response {
	return ts.Post("/api/v1/legs/"+legID+"/search", nil)
}

// Chat sends one message to the trip builder.
func (ts *TestServer) Chat(message string) Response {
	return ts.Post("/api/v1/chat/messages", map[string]string{"message": message})
}

// Data decodes the success envelope's data into out.
func (r Response) Data(t *testing.T, out interface{}) {
	t.Helper()
	testutil.DecodeData(t, r.Body, out)
}

// LegView decodes a leg view response.
func (r Response) LegView(t *testing.T) httpAdapter.LegView {
	t.Helper()
	var view httpAdapter.LegView
	r.Data(t, &view)
	return view
}

// RecommendationID returns the recommended option id, or "" without a result.
func RecommendationID(view httpAdapter.LegView) string {
	if view.Result == nil || view.Result.Recommendation == nil {
		return ""
	}
	return view.Result.Recommendation.ID
}
