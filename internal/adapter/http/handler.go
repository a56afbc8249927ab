package http

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corptravel/trip-search-client/internal/adapter/http/middleware"
	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// healthTimeout bounds the storage probe of GET /health.
const healthTimeout = 2 * time.Second

// TokenSetter replaces the bearer token used for backend calls.
type TokenSetter interface {
	SetToken(token string)
}

// Services are the core components the companion API drives.
type Services struct {
	Session  *usecase.SearchSession
	Prefetch *usecase.PrefetchCoordinator
	Intel    *usecase.PriceIntelCache
	Builder  *usecase.TripBuilder
	Store    storage.Store
	Tokens   TokenSetter
}

// Handler serves the companion API.
type Handler struct {
	svc Services
	log *logger.Logger

	// bg tracks background refreshes started by requests.
	bg sync.WaitGroup
}

// NewHandler creates a Handler.
func NewHandler(svc Services, log *logger.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: logger.OrNop(log).WithComponent("http"),
	}
}

// Wait blocks until background work started by requests has finished.
func (h *Handler) Wait() {
	h.bg.Wait()
}

func (h *Handler) requestLog(c echo.Context) *logger.Logger {
	return h.log.WithRequestID(middleware.GetRequestID(c))
}

// legID reads and validates the :id path parameter.
func legID(c echo.Context) (string, error) {
	id := c.Param("id")
	return id, ValidateLegID(id)
}

// SearchLeg handles POST /api/v1/legs/{id}/search
//
// @Summary Search a leg
// @Description Starts a loud search for the leg, superseding any other loud search, and waits for it. A superseded or cancelled search returns the leg view without a result.
// @Tags search
// @Produce json
// @Param id path string true "Leg ID"
// @Success 200 {object} SwaggerLegViewResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 502 {object} SwaggerErrorResponse "Search failed"
// @Router /legs/{id}/search [post]
func (h *Handler) SearchLeg(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Session.Search(c.Request().Context(), id)

	result, _ := h.svc.Session.Result(id)
	view := ToLegView(id, h.svc.Session.State(), result)
	if view.Error != "" && !view.Loading {
		return response.BackendError(c, view.Error)
	}
	return response.OK(c, view)
}

// RefreshLeg handles POST /api/v1/legs/{id}/refresh
//
// @Summary Refresh a leg silently
// @Description Re-runs the leg search in the background. Loading and error state are never touched; a failure leaves the previous result in place.
// @Tags search
// @Produce json
// @Param id path string true "Leg ID"
// @Success 202 {object} SwaggerRefreshResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/refresh [post]
func (h *Handler) RefreshLeg(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	ctx := context.WithoutCancel(c.Request().Context())
	h.bg.Add(1)
	go func() {
		defer h.bg.Done()
		h.svc.Session.Refresh(ctx, id)
	}()

	return response.Accepted(c, RefreshResponse{LegID: id, Refreshing: true})
}

// RescoreLeg handles POST /api/v1/legs/{id}/rescore
//
// @Summary Rescore a leg
// @Description Re-ranks the leg's stored options for a new slider position and merges the new scores into the result.
// @Tags search
// @Accept json
// @Produce json
// @Param id path string true "Leg ID"
// @Param request body RescoreRequest true "Slider position"
// @Success 200 {object} SwaggerLegViewResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/rescore [post]
func (h *Handler) RescoreLeg(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	var req RescoreRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Session.Rescore(c.Request().Context(), id, *req.SliderPosition)

	result, _ := h.svc.Session.Result(id)
	return response.OK(c, ToLegView(id, h.svc.Session.State(), result))
}

// LegResult handles GET /api/v1/legs/{id}/result
//
// @Summary Get a leg result
// @Tags search
// @Produce json
// @Param id path string true "Leg ID"
// @Success 200 {object} SwaggerLegViewResponse
// @Failure 404 {object} SwaggerErrorResponse "No result yet"
// @Router /legs/{id}/result [get]
func (h *Handler) LegResult(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	result, ok := h.svc.Session.Result(id)
	if !ok {
		return response.NotFound(c, MsgNoLegResult)
	}
	return response.OK(c, ToLegView(id, h.svc.Session.State(), result))
}

// PrefetchLeg handles POST /api/v1/legs/{id}/prefetch
//
// @Summary Prefetch a leg
// @Description Starts a speculative search unless the leg already has a result or a search in flight.
// @Tags prefetch
// @Produce json
// @Param id path string true "Leg ID"
// @Success 202 {object} SwaggerPrefetchResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/prefetch [post]
func (h *Handler) PrefetchLeg(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	started := 0
	if h.svc.Prefetch.Prefetch(context.WithoutCancel(c.Request().Context()), id) {
		started = 1
	}
	return response.Accepted(c, PrefetchResponse{Started: started, Pending: h.svc.Prefetch.Pending()})
}

// PrefetchLegs handles POST /api/v1/prefetch
//
// @Summary Prefetch several legs
// @Tags prefetch
// @Accept json
// @Produce json
// @Param request body PrefetchRequest true "Legs to prefetch"
// @Success 202 {object} SwaggerPrefetchResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /prefetch [post]
func (h *Handler) PrefetchLegs(c echo.Context) error {
	var req PrefetchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeValidationError(c, err)
	}

	started := h.svc.Prefetch.PrefetchAll(context.WithoutCancel(c.Request().Context()), req.LegIDs)
	return response.Accepted(c, PrefetchResponse{Started: started, Pending: h.svc.Prefetch.Pending()})
}

// CancelPrefetches handles DELETE /api/v1/prefetch
//
// @Summary Cancel all prefetches
// @Tags prefetch
// @Success 204
// @Router /prefetch [delete]
func (h *Handler) CancelPrefetches(c echo.Context) error {
	h.svc.Prefetch.CancelAll()
	return response.NoContent(c)
}

// SearchState handles GET /api/v1/search
//
// @Summary Get the search session state
// @Tags search
// @Produce json
// @Success 200 {object} SwaggerSearchStateResponse
// @Router /search [get]
func (h *Handler) SearchState(c echo.Context) error {
	return response.OK(c, h.svc.Session.State())
}

// CancelSearch handles POST /api/v1/search/cancel
//
// @Summary Cancel the loud search
// @Description Cancels the loud search in flight, if any. The search ends with no error.
// @Tags search
// @Success 204
// @Router /search/cancel [post]
func (h *Handler) CancelSearch(c echo.Context) error {
	h.svc.Session.Cancel()
	return response.NoContent(c)
}

// ClearSearch handles DELETE /api/v1/search
//
// @Summary Clear the search session
// @Description Cancels every search and forgets all persisted results.
// @Tags search
// @Success 204
// @Router /search [delete]
func (h *Handler) ClearSearch(c echo.Context) error {
	if err := h.svc.Session.Clear(c.Request().Context()); err != nil {
		h.requestLog(c).Error().Err(err).Msg("Failed to clear search session")
		return writeError(c, err)
	}
	return response.NoContent(c)
}

// SetToken handles PUT /api/v1/session/token
//
// @Summary Set the backend bearer token
// @Tags session
// @Accept json
// @Param request body TokenRequest true "Bearer token"
// @Success 204
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /session/token [put]
func (h *Handler) SetToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Tokens.SetToken(req.Token)
	return response.NoContent(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()
	return response.Health(c, storage.Ping(ctx, h.svc.Store))
}
