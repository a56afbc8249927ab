package http

import (
	"github.com/labstack/echo/v4"

	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/infrastructure/timeutil"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// The intelligence endpoints load on demand: a usable cached entry is returned
// as is, a stale one is fetched first, and a fetch already in flight for the
// same key is reported as loading instead of being repeated.

// Calendar handles GET /api/v1/legs/{id}/intel/calendar
//
// @Summary Get the month price calendar
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Param year query int true "Year" example(2026)
// @Param month query int true "Month (1-12)" example(3)
// @Success 200 {object} SwaggerIntelResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/intel/calendar [get]
func (h *Handler) Calendar(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}
	year, month, err := ParseMonthQuery(c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return writeValidationError(c, err)
	}

	if _, err := h.svc.Intel.LoadCalendar(c.Request().Context(), id, year, month); err != nil {
		return writeValidationError(c, err)
	}
	entry, ok := h.svc.Intel.Calendar(id, year, month)
	return response.OK(c, ToIntelResponse(usecase.KindCalendar, usecase.CalendarKey(id, year, month), entry, ok))
}

// Matrix handles GET /api/v1/legs/{id}/intel/matrix
//
// @Summary Get the date by airline price matrix
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Success 200 {object} SwaggerIntelResponse
// @Router /legs/{id}/intel/matrix [get]
func (h *Handler) Matrix(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Intel.LoadMatrix(c.Request().Context(), id)
	entry, ok := h.svc.Intel.Matrix(id)
	return response.OK(c, ToIntelResponse(usecase.KindMatrix, id, entry, ok))
}

// Advisor handles GET /api/v1/legs/{id}/intel/advisor
//
// @Summary Get booking advice
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Success 200 {object} SwaggerIntelResponse
// @Router /legs/{id}/intel/advisor [get]
func (h *Handler) Advisor(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Intel.LoadAdvisor(c.Request().Context(), id)
	entry, ok := h.svc.Intel.Advisor(id)
	return response.OK(c, ToIntelResponse(usecase.KindAdvisor, id, entry, ok))
}

// Trend handles GET /api/v1/legs/{id}/intel/trend
//
// @Summary Get the price trend
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Success 200 {object} SwaggerIntelResponse
// @Router /legs/{id}/intel/trend [get]
func (h *Handler) Trend(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}

	h.svc.Intel.LoadTrend(c.Request().Context(), id)
	entry, ok := h.svc.Intel.Trend(id)
	return response.OK(c, ToIntelResponse(usecase.KindTrend, id, entry, ok))
}

// PriceContext handles GET /api/v1/legs/{id}/intel/context
//
// @Summary Get the historical price context for a date
// @Description A failed fetch resolves to an unavailable context and is not retried until cleared.
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Param date query string true "Target date (YYYY-MM-DD)" example(2026-03-14)
// @Success 200 {object} SwaggerIntelResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/intel/context [get]
func (h *Handler) PriceContext(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}
	date, err := ParseDateQuery("date", c.QueryParam("date"))
	if err != nil {
		return writeValidationError(c, err)
	}

	if _, err := h.svc.Intel.LoadContext(c.Request().Context(), id, date); err != nil {
		return writeValidationError(c, err)
	}
	entry, ok := h.svc.Intel.Context(id, date)
	return response.OK(c, ToIntelResponse(usecase.KindContext, usecase.ContextKey(id, date), entry, ok))
}

// LegIntel handles GET /api/v1/legs/{id}/intel
//
// @Summary Get every intelligence kind for a leg
// @Description Loads the calendar for the date's month, the matrix, advice, trend and the price context for the date concurrently.
// @Tags intel
// @Produce json
// @Param id path string true "Leg ID"
// @Param date query string true "Target date (YYYY-MM-DD)" example(2026-03-14)
// @Success 200 {object} SwaggerLegIntelResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /legs/{id}/intel [get]
func (h *Handler) LegIntel(c echo.Context) error {
	id, err := legID(c)
	if err != nil {
		return writeValidationError(c, err)
	}
	date, err := ParseDateQuery("date", c.QueryParam("date"))
	if err != nil {
		return writeValidationError(c, err)
	}
	year, month, err := timeutil.YearMonth(date)
	if err != nil {
		return writeValidationError(c, err)
	}

	if err := h.svc.Intel.LoadLeg(c.Request().Context(), id, date); err != nil {
		return writeError(c, err)
	}

	calendar, calOK := h.svc.Intel.Calendar(id, year, month)
	matrix, matrixOK := h.svc.Intel.Matrix(id)
	advice, adviceOK := h.svc.Intel.Advisor(id)
	trend, trendOK := h.svc.Intel.Trend(id)
	priceCtx, ctxOK := h.svc.Intel.Context(id, date)

	return response.OK(c, LegIntelResponse{
		LegID:    id,
		Date:     date,
		Calendar: ToIntelResponse(usecase.KindCalendar, usecase.CalendarKey(id, year, month), calendar, calOK),
		Matrix:   ToIntelResponse(usecase.KindMatrix, id, matrix, matrixOK),
		Advisor:  ToIntelResponse(usecase.KindAdvisor, id, advice, adviceOK),
		Trend:    ToIntelResponse(usecase.KindTrend, id, trend, trendOK),
		Context:  ToIntelResponse(usecase.KindContext, usecase.ContextKey(id, date), priceCtx, ctxOK),
	})
}

// ClearIntel handles DELETE /api/v1/intel/{kind}
//
// @Summary Clear one intelligence kind
// @Tags intel
// @Param kind path string true "calendar, matrix, advisor, trend or context"
// @Success 204
// @Failure 404 {object} SwaggerErrorResponse "Unknown kind"
// @Router /intel/{kind} [delete]
func (h *Handler) ClearIntel(c echo.Context) error {
	if err := h.svc.Intel.Clear(usecase.IntelKind(c.Param("kind"))); err != nil {
		return writeError(c, err)
	}
	return response.NoContent(c)
}

// ClearAllIntel handles DELETE /api/v1/intel
//
// @Summary Clear all price intelligence
// @Tags intel
// @Success 204
// @Router /intel [delete]
func (h *Handler) ClearAllIntel(c echo.Context) error {
	h.svc.Intel.ClearAll()
	return response.NoContent(c)
}
