package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the companion API, health, metrics and swagger routes.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Operational endpoints (no version prefix)
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", middleware...)

	api.PUT("/session/token", h.SetToken)

	search := api.Group("/search")
	search.GET("", h.SearchState)
	search.POST("/cancel", h.CancelSearch)
	search.DELETE("", h.ClearSearch)

	legs := api.Group("/legs/:id")
	legs.POST("/search", h.SearchLeg)
	legs.POST("/refresh", h.RefreshLeg)
	legs.POST("/rescore", h.RescoreLeg)
	legs.POST("/prefetch", h.PrefetchLeg)
	legs.GET("/result", h.LegResult)
	legs.GET("/intel", h.LegIntel)
	legs.GET("/intel/calendar", h.Calendar)
	legs.GET("/intel/matrix", h.Matrix)
	legs.GET("/intel/advisor", h.Advisor)
	legs.GET("/intel/trend", h.Trend)
	legs.GET("/intel/context", h.PriceContext)

	prefetch := api.Group("/prefetch")
	prefetch.POST("", h.PrefetchLegs)
	prefetch.DELETE("", h.CancelPrefetches)

	intel := api.Group("/intel")
	intel.DELETE("", h.ClearAllIntel)
	intel.DELETE("/:kind", h.ClearIntel)

	chat := api.Group("/chat")
	chat.GET("", h.Dialogue)
	chat.DELETE("", h.ResetDialogue)
	chat.POST("/messages", h.SendMessage)
	chat.GET("/quick-replies", h.QuickReplies)
	chat.POST("/trip", h.CreateTrip)

	api.GET("/trips/:tripId/transcript", h.Transcript)
}
