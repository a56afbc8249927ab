// Package main is the entry point for the trip search companion API.
//
//	@title						Trip Search Companion API
//	@version					1.0.0
//	@description				Local companion service for the corporate travel client. It owns one search session, prefetch coordinator, price intelligence cache and trip-builder dialogue, and forwards all scoring and parsing to the travel backend.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/corptravel/trip-search-client/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/corptravel/trip-search-client/docs"

	// Application layers
	triphttp "github.com/corptravel/trip-search-client/internal/adapter/http"
	"github.com/corptravel/trip-search-client/internal/adapter/http/middleware"
	"github.com/corptravel/trip-search-client/internal/app"
	"github.com/corptravel/trip-search-client/internal/config"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)
	appLog := logger.New(app.LoggerConfig(cfg))

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Str("storage", cfg.Storage.Driver).
		Msg("Configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	application, err := app.New(ctx, cfg, appLog)
	cancel()
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to initialize services")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, appLog)
	handler := triphttp.NewHandler(application.Services(), appLog)
	triphttp.RegisterRoutes(e, handler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, handler, application, appLog)
}

// setupLogger configures the global zerolog logger based on config.
// Packages that log through zerolog/log directly, such as config, follow it.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
// In-flight requests finish first, then background refreshes and
// prefetches are cancelled and awaited before the store is closed.
func gracefulShutdown(e *echo.Echo, handler *triphttp.Handler, application *app.App, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	application.Session.Stop()
	handler.Wait()
	if err := application.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing storage")
	}

	log.Info().Msg("Server stopped")
}
