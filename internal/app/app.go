// Package app assembles the core services from configuration. One App is one
// client session: a single search session, prefetch coordinator, price
// intelligence cache and trip builder sharing one backend client and store.
package app

import (
	"context"
	"fmt"
	"time"

	httpAdapter "github.com/corptravel/trip-search-client/internal/adapter/http"
	"github.com/corptravel/trip-search-client/internal/adapter/gateway"
	"github.com/corptravel/trip-search-client/internal/config"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// logoutTimeout bounds the store writes made when the session expires.
const logoutTimeout = 5 * time.Second

// App holds the wired core services.
type App struct {
	Log      *logger.Logger
	Store    storage.Store
	Gateway  *gateway.Client
	Session  *usecase.SearchSession
	Prefetch *usecase.PrefetchCoordinator
	Intel    *usecase.PriceIntelCache
	Builder  *usecase.TripBuilder
}

// LoggerConfig maps the logging settings onto the logger package.
func LoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  logger.DefaultConfig().ServiceName,
	}
}

// StorageConfig maps the storage settings onto the storage package.
func StorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Driver: cfg.Storage.Driver,
		Redis: storage.RedisConfig{
			Address:  cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			Prefix:   cfg.Storage.RedisPrefix,
			TTL:      cfg.Storage.SessionTTL,
		},
		SQLitePath: cfg.Storage.SQLitePath,
	}
}

// New opens the configured store and wires every service against the backend
// at cfg.Backend.BaseURL. Persisted search results and a draft dialogue are
// restored; a restore failure is logged and the session starts empty.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	log = logger.OrNop(log)

	store, err := storage.Open(ctx, StorageConfig(cfg), log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	client := gateway.NewClient(gateway.Config{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.Token,
	}, log)

	a := Assemble(cfg, log, store, client)
	a.restore(ctx)
	return a, nil
}

// Assemble wires the services over an existing store and client and
// registers the session-expiry handler on the client.
func Assemble(cfg *config.Config, log *logger.Logger, store storage.Store, client *gateway.Client) *App {
	log = logger.OrNop(log)

	session := usecase.NewSearchSession(client, store, log, &usecase.SessionConfig{
		SearchTimeout:         cfg.Backend.SearchTimeout,
		RescoreTimeout:        cfg.Backend.RescoreTimeout,
		IncludeNearbyAirports: cfg.Search.IncludeNearbyAirports,
		DefaultSlider:         cfg.Search.DefaultSlider,
	})

	a := &App{
		Log:     log.WithComponent("app"),
		Store:   store,
		Gateway: client,
		Session: session,
		Prefetch: usecase.NewPrefetchCoordinator(session, log, &usecase.PrefetchConfig{
			Timeout:       cfg.Prefetch.Timeout,
			RatePerSecond: cfg.Prefetch.Rate,
			Burst:         cfg.Prefetch.Burst,
		}),
		Intel: usecase.NewPriceIntelCache(client, log, &usecase.IntelConfig{
			Timeout: cfg.Backend.IntelTimeout,
		}),
		Builder: usecase.NewTripBuilder(client, store, log, &usecase.DialogueConfig{
			TurnTimeout:   cfg.Backend.ChatTimeout,
			CreateTimeout: cfg.Backend.CreateTimeout,
		}),
	}

	client.OnSessionExpired(a.Logout)
	return a
}

func (a *App) restore(ctx context.Context) {
	if err := a.Session.Restore(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("Could not restore search results, starting empty")
	}
	if err := a.Builder.Restore(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("Could not restore dialogue draft, starting empty")
	}
}

// Services exposes the wired services to the companion API.
func (a *App) Services() httpAdapter.Services {
	return httpAdapter.Services{
		Session:  a.Session,
		Prefetch: a.Prefetch,
		Intel:    a.Intel,
		Builder:  a.Builder,
		Store:    a.Store,
		Tokens:   a.Gateway,
	}
}

// Logout drops every piece of session state. It runs when the backend rejects
// the bearer token and may be called from inside an in-flight request, so it
// never waits for outstanding work.
func (a *App) Logout() {
	ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
	defer cancel()

	a.Prefetch.CancelAll()
	if err := a.Session.Clear(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("Failed to clear search session on logout")
	}
	a.Intel.ClearAll()
	if err := a.Builder.Reset(ctx); err != nil {
		a.Log.Warn().Err(err).Msg("Failed to reset dialogue on logout")
	}
	a.Log.Info().Msg("Session expired, cleared client state")
}

// Close cancels outstanding searches, waits for prefetches and closes the
// store. Callers running their own refreshes must wait for them before Close.
func (a *App) Close() error {
	a.Prefetch.CancelAll()
	a.Session.Stop()
	a.Prefetch.Wait()
	return a.Store.Close()
}
