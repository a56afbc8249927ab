// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Search   SearchConfig
	Prefetch PrefetchConfig
	Storage  StorageConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds companion HTTP server settings.
type ServerConfig struct {
	Port        int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`

	// WriteTimeout must outlast a loud search, which blocks its request.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"6m"`
}

// BackendConfig holds the remote travel backend settings.
type BackendConfig struct {
	BaseURL        string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8000"`
	Token          string        `env:"BACKEND_TOKEN"`
	SearchTimeout  time.Duration `env:"BACKEND_SEARCH_TIMEOUT" envDefault:"5m"`
	RescoreTimeout time.Duration `env:"BACKEND_RESCORE_TIMEOUT" envDefault:"30s"`
	IntelTimeout   time.Duration `env:"BACKEND_INTEL_TIMEOUT" envDefault:"15s"`
	ChatTimeout    time.Duration `env:"BACKEND_CHAT_TIMEOUT" envDefault:"60s"`
	CreateTimeout  time.Duration `env:"BACKEND_CREATE_TIMEOUT" envDefault:"30s"`
}

// SearchConfig holds leg search behaviour.
type SearchConfig struct {
	IncludeNearbyAirports bool    `env:"SEARCH_INCLUDE_NEARBY_AIRPORTS" envDefault:"true"`
	DefaultSlider         float64 `env:"SEARCH_DEFAULT_SLIDER" envDefault:"50"`
}

// PrefetchConfig holds speculative search pacing.
type PrefetchConfig struct {
	// Rate is prefetches per second; 0 disables pacing
	Rate    float64       `env:"PREFETCH_RATE" envDefault:"2"`
	Burst   int           `env:"PREFETCH_BURST" envDefault:"2"`
	Timeout time.Duration `env:"PREFETCH_TIMEOUT" envDefault:"2m"`
}

// StorageConfig selects where session state is persisted.
type StorageConfig struct {
	Driver        string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string        `env:"REDIS_PREFIX" envDefault:"trip-search:"`
	SQLitePath    string        `env:"STORAGE_SQLITE_PATH" envDefault:"trip-search.db"`
	SessionTTL    time.Duration `env:"STORAGE_SESSION_TTL" envDefault:"12h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"BACKEND_SEARCH_TIMEOUT", cfg.Backend.SearchTimeout},
		{"BACKEND_RESCORE_TIMEOUT", cfg.Backend.RescoreTimeout},
		{"BACKEND_INTEL_TIMEOUT", cfg.Backend.IntelTimeout},
		{"BACKEND_CHAT_TIMEOUT", cfg.Backend.ChatTimeout},
		{"BACKEND_CREATE_TIMEOUT", cfg.Backend.CreateTimeout},
		{"PREFETCH_TIMEOUT", cfg.Prefetch.Timeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// A loud search holds its request open until the backend answers.
	if cfg.Server.WriteTimeout <= cfg.Backend.SearchTimeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) should be greater than BACKEND_SEARCH_TIMEOUT (%s)",
			cfg.Server.WriteTimeout, cfg.Backend.SearchTimeout)
	}

	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute http(s) URL, got %q", cfg.Backend.BaseURL)
	}

	if cfg.Search.DefaultSlider < 0 || cfg.Search.DefaultSlider > 100 {
		return fmt.Errorf("SEARCH_DEFAULT_SLIDER must be between 0 and 100, got %v", cfg.Search.DefaultSlider)
	}

	if cfg.Prefetch.Rate < 0 {
		return fmt.Errorf("PREFETCH_RATE must not be negative")
	}
	if cfg.Prefetch.Burst < 1 {
		return fmt.Errorf("PREFETCH_BURST must be at least 1, got %d", cfg.Prefetch.Burst)
	}

	validDrivers := map[string]bool{"memory": true, "redis": true, "sqlite": true}
	if !validDrivers[cfg.Storage.Driver] {
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, redis, sqlite; got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "redis" && cfg.Storage.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when STORAGE_DRIVER=redis")
	}
	if cfg.Storage.Driver == "sqlite" && cfg.Storage.SQLitePath == "" {
		return fmt.Errorf("STORAGE_SQLITE_PATH is required when STORAGE_DRIVER=sqlite")
	}
	if cfg.Storage.SessionTTL < 0 {
		return fmt.Errorf("STORAGE_SESSION_TTL must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
