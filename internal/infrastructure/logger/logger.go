// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is attached to every entry
	ServiceName string `env:"SERVICE_NAME" envDefault:"trip-search-client"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "trip-search-client",
	}
}

// Logger wraps zerolog.Logger with domain-specific context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// With returns a child logger carrying key=value.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}

// WithRequestID tags entries with the companion API request id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.With("request_id", requestID)
}

// WithLeg tags entries with the trip leg being searched.
func (l *Logger) WithLeg(legID string) *Logger {
	return l.With("leg_id", legID)
}

// WithComponent tags entries with the core component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

type requestIDKey struct{}

// ContextWithRequestID returns ctx carrying the companion API request id, so
// backend calls made on behalf of the request can be correlated with it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Nop returns a disabled logger, mostly for tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// OrNop returns l, or a disabled logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}
