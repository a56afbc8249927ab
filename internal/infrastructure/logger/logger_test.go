package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be valid JSON")
	return entry
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "tripdesk"}, &buf)

	log.Info().Msg("search started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "search started", entry["message"])
	assert.Equal(t, "tripdesk", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "tripdesk"}, &buf)

	log.Info().Msg("search started")

	assert.Contains(t, buf.String(), "search started")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug dropped at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info dropped at warn level", "warn", "info", false},
		{"error logged at error level", "error", "error", true},
		{"empty level falls back to info", "", "info", true},
		{"unknown level falls back to info", "verbose", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("x")
			case "info":
				log.Info().Msg("x")
			case "warn":
				log.Warn().Msg("x")
			case "error":
				log.Error().Msg("x")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithOutput_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("x")

	entry := decodeEntry(t, &buf)
	require.Contains(t, entry, "caller")
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Logger) *Logger
		key   string
		value string
	}{
		{"with", func(l *Logger) *Logger { return l.With("slider", "40") }, "slider", "40"},
		{"request id", func(l *Logger) *Logger { return l.WithRequestID("req-1") }, "request_id", "req-1"},
		{"leg", func(l *Logger) *Logger { return l.WithLeg("leg-42") }, "leg_id", "leg-42"},
		{"component", func(l *Logger) *Logger { return l.WithComponent("prefetch") }, "component", "prefetch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

			tt.apply(base).Info().Msg("x")

			entry := decodeEntry(t, &buf)
			assert.Equal(t, tt.value, entry[tt.key])
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = ContextWithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "req-1", RequestIDFromContext(context.WithoutCancel(ctx)), "survives detaching for background work")
}

func TestNopAndOrNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Info().Msg("discarded")
		OrNop(nil).WithLeg("leg-1").Error().Msg("discarded")
	})

	l := Nop()
	assert.Same(t, l, OrNop(l))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "trip-search-client", cfg.ServiceName)
	assert.False(t, cfg.EnableCaller)
}
