// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/config"
)

// Config returns a valid configuration pointing at baseURL with in-memory
// storage, unpaced prefetching and timeouts short enough for tests.
func Config(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 20 * time.Second,
		},
		Backend: config.BackendConfig{
			BaseURL:        baseURL,
			Token:          "test-token",
			SearchTimeout:  10 * time.Second,
			RescoreTimeout: 5 * time.Second,
			IntelTimeout:   5 * time.Second,
			ChatTimeout:    5 * time.Second,
			CreateTimeout:  5 * time.Second,
		},
		Search: config.SearchConfig{
			IncludeNearbyAirports: true,
			DefaultSlider:         50,
		},
		Prefetch: config.PrefetchConfig{
			Rate:    0,
			Burst:   1,
			Timeout: 10 * time.Second,
		},
		Storage: config.StorageConfig{
			Driver:     "memory",
			RedisAddr:  "localhost:6379",
			SQLitePath: "trip-search.db",
			SessionTTL: time.Hour,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
		App:     config.AppConfig{Env: "development"},
	}
}

// DecodeData unmarshals the data of a success envelope into out.
// It fails the test if body is not a success envelope.
func DecodeData(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to decode response %s: %v", body, err)
	}
	if !envelope.Success {
		t.Fatalf("Expected a success envelope, got %s", body)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("Failed to decode data %s: %v", envelope.Data, err)
	}
}

// DecodeError returns the error of a failure envelope.
// It fails the test if body is not a failure envelope.
func DecodeError(t *testing.T, body []byte) response.ErrorDetail {
	t.Helper()
	var envelope response.Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to decode response %s: %v", body, err)
	}
	if envelope.Success || envelope.Error == nil {
		t.Fatalf("Expected a failure envelope, got %s", body)
	}
	return *envelope.Error
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
