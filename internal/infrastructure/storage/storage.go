// Package storage provides session-scoped key-value persistence for client
// state (search results, slider position, dialogue transcripts).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/corptravel/trip-search-client/internal/domain"
)

// Store is a byte-oriented key-value store scoped to one client session.
type Store interface {
	// Get returns the value for key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// GetJSON decodes the value under key into v. It reports false when the key
// does not exist.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
