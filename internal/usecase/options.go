// Package usecase contains the client-side core: per-leg search orchestration,
// speculative prefetching, price intelligence caching and the conversational
// trip builder. All remote computation is delegated to the domain backends.
package usecase

import (
	"time"

	"github.com/corptravel/trip-search-client/internal/infrastructure/timeutil"
)

// Default timeouts and values.
const (
	DefaultSearchTimeout   = 5 * time.Minute
	DefaultRescoreTimeout  = 30 * time.Second
	DefaultPrefetchTimeout = 2 * time.Minute
	DefaultIntelTimeout    = 15 * time.Second
	DefaultTurnTimeout     = 60 * time.Second
	DefaultCreateTimeout   = 30 * time.Second

	DefaultSliderPosition = 50.0

	// persistTimeout bounds a single write to session storage.
	persistTimeout = 5 * time.Second
)

// SessionConfig configures a SearchSession.
type SessionConfig struct {
	SearchTimeout         time.Duration
	RescoreTimeout        time.Duration
	IncludeNearbyAirports bool
	DefaultSlider         float64
	Clock                 timeutil.Clock
}

// DefaultSessionConfig returns the default SearchSession configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		SearchTimeout:         DefaultSearchTimeout,
		RescoreTimeout:        DefaultRescoreTimeout,
		IncludeNearbyAirports: true,
		DefaultSlider:         DefaultSliderPosition,
		Clock:                 timeutil.NewRealClock(),
	}
}

func (c *SessionConfig) withDefaults() SessionConfig {
	cfg := DefaultSessionConfig()
	if c == nil {
		return cfg
	}
	if c.SearchTimeout > 0 {
		cfg.SearchTimeout = c.SearchTimeout
	}
	if c.RescoreTimeout > 0 {
		cfg.RescoreTimeout = c.RescoreTimeout
	}
	if c.DefaultSlider >= SliderMin && c.DefaultSlider <= SliderMax && c.DefaultSlider != 0 {
		cfg.DefaultSlider = c.DefaultSlider
	}
	if c.Clock != nil {
		cfg.Clock = c.Clock
	}
	cfg.IncludeNearbyAirports = c.IncludeNearbyAirports
	return cfg
}

// PrefetchConfig configures a PrefetchCoordinator.
type PrefetchConfig struct {
	Timeout time.Duration

	// RatePerSecond paces speculative searches; zero or less means unpaced.
	RatePerSecond float64
	Burst         int
}

// DefaultPrefetchConfig returns the default prefetch configuration.
func DefaultPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{
		Timeout:       DefaultPrefetchTimeout,
		RatePerSecond: 2,
		Burst:         2,
	}
}

// IntelConfig configures a PriceIntelCache.
type IntelConfig struct {
	Timeout time.Duration
	Clock   timeutil.Clock
}

// DialogueConfig configures a TripBuilder.
type DialogueConfig struct {
	TurnTimeout   time.Duration
	CreateTimeout time.Duration
}
