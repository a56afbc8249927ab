package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/retry"
)

// Supported drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config selects and configures a Store.
type Config struct {
	Driver     string
	Redis      RedisConfig
	SQLitePath string
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Open builds the configured Store and, for networked drivers, waits until it
// answers a ping.
func Open(ctx context.Context, cfg Config, log *logger.Logger) (Store, error) {
	log = logger.OrNop(log)

	var s Store
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverRedis:
		s = NewRedisStore(cfg.Redis)
	case DriverSQLite:
		sq, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s = sq
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	policy := retry.StartupPolicy
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).
			Str("driver", cfg.Driver).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Storage not ready, retrying")
	}

	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		return Ping(ctx, s)
	})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("connect %s storage: %w", cfg.Driver, err)
	}
	return s, nil
}

// Ping checks that s is reachable. Stores without a remote backend always are.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
