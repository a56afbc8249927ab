// Package retry runs infrastructure probes with exponential backoff.
//
// User-facing operations (searches, lookups, chat turns) are never retried
// automatically; this package is only used to wait for storage backends at
// startup.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy describes how often and how long to retry.
type Policy struct {
	// MaxAttempts includes the first attempt.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFactor adds up to this fraction of the delay at random (0..1).
	JitterFactor float64

	// OnRetry, if set, is called before sleeping between attempts.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// StartupPolicy is used when probing storage backends at process start.
var StartupPolicy = Policy{
	MaxAttempts:  5,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     3 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do calls fn until it succeeds, returns a Permanent error, the attempts are
// exhausted, or ctx is done. It returns the last error.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		if IsPermanent(err) || attempt == attempts {
			break
		}

		wait := p.delay(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

// delay returns the wait after the given (1-based) failed attempt.
func (p Policy) delay(attempt int) time.Duration {
	d := float64(p.InitialDelay)
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	for i := 1; i < attempt; i++ {
		d *= mult
	}
	if p.JitterFactor > 0 {
		d += rand.Float64() * d * p.JitterFactor
	}
	if p.MaxDelay > 0 && time.Duration(d) > p.MaxDelay {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// Permanent marks an error that must not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err as permanent. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err was marked permanent.
func IsPermanent(err error) bool {
	var p *Permanent
	return errors.As(err, &p)
}
