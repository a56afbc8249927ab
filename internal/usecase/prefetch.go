package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
)

// PrefetchCoordinator warms a SearchSession with speculative leg searches.
// Prefetches never surface loading or error state; a loud search or silent
// refresh on the same leg cancels the ticket.
type PrefetchCoordinator struct {
	session *SearchSession
	limiter *rate.Limiter
	timeout time.Duration
	log     *logger.Logger

	wg sync.WaitGroup
}

// NewPrefetchCoordinator creates a coordinator bound to session.
func NewPrefetchCoordinator(session *SearchSession, log *logger.Logger, cfg *PrefetchConfig) *PrefetchCoordinator {
	c := DefaultPrefetchConfig()
	if cfg != nil {
		if cfg.Timeout > 0 {
			c.Timeout = cfg.Timeout
		}
		c.RatePerSecond = cfg.RatePerSecond
		if cfg.Burst > 0 {
			c.Burst = cfg.Burst
		}
	}

	limit := rate.Limit(c.RatePerSecond)
	if c.RatePerSecond <= 0 {
		limit = rate.Inf
	}

	return &PrefetchCoordinator{
		session: session,
		limiter: rate.NewLimiter(limit, c.Burst),
		timeout: c.Timeout,
		log:     logger.OrNop(log).WithComponent("prefetch"),
	}
}

// Prefetch starts a background search for legID and reports whether one was
// started. It is a no-op when the leg already has a result, a ticket, or a
// loud or silent search in flight.
func (p *PrefetchCoordinator) Prefetch(ctx context.Context, legID string) bool {
	opCtx, op, ok := p.session.claimPrefetch(ctx, legID, p.timeout)
	if !ok {
		metrics.SearchOperations.WithLabelValues(metrics.ModePrefetch, metrics.OutcomeSkipped).Inc()
		return false
	}

	p.wg.Add(1)
	metrics.PrefetchInFlight.Inc()
	go p.run(opCtx, op)
	return true
}

// PrefetchAll calls Prefetch for every leg and returns how many started.
func (p *PrefetchCoordinator) PrefetchAll(ctx context.Context, legIDs []string) int {
	started := 0
	for _, legID := range legIDs {
		if p.Prefetch(ctx, legID) {
			started++
		}
	}
	return started
}

// CancelAll cancels every outstanding prefetch ticket.
func (p *PrefetchCoordinator) CancelAll() {
	if n := p.session.cancelPrefetches(); n > 0 {
		p.log.Debug().Int("tickets", n).Msg("Cancelled prefetches")
	}
}

// Pending returns the legs with an outstanding prefetch ticket.
func (p *PrefetchCoordinator) Pending() []string {
	return p.session.State().Prefetching
}

// Wait blocks until every started prefetch has finished.
func (p *PrefetchCoordinator) Wait() {
	p.wg.Wait()
}

func (p *PrefetchCoordinator) run(ctx context.Context, op *operation) {
	defer p.wg.Done()
	defer metrics.PrefetchInFlight.Dec()
	defer op.cancel()

	log := p.log.WithLeg(op.legID)

	if err := p.limiter.Wait(ctx); err != nil {
		outcome := p.session.completePrefetch(op, nil, err)
		metrics.SearchOperations.WithLabelValues(op.mode, outcome).Inc()
		log.Debug().Err(err).Msg("Prefetch abandoned before start")
		return
	}

	result, err := p.session.call(ctx, op)
	outcome := p.session.completePrefetch(op, result, err)
	metrics.SearchOperations.WithLabelValues(op.mode, outcome).Inc()

	if err != nil {
		log.Debug().Err(err).Str("outcome", outcome).Msg("Prefetch did not complete")
		return
	}
	log.Debug().Str("outcome", outcome).Msg("Prefetch finished")
}
