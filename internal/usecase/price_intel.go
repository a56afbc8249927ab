package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
	"github.com/corptravel/trip-search-client/internal/infrastructure/timeutil"
)

// IntelKind names one of the price intelligence tables.
type IntelKind string

const (
	KindCalendar IntelKind = "calendar"
	KindMatrix   IntelKind = "matrix"
	KindAdvisor  IntelKind = "advisor"
	KindTrend    IntelKind = "trend"
	KindContext  IntelKind = "context"
)

// IntelKinds lists every kind in display order.
var IntelKinds = []IntelKind{KindCalendar, KindMatrix, KindAdvisor, KindTrend, KindContext}

// ErrUnknownIntelKind is returned by Clear for an unrecognised kind.
var ErrUnknownIntelKind = errors.New("unknown price intelligence kind")

// IntelEntry is the cached state of one intelligence key.
type IntelEntry[T any] struct {
	Value     T         `json:"value"`
	HasValue  bool      `json:"has_value"`
	Loading   bool      `json:"loading"`
	Failed    bool      `json:"failed"`
	FetchedAt time.Time `json:"fetched_at,omitempty"`
}

type intelTable[T any] struct {
	kind    IntelKind
	entries map[string]*IntelEntry[T]

	// empty reports a resolved value that should be fetched again.
	empty func(T) bool

	// fallback, when set, is stored on failure instead of marking the entry failed.
	fallback *T
}

func newIntelTable[T any](kind IntelKind, empty func(T) bool, fallback *T) *intelTable[T] {
	return &intelTable[T]{
		kind:     kind,
		entries:  make(map[string]*IntelEntry[T]),
		empty:    empty,
		fallback: fallback,
	}
}

func (t *intelTable[T]) stale(e *IntelEntry[T]) bool {
	if e.Failed || !e.HasValue {
		return true
	}
	return t.empty != nil && t.empty(e.Value)
}

func (t *intelTable[T]) reset() {
	t.entries = make(map[string]*IntelEntry[T])
}

// PriceIntelCache memoises the per-leg price intelligence lookups. Concurrent
// loads of one key share a single request; failed or empty entries are
// retried on the next load; a clear while a request is in flight discards
// its response.
type PriceIntelCache struct {
	backend domain.IntelBackend
	timeout time.Duration
	clock   timeutil.Clock
	log     *logger.Logger

	mu       sync.Mutex
	calendar *intelTable[domain.MonthCalendar]
	matrix   *intelTable[domain.PriceMatrix]
	advisor  *intelTable[domain.PriceAdvice]
	trend    *intelTable[domain.PriceTrend]
	priceCtx *intelTable[domain.PriceContext]
}

// NewPriceIntelCache creates an empty cache.
func NewPriceIntelCache(backend domain.IntelBackend, log *logger.Logger, cfg *IntelConfig) *PriceIntelCache {
	c := &PriceIntelCache{
		backend: backend,
		timeout: DefaultIntelTimeout,
		clock:   timeutil.NewRealClock(),
		log:     logger.OrNop(log).WithComponent("price_intel"),
	}
	if cfg != nil {
		if cfg.Timeout > 0 {
			c.timeout = cfg.Timeout
		}
		if cfg.Clock != nil {
			c.clock = cfg.Clock
		}
	}

	unavailable := domain.UnavailablePriceContext
	c.calendar = newIntelTable(KindCalendar, domain.MonthCalendar.IsEmpty, nil)
	c.matrix = newIntelTable(KindMatrix, domain.PriceMatrix.IsEmpty, nil)
	c.advisor = newIntelTable[domain.PriceAdvice](KindAdvisor, nil, nil)
	c.trend = newIntelTable[domain.PriceTrend](KindTrend, nil, nil)
	c.priceCtx = newIntelTable[domain.PriceContext](KindContext, nil, &unavailable)
	return c
}

// CalendarKey is the cache key of a leg's month calendar.
func CalendarKey(legID string, year, month int) string {
	return legID + ":" + timeutil.MonthKey(year, month)
}

// ContextKey is the cache key of a leg's price context for a date.
func ContextKey(legID, date string) string {
	return legID + ":" + date
}

// LoadCalendar fetches the month calendar unless a usable entry exists or a
// fetch is in flight. It reports whether this call performed a fetch.
func (c *PriceIntelCache) LoadCalendar(ctx context.Context, legID string, year, month int) (bool, error) {
	if err := timeutil.ValidateMonth(year, month); err != nil {
		return false, err
	}
	return load(ctx, c, c.calendar, CalendarKey(legID, year, month), func(ctx context.Context) (*domain.MonthCalendar, error) {
		return c.backend.MonthCalendar(ctx, legID, year, month)
	}), nil
}

// LoadMatrix fetches the date by airline price matrix for legID.
func (c *PriceIntelCache) LoadMatrix(ctx context.Context, legID string) bool {
	return load(ctx, c, c.matrix, legID, func(ctx context.Context) (*domain.PriceMatrix, error) {
		return c.backend.PriceMatrix(ctx, legID)
	})
}

// LoadAdvisor fetches the booking advice for legID.
func (c *PriceIntelCache) LoadAdvisor(ctx context.Context, legID string) bool {
	return load(ctx, c, c.advisor, legID, func(ctx context.Context) (*domain.PriceAdvice, error) {
		return c.backend.PriceAdvisor(ctx, legID)
	})
}

// LoadTrend fetches the price trend for legID.
func (c *PriceIntelCache) LoadTrend(ctx context.Context, legID string) bool {
	return load(ctx, c, c.trend, legID, func(ctx context.Context) (*domain.PriceTrend, error) {
		return c.backend.PriceTrend(ctx, legID)
	})
}

// LoadContext fetches the historical price context for legID on date. A
// failed fetch resolves to domain.UnavailablePriceContext and is not retried.
func (c *PriceIntelCache) LoadContext(ctx context.Context, legID, date string) (bool, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return false, err
	}
	return load(ctx, c, c.priceCtx, ContextKey(legID, date), func(ctx context.Context) (*domain.PriceContext, error) {
		return c.backend.PriceContext(ctx, legID, date)
	}), nil
}

// LoadLeg loads every intelligence kind for legID around date concurrently.
func (c *PriceIntelCache) LoadLeg(ctx context.Context, legID, date string) error {
	year, month, err := timeutil.YearMonth(date)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := c.LoadCalendar(gctx, legID, year, month)
		return err
	})
	g.Go(func() error {
		c.LoadMatrix(gctx, legID)
		return nil
	})
	g.Go(func() error {
		c.LoadAdvisor(gctx, legID)
		return nil
	})
	g.Go(func() error {
		c.LoadTrend(gctx, legID)
		return nil
	})
	g.Go(func() error {
		_, err := c.LoadContext(gctx, legID, date)
		return err
	})
	return g.Wait()
}

// Calendar returns the cached month calendar entry.
func (c *PriceIntelCache) Calendar(legID string, year, month int) (IntelEntry[domain.MonthCalendar], bool) {
	return get(c, c.calendar, CalendarKey(legID, year, month))
}

// Matrix returns the cached price matrix entry.
func (c *PriceIntelCache) Matrix(legID string) (IntelEntry[domain.PriceMatrix], bool) {
	return get(c, c.matrix, legID)
}

// Advisor returns the cached booking advice entry.
func (c *PriceIntelCache) Advisor(legID string) (IntelEntry[domain.PriceAdvice], bool) {
	return get(c, c.advisor, legID)
}

// Trend returns the cached price trend entry.
func (c *PriceIntelCache) Trend(legID string) (IntelEntry[domain.PriceTrend], bool) {
	return get(c, c.trend, legID)
}

// Context returns the cached price context entry.
func (c *PriceIntelCache) Context(legID, date string) (IntelEntry[domain.PriceContext], bool) {
	return get(c, c.priceCtx, ContextKey(legID, date))
}

// Clear empties one table. In-flight responses for it are discarded.
func (c *PriceIntelCache) Clear(kind IntelKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch kind {
	case KindCalendar:
		c.calendar.reset()
	case KindMatrix:
		c.matrix.reset()
	case KindAdvisor:
		c.advisor.reset()
	case KindTrend:
		c.trend.reset()
	case KindContext:
		c.priceCtx.reset()
	default:
		return ErrUnknownIntelKind
	}
	c.log.Debug().Str("kind", string(kind)).Msg("Cleared intelligence table")
	return nil
}

// ClearAll empties every table.
func (c *PriceIntelCache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calendar.reset()
	c.matrix.reset()
	c.advisor.reset()
	c.trend.reset()
	c.priceCtx.reset()
}

func load[T any](ctx context.Context, c *PriceIntelCache, t *intelTable[T], key string, fetch func(context.Context) (*T, error)) bool {
	c.mu.Lock()
	e, ok := t.entries[key]
	if ok && (e.Loading || !t.stale(e)) {
		c.mu.Unlock()
		metrics.IntelCacheHits.WithLabelValues(string(t.kind)).Inc()
		return false
	}
	if !ok {
		e = &IntelEntry[T]{}
		t.entries[key] = e
	}
	e.Loading = true
	e.Failed = false
	c.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	v, err := fetch(fetchCtx)
	cancel()
	if err == nil && v == nil {
		err = errEmptyResult
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.log.With("kind", string(t.kind)).With("key", key)
	if t.entries[key] != e {
		log.Debug().Msg("Discarding intelligence response after clear")
		return true
	}
	e.Loading = false

	switch {
	case err == nil:
		e.Value = *v
		e.HasValue = true
		e.FetchedAt = c.clock.Now()
		metrics.IntelFetches.WithLabelValues(string(t.kind), metrics.OutcomeSuccess).Inc()
	case errors.Is(err, context.Canceled):
		// The caller went away; leave the key unresolved so the next load retries.
		if !e.HasValue {
			delete(t.entries, key)
		}
		metrics.IntelFetches.WithLabelValues(string(t.kind), metrics.OutcomeCancelled).Inc()
	case t.fallback != nil:
		e.Value = *t.fallback
		e.HasValue = true
		e.FetchedAt = c.clock.Now()
		metrics.IntelFetches.WithLabelValues(string(t.kind), metrics.OutcomeFailed).Inc()
		log.Debug().Err(err).Msg("Intelligence unavailable, storing fallback")
	default:
		e.Failed = true
		metrics.IntelFetches.WithLabelValues(string(t.kind), metrics.OutcomeFailed).Inc()
		log.Debug().Err(err).Msg("Intelligence fetch failed")
	}
	return true
}

func get[T any](c *PriceIntelCache, t *intelTable[T], key string) (IntelEntry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := t.entries[key]
	if !ok {
		return IntelEntry[T]{}, false
	}
	return *e, true
}
