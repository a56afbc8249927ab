package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
	"github.com/corptravel/trip-search-client/internal/infrastructure/timeutil"
)

const testTimeout = 2 * time.Second

// legResult builds a search result whose recommendation is the first option.
func legResult(optionIDs ...string) *domain.LegSearchResult {
	options := make([]domain.FlightOption, 0, len(optionIDs))
	for i, id := range optionIDs {
		options = append(options, domain.FlightOption{ID: id, Price: float64(300 + i*50)})
	}
	result := &domain.LegSearchResult{
		AllOptions: options,
		PriceCalendar: &domain.PriceCalendar{
			Dates:         map[string]domain.CalendarDay{"2026-03-10": {MinPrice: 300}},
			CheapestDate:  "2026-03-10",
			CheapestPrice: 300,
		},
		Alternatives: domain.Alternatives{Cheaper: []domain.FlightOption{{ID: "alt-cheap", Price: 250}}},
		Metadata:     domain.SearchMetadata{SearchTimeMs: 900, TotalOptions: len(options)},
	}
	if len(options) > 0 {
		rec := options[0]
		result.Recommendation = &rec
	}
	return result
}

// gate holds a stubbed backend call until the test releases it.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) waitEntered(t *testing.T) {
	t.Helper()
	select {
	case <-g.entered:
	case <-time.After(testTimeout):
		t.Fatal("backend call did not start")
	}
}

func (g *gate) open() {
	close(g.release)
}

// searchAfter returns a SearchLeg stub that resolves with result once the gate
// opens, regardless of cancellation. It models a response that arrives late.
func searchAfter(g *gate, result *domain.LegSearchResult) func(context.Context, string, domain.SearchLegRequest) (*domain.LegSearchResult, error) {
	return func(context.Context, string, domain.SearchLegRequest) (*domain.LegSearchResult, error) {
		close(g.entered)
		<-g.release
		return result, nil
	}
}

// searchUntilCancelled returns a SearchLeg stub that blocks until its context
// is done.
func searchUntilCancelled(g *gate) func(context.Context, string, domain.SearchLegRequest) (*domain.LegSearchResult, error) {
	return func(ctx context.Context, _ string, _ domain.SearchLegRequest) (*domain.LegSearchResult, error) {
		close(g.entered)
		<-ctx.Done()
		return nil, ctx.Err()
	}
}

// async runs fn in a goroutine and returns a channel closed when it returns.
func async(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(testTimeout):
		t.Fatal("operation did not finish")
	}
}

func newTestSession(backend domain.SearchBackend) (*SearchSession, *storage.MemoryStore, *timeutil.MockClock) {
	store := storage.NewMemoryStore()
	clock := timeutil.NewMockClockFromString("2026-02-01T09:00:00Z")
	cfg := DefaultSessionConfig()
	cfg.Clock = clock
	return NewSearchSession(backend, store, nil, &cfg), store, clock
}
