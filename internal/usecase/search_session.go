package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
)

const (
	// SearchResultsKey is the storage key for persisted results and slider.
	SearchResultsKey = "trip-search-results"

	// MsgSearchFailed is shown when a loud search fails without a backend detail.
	MsgSearchFailed = "Search failed. Please try again."

	SliderMin = 0.0
	SliderMax = 100.0
)

var errEmptyResult = errors.New("backend returned an empty result")

// SearchState is a point-in-time view of the session for rendering.
type SearchState struct {
	ActiveLegID    string     `json:"active_leg_id,omitempty"`
	Loading        bool       `json:"loading"`
	Error          string     `json:"error,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	Rescoring      bool       `json:"rescoring"`
	SliderPosition float64    `json:"slider_position"`
	Refreshing     []string   `json:"refreshing"`
	Prefetching    []string   `json:"prefetching"`
	LegIDs         []string   `json:"leg_ids"`
}

// operation is one in-flight backend call. Pointer identity tells a current
// operation from a superseded one.
type operation struct {
	legID      string
	mode       string
	generation uint64
	startedAt  time.Time
	cancel     context.CancelFunc
}

type persistedSearch struct {
	Results        map[string]*domain.LegSearchResult `json:"results"`
	SliderPosition float64                            `json:"slider_position"`
}

// SearchSession owns per-leg search results and orchestrates loud, silent and
// rescore operations against the search backend.
//
// At most one loud search exists at a time. Each leg has at most one silent
// refresh, one prefetch ticket and one rescore in flight. A response is applied
// only while its operation is still the registered one for its slot.
type SearchSession struct {
	backend domain.SearchBackend
	cfg     SessionConfig
	log     *logger.Logger
	writer  *snapshotWriter

	mu         sync.Mutex
	generation uint64
	version    uint64
	results    map[string]*domain.LegSearchResult
	slider     float64
	loud       *operation
	silent     map[string]*operation
	tickets    map[string]*operation
	rescores   map[string]*operation
	loading    bool
	errMsg     string
	startedAt  time.Time
	activeLeg  string
}

// NewSearchSession creates a SearchSession. Call Restore to hydrate persisted
// results.
func NewSearchSession(backend domain.SearchBackend, store storage.Store, log *logger.Logger, cfg *SessionConfig) *SearchSession {
	c := cfg.withDefaults()
	log = logger.OrNop(log).WithComponent("search_session")
	return &SearchSession{
		backend:  backend,
		cfg:      c,
		log:      log,
		writer:   newSnapshotWriter(store, SearchResultsKey, log),
		results:  make(map[string]*domain.LegSearchResult),
		slider:   c.DefaultSlider,
		silent:   make(map[string]*operation),
		tickets:  make(map[string]*operation),
		rescores: make(map[string]*operation),
	}
}

// Restore loads results and slider position persisted by a previous session.
func (s *SearchSession) Restore(ctx context.Context) error {
	var saved persistedSearch
	found, err := storage.GetJSON(ctx, s.writer.store, SearchResultsKey, &saved)
	if err != nil || !found {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for legID, result := range saved.Results {
		if result != nil {
			s.results[legID] = result
		}
	}
	if saved.SliderPosition >= SliderMin && saved.SliderPosition <= SliderMax {
		s.slider = saved.SliderPosition
	}
	s.log.Info().Int("legs", len(s.results)).Msg("Restored search results")
	return nil
}

// Search runs a loud search for legID and blocks until it completes or is
// superseded. It supersedes any other loud search and any silent refresh,
// prefetch or rescore for the same leg.
func (s *SearchSession) Search(ctx context.Context, legID string) {
	s.mu.Lock()
	if s.loud != nil {
		s.loud.cancel()
	}
	s.cancelLegLocked(legID)
	opCtx, op := s.newOperationLocked(ctx, legID, metrics.ModeLoud, s.cfg.SearchTimeout)
	s.loud = op
	s.loading = true
	s.errMsg = ""
	s.startedAt = op.startedAt
	s.activeLeg = legID
	s.mu.Unlock()
	defer op.cancel()

	log := s.log.WithLeg(legID)
	log.Debug().Uint64("generation", op.generation).Msg("Search started")

	result, err := s.call(opCtx, op)

	s.mu.Lock()
	if s.loud != op {
		s.mu.Unlock()
		s.record(op, metrics.OutcomeSuperseded)
		log.Debug().Uint64("generation", op.generation).Msg("Discarding superseded search response")
		return
	}
	s.loud = nil
	s.loading = false
	s.startedAt = time.Time{}

	switch {
	case err == nil:
		s.results[legID] = result
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.persist(snap)
		s.record(op, metrics.OutcomeSuccess)
		log.Info().Int("options", len(result.AllOptions)).Msg("Search completed")
	case errors.Is(err, context.Canceled):
		s.mu.Unlock()
		s.record(op, metrics.OutcomeCancelled)
		log.Debug().Msg("Search cancelled")
	default:
		s.errMsg = domain.UserMessage(err, MsgSearchFailed)
		s.mu.Unlock()
		s.record(op, metrics.OutcomeFailed)
		log.Warn().Err(err).Msg("Search failed")
	}
}

// Refresh re-fetches legID without affecting loading or error state. It
// cancels any loud search. Failures are logged and otherwise ignored.
func (s *SearchSession) Refresh(ctx context.Context, legID string) {
	s.mu.Lock()
	if s.loud != nil {
		s.loud.cancel()
		s.loud = nil
		s.resetLoudStateLocked()
	}
	s.cancelLegLocked(legID)
	opCtx, op := s.newOperationLocked(ctx, legID, metrics.ModeSilent, s.cfg.SearchTimeout)
	s.silent[legID] = op
	s.mu.Unlock()
	defer op.cancel()

	log := s.log.WithLeg(legID)
	result, err := s.call(opCtx, op)

	s.mu.Lock()
	if s.silent[legID] != op {
		s.mu.Unlock()
		s.record(op, metrics.OutcomeSuperseded)
		return
	}
	delete(s.silent, legID)
	if err != nil {
		s.mu.Unlock()
		s.record(op, outcomeOf(err))
		log.Debug().Err(err).Msg("Silent refresh failed")
		return
	}
	s.results[legID] = result
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
	s.record(op, metrics.OutcomeSuccess)
	log.Debug().Msg("Silent refresh completed")
}

// Cancel aborts the loud search, if any, and resets loading, error and start
// time. Silent refreshes and prefetches are unaffected.
func (s *SearchSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loud != nil {
		s.loud.cancel()
		s.loud = nil
	}
	s.resetLoudStateLocked()
}

// Stop cancels every operation in flight, loud or not, and keeps stored
// results. It is used on shutdown.
func (s *SearchSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loud != nil {
		s.loud.cancel()
		s.loud = nil
	}
	for _, slot := range []map[string]*operation{s.silent, s.tickets, s.rescores} {
		for _, op := range slot {
			op.cancel()
		}
	}
	s.resetLoudStateLocked()
}

// Rescore records the slider position and asks the backend to re-rank legID.
// Only the recommendation and option order of an existing result change. When
// no result exists the call still completes and nothing is stored.
func (s *SearchSession) Rescore(ctx context.Context, legID string, slider float64) {
	slider = clampSlider(slider)

	s.mu.Lock()
	if prev := s.rescores[legID]; prev != nil {
		prev.cancel()
	}
	opCtx, op := s.newOperationLocked(ctx, legID, metrics.ModeRescore, s.cfg.RescoreTimeout)
	s.rescores[legID] = op
	s.slider = slider
	snap := s.snapshotLocked()
	s.mu.Unlock()
	defer op.cancel()
	s.persist(snap)

	log := s.log.WithLeg(legID)
	start := time.Now()
	resp, err := s.backend.Rescore(opCtx, legID, slider)
	metrics.SearchDuration.WithLabelValues(op.mode).Observe(time.Since(start).Seconds())
	if err == nil && resp == nil {
		err = errEmptyResult
	}

	s.mu.Lock()
	if s.rescores[legID] != op {
		s.mu.Unlock()
		s.record(op, metrics.OutcomeSuperseded)
		return
	}
	delete(s.rescores, legID)
	if err != nil {
		s.mu.Unlock()
		s.record(op, outcomeOf(err))
		log.Debug().Err(err).Float64("slider", slider).Msg("Rescore failed")
		return
	}
	existing, ok := s.results[legID]
	if !ok {
		s.mu.Unlock()
		s.record(op, metrics.OutcomeSkipped)
		log.Debug().Msg("No result to rescore")
		return
	}
	merged := existing.WithRescore(*resp)
	s.results[legID] = &merged
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
	s.record(op, metrics.OutcomeSuccess)
}

// Clear cancels every operation, drops all results, resets the slider and
// removes the persisted snapshot.
func (s *SearchSession) Clear(ctx context.Context) error {
	s.mu.Lock()
	if s.loud != nil {
		s.loud.cancel()
		s.loud = nil
	}
	for _, slot := range []map[string]*operation{s.silent, s.tickets, s.rescores} {
		for legID, op := range slot {
			op.cancel()
			delete(slot, legID)
		}
	}
	s.resetLoudStateLocked()
	s.activeLeg = ""
	s.results = make(map[string]*domain.LegSearchResult)
	s.slider = s.cfg.DefaultSlider
	s.version++
	version := s.version
	s.mu.Unlock()

	return s.writer.clear(ctx, version)
}

// Result returns the stored result for legID. The result must not be modified.
func (s *SearchSession) Result(legID string) (*domain.LegSearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[legID]
	return r, ok
}

// SliderPosition returns the last requested slider position.
func (s *SearchSession) SliderPosition() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slider
}

// State returns a snapshot of the session.
func (s *SearchSession) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SearchState{
		ActiveLegID:    s.activeLeg,
		Loading:        s.loading,
		Error:          s.errMsg,
		Rescoring:      len(s.rescores) > 0,
		SliderPosition: s.slider,
		Refreshing:     sortedKeys(s.silent),
		Prefetching:    sortedKeys(s.tickets),
		LegIDs:         sortedKeys(s.results),
	}
	if !s.startedAt.IsZero() {
		t := s.startedAt
		state.StartedAt = &t
	}
	return state
}

// request builds the search body sent for every leg search.
func (s *SearchSession) request() domain.SearchLegRequest {
	return domain.SearchLegRequest{IncludeNearbyAirports: s.cfg.IncludeNearbyAirports}
}

func (s *SearchSession) call(ctx context.Context, op *operation) (*domain.LegSearchResult, error) {
	start := time.Now()
	result, err := s.backend.SearchLeg(ctx, op.legID, s.request())
	metrics.SearchDuration.WithLabelValues(op.mode).Observe(time.Since(start).Seconds())
	if err == nil && result == nil {
		err = errEmptyResult
	}
	return result, err
}

func (s *SearchSession) record(op *operation, outcome string) {
	metrics.SearchOperations.WithLabelValues(op.mode, outcome).Inc()
}

func (s *SearchSession) newOperationLocked(parent context.Context, legID, mode string, timeout time.Duration) (context.Context, *operation) {
	s.generation++
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, &operation{
		legID:      legID,
		mode:       mode,
		generation: s.generation,
		startedAt:  s.cfg.Clock.Now(),
		cancel:     cancel,
	}
}

// cancelLegLocked cancels the silent refresh, prefetch ticket and rescore
// registered for legID.
func (s *SearchSession) cancelLegLocked(legID string) {
	for _, slot := range []map[string]*operation{s.silent, s.tickets, s.rescores} {
		if op, ok := slot[legID]; ok {
			op.cancel()
			delete(slot, legID)
		}
	}
}

func (s *SearchSession) resetLoudStateLocked() {
	s.loading = false
	s.errMsg = ""
	s.startedAt = time.Time{}
}

func (s *SearchSession) snapshotLocked() searchSnapshot {
	s.version++
	results := make(map[string]*domain.LegSearchResult, len(s.results))
	for k, v := range s.results {
		results[k] = v
	}
	return searchSnapshot{
		version: s.version,
		data:    persistedSearch{Results: results, SliderPosition: s.slider},
	}
}

func (s *SearchSession) persist(snap searchSnapshot) {
	s.writer.write(snap.version, snap.data)
}

type searchSnapshot struct {
	version uint64
	data    persistedSearch
}

// claimPrefetch registers a prefetch ticket for legID unless the leg already
// has a result, a ticket, or a loud or silent search in flight.
func (s *SearchSession) claimPrefetch(parent context.Context, legID string, timeout time.Duration) (context.Context, *operation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[legID]; ok {
		return nil, nil, false
	}
	if _, ok := s.tickets[legID]; ok {
		return nil, nil, false
	}
	if _, ok := s.silent[legID]; ok {
		return nil, nil, false
	}
	if s.loud != nil && s.loud.legID == legID {
		return nil, nil, false
	}

	ctx, op := s.newOperationLocked(parent, legID, metrics.ModePrefetch, timeout)
	s.tickets[legID] = op
	return ctx, op, true
}

// completePrefetch applies a prefetch response if its ticket is still current
// and returns the outcome. Failures never touch loading or error state.
func (s *SearchSession) completePrefetch(op *operation, result *domain.LegSearchResult, err error) string {
	if err == nil && result == nil {
		err = errEmptyResult
	}

	s.mu.Lock()
	if s.tickets[op.legID] != op {
		s.mu.Unlock()
		return metrics.OutcomeSuperseded
	}
	delete(s.tickets, op.legID)
	if err != nil {
		s.mu.Unlock()
		return outcomeOf(err)
	}
	s.results[op.legID] = result
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
	return metrics.OutcomeSuccess
}

// cancelPrefetches cancels every outstanding prefetch ticket.
func (s *SearchSession) cancelPrefetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.tickets)
	for legID, op := range s.tickets {
		op.cancel()
		delete(s.tickets, legID)
	}
	return n
}

func outcomeOf(err error) string {
	if errors.Is(err, context.Canceled) {
		return metrics.OutcomeCancelled
	}
	return metrics.OutcomeFailed
}

func clampSlider(v float64) float64 {
	switch {
	case v < SliderMin:
		return SliderMin
	case v > SliderMax:
		return SliderMax
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
