package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
)

// DialogueState is the lifecycle state of the trip-builder dialogue.
type DialogueState string

const (
	StateEmpty      DialogueState = "empty"
	StateCollecting DialogueState = "collecting"
	StateReady      DialogueState = "ready"
)

const (
	// DialogueDraftKey is the storage key of the in-progress dialogue.
	DialogueDraftKey = "trip-builder-dialogue"

	// MsgAssistantApology is appended as the assistant turn when a chat turn fails.
	MsgAssistantApology = "Sorry, I couldn't process that. Please try again."

	DefaultFlexibilityDays = 3
	DefaultCabinClass      = "economy"
	DefaultPassengers      = 1

	transcriptKeyPrefix = "trip-chat:"
)

var errEmptyTrip = errors.New("backend returned an empty trip")

var quickReplySuggestions = map[string][]string{
	"cabin_class": {"Economy", "Premium economy", "Business", "First"},
	"return_date": {"One-way", "Same week", "Next week"},
	"passengers":  {"Just me", "2 travelers", "3 travelers"},
	"flexibility": {"Exact dates", "+/- 1 day", "+/- 3 days"},
}

// TranscriptKey is the storage key of the transcript saved for a created trip.
func TranscriptKey(tripID string) string {
	return transcriptKeyPrefix + tripID
}

// DialogueSnapshot is a point-in-time view of the dialogue for rendering.
type DialogueSnapshot struct {
	SessionID     string                    `json:"session_id"`
	State         DialogueState             `json:"state"`
	Turns         []domain.ConversationTurn `json:"turns"`
	PartialTrip   *domain.PartialTrip       `json:"partial_trip,omitempty"`
	MissingFields []string                  `json:"missing_fields"`
	Loading       bool                      `json:"loading"`
	Creating      bool                      `json:"creating"`
	QuickReplies  []string                  `json:"quick_replies"`
}

type persistedDialogue struct {
	SessionID     string                    `json:"session_id"`
	Turns         []domain.ConversationTurn `json:"turns"`
	PartialTrip   *domain.PartialTrip       `json:"partial_trip,omitempty"`
	MissingFields []string                  `json:"missing_fields,omitempty"`
	TripReady     bool                      `json:"trip_ready"`
}

// TripBuilder drives the conversational trip builder. The backend is
// stateless, so every turn carries the prior history and the current partial
// trip. Each reset starts a new session id; responses belonging to an older
// session are discarded.
type TripBuilder struct {
	backend domain.TripBackend
	store   storage.Store
	cfg     DialogueConfig
	log     *logger.Logger
	writer  *snapshotWriter

	mu        sync.Mutex
	version   uint64
	sessionID string
	turns     []domain.ConversationTurn
	partial   *domain.PartialTrip
	missing   []string
	ready     bool
	loading   bool
	creating  bool
}

// NewTripBuilder creates an empty dialogue. Call Restore to resume a draft.
func NewTripBuilder(backend domain.TripBackend, store storage.Store, log *logger.Logger, cfg *DialogueConfig) *TripBuilder {
	c := DialogueConfig{TurnTimeout: DefaultTurnTimeout, CreateTimeout: DefaultCreateTimeout}
	if cfg != nil {
		if cfg.TurnTimeout > 0 {
			c.TurnTimeout = cfg.TurnTimeout
		}
		if cfg.CreateTimeout > 0 {
			c.CreateTimeout = cfg.CreateTimeout
		}
	}
	log = logger.OrNop(log).WithComponent("trip_builder")
	return &TripBuilder{
		backend:   backend,
		store:     store,
		cfg:       c,
		log:       log,
		writer:    newSnapshotWriter(store, DialogueDraftKey, log),
		sessionID: uuid.NewString(),
	}
}

// Restore resumes a draft saved by a previous session.
func (b *TripBuilder) Restore(ctx context.Context) error {
	var saved persistedDialogue
	found, err := storage.GetJSON(ctx, b.store, DialogueDraftKey, &saved)
	if err != nil || !found {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if saved.SessionID != "" {
		b.sessionID = saved.SessionID
	}
	b.turns = saved.Turns
	b.partial = saved.PartialTrip
	b.missing = saved.MissingFields
	b.ready = saved.TripReady
	b.log.Info().Int("turns", len(b.turns)).Msg("Restored dialogue draft")
	return nil
}

// SendMessage appends the user's message, sends one turn to the backend and
// appends the reply. The partial trip, missing fields and readiness are
// replaced wholesale by the response. On failure an apology turn is appended
// and the structured state is kept.
func (b *TripBuilder) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyMessage
	}

	b.mu.Lock()
	if b.loading || b.creating {
		b.mu.Unlock()
		return domain.ErrDialogueBusy
	}
	session := b.sessionID
	req := domain.ChatRequest{
		Message:             text,
		ConversationHistory: cloneTurns(b.turns),
		PartialTrip:         b.partial,
	}
	b.turns = append(b.turns, domain.ConversationTurn{Role: domain.RoleUser, Content: text})
	b.loading = true
	version, draft := b.draftLocked()
	b.mu.Unlock()
	b.writer.write(version, draft)

	log := b.log.With("session_id", session)

	turnCtx, cancel := context.WithTimeout(ctx, b.cfg.TurnTimeout)
	resp, err := b.backend.ChatTurn(turnCtx, req)
	cancel()
	if err == nil && resp == nil {
		err = errEmptyResult
	}

	b.mu.Lock()
	if b.sessionID != session {
		b.mu.Unlock()
		metrics.DialogueTurns.WithLabelValues(metrics.OutcomeSuperseded).Inc()
		log.Debug().Msg("Discarding reply for a reset dialogue")
		return nil
	}
	b.loading = false
	if err != nil {
		b.turns = append(b.turns, domain.ConversationTurn{Role: domain.RoleAssistant, Content: MsgAssistantApology})
		metrics.DialogueTurns.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn().Err(err).Msg("Chat turn failed")
	} else {
		b.partial = resp.PartialTrip
		b.missing = resp.MissingFields
		b.ready = resp.TripReady
		b.turns = append(b.turns, domain.ConversationTurn{Role: domain.RoleAssistant, Content: resp.Reply})
		metrics.DialogueTurns.WithLabelValues(metrics.OutcomeSuccess).Inc()
		log.Debug().Bool("trip_ready", resp.TripReady).Strs("missing_fields", resp.MissingFields).Msg("Chat turn completed")
	}
	version, draft = b.draftLocked()
	b.mu.Unlock()
	b.writer.write(version, draft)
	return nil
}

// CreateFromChat creates a trip from the ready partial trip. On success the
// transcript is saved under TranscriptKey and the dialogue is reset. On
// failure the dialogue stays ready so the user can retry.
func (b *TripBuilder) CreateFromChat(ctx context.Context) (*domain.Trip, error) {
	b.mu.Lock()
	if b.stateLocked() != StateReady {
		b.mu.Unlock()
		return nil, domain.ErrTripNotReady
	}
	if b.loading || b.creating {
		b.mu.Unlock()
		return nil, domain.ErrDialogueBusy
	}
	b.creating = true
	session := b.sessionID
	req := buildCreateRequest(b.partial)
	transcript := cloneTurns(b.turns)
	b.mu.Unlock()

	createCtx, cancel := context.WithTimeout(ctx, b.cfg.CreateTimeout)
	trip, err := b.backend.CreateTrip(createCtx, req)
	cancel()
	if err == nil && trip == nil {
		err = errEmptyTrip
	}

	if err != nil {
		b.mu.Lock()
		if b.sessionID == session {
			b.creating = false
		}
		b.mu.Unlock()
		b.log.Warn().Err(err).Msg("Trip creation failed")
		return nil, fmt.Errorf("create trip: %w", err)
	}

	saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	if err := storage.SetJSON(saveCtx, b.store, TranscriptKey(trip.ID), transcript); err != nil {
		b.log.Warn().Err(err).Str("trip_id", trip.ID).Msg("Failed to save chat transcript")
	}
	cancelSave()

	b.mu.Lock()
	var version uint64
	reset := b.sessionID == session
	if reset {
		version = b.resetLocked()
	}
	b.mu.Unlock()
	if reset {
		if err := b.writer.clear(context.WithoutCancel(ctx), version); err != nil {
			b.log.Warn().Err(err).Msg("Failed to clear dialogue draft")
		}
	}

	b.log.Info().Str("trip_id", trip.ID).Int("legs", len(trip.Legs)).Msg("Trip created from chat")
	return trip, nil
}

// Reset starts a new, empty dialogue. A turn in flight is discarded.
func (b *TripBuilder) Reset(ctx context.Context) error {
	b.mu.Lock()
	version := b.resetLocked()
	b.mu.Unlock()
	return b.writer.clear(ctx, version)
}

// Transcript returns the conversation saved when tripID was created.
func (b *TripBuilder) Transcript(ctx context.Context, tripID string) ([]domain.ConversationTurn, error) {
	var turns []domain.ConversationTurn
	found, err := storage.GetJSON(ctx, b.store, TranscriptKey(tripID), &turns)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return turns, nil
}

// State returns the dialogue lifecycle state.
func (b *TripBuilder) State() DialogueState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

// QuickReplies returns suggested answers for the fields still missing.
func (b *TripBuilder) QuickReplies() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return quickReplies(b.missing)
}

// Snapshot returns a copy of the dialogue for rendering.
func (b *TripBuilder) Snapshot() DialogueSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return DialogueSnapshot{
		SessionID:     b.sessionID,
		State:         b.stateLocked(),
		Turns:         cloneTurns(b.turns),
		PartialTrip:   b.partial,
		MissingFields: append([]string{}, b.missing...),
		Loading:       b.loading,
		Creating:      b.creating,
		QuickReplies:  quickReplies(b.missing),
	}
}

func (b *TripBuilder) stateLocked() DialogueState {
	switch {
	case b.ready && b.partial != nil && len(b.partial.Legs) > 0:
		return StateReady
	case len(b.turns) > 0:
		return StateCollecting
	default:
		return StateEmpty
	}
}

func (b *TripBuilder) resetLocked() uint64 {
	b.sessionID = uuid.NewString()
	b.turns = nil
	b.partial = nil
	b.missing = nil
	b.ready = false
	b.loading = false
	b.creating = false
	b.version++
	return b.version
}

func (b *TripBuilder) draftLocked() (uint64, persistedDialogue) {
	b.version++
	return b.version, persistedDialogue{
		SessionID:     b.sessionID,
		Turns:         cloneTurns(b.turns),
		PartialTrip:   b.partial,
		MissingFields: b.missing,
		TripReady:     b.ready,
	}
}

func buildCreateRequest(partial *domain.PartialTrip) domain.CreateTripRequest {
	req := domain.CreateTripRequest{Legs: make([]domain.CreateLegRequest, 0, len(partial.Legs))}
	for _, leg := range partial.Legs {
		out := domain.CreateLegRequest{
			OriginAirport:      firstNonEmpty(leg.OriginAirport, leg.OriginCity),
			DestinationAirport: firstNonEmpty(leg.DestinationAirport, leg.DestinationCity),
			PreferredDate:      leg.Date,
			FlexibilityDays:    DefaultFlexibilityDays,
			CabinClass:         DefaultCabinClass,
			Passengers:         DefaultPassengers,
		}
		if leg.FlexibilityDays != nil {
			out.FlexibilityDays = *leg.FlexibilityDays
		}
		if leg.CabinClass != "" {
			out.CabinClass = leg.CabinClass
		}
		if leg.Passengers > 0 {
			out.Passengers = leg.Passengers
		}
		req.Legs = append(req.Legs, out)
	}
	return req
}

func quickReplies(missing []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, field := range missing {
		if seen[field] {
			continue
		}
		seen[field] = true
		out = append(out, quickReplySuggestions[field]...)
	}
	return out
}

func cloneTurns(turns []domain.ConversationTurn) []domain.ConversationTurn {
	if turns == nil {
		return []domain.ConversationTurn{}
	}
	out := make([]domain.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
