package http

import (
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// Intelligence entry statuses.
const (
	IntelStatusReady      = "ready"
	IntelStatusLoading    = "loading"
	IntelStatusFailed     = "failed"
	IntelStatusUnresolved = "unresolved"
)

// LegView is the per-leg view of the search session.
type LegView struct {
	LegID          string                  `json:"leg_id"`
	Result         *domain.LegSearchResult `json:"result,omitempty"`
	SliderPosition float64                 `json:"slider_position"`
	Loading        bool                    `json:"loading"`
	Refreshing     bool                    `json:"refreshing"`
	Prefetching    bool                    `json:"prefetching"`
	Error          string                  `json:"error,omitempty"`
}

// RefreshResponse acknowledges a background refresh.
type RefreshResponse struct {
	LegID      string `json:"leg_id"`
	Refreshing bool   `json:"refreshing"`
}

// PrefetchResponse reports how many speculative searches were started.
type PrefetchResponse struct {
	Started int      `json:"started"`
	Pending []string `json:"pending"`
}

// IntelResponse is one price intelligence entry.
type IntelResponse[T any] struct {
	Kind      usecase.IntelKind `json:"kind"`
	Key       string            `json:"key"`
	Status    string            `json:"status"`
	Value     *T                `json:"value,omitempty"`
	FetchedAt *time.Time        `json:"fetched_at,omitempty"`
}

// LegIntelResponse bundles every intelligence kind for one leg and date.
type LegIntelResponse struct {
	LegID    string                              `json:"leg_id"`
	Date     string                              `json:"date"`
	Calendar IntelResponse[domain.MonthCalendar] `json:"calendar"`
	Matrix   IntelResponse[domain.PriceMatrix]   `json:"matrix"`
	Advisor  IntelResponse[domain.PriceAdvice]   `json:"advisor"`
	Trend    IntelResponse[domain.PriceTrend]    `json:"trend"`
	Context  IntelResponse[domain.PriceContext]  `json:"context"`
}

// QuickRepliesResponse lists suggested answers for the missing fields.
type QuickRepliesResponse struct {
	State         usecase.DialogueState `json:"state"`
	MissingFields []string              `json:"missing_fields"`
	QuickReplies  []string              `json:"quick_replies"`
}

// TripCreatedResponse is returned once a trip has been created from chat.
type TripCreatedResponse struct {
	Trip            *domain.Trip `json:"trip"`
	PrefetchStarted int          `json:"prefetch_started"`
}

// TranscriptResponse is the conversation saved with a created trip.
type TranscriptResponse struct {
	TripID string                    `json:"trip_id"`
	Turns  []domain.ConversationTurn `json:"turns"`
}
