package domain

import "context"

//go:generate mockgen -source=backend.go -destination=mock_backend.go -package=domain

// SearchBackend runs and re-ranks leg searches.
type SearchBackend interface {
	// SearchLeg runs the full (possibly slow) search for a leg.
	SearchLeg(ctx context.Context, legID string, req SearchLegRequest) (*LegSearchResult, error)

	// Rescore re-ranks an already searched option set by slider position.
	Rescore(ctx context.Context, legID string, sliderPosition float64) (*RescoreResponse, error)
}

// IntelBackend serves the price intelligence lookups for a leg.
type IntelBackend interface {
	MonthCalendar(ctx context.Context, legID string, year, month int) (*MonthCalendar, error)
	PriceMatrix(ctx context.Context, legID string) (*PriceMatrix, error)
	PriceAdvisor(ctx context.Context, legID string) (*PriceAdvice, error)
	PriceTrend(ctx context.Context, legID string) (*PriceTrend, error)
	PriceContext(ctx context.Context, legID, targetDate string) (*PriceContext, error)
}

// TripBackend serves the conversational trip builder.
type TripBackend interface {
	ChatTurn(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	CreateTrip(ctx context.Context, req CreateTripRequest) (*Trip, error)
}
