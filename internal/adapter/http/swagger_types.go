package http

// The Swagger* types describe response envelopes for swag. They mirror the
// generic and domain types the handlers actually return.

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}

// SwaggerLegViewResponse wraps a LegView.
// @Description Per-leg search view
type SwaggerLegViewResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    SwaggerLegView `json:"data"`
}

// SwaggerLegView is the per-leg view of the search session.
type SwaggerLegView struct {
	// LegID is the trip leg identifier
	LegID string `json:"leg_id" example:"0f8e2c1a-leg-1"`

	// Result is the latest search result, absent until a search succeeds
	Result *SwaggerLegResult `json:"result,omitempty"`

	// SliderPosition is the cost/convenience preference, 0 to 100
	SliderPosition float64 `json:"slider_position" example:"50"`

	// Loading is true while a loud search targets this leg
	Loading bool `json:"loading" example:"false"`

	// Refreshing is true while a silent refresh is in flight
	Refreshing bool `json:"refreshing" example:"false"`

	// Prefetching is true while a speculative search is in flight
	Prefetching bool `json:"prefetching" example:"false"`

	// Error is a user-facing message from the last loud search
	Error string `json:"error,omitempty" example:"Search failed. Please try again."`
}

// SwaggerLegResult summarizes a leg search result.
type SwaggerLegResult struct {
	Recommendation *SwaggerOption  `json:"recommendation"`
	AllOptions     []SwaggerOption `json:"all_options"`
}

// SwaggerOption is one ranked flight option.
type SwaggerOption struct {
	ID                 string  `json:"id" example:"opt_1"`
	AirlineName        string  `json:"airline_name" example:"United"`
	OriginAirport      string  `json:"origin_airport" example:"DEN"`
	DestinationAirport string  `json:"destination_airport" example:"BOS"`
	Price              float64 `json:"price" example:"289.4"`
	Currency           string  `json:"currency" example:"USD"`
	Score              float64 `json:"score" example:"82.5"`
}

// SwaggerRefreshResponse wraps a RefreshResponse.
type SwaggerRefreshResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    RefreshResponse `json:"data"`
}

// SwaggerPrefetchResponse wraps a PrefetchResponse.
type SwaggerPrefetchResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    PrefetchResponse `json:"data"`
}

// SwaggerSearchStateResponse wraps the search session state.
type SwaggerSearchStateResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    SwaggerSearchState `json:"data"`
}

// SwaggerSearchState is the search session snapshot.
type SwaggerSearchState struct {
	ActiveLegID    string   `json:"active_leg_id,omitempty" example:"0f8e2c1a-leg-1"`
	Loading        bool     `json:"loading" example:"true"`
	Error          string   `json:"error,omitempty"`
	StartedAt      string   `json:"started_at,omitempty" example:"2026-02-01T09:00:00Z"`
	Rescoring      bool     `json:"rescoring" example:"false"`
	SliderPosition float64  `json:"slider_position" example:"50"`
	Refreshing     []string `json:"refreshing"`
	Prefetching    []string `json:"prefetching"`
	LegIDs         []string `json:"leg_ids"`
}

// SwaggerIntelResponse wraps one price intelligence entry.
type SwaggerIntelResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    SwaggerIntelEntry `json:"data"`
}

// SwaggerIntelEntry is one price intelligence entry. Value depends on kind.
type SwaggerIntelEntry struct {
	Kind      string      `json:"kind" example:"calendar"`
	Key       string      `json:"key" example:"0f8e2c1a-leg-1:2026-03"`
	Status    string      `json:"status" example:"ready" enums:"ready,loading,failed,unresolved"`
	Value     interface{} `json:"value,omitempty"`
	FetchedAt string      `json:"fetched_at,omitempty" example:"2026-02-01T09:00:00Z"`
}

// SwaggerLegIntelResponse wraps every intelligence kind for a leg.
type SwaggerLegIntelResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		LegID    string            `json:"leg_id"`
		Date     string            `json:"date"`
		Calendar SwaggerIntelEntry `json:"calendar"`
		Matrix   SwaggerIntelEntry `json:"matrix"`
		Advisor  SwaggerIntelEntry `json:"advisor"`
		Trend    SwaggerIntelEntry `json:"trend"`
		Context  SwaggerIntelEntry `json:"context"`
	} `json:"data"`
}

// SwaggerDialogueResponse wraps the trip builder dialogue.
type SwaggerDialogueResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    SwaggerDialogue `json:"data"`
}

// SwaggerDialogue is the trip builder dialogue snapshot.
type SwaggerDialogue struct {
	SessionID     string        `json:"session_id" example:"5b8d6f0e-3f7a-4c1e-9a54-0d1c1f5e2b7a"`
	State         string        `json:"state" example:"collecting" enums:"empty,collecting,ready"`
	Turns         []SwaggerTurn `json:"turns"`
	MissingFields []string      `json:"missing_fields" example:"cabin_class"`
	Loading       bool          `json:"loading" example:"false"`
	Creating      bool          `json:"creating" example:"false"`
	QuickReplies  []string      `json:"quick_replies" example:"Economy,Business"`
}

// SwaggerTurn is one conversation turn.
type SwaggerTurn struct {
	Role    string `json:"role" example:"user" enums:"user,assistant"`
	Content string `json:"content" example:"Denver to Boston next Tuesday"`
}

// SwaggerQuickRepliesResponse wraps a QuickRepliesResponse.
type SwaggerQuickRepliesResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    QuickRepliesResponse `json:"data"`
}

// SwaggerTripCreatedResponse wraps a created trip.
type SwaggerTripCreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Trip struct {
			ID   string   `json:"id" example:"trip_42"`
			Legs []string `json:"legs"`
		} `json:"trip"`
		PrefetchStarted int `json:"prefetch_started" example:"2"`
	} `json:"data"`
}

// SwaggerTranscriptResponse wraps a saved transcript.
type SwaggerTranscriptResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		TripID string        `json:"trip_id" example:"trip_42"`
		Turns  []SwaggerTurn `json:"turns"`
	} `json:"data"`
}
