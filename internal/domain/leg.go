// Package domain contains the core entities and backend contracts of the trip search client.
// The remote service owns search, scoring and policy; these types mirror the
// fields of its responses that the client reads or writes.
package domain

import "time"

// LegSearchResult is the most recent completed search for one trip leg.
// It is replaced wholesale on each successful search; only Recommendation and
// AllOptions are ever rewritten in place (see WithRescore).
type LegSearchResult struct {
	// Recommendation is the option the backend considers the best fit
	Recommendation *FlightOption `json:"recommendation"`

	// PriceCalendar holds the cheapest fare per nearby date
	PriceCalendar *PriceCalendar `json:"price_calendar"`

	// Alternatives groups notable options by category
	Alternatives Alternatives `json:"alternatives"`

	// AllOptions is the full ranked option set
	AllOptions []FlightOption `json:"all_options"`

	// Metadata describes how the search was executed
	Metadata SearchMetadata `json:"metadata"`
}

// FlightOption is a single bookable itinerary for a leg.
type FlightOption struct {
	ID                 string    `json:"id"`
	AirlineCode        string    `json:"airline_code"`
	AirlineName        string    `json:"airline_name"`
	FlightNumbers      []string  `json:"flight_numbers,omitempty"`
	OriginAirport      string    `json:"origin_airport"`
	DestinationAirport string    `json:"destination_airport"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	DurationMinutes    int       `json:"duration_minutes"`
	Stops              int       `json:"stops"`
	Price              float64   `json:"price"`
	Currency           string    `json:"currency"`
	CabinClass         string    `json:"cabin_class"`

	// Score is the backend's composite cost/convenience score
	Score float64 `json:"score"`

	// Reasons are short human-readable explanations for the score
	Reasons []string `json:"reasons,omitempty"`
}

// PriceCalendar holds per-date minimum fares around the requested date.
type PriceCalendar struct {
	// Dates maps YYYY-MM-DD to the cheapest fare found on that day
	Dates         map[string]CalendarDay `json:"dates"`
	CheapestDate  string                 `json:"cheapest_date,omitempty"`
	CheapestPrice float64                `json:"cheapest_price,omitempty"`
}

// CalendarDay is one cell of a price calendar.
type CalendarDay struct {
	MinPrice    float64 `json:"min_price"`
	HasDirect   bool    `json:"has_direct"`
	OptionCount int     `json:"option_count"`
}

// Alternatives groups options the UI surfaces next to the recommendation.
type Alternatives struct {
	Cheaper        []FlightOption `json:"cheaper,omitempty"`
	Faster         []FlightOption `json:"faster,omitempty"`
	Direct         []FlightOption `json:"direct,omitempty"`
	NearbyAirports []FlightOption `json:"nearby_airports,omitempty"`
	OtherDates     []FlightOption `json:"other_dates,omitempty"`
}

// SearchMetadata describes how a leg search was executed.
type SearchMetadata struct {
	CacheHit             bool     `json:"cache_hit"`
	SearchTimeMs         int64    `json:"search_time_ms"`
	SearchedOrigins      []string `json:"searched_origins,omitempty"`
	SearchedDestinations []string `json:"searched_destinations,omitempty"`
	SearchedDates        []string `json:"searched_dates,omitempty"`
	TotalOptions         int      `json:"total_options"`
}

// SearchLegRequest is the body sent to the search endpoint.
type SearchLegRequest struct {
	IncludeNearbyAirports bool `json:"include_nearby_airports"`
}

// RescoreResponse is returned by the slider re-ranking endpoint.
type RescoreResponse struct {
	Recommendation  *FlightOption  `json:"recommendation"`
	RescoredOptions []FlightOption `json:"rescored_options"`
}

// WithRescore returns a copy of r with only Recommendation and AllOptions
// taken from the rescore response. Calendar, alternatives and metadata are
// carried over untouched.
func (r LegSearchResult) WithRescore(resp RescoreResponse) LegSearchResult {
	r.Recommendation = resp.Recommendation
	r.AllOptions = resp.RescoredOptions
	return r
}
