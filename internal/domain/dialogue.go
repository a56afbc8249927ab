package domain

// Speaker roles in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message of the trip-builder dialogue.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PartialTrip is the backend's current structured guess at the trip.
type PartialTrip struct {
	Confidence          float64       `json:"confidence"`
	Legs                []ProposedLeg `json:"legs"`
	InterpretationNotes string        `json:"interpretation_notes,omitempty"`
}

// ProposedLeg is a leg the dialogue has inferred so far.
type ProposedLeg struct {
	OriginCity         string `json:"origin_city,omitempty"`
	OriginAirport      string `json:"origin_airport,omitempty"`
	DestinationCity    string `json:"destination_city,omitempty"`
	DestinationAirport string `json:"destination_airport,omitempty"`
	Date               string `json:"date,omitempty"`
	FlexibilityDays    *int   `json:"flexibility_days,omitempty"`
	CabinClass         string `json:"cabin_class,omitempty"`
	Passengers         int    `json:"passengers,omitempty"`
}

// ChatRequest is one conversational turn. The backend is stateless, so the
// full prior history and the current partial trip go with every message.
type ChatRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
	PartialTrip         *PartialTrip       `json:"partial_trip"`
}

// ChatResponse is the backend's answer to a conversational turn.
type ChatResponse struct {
	Reply               string             `json:"reply"`
	ConversationHistory []ConversationTurn `json:"conversation_history,omitempty"`
	PartialTrip         *PartialTrip       `json:"partial_trip"`
	TripReady           bool               `json:"trip_ready"`
	MissingFields       []string           `json:"missing_fields"`
}

// CreateTripRequest is the minimal structured trip creation contract.
type CreateTripRequest struct {
	Legs []CreateLegRequest `json:"legs"`
}

// CreateLegRequest is one leg of a structured trip creation.
type CreateLegRequest struct {
	OriginAirport      string `json:"origin_airport"`
	DestinationAirport string `json:"destination_airport"`
	PreferredDate      string `json:"preferred_date"`
	FlexibilityDays    int    `json:"flexibility_days"`
	CabinClass         string `json:"cabin_class"`
	Passengers         int    `json:"passengers"`
}

// Trip is a created trip as returned by the backend.
type Trip struct {
	ID   string    `json:"id"`
	Name string    `json:"name,omitempty"`
	Legs []TripLeg `json:"legs"`
}

// TripLeg is one persisted leg of a trip.
type TripLeg struct {
	ID                 string `json:"id"`
	Sequence           int    `json:"sequence"`
	OriginAirport      string `json:"origin_airport"`
	DestinationAirport string `json:"destination_airport"`
	PreferredDate      string `json:"preferred_date"`
}

// LegIDs returns the ids of the trip's legs in order.
func (t *Trip) LegIDs() []string {
	ids := make([]string, 0, len(t.Legs))
	for _, l := range t.Legs {
		ids = append(ids, l.ID)
	}
	return ids
}
