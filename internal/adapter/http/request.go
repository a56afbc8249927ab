// Package http is the companion API: an echo server exposing the search
// session, prefetching, price intelligence and the trip builder to a UI.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"strconv"
	"strings"

	"github.com/corptravel/trip-search-client/internal/infrastructure/timeutil"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

const (
	// maxLegIDLength bounds path and body leg ids.
	maxLegIDLength = 128

	// maxPrefetchLegs bounds one bulk prefetch request.
	maxPrefetchLegs = 20

	// maxMessageLength bounds one chat message.
	maxMessageLength = 4000
)

// RescoreRequest is the body of POST /legs/{id}/rescore.
type RescoreRequest struct {
	// SliderPosition is the cost/convenience preference, 0 (cheapest) to 100
	SliderPosition *float64 `json:"slider_position" example:"70"`
}

// PrefetchRequest is the body of POST /prefetch.
type PrefetchRequest struct {
	// LegIDs are the legs to search speculatively
	LegIDs []string `json:"leg_ids" example:"leg-1,leg-2"`
}

// ChatMessageRequest is the body of POST /chat/messages.
type ChatMessageRequest struct {
	// Message is the traveller's free-text input
	Message string `json:"message" example:"Fly me from Denver to Boston next Tuesday"`
}

// TokenRequest is the body of PUT /session/token.
type TokenRequest struct {
	// Token is the bearer token used for every backend call
	Token string `json:"token"`
}

// ValidationError represents a single field validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// orNil returns errs when it holds anything.
func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// validateLegID checks a leg id taken from the path or a body.
func validateLegID(errs *ValidationErrors, field, legID string) {
	switch {
	case strings.TrimSpace(legID) == "":
		errs.Add(field, field+" is required")
	case len(legID) > maxLegIDLength:
		errs.Add(field, field+" is too long")
	}
}

// ValidateLegID validates a path leg id.
func ValidateLegID(legID string) error {
	errs := &ValidationErrors{}
	validateLegID(errs, "leg_id", legID)
	return errs.orNil()
}

// Validate validates the rescore request.
func (r *RescoreRequest) Validate() error {
	errs := &ValidationErrors{}
	switch {
	case r.SliderPosition == nil:
		errs.Add("slider_position", "slider_position is required")
	case *r.SliderPosition < usecase.SliderMin || *r.SliderPosition > usecase.SliderMax:
		errs.Add("slider_position", "slider_position must be between 0 and 100")
	}
	return errs.orNil()
}

// Validate validates the prefetch request. Duplicate ids are allowed; the
// coordinator skips legs already covered.
func (r *PrefetchRequest) Validate() error {
	errs := &ValidationErrors{}
	switch {
	case len(r.LegIDs) == 0:
		errs.Add("leg_ids", "at least one leg id is required")
	case len(r.LegIDs) > maxPrefetchLegs:
		errs.Add("leg_ids", "at most "+strconv.Itoa(maxPrefetchLegs)+" legs can be prefetched at once")
	}
	for i, id := range r.LegIDs {
		validateLegID(errs, "leg_ids["+strconv.Itoa(i)+"]", id)
	}
	return errs.orNil()
}

// Validate validates the chat message.
func (r *ChatMessageRequest) Validate() error {
	errs := &ValidationErrors{}
	switch msg := strings.TrimSpace(r.Message); {
	case msg == "":
		errs.Add("message", "message is required")
	case len(msg) > maxMessageLength:
		errs.Add("message", "message must be at most "+strconv.Itoa(maxMessageLength)+" characters")
	}
	return errs.orNil()
}

// Validate validates the token request. An empty token signs out.
func (r *TokenRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.ContainsAny(r.Token, " \t\r\n") {
		errs.Add("token", "token must not contain whitespace")
	}
	return errs.orNil()
}

// ParseMonthQuery reads and validates the year and month query parameters.
func ParseMonthQuery(yearParam, monthParam string) (int, int, error) {
	errs := &ValidationErrors{}

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		errs.Add("year", "year must be a number")
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		errs.Add("month", "month must be a number")
	}
	if errs.HasErrors() {
		return 0, 0, errs
	}

	if err := timeutil.ValidateMonth(year, month); err != nil {
		field := "month"
		if month >= 1 && month <= 12 {
			field = "year"
		}
		errs.Add(field, err.Error())
		return 0, 0, errs
	}
	return year, month, nil
}

// ParseDateQuery validates a YYYY-MM-DD query parameter.
func ParseDateQuery(field, value string) (string, error) {
	errs := &ValidationErrors{}
	if value == "" {
		errs.Add(field, field+" is required")
		return "", errs
	}
	if _, err := timeutil.ParseDate(value); err != nil {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return "", errs
	}
	return value, nil
}
