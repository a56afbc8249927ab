package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/corptravel/trip-search-client/internal/domain"
)

var (
	_ domain.SearchBackend = (*Client)(nil)
	_ domain.IntelBackend  = (*Client)(nil)
	_ domain.TripBackend   = (*Client)(nil)
)

func legPath(legID, resource string) string {
	return "/api/legs/" + url.PathEscape(legID) + "/" + resource
}

// SearchLeg runs the full search for one leg.
func (c *Client) SearchLeg(ctx context.Context, legID string, req domain.SearchLegRequest) (*domain.LegSearchResult, error) {
	var out domain.LegSearchResult
	if err := c.do(ctx, http.MethodPost, legPath(legID, "search"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rescore re-ranks a leg's options for a slider position.
func (c *Client) Rescore(ctx context.Context, legID string, sliderPosition float64) (*domain.RescoreResponse, error) {
	query := url.Values{"slider_position": {strconv.FormatFloat(sliderPosition, 'f', -1, 64)}}
	var out domain.RescoreResponse
	if err := c.do(ctx, http.MethodPost, legPath(legID, "rescore"), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthCalendar returns the month fare calendar for a leg.
func (c *Client) MonthCalendar(ctx context.Context, legID string, year, month int) (*domain.MonthCalendar, error) {
	query := url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
	var out domain.MonthCalendar
	if err := c.do(ctx, http.MethodGet, legPath(legID, "calendar"), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceMatrix returns the date by airline fare grid for a leg.
func (c *Client) PriceMatrix(ctx context.Context, legID string) (*domain.PriceMatrix, error) {
	var out domain.PriceMatrix
	if err := c.do(ctx, http.MethodGet, legPath(legID, "price-matrix"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceAdvisor returns the booking advice for a leg.
func (c *Client) PriceAdvisor(ctx context.Context, legID string) (*domain.PriceAdvice, error) {
	var out domain.PriceAdvice
	if err := c.do(ctx, http.MethodGet, legPath(legID, "price-advisor"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceTrend returns the price history for a leg and its route.
func (c *Client) PriceTrend(ctx context.Context, legID string) (*domain.PriceTrend, error) {
	var out domain.PriceTrend
	if err := c.do(ctx, http.MethodGet, legPath(legID, "price-trend"), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceContext returns the historical context of the fare on targetDate.
func (c *Client) PriceContext(ctx context.Context, legID, targetDate string) (*domain.PriceContext, error) {
	query := url.Values{"target_date": {targetDate}}
	var out domain.PriceContext
	if err := c.do(ctx, http.MethodGet, legPath(legID, "price-context"), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatTurn sends one conversational trip-builder turn.
func (c *Client) ChatTurn(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.ConversationHistory == nil {
		req.ConversationHistory = []domain.ConversationTurn{}
	}
	var out domain.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/api/trips/chat", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTrip creates a trip from structured legs.
func (c *Client) CreateTrip(ctx context.Context, req domain.CreateTripRequest) (*domain.Trip, error) {
	var out domain.Trip
	if err := c.do(ctx, http.MethodPost, "/api/trips/structured", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
