// Package mock provides a fake of the remote trip search backend for
// integration tests. It speaks the same JSON routes as the real service and
// supports canned responses, forced failures and slow responses.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
)

// Route names accepted by WithFailure and CallCount.
const (
	RouteSearch     = "search"
	RouteRescore    = "rescore"
	RouteCalendar   = "calendar"
	RouteMatrix     = "price-matrix"
	RouteAdvisor    = "price-advisor"
	RouteTrend      = "price-trend"
	RouteContext    = "price-context"
	RouteChat       = "chat"
	RouteCreateTrip = "structured"
)

type failure struct {
	status int
	detail string
}

// Backend is a configurable fake backend. Configure it with the With methods
// before serving; they are safe to call while requests are in flight.
type Backend struct {
	mu       sync.Mutex
	results  map[string]*domain.LegSearchResult
	replies  []*domain.ChatResponse
	trip     *domain.Trip
	failures map[string]failure
	delays   map[string]time.Duration
	calls    map[string]int
	auth     string
	reqID    string
	chats    []domain.ChatRequest
}

// NewBackend creates a backend that answers every route with sample data.
func NewBackend() *Backend {
	return &Backend{
		results:  make(map[string]*domain.LegSearchResult),
		failures: make(map[string]failure),
		delays:   make(map[string]time.Duration),
		calls:    make(map[string]int),
	}
}

// WithLegResult makes searches for legID return result.
func (b *Backend) WithLegResult(legID string, result *domain.LegSearchResult) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[legID] = result
	return b
}

// WithChatReplies queues replies served in order by the chat route. Once the
// queue is empty a generic follow-up question is returned.
func (b *Backend) WithChatReplies(replies ...*domain.ChatResponse) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies = append(b.replies, replies...)
	return b
}

// WithTrip makes trip creation return trip instead of one built from the request.
func (b *Backend) WithTrip(trip *domain.Trip) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trip = trip
	return b
}

// WithFailure makes route answer status with a {"detail": ...} body.
// A zero status clears the failure.
func (b *Backend) WithFailure(route string, status int, detail string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.failures, route)
	} else {
		b.failures[route] = failure{status: status, detail: detail}
	}
	return b
}

// WithDelay makes route wait d before answering. The wait ends early when
// the client goes away.
func (b *Backend) WithDelay(route string, d time.Duration) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delays[route] = d
	return b
}

// CallCount returns how many requests route has received.
func (b *Backend) CallCount(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// LastAuthorization returns the Authorization header of the latest request.
func (b *Backend) LastAuthorization() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.auth
}

// LastRequestID returns the X-Request-ID of the most recent request.
func (b *Backend) LastRequestID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reqID
}

// ChatRequests returns every chat turn received, oldest first.
func (b *Backend) ChatRequests() []domain.ChatRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.ChatRequest(nil), b.chats...)
}

// Start serves the backend until the test ends and returns its base URL.
func (b *Backend) Start(t testing.TB) string {
	t.Helper()
	server := httptest.NewServer(b.Handler())
	t.Cleanup(server.Close)
	return server.URL
}

// Handler returns the backend's routes.
func (b *Backend) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/legs/{legId}/search", b.route(RouteSearch, b.search))
	mux.HandleFunc("POST /api/legs/{legId}/rescore", b.route(RouteRescore, b.rescore))
	mux.HandleFunc("GET /api/legs/{legId}/calendar", b.route(RouteCalendar, b.calendar))
	mux.HandleFunc("GET /api/legs/{legId}/price-matrix", b.route(RouteMatrix, b.matrix))
	mux.HandleFunc("GET /api/legs/{legId}/price-advisor", b.route(RouteAdvisor, b.advisor))
	mux.HandleFunc("GET /api/legs/{legId}/price-trend", b.route(RouteTrend, b.trend))
	mux.HandleFunc("GET /api/legs/{legId}/price-context", b.route(RouteContext, b.priceContext))
	mux.HandleFunc("POST /api/trips/chat", b.route(RouteChat, b.chat))
	mux.HandleFunc("POST /api/trips/structured", b.route(RouteCreateTrip, b.createTrip))
	return mux
}

type routeFunc func(r *http.Request) (int, interface{})

func (b *Backend) route(name string, next routeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[name]++
		b.auth = r.Header.Get("Authorization")
		b.reqID = r.Header.Get("X-Request-ID")
		fail, failing := b.failures[name]
		delay := b.delays[name]
		b.mu.Unlock()

		if delay > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(delay):
			}
		}

		if failing {
			writeJSON(w, fail.status, map[string]string{"detail": fail.detail})
			return
		}
		status, body := next(r)
		writeJSON(w, status, body)
	}
}

func (b *Backend) search(r *http.Request) (int, interface{}) {
	legID := r.PathValue("legId")
	b.mu.Lock()
	result, ok := b.results[legID]
	b.mu.Unlock()
	if !ok {
		result = SampleLegResult(legID, 3)
	}
	return http.StatusOK, result
}

// rescore reverses the option order for sliders above the midpoint, which is
// enough for tests to observe that a rescore was applied.
func (b *Backend) rescore(r *http.Request) (int, interface{}) {
	slider, err := strconv.ParseFloat(r.URL.Query().Get("slider_position"), 64)
	if err != nil {
		return http.StatusUnprocessableEntity, map[string]string{"detail": "slider_position must be a number"}
	}

	_, body := b.search(r)
	options := append([]domain.FlightOption(nil), body.(*domain.LegSearchResult).AllOptions...)
	if slider > 50 {
		for i, j := 0, len(options)-1; i < j; i, j = i+1, j-1 {
			options[i], options[j] = options[j], options[i]
		}
	}

	resp := &domain.RescoreResponse{RescoredOptions: options}
	if len(options) > 0 {
		resp.Recommendation = &options[0]
	}
	return http.StatusOK, resp
}

func (b *Backend) calendar(r *http.Request) (int, interface{}) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return http.StatusOK, SampleMonthCalendar(year, month)
}

func (b *Backend) matrix(*http.Request) (int, interface{}) {
	return http.StatusOK, &domain.PriceMatrix{
		Dates: []string{"2026-03-13", "2026-03-14"},
		Airlines: []domain.MatrixAirline{
			{Code: "UA", Name: "United Airlines"},
			{Code: "DL", Name: "Delta Air Lines"},
		},
		Prices: map[string]map[string]float64{
			"2026-03-13": {"UA": 241, "DL": 262},
			"2026-03-14": {"UA": 219},
		},
	}
}

func (b *Backend) advisor(*http.Request) (int, interface{}) {
	return http.StatusOK, &domain.PriceAdvice{
		Recommendation: domain.AdviceBookNow,
		Confidence:     0.8,
		Headline:       "Prices are near their low for this route",
	}
}

func (b *Backend) trend(*http.Request) (int, interface{}) {
	return http.StatusOK, &domain.PriceTrend{
		LegTrend: []domain.TrendPoint{
			{Date: "2026-02-01", MinPrice: 259, AvgPrice: 301},
			{Date: "2026-02-15", MinPrice: 231, AvgPrice: 284},
		},
	}
}

func (b *Backend) priceContext(r *http.Request) (int, interface{}) {
	if r.URL.Query().Get("target_date") == "" {
		return http.StatusUnprocessableEntity, map[string]string{"detail": "target_date is required"}
	}
	return http.StatusOK, &domain.PriceContext{Available: true, CurrentPrice: 219, Percentile: 18}
}

func (b *Backend) chat(r *http.Request) (int, interface{}) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return http.StatusUnprocessableEntity, map[string]string{"detail": "invalid chat request"}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.chats = append(b.chats, req)
	if len(b.replies) == 0 {
		return http.StatusOK, &domain.ChatResponse{
			Reply:         "Where will you be flying from?",
			PartialTrip:   req.PartialTrip,
			MissingFields: []string{"origin"},
		}
	}
	reply := b.replies[0]
	b.replies = b.replies[1:]
	return http.StatusOK, reply
}

func (b *Backend) createTrip(r *http.Request) (int, interface{}) {
	var req domain.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Legs) == 0 {
		return http.StatusUnprocessableEntity, map[string]string{"detail": "A trip needs at least one leg"}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.trip != nil {
		return http.StatusCreated, b.trip
	}

	trip := &domain.Trip{ID: fmt.Sprintf("trip-%d", b.calls[RouteCreateTrip])}
	for i, leg := range req.Legs {
		trip.Legs = append(trip.Legs, domain.TripLeg{
			ID:                 fmt.Sprintf("%s-leg-%d", trip.ID, i+1),
			Sequence:           i + 1,
			OriginAirport:      leg.OriginAirport,
			DestinationAirport: leg.DestinationAirport,
			PreferredDate:      leg.PreferredDate,
		})
	}
	return http.StatusCreated, trip
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

var sampleAirlines = []struct{ code, name string }{
	{"UA", "United Airlines"},
	{"DL", "Delta Air Lines"},
	{"AA", "American Airlines"},
	{"B6", "JetBlue"},
}

// SampleLegResult returns a DEN to BOS result with count options, cheapest
// first, recommending the first.
func SampleLegResult(legID string, count int) *domain.LegSearchResult {
	base := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	options := make([]domain.FlightOption, count)
	for i := range options {
		airline := sampleAirlines[i%len(sampleAirlines)]
		departure := base.Add(time.Duration(i*90) * time.Minute)
		options[i] = domain.FlightOption{
			ID:                 fmt.Sprintf("%s-opt-%d", legID, i+1),
			AirlineCode:        airline.code,
			AirlineName:        airline.name,
			FlightNumbers:      []string{fmt.Sprintf("%s %d", airline.code, 400+i)},
			OriginAirport:      "DEN",
			DestinationAirport: "BOS",
			DepartureTime:      departure,
			ArrivalTime:        departure.Add(4 * time.Hour),
			DurationMinutes:    240,
			Price:              219 + float64(i*35),
			Currency:           "USD",
			CabinClass:         "economy",
			Score:              92 - float64(i*6),
		}
	}

	result := &domain.LegSearchResult{
		AllOptions: options,
		Metadata: domain.SearchMetadata{
			SearchTimeMs:         1840,
			SearchedOrigins:      []string{"DEN"},
			SearchedDestinations: []string{"BOS"},
			SearchedDates:        []string{"2026-03-14"},
			TotalOptions:         count,
		},
	}
	if count > 0 {
		rec := options[0]
		result.Recommendation = &rec
	}
	return result
}

// SampleMonthCalendar returns a calendar with fares on the 14th and 15th.
func SampleMonthCalendar(year, month int) *domain.MonthCalendar {
	day := func(d int) string { return fmt.Sprintf("%04d-%02d-%02d", year, month, d) }
	return &domain.MonthCalendar{
		Dates: map[string]domain.CalendarDay{
			day(14): {MinPrice: 219, HasDirect: true, OptionCount: 12},
			day(15): {MinPrice: 248, OptionCount: 9},
		},
		MonthStats: domain.MonthStats{
			CheapestPrice:    219,
			CheapestDate:     day(14),
			AvgPrice:         233.5,
			DatesWithFlights: 2,
			DatesWithDirect:  1,
		},
	}
}
