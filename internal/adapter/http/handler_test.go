package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// recordingTokens records every token set through the API.
type recordingTokens struct {
	mu     sync.Mutex
	tokens []string
}

func (r *recordingTokens) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
}

type testEnv struct {
	e       *echo.Echo
	h       *Handler
	search  *domain.MockSearchBackend
	intel   *domain.MockIntelBackend
	trips   *domain.MockTripBackend
	store   *storage.MemoryStore
	tokens  *recordingTokens
	session *usecase.SearchSession
}

// setupTestHandler wires real core services over mocked backends.
func setupTestHandler(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		search: domain.NewMockSearchBackend(ctrl),
		intel:  domain.NewMockIntelBackend(ctrl),
		trips:  domain.NewMockTripBackend(ctrl),
		store:  storage.NewMemoryStore(),
		tokens: &recordingTokens{},
	}

	log := logger.Nop()
	env.session = usecase.NewSearchSession(env.search, env.store, log, &usecase.SessionConfig{IncludeNearbyAirports: true})
	prefetch := usecase.NewPrefetchCoordinator(env.session, log, &usecase.PrefetchConfig{})

	env.h = NewHandler(Services{
		Session:  env.session,
		Prefetch: prefetch,
		Intel:    usecase.NewPriceIntelCache(env.intel, log, nil),
		Builder:  usecase.NewTripBuilder(env.trips, env.store, log, nil),
		Store:    env.store,
		Tokens:   env.tokens,
	}, log)

	// Runs before the controller verifies expectations.
	t.Cleanup(func() {
		prefetch.CancelAll()
		prefetch.Wait()
		env.h.Wait()
	})

	env.e = echo.New()
	RegisterRoutes(env.e, env.h)
	return env
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the success envelope's data into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// decodeError unmarshals the failure envelope's error.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	return *envelope.Error
}

func legResult(optionIDs ...string) *domain.LegSearchResult {
	options := make([]domain.FlightOption, 0, len(optionIDs))
	for i, id := range optionIDs {
		options = append(options, domain.FlightOption{ID: id, Price: float64(200 + i*40), Score: float64(90 - i)})
	}
	result := &domain.LegSearchResult{AllOptions: options}
	if len(options) > 0 {
		rec := options[0]
		result.Recommendation = &rec
	}
	return result
}

// =====================================================
// Search Tests
// =====================================================

func TestSearchLeg_Success(t *testing.T) {
	env := setupTestHandler(t)
	env.search.EXPECT().
		SearchLeg(gomock.Any(), "leg-1", domain.SearchLegRequest{IncludeNearbyAirports: true}).
		Return(legResult("opt-a", "opt-b"), nil)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/search", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var view LegView
	decodeData(t, rec, &view)
	assert.Equal(t, "leg-1", view.LegID)
	require.NotNil(t, view.Result)
	assert.Equal(t, "opt-a", view.Result.Recommendation.ID)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Error)
	assert.Equal(t, usecase.DefaultSliderPosition, view.SliderPosition)
}

func TestSearchLeg_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "backend detail is shown",
			err:         domain.NewAPIError(http.StatusUnprocessableEntity, "Leg has no departure date"),
			wantMessage: "Leg has no departure date",
		},
		{
			name:        "transport failure uses generic message",
			err:         fmt.Errorf("POST search: %w", domain.ErrBackendUnavailable),
			wantMessage: usecase.MsgSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestHandler(t)
			env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).Return(nil, tt.err)

			rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/search", nil)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, response.CodeBackendError, detail.Code)
			assert.Equal(t, tt.wantMessage, detail.Message)
		})
	}
}

func TestSearchLeg_InvalidLegID(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/"+strings.Repeat("x", maxLegIDLength+1)+"/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "leg_id")
}

func TestLegResult(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/result", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgNoLegResult, decodeError(t, rec).Message)

	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).Return(legResult("opt-a"), nil)
	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/search", nil).Code)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view LegView
	decodeData(t, rec, &view)
	require.NotNil(t, view.Result)
	assert.Len(t, view.Result.AllOptions, 1)
}

func TestRescoreLeg(t *testing.T) {
	env := setupTestHandler(t)
	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).Return(legResult("opt-a", "opt-b"), nil)
	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/search", nil).Code)

	rescored := legResult("opt-b", "opt-a")
	env.search.EXPECT().Rescore(gomock.Any(), "leg-1", 80.0).Return(&domain.RescoreResponse{
		Recommendation:  rescored.Recommendation,
		RescoredOptions: rescored.AllOptions,
	}, nil)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/rescore", RescoreRequest{SliderPosition: ptr(80.0)})

	require.Equal(t, http.StatusOK, rec.Code)
	var view LegView
	decodeData(t, rec, &view)
	assert.Equal(t, 80.0, view.SliderPosition)
	require.NotNil(t, view.Result)
	assert.Equal(t, "opt-b", view.Result.Recommendation.ID)
}

func TestRescoreLeg_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		wantCode string
	}{
		{name: "malformed body", body: `{"slider_position":`, wantCode: response.CodeInvalidRequest},
		{name: "missing slider", body: map[string]interface{}{}, wantCode: response.CodeValidationError},
		{name: "slider below range", body: RescoreRequest{SliderPosition: ptr(-1.0)}, wantCode: response.CodeValidationError},
		{name: "slider above range", body: RescoreRequest{SliderPosition: ptr(100.5)}, wantCode: response.CodeValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestHandler(t)

			rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/rescore", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestRefreshLeg_RunsInBackground(t *testing.T) {
	env := setupTestHandler(t)
	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).Return(legResult("fresh"), nil)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/refresh", nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp RefreshResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, RefreshResponse{LegID: "leg-1", Refreshing: true}, resp)

	env.h.Wait()
	result, ok := env.session.Result("leg-1")
	require.True(t, ok)
	assert.Equal(t, "fresh", result.Recommendation.ID)
	assert.False(t, env.session.State().Loading, "refresh never shows loading")
}

func TestSearchState_CancelAndClear(t *testing.T) {
	env := setupTestHandler(t)
	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).Return(legResult("opt-a"), nil)
	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/search", nil).Code)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/search", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state usecase.SearchState
	decodeData(t, rec, &state)
	assert.Equal(t, []string{"leg-1"}, state.LegIDs)
	assert.Equal(t, "leg-1", state.ActiveLegID)

	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodPost, "/api/v1/search/cancel", nil).Code)
	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodDelete, "/api/v1/search", nil).Code)

	_, ok := env.session.Result("leg-1")
	assert.False(t, ok, "clear forgets results")
	_, err := env.store.Get(context.Background(), usecase.SearchResultsKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// =====================================================
// Prefetch Tests
// =====================================================

func TestPrefetchLegs(t *testing.T) {
	env := setupTestHandler(t)
	env.search.EXPECT().SearchLeg(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, legID string, _ domain.SearchLegRequest) (*domain.LegSearchResult, error) {
			return legResult(legID + "-opt"), nil
		}).Times(2)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/prefetch", PrefetchRequest{LegIDs: []string{"leg-1", "leg-2"}})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp PrefetchResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, 2, resp.Started)

	env.h.svc.Prefetch.Wait()
	for _, id := range []string{"leg-1", "leg-2"} {
		result, ok := env.session.Result(id)
		require.True(t, ok, id)
		assert.Equal(t, id+"-opt", result.Recommendation.ID)
	}

	// Legs with results are skipped.
	rec = makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/prefetch", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	decodeData(t, rec, &resp)
	assert.Equal(t, 0, resp.Started)
}

func TestPrefetchLegs_Validation(t *testing.T) {
	tooMany := make([]string, maxPrefetchLegs+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("leg-%d", i)
	}

	tests := []struct {
		name      string
		legIDs    []string
		wantField string
	}{
		{"empty", nil, "leg_ids"},
		{"too many", tooMany, "leg_ids"},
		{"blank id", []string{"leg-1", " "}, "leg_ids[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestHandler(t)

			rec := makeRequest(env.e, http.MethodPost, "/api/v1/prefetch", PrefetchRequest{LegIDs: tt.legIDs})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Details, tt.wantField)
		})
	}
}

func TestCancelPrefetches(t *testing.T) {
	env := setupTestHandler(t)
	entered := make(chan struct{})
	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.SearchLegRequest) (*domain.LegSearchResult, error) {
			close(entered)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	require.Equal(t, http.StatusAccepted, makeRequest(env.e, http.MethodPost, "/api/v1/legs/leg-1/prefetch", nil).Code)
	<-entered

	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodDelete, "/api/v1/prefetch", nil).Code)
	env.h.svc.Prefetch.Wait()
	assert.Empty(t, env.session.State().Prefetching)
}

// =====================================================
// Price Intelligence Tests
// =====================================================

func TestCalendar(t *testing.T) {
	env := setupTestHandler(t)
	env.intel.EXPECT().MonthCalendar(gomock.Any(), "leg-1", 2026, 3).Return(&domain.MonthCalendar{
		Dates:      map[string]domain.CalendarDay{"2026-03-14": {MinPrice: 219}},
		MonthStats: domain.MonthStats{CheapestPrice: 219, CheapestDate: "2026-03-14"},
	}, nil)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/calendar?year=2026&month=3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp IntelResponse[domain.MonthCalendar]
	decodeData(t, rec, &resp)
	assert.Equal(t, usecase.KindCalendar, resp.Kind)
	assert.Equal(t, "leg-1:2026-03", resp.Key)
	assert.Equal(t, IntelStatusReady, resp.Status)
	require.NotNil(t, resp.Value)
	assert.Equal(t, "2026-03-14", resp.Value.MonthStats.CheapestDate)
	assert.NotNil(t, resp.FetchedAt)

	// Served from cache.
	rec = makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/calendar?year=2026&month=3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalendar_Validation(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"missing year", "month=3", "year"},
		{"non numeric month", "year=2026&month=march", "month"},
		{"month out of range", "year=2026&month=13", "month"},
		{"implausible year", "year=1999&month=3", "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestHandler(t)

			rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/calendar?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Details, tt.wantField)
		})
	}
}

func TestIntel_FailureStatuses(t *testing.T) {
	env := setupTestHandler(t)
	env.intel.EXPECT().PriceMatrix(gomock.Any(), "leg-1").Return(nil, domain.ErrBackendUnavailable)
	env.intel.EXPECT().PriceContext(gomock.Any(), "leg-1", "2026-03-14").Return(nil, domain.ErrBackendUnavailable)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/matrix", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var matrix IntelResponse[domain.PriceMatrix]
	decodeData(t, rec, &matrix)
	assert.Equal(t, IntelStatusFailed, matrix.Status)
	assert.Nil(t, matrix.Value)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/context?date=2026-03-14", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var priceCtx IntelResponse[domain.PriceContext]
	decodeData(t, rec, &priceCtx)
	assert.Equal(t, IntelStatusReady, priceCtx.Status, "context failures resolve to the unavailable answer")
	require.NotNil(t, priceCtx.Value)
	assert.False(t, priceCtx.Value.Available)
}

func TestPriceContext_InvalidDate(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/context?date=14-03-2026", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date must be in YYYY-MM-DD format", decodeError(t, rec).Details["date"])
}

func TestLegIntel_LoadsEveryKind(t *testing.T) {
	env := setupTestHandler(t)
	env.intel.EXPECT().MonthCalendar(gomock.Any(), "leg-1", 2026, 3).
		Return(&domain.MonthCalendar{Dates: map[string]domain.CalendarDay{"2026-03-14": {MinPrice: 219}}}, nil)
	env.intel.EXPECT().PriceMatrix(gomock.Any(), "leg-1").
		Return(&domain.PriceMatrix{Prices: map[string]map[string]float64{"2026-03-14": {"UA": 219}}}, nil)
	env.intel.EXPECT().PriceAdvisor(gomock.Any(), "leg-1").
		Return(&domain.PriceAdvice{Recommendation: domain.AdviceBookNow}, nil)
	env.intel.EXPECT().PriceTrend(gomock.Any(), "leg-1").
		Return(&domain.PriceTrend{LegTrend: []domain.TrendPoint{{Date: "2026-02-01", MinPrice: 240}}}, nil)
	env.intel.EXPECT().PriceContext(gomock.Any(), "leg-1", "2026-03-14").
		Return(&domain.PriceContext{Available: true, Percentile: 22}, nil)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel?date=2026-03-14", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LegIntelResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "leg-1:2026-03", resp.Calendar.Key)
	for name, status := range map[string]string{
		"calendar": resp.Calendar.Status,
		"matrix":   resp.Matrix.Status,
		"advisor":  resp.Advisor.Status,
		"trend":    resp.Trend.Status,
		"context":  resp.Context.Status,
	} {
		assert.Equal(t, IntelStatusReady, status, name)
	}
	require.NotNil(t, resp.Advisor.Value)
	assert.Equal(t, domain.AdviceBookNow, resp.Advisor.Value.Recommendation)
}

func TestClearIntel(t *testing.T) {
	env := setupTestHandler(t)
	env.intel.EXPECT().PriceTrend(gomock.Any(), "leg-1").Return(&domain.PriceTrend{}, nil).Times(2)

	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/trend", nil).Code)
	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodDelete, "/api/v1/intel/trend", nil).Code)
	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodGet, "/api/v1/legs/leg-1/intel/trend", nil).Code)

	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodDelete, "/api/v1/intel", nil).Code)

	rec := makeRequest(env.e, http.MethodDelete, "/api/v1/intel/weather", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgUnknownIntel, decodeError(t, rec).Message)
}

// =====================================================
// Chat Tests
// =====================================================

func readyReply() *domain.ChatResponse {
	return &domain.ChatResponse{
		Reply: "Got it: Denver to Boston on March 14.",
		PartialTrip: &domain.PartialTrip{
			Confidence: 0.9,
			Legs: []domain.ProposedLeg{{
				OriginAirport:      "DEN",
				DestinationAirport: "BOS",
				Date:               "2026-03-14",
			}},
		},
		TripReady: true,
	}
}

func TestSendMessage(t *testing.T) {
	env := setupTestHandler(t)
	env.trips.EXPECT().ChatTurn(gomock.Any(), gomock.Any()).Return(&domain.ChatResponse{
		Reply:         "Which cabin would you like?",
		PartialTrip:   &domain.PartialTrip{Legs: []domain.ProposedLeg{{OriginCity: "Denver"}}},
		MissingFields: []string{"cabin_class"},
	}, nil)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: "Denver to Boston"})

	require.Equal(t, http.StatusOK, rec.Code)
	var snap usecase.DialogueSnapshot
	decodeData(t, rec, &snap)
	assert.Equal(t, usecase.StateCollecting, snap.State)
	require.Len(t, snap.Turns, 2)
	assert.Equal(t, domain.RoleUser, snap.Turns[0].Role)
	assert.Equal(t, "Which cabin would you like?", snap.Turns[1].Content)

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/chat/quick-replies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var replies QuickRepliesResponse
	decodeData(t, rec, &replies)
	assert.Equal(t, []string{"cabin_class"}, replies.MissingFields)
	assert.Contains(t, replies.QuickReplies, "Business")
}

func TestSendMessage_FailureAppendsApology(t *testing.T) {
	env := setupTestHandler(t)
	env.trips.EXPECT().ChatTurn(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBackendUnavailable)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, rec.Code)
	var snap usecase.DialogueSnapshot
	decodeData(t, rec, &snap)
	require.Len(t, snap.Turns, 2)
	assert.Equal(t, usecase.MsgAssistantApology, snap.Turns[1].Content)
}

func TestSendMessage_Validation(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "message is required", decodeError(t, rec).Details["message"])

	rec = makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: strings.Repeat("a", maxMessageLength+1)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTrip_NotReady(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/trip", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeConflict, detail.Code)
	assert.Equal(t, MsgTripNotReady, detail.Message)
}

func TestCreateTrip_PrefetchesNewLegs(t *testing.T) {
	env := setupTestHandler(t)
	env.trips.EXPECT().ChatTurn(gomock.Any(), gomock.Any()).Return(readyReply(), nil)
	env.trips.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(&domain.Trip{
		ID:   "trip-42",
		Legs: []domain.TripLeg{{ID: "leg-a", Sequence: 1, OriginAirport: "DEN", DestinationAirport: "BOS"}},
	}, nil)
	env.search.EXPECT().SearchLeg(gomock.Any(), "leg-a", gomock.Any()).Return(legResult("opt-a"), nil)

	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: "DEN to BOS March 14"}).Code)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/trip", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created TripCreatedResponse
	decodeData(t, rec, &created)
	assert.Equal(t, "trip-42", created.Trip.ID)
	assert.Equal(t, 1, created.PrefetchStarted)

	env.h.svc.Prefetch.Wait()
	_, ok := env.session.Result("leg-a")
	assert.True(t, ok, "new leg was prefetched")

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/chat", nil)
	var snap usecase.DialogueSnapshot
	decodeData(t, rec, &snap)
	assert.Equal(t, usecase.StateEmpty, snap.State, "dialogue resets after creation")

	rec = makeRequest(env.e, http.MethodGet, "/api/v1/trips/trip-42/transcript", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var transcript TranscriptResponse
	decodeData(t, rec, &transcript)
	assert.Len(t, transcript.Turns, 2)
}

func TestCreateTrip_BackendRejects(t *testing.T) {
	env := setupTestHandler(t)
	env.trips.EXPECT().ChatTurn(gomock.Any(), gomock.Any()).Return(readyReply(), nil)
	env.trips.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewAPIError(http.StatusUnprocessableEntity, "Departure date is in the past"))

	require.Equal(t, http.StatusOK, makeRequest(env.e, http.MethodPost, "/api/v1/chat/messages", ChatMessageRequest{Message: "DEN to BOS"}).Code)

	rec := makeRequest(env.e, http.MethodPost, "/api/v1/chat/trip", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Departure date is in the past", decodeError(t, rec).Message)
	assert.Equal(t, usecase.StateReady, env.h.svc.Builder.State(), "user can retry")
}

func TestResetDialogueAndTranscriptNotFound(t *testing.T) {
	env := setupTestHandler(t)

	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodDelete, "/api/v1/chat", nil).Code)

	rec := makeRequest(env.e, http.MethodGet, "/api/v1/trips/unknown/transcript", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgNoTranscript, decodeError(t, rec).Message)
}

// =====================================================
// Session and Health Tests
// =====================================================

func TestSetToken(t *testing.T) {
	env := setupTestHandler(t)

	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodPut, "/api/v1/session/token", TokenRequest{Token: "abc"}).Code)
	assert.Equal(t, http.StatusNoContent, makeRequest(env.e, http.MethodPut, "/api/v1/session/token", TokenRequest{}).Code)
	assert.Equal(t, http.StatusBadRequest, makeRequest(env.e, http.MethodPut, "/api/v1/session/token", TokenRequest{Token: "a b"}).Code)

	assert.Equal(t, []string{"abc", ""}, env.tokens.tokens)
}

func TestHealth_Success(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var health response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestHandler(t)

	rec := makeRequest(env.e, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"session expired", fmt.Errorf("%w: %w", domain.ErrSessionExpired, domain.NewAPIError(401, "")), http.StatusUnauthorized, response.CodeSessionExpired},
		{"deadline", fmt.Errorf("GET matrix: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, response.CodeTimeout},
		{"cancelled", context.Canceled, http.StatusGatewayTimeout, response.CodeTimeout},
		{"unavailable", domain.ErrBackendUnavailable, http.StatusServiceUnavailable, response.CodeServiceUnavailable},
		{"not ready", domain.ErrTripNotReady, http.StatusConflict, response.CodeConflict},
		{"busy", domain.ErrDialogueBusy, http.StatusConflict, response.CodeConflict},
		{"empty message", domain.ErrEmptyMessage, http.StatusBadRequest, response.CodeValidationError},
		{"not found", domain.ErrNotFound, http.StatusNotFound, response.CodeNotFound},
		{"unknown kind", usecase.ErrUnknownIntelKind, http.StatusNotFound, response.CodeNotFound},
		{"api error", fmt.Errorf("create trip: %w", domain.NewAPIError(500, "")), http.StatusBadGateway, response.CodeBackendError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, response.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
