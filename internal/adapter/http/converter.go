package http

import (
	"slices"
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

// ToLegView builds the view of legID from a session snapshot. The loud
// loading flag and error only belong to the leg the loud search targets.
func ToLegView(legID string, state usecase.SearchState, result *domain.LegSearchResult) LegView {
	view := LegView{
		LegID:          legID,
		Result:         result,
		SliderPosition: state.SliderPosition,
		Refreshing:     slices.Contains(state.Refreshing, legID),
		Prefetching:    slices.Contains(state.Prefetching, legID),
	}
	if state.ActiveLegID == legID {
		view.Loading = state.Loading
		view.Error = state.Error
	}
	return view
}

// ToIntelResponse converts a cache entry. ok is false when the key holds
// nothing, e.g. after a cancelled fetch.
func ToIntelResponse[T any](kind usecase.IntelKind, key string, entry usecase.IntelEntry[T], ok bool) IntelResponse[T] {
	resp := IntelResponse[T]{
		Kind:   kind,
		Key:    key,
		Status: intelStatus(entry, ok),
	}
	if ok && entry.HasValue {
		value := entry.Value
		resp.Value = &value
		if !entry.FetchedAt.IsZero() {
			fetchedAt := entry.FetchedAt.UTC().Truncate(time.Second)
			resp.FetchedAt = &fetchedAt
		}
	}
	return resp
}

func intelStatus[T any](entry usecase.IntelEntry[T], ok bool) string {
	switch {
	case !ok:
		return IntelStatusUnresolved
	case entry.Loading:
		return IntelStatusLoading
	case entry.Failed:
		return IntelStatusFailed
	case entry.HasValue:
		return IntelStatusReady
	default:
		return IntelStatusUnresolved
	}
}

// ToQuickRepliesResponse extracts the quick reply view from a dialogue snapshot.
func ToQuickRepliesResponse(snap usecase.DialogueSnapshot) QuickRepliesResponse {
	missing := snap.MissingFields
	if missing == nil {
		missing = []string{}
	}
	replies := snap.QuickReplies
	if replies == nil {
		replies = []string{}
	}
	return QuickRepliesResponse{
		State:         snap.State,
		MissingFields: missing,
		QuickReplies:  replies,
	}
}
