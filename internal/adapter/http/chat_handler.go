package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/corptravel/trip-search-client/internal/adapter/http/response"
	"github.com/corptravel/trip-search-client/internal/domain"
)

// Dialogue handles GET /api/v1/chat
//
// @Summary Get the trip builder dialogue
// @Tags chat
// @Produce json
// @Success 200 {object} SwaggerDialogueResponse
// @Router /chat [get]
func (h *Handler) Dialogue(c echo.Context) error {
	return response.OK(c, h.svc.Builder.Snapshot())
}

// SendMessage handles POST /api/v1/chat/messages
//
// @Summary Send a chat message
// @Description Sends one turn with the full history. A failed turn is answered with an apology turn, not an error.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatMessageRequest true "Message"
// @Success 200 {object} SwaggerDialogueResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 409 {object} SwaggerErrorResponse "A turn is already in flight"
// @Router /chat/messages [post]
func (h *Handler) SendMessage(c echo.Context) error {
	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeValidationError(c, err)
	}

	if err := h.svc.Builder.SendMessage(c.Request().Context(), req.Message); err != nil {
		return writeError(c, err)
	}
	return response.OK(c, h.svc.Builder.Snapshot())
}

// QuickReplies handles GET /api/v1/chat/quick-replies
//
// @Summary Get quick reply suggestions
// @Tags chat
// @Produce json
// @Success 200 {object} SwaggerQuickRepliesResponse
// @Router /chat/quick-replies [get]
func (h *Handler) QuickReplies(c echo.Context) error {
	return response.OK(c, ToQuickRepliesResponse(h.svc.Builder.Snapshot()))
}

// CreateTrip handles POST /api/v1/chat/trip
//
// @Summary Create the trip from the dialogue
// @Description Creates the trip once the dialogue is ready, saves the transcript, resets the dialogue and starts prefetching the new legs.
// @Tags chat
// @Produce json
// @Success 201 {object} SwaggerTripCreatedResponse
// @Failure 409 {object} SwaggerErrorResponse "Dialogue not ready or busy"
// @Failure 502 {object} SwaggerErrorResponse "Backend rejected the trip"
// @Router /chat/trip [post]
func (h *Handler) CreateTrip(c echo.Context) error {
	ctx := c.Request().Context()

	trip, err := h.svc.Builder.CreateFromChat(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrTripNotReady) && !errors.Is(err, domain.ErrDialogueBusy) {
			h.requestLog(c).Warn().Err(err).Msg("Trip creation failed")
		}
		return writeError(c, err)
	}

	started := h.svc.Prefetch.PrefetchAll(context.WithoutCancel(ctx), trip.LegIDs())
	h.requestLog(c).Info().
		Str("trip_id", trip.ID).
		Int("prefetch_started", started).
		Msg("Trip created")

	return response.Created(c, TripCreatedResponse{Trip: trip, PrefetchStarted: started})
}

// ResetDialogue handles DELETE /api/v1/chat
//
// @Summary Start a new dialogue
// @Tags chat
// @Success 204
// @Router /chat [delete]
func (h *Handler) ResetDialogue(c echo.Context) error {
	if err := h.svc.Builder.Reset(c.Request().Context()); err != nil {
		h.requestLog(c).Error().Err(err).Msg("Failed to reset dialogue")
		return writeError(c, err)
	}
	return response.NoContent(c)
}

// Transcript handles GET /api/v1/trips/{tripId}/transcript
//
// @Summary Get the conversation a trip was created from
// @Tags chat
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} SwaggerTranscriptResponse
// @Failure 404 {object} SwaggerErrorResponse "No transcript"
// @Router /trips/{tripId}/transcript [get]
func (h *Handler) Transcript(c echo.Context) error {
	tripID := c.Param("tripId")

	turns, err := h.svc.Builder.Transcript(c.Request().Context(), tripID)
	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c, MsgNoTranscript)
	}
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, TranscriptResponse{TripID: tripID, Turns: turns})
}
