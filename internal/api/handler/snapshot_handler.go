package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/core/ports"
)

// SnapshotDispatcher is the interface the handler uses to enqueue snapshots.
type SnapshotDispatcher interface {
	Enqueue(ctx context.Context, snapshot ports.RosterSnapshotInput) error
}

// SnapshotHandler accepts roster snapshots for the mirror.
type SnapshotHandler struct {
	dispatcher SnapshotDispatcher
	log        zerolog.Logger
}

func NewSnapshotHandler(dispatcher SnapshotDispatcher, log zerolog.Logger) *SnapshotHandler {
	return &SnapshotHandler{dispatcher: dispatcher, log: log}
}

// Submit handles POST /v1/clans/:id/snapshot. The snapshot is applied
// asynchronously; 202 means it was queued.
//
// @Summary      Submit a roster snapshot
// @Tags         snapshots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Group id"
// @Param        body  body      rosterSnapshotRequest  true  "Clan and roster"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/clans/{id}/snapshot [post]
func (h *SnapshotHandler) Submit(c echo.Context) error {
	clanID, err := clanIDParam(c)
	if err != nil {
		return err
	}

	var req rosterSnapshotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dispatcher.Enqueue(c.Request().Context(), toSnapshotInput(clanID, req)); err != nil {
		h.log.Warn().Err(err).Int64("clan_id", clanID).Msg("snapshot not queued")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "snapshot queue unavailable")
	}

	username, _ := ctxOperator(c)
	h.log.Info().
		Int64("clan_id", clanID).
		Int("members", len(req.Members)).
		Str("submitted_by", username).
		Msg("snapshot queued")

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "snapshot accepted", ClanID: clanID})
}
