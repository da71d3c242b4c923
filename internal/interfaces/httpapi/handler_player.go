package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter, err := playerFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.Browse(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "browse players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) PlayerOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerOptions")
	defer span.End()

	column, err := player.ParseColumn(r.PathValue("column"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err))
		return
	}
	filter, err := playerFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	options, err := h.playerService.Options(ctx, column, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "player options failed", "column", column, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, options)
}

func (h *Handler) ExternalTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExternalTeamSquad")
	defer span.End()

	teamID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("teamID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: team id must be a number", usecase.ErrInvalidInput))
		return
	}

	members, err := h.externalSquadService.TeamSquad(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "external squad failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, members)
}

// playerFilterFromQuery treats every query parameter as a column constraint;
// unknown columns are rejected rather than ignored.
func playerFilterFromQuery(q url.Values) (player.Filter, error) {
	filter := make(player.Filter, len(q))
	for key, values := range q {
		column, err := player.ParseColumn(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
		}
		if len(values) > 0 {
			filter[column] = strings.TrimSpace(values[0])
		}
	}
	return filter, nil
}
