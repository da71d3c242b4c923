package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.teamService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	league := strings.TrimSpace(r.URL.Query().Get("league"))
	teams, err := h.teamService.ListTeams(ctx, league)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListSquadTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquadTeams")
	defer span.End()

	teams, err := h.squadService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list squad teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquad")
	defer span.End()

	teamName := r.PathValue("team")
	players, err := h.squadService.ListSquad(ctx, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "get squad failed", "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]squadPlayerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, squadPlayerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSquadPlayer")
	defer span.End()

	teamName := r.PathValue("team")
	row, err := strconv.Atoi(strings.TrimSpace(r.PathValue("row")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: row must be a number", usecase.ErrInvalidInput))
		return
	}

	var req squadPlayerPatchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.squadService.UpdatePlayer(ctx, teamName, row, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "update squad player failed", "team", teamName, "row", row, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadPlayerToDTO(player))
}
