package httpapi

import (
	"net/http"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.championshipService.ListCompetitions())
}

// GetStandings answers 200 even when the scrape failed; the result status
// says what happened.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	id := r.PathValue("id")
	res, err := h.championshipService.Standings(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsWithLogos(res))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	id := r.PathValue("id")
	res, err := h.championshipService.Schedule(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleWithLogos(res))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	id := r.PathValue("id")
	overview, err := h.championshipService.Overview(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview.Standings = standingsWithLogos(overview.Standings)
	overview.Schedule = scheduleWithLogos(overview.Schedule)
	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) RefreshCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshCompetitions")
	defer span.End()

	outcomes, err := h.championshipService.RefreshAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomes)
}
