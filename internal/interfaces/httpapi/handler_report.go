package httpapi

import (
	"net/http"
)

func (h *Handler) ListMatchReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchReports")
	defer span.End()

	reports, err := h.reportService.ListMatchReports(ctx, reportFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(ctx, "list match reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reports)
}

func (h *Handler) SubmitMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatchReport")
	defer span.End()

	_, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchReportRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.reportService.SubmitMatchReport(ctx, req.toDomain(scout))
	if err != nil {
		h.logger.WarnContext(ctx, "submit match report failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, saved)
}

func (h *Handler) UpdateMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchReport")
	defer span.End()

	_, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchReportUpdateRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	key := req.key(scout)
	updated, err := h.reportService.UpdateMatchReport(ctx, key, req.patch())
	if err != nil {
		h.logger.WarnContext(ctx, "update match report failed",
			"scout", key.Scout,
			"match", key.Match,
			"player", key.Player,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updatedDTO{Updated: updated})
}

func (h *Handler) SummarizeMatchReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SummarizeMatchReports")
	defer span.End()

	summary, err := h.reportService.SummarizeMatchReports(ctx, reportFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(ctx, "summarize match reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListIndividualReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListIndividualReports")
	defer span.End()

	reports, err := h.reportService.ListIndividualReports(ctx, reportFilterFromQuery(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(ctx, "list individual reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reports)
}

func (h *Handler) SubmitIndividualReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitIndividualReport")
	defer span.End()

	_, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req individualReportRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.reportService.SubmitIndividualReport(ctx, req.toDomain(scout))
	if err != nil {
		h.logger.WarnContext(ctx, "submit individual report failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, saved)
}
