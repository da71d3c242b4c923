package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-scouting/internal/domain/session"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.Login(ctx, req.Scout, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "scout", req.Scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, loginResponse{Token: sess.ID, Session: sessionToDTO(sess)})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sess, ok := sessionFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	id, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.sessionService.Logout(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "logout failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePreferences")
	defer span.End()

	id, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req preferencesRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.PreferencesInput{Page: req.Page}
	if req.Language != nil {
		lang, ok := session.ParseLanguage(*req.Language)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: unsupported language %q", usecase.ErrInvalidInput, *req.Language))
			return
		}
		input.Language = &lang
	}

	sess, err := h.sessionService.UpdatePreferences(ctx, id, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update preferences failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess))
}

func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrafts")
	defer span.End()

	id, _, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	drafts, err := h.sessionService.ListDrafts(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, drafts)
}

func (h *Handler) AddDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddDraft")
	defer span.End()

	id, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchReportRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.sessionService.AddDraft(ctx, id, req.toDomain(scout))
	if err != nil {
		h.logger.WarnContext(ctx, "add draft failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sess.Drafts)
}

func (h *Handler) ClearDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearDrafts")
	defer span.End()

	id, _, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.sessionService.ClearDrafts(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitDrafts")
	defer span.End()

	id, scout, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	submitted, err := h.sessionService.SubmitDrafts(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "submit drafts failed", "scout", scout, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submitted)
}
