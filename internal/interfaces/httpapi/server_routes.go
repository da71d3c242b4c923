package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, sessions SessionVerifier) {
	mux.HandleFunc("POST /v1/sessions", handler.Login)
	mux.Handle("GET /v1/sessions/current", RequireAuth(sessions, http.HandlerFunc(handler.GetSession)))
	mux.Handle("DELETE /v1/sessions/current", RequireAuth(sessions, http.HandlerFunc(handler.Logout)))
	mux.Handle("PUT /v1/sessions/current/preferences", RequireAuth(sessions, http.HandlerFunc(handler.UpdatePreferences)))
	mux.Handle("GET /v1/sessions/current/drafts", RequireAuth(sessions, http.HandlerFunc(handler.ListDrafts)))
	mux.Handle("POST /v1/sessions/current/drafts", RequireAuth(sessions, http.HandlerFunc(handler.AddDraft)))
	mux.Handle("DELETE /v1/sessions/current/drafts", RequireAuth(sessions, http.HandlerFunc(handler.ClearDrafts)))
	mux.Handle("POST /v1/sessions/current/drafts/submit", RequireAuth(sessions, http.HandlerFunc(handler.SubmitDrafts)))
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, sessions SessionVerifier) {
	registerTeamRoutes(mux, handler, sessions)
	registerReportRoutes(mux, handler, sessions)
	registerChampionshipRoutes(mux, handler, sessions)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, sessions SessionVerifier) {
	mux.Handle("GET /v1/leagues", RequireAuth(sessions, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("GET /v1/teams", RequireAuth(sessions, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/squads", RequireAuth(sessions, http.HandlerFunc(handler.ListSquadTeams)))
	mux.Handle("GET /v1/squads/{team}", RequireAuth(sessions, http.HandlerFunc(handler.GetSquad)))
	mux.Handle("PATCH /v1/squads/{team}/players/{row}", RequireAuth(sessions, http.HandlerFunc(handler.UpdateSquadPlayer)))
	mux.Handle("GET /v1/players", RequireAuth(sessions, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /v1/players/options/{column}", RequireAuth(sessions, http.HandlerFunc(handler.PlayerOptions)))
	mux.Handle("GET /v1/external/teams/{teamID}/squad", RequireAuth(sessions, http.HandlerFunc(handler.ExternalTeamSquad)))
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler, sessions SessionVerifier) {
	mux.Handle("GET /v1/reports/match", RequireAuth(sessions, http.HandlerFunc(handler.ListMatchReports)))
	mux.Handle("POST /v1/reports/match", RequireAuth(sessions, http.HandlerFunc(handler.SubmitMatchReport)))
	mux.Handle("PATCH /v1/reports/match", RequireAuth(sessions, http.HandlerFunc(handler.UpdateMatchReport)))
	mux.Handle("GET /v1/reports/match/summary", RequireAuth(sessions, http.HandlerFunc(handler.SummarizeMatchReports)))
	mux.Handle("GET /v1/reports/individual", RequireAuth(sessions, http.HandlerFunc(handler.ListIndividualReports)))
	mux.Handle("POST /v1/reports/individual", RequireAuth(sessions, http.HandlerFunc(handler.SubmitIndividualReport)))
}

func registerChampionshipRoutes(mux *http.ServeMux, handler *Handler, sessions SessionVerifier) {
	mux.Handle("GET /v1/competitions", RequireAuth(sessions, http.HandlerFunc(handler.ListCompetitions)))
	mux.Handle("GET /v1/competitions/{id}/standings", RequireAuth(sessions, http.HandlerFunc(handler.GetStandings)))
	mux.Handle("GET /v1/competitions/{id}/schedule", RequireAuth(sessions, http.HandlerFunc(handler.GetSchedule)))
	mux.Handle("GET /v1/competitions/{id}/overview", RequireAuth(sessions, http.HandlerFunc(handler.GetOverview)))
	mux.Handle("POST /v1/competitions/refresh", RequireAuth(sessions, http.HandlerFunc(handler.RefreshCompetitions)))
}
