package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)

	mux.HandleFunc("GET /v1/standings", handler.ListStandings)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}", handler.GetFixture)

	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/news/{newsID}", handler.GetNews)

	mux.HandleFunc("GET /v1/uploads/{filename}", handler.ServeUpload)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, authorizer Authorizer) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(authorizer, h)
	}

	mux.Handle("GET /v1/auth/session", admin(handler.GetSession))
	mux.Handle("GET /v1/stats", admin(handler.GetStats))

	mux.Handle("POST /v1/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /v1/teams/{teamID}", admin(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", admin(handler.DeleteTeam))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("POST /v1/fixtures", admin(handler.CreateFixture))
	mux.Handle("PUT /v1/fixtures/{fixtureID}", admin(handler.UpdateFixture))
	mux.Handle("DELETE /v1/fixtures/{fixtureID}", admin(handler.DeleteFixture))
	mux.Handle("POST /v1/fixtures/{fixtureID}/result", admin(handler.RecordFixtureResult))

	mux.Handle("GET /v1/admin/news", admin(handler.ListAllNews))
	mux.Handle("POST /v1/news", admin(handler.CreateNews))
	mux.Handle("PUT /v1/news/{newsID}", admin(handler.UpdateNews))
	mux.Handle("DELETE /v1/news/{newsID}", admin(handler.DeleteNews))

	mux.Handle("POST /v1/uploads", admin(handler.UploadFile))
}
