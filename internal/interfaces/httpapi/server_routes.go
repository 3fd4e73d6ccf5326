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

func registerScoringRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/scoring/rulesets", handler.ListRuleSets)
	mux.HandleFunc("POST /v1/scoring/points", handler.CalculatePoints)
	mux.HandleFunc("GET /v1/players/{playerID}/points", handler.GetPlayerSeasonPoints)
	mux.HandleFunc("GET /v1/players/{playerID}/fixtures/{fixtureID}/points", handler.GetPlayerFixturePoints)
	mux.HandleFunc("POST /v1/players/points", handler.ListSeasonTotals)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/points", handler.GetFixturePoints)
	mux.HandleFunc("POST /v1/fixtures/{fixtureID}/recalculate", handler.RecalculateFixture)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("POST /v1/lineups/validate", handler.ValidateLineup)
}

func registerPasswordRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/passwords/check", handler.CheckPassword)
}
