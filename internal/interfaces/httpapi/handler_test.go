package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type testEnvelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type testServer struct {
	router http.Handler
	stats  *memory.PlayerStatsRepository
}

func newTestServer(t *testing.T, swaggerEnabled bool) testServer {
	t.Helper()

	logger := logging.NewNop()
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	stats := memory.NewPlayerStatsRepository(memory.SeedMatchStats())

	scoringService := usecase.NewScoringService(players, stats, scoring.NewRegistry(), nil, nil, usecase.ScoringConfig{}, logger)
	lineupService := usecase.NewLineupService(players, logger)
	passwordService := usecase.NewPasswordService("basic")

	handler := NewHandler(scoringService, lineupService, passwordService, logger)
	return testServer{
		router: NewRouter(handler, logger, swaggerEnabled, []string{"*"}),
		stats:  stats,
	}
}

func (s testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()

	var out testEnvelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body: %v, body=%s", err, rec.Body.String())
	}
	if out.APIVersion != googleAPIVersion {
		t.Fatalf("expected apiVersion=%s, got %q", googleAPIVersion, out.APIVersion)
	}
	return out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope[map[string]string](t, rec)
	if body.Data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %+v", body.Data)
	}
}

func TestListRuleSets(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/scoring/rulesets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope[[]ruleSetDTO](t, rec)
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 rule sets, got %+v", body.Data)
	}

	defaults := 0
	for _, set := range body.Data {
		if set.Default {
			defaults++
			if set.Name != scoring.RuleSetStandard {
				t.Fatalf("expected standard to be the default, got %s", set.Name)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default rule set, got %d", defaults)
	}
}

func TestCalculatePoints(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name      string
		body      string
		wantTotal int
		wantKnown bool
	}{
		{
			name:      "midfielder goal and assist",
			body:      `{"role":"CM","stat":{"goals":1,"assists":1,"minutes_played":90,"appeared":true,"man_of_the_match":true,"rating":8.6}}`,
			wantTotal: 16,
			wantKnown: true,
		},
		{
			name:      "goalkeeper clean sheet",
			body:      `{"role":"GK","stat":{"minutes_played":90,"appeared":true,"clean_sheet":true,"saves":5,"rating":7.4}}`,
			wantTotal: 12,
			wantKnown: true,
		},
		{
			name:      "unknown role keeps generic rules",
			body:      `{"role":"SWEEPER","stat":{"goals":3,"minutes_played":90,"appeared":true,"rating":6.2}}`,
			wantTotal: 3,
			wantKnown: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/v1/scoring/points", tc.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
			}
			body := decodeEnvelope[breakdownDTO](t, rec)
			if body.Data.Total != tc.wantTotal {
				t.Fatalf("expected total %d, got %+v", tc.wantTotal, body.Data)
			}
			if body.Data.RoleKnown != tc.wantKnown {
				t.Fatalf("expected roleKnown=%v, got %v", tc.wantKnown, body.Data.RoleKnown)
			}
			if body.Data.RuleSet != scoring.RuleSetStandard {
				t.Fatalf("expected standard rule set, got %s", body.Data.RuleSet)
			}
		})
	}
}

func TestCalculatePoints_RejectsBadPayload(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing role", body: `{"stat":{"goals":1}}`},
		{name: "unknown field", body: `{"role":"GK","stat":{},"bonus":true}`},
		{name: "rating out of range", body: `{"role":"GK","stat":{"rating":11}}`},
		{name: "not json", body: `role=GK`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/v1/scoring/points", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			body := decodeEnvelope[any](t, rec)
			if body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" {
				t.Fatalf("expected INVALID_ARGUMENT error, got %+v", body.Error)
			}
		})
	}
}

func TestGetPlayerFixturePoints(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/players/idn-mid-01/fixtures/"+memory.FixtureIDPersijaPersib+"/points", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[playerFixturePointsDTO](t, rec)
	if body.Data.Role != "MID" || body.Data.Points != 16 || body.Data.Gameweek != 1 {
		t.Fatalf("unexpected fixture points: %+v", body.Data)
	}
	if body.Data.Breakdown.Total != body.Data.Points {
		t.Fatalf("breakdown total %d does not match points %d", body.Data.Breakdown.Total, body.Data.Points)
	}
}

func TestGetPlayerFixturePoints_NotFound(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name string
		path string
	}{
		{name: "unknown player", path: "/v1/players/nobody/fixtures/" + memory.FixtureIDPersijaPersib + "/points"},
		{name: "player did not play", path: "/v1/players/idn-gk-01/fixtures/" + memory.FixtureIDPersibPersebaya + "/points"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, tc.path, "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected status 404, got %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetPlayerSeasonPoints(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/players/idn-def-02/points", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[playerSeasonPointsDTO](t, rec)
	if body.Data.Role != "DEF" || body.Data.Matches != 2 || body.Data.Total != 19 {
		t.Fatalf("unexpected season points: %+v", body.Data)
	}
	if len(body.Data.Fixtures) != 2 || body.Data.Fixtures[0].Gameweek != 1 || body.Data.Fixtures[1].Gameweek != 2 {
		t.Fatalf("expected fixtures ordered by gameweek, got %+v", body.Data.Fixtures)
	}
	if body.Data.Fixtures[0].Points != 1 || body.Data.Fixtures[1].Points != 18 {
		t.Fatalf("unexpected per-fixture points: %+v", body.Data.Fixtures)
	}
}

func TestListSeasonTotals(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/v1/players/points", `{"player_ids":["idn-def-02","idn-mid-01","idn-def-02"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[[]playerSeasonPointsDTO](t, rec)
	if len(body.Data) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 players, got %+v", body.Data)
	}
	if body.Data[0].PlayerID != "idn-def-02" || body.Data[1].PlayerID != "idn-mid-01" {
		t.Fatalf("expected request order, got %s,%s", body.Data[0].PlayerID, body.Data[1].PlayerID)
	}
	if body.Data[1].Total != 16 {
		t.Fatalf("expected idn-mid-01 total 16, got %d", body.Data[1].Total)
	}

	rec = srv.do(t, http.MethodPost, "/v1/players/points", `{"player_ids":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty ids, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodPost, "/v1/players/points", `{"player_ids":["idn-def-02","ghost"]}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown player, got %d", rec.Code)
	}
}

func TestRecalculateFixture(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/v1/fixtures/"+memory.FixtureIDPersebayaBaliUtd+"/recalculate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[fixturePointsDTO](t, rec)
	if body.Data.FixtureID != memory.FixtureIDPersebayaBaliUtd || len(body.Data.Players) != 5 {
		t.Fatalf("unexpected recalculation: %+v", body.Data)
	}
	if len(body.Data.UnknownRoles) != 1 || body.Data.UnknownRoles[0] != "idn-mid-03" {
		t.Fatalf("expected idn-mid-03 reported with an unknown role, got %v", body.Data.UnknownRoles)
	}
	for i := 1; i < len(body.Data.Players); i++ {
		if body.Data.Players[i-1].PlayerID > body.Data.Players[i].PlayerID {
			t.Fatalf("expected players sorted by id, got %+v", body.Data.Players)
		}
	}

	stored := srv.stats.StoredPoints(memory.FixtureIDPersebayaBaliUtd)
	if len(stored) != len(body.Data.Players) {
		t.Fatalf("expected %d stored rows, got %d", len(body.Data.Players), len(stored))
	}

	rec = srv.do(t, http.MethodPost, "/v1/fixtures/unknown-fixture/recalculate", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetFixturePoints_ScoresLiveWithoutSnapshot(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/fixtures/"+memory.FixtureIDPersijaPersib+"/points", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[fixturePointsDTO](t, rec)
	if len(body.Data.Players) != 8 {
		t.Fatalf("expected 8 players, got %d", len(body.Data.Players))
	}

	points := make(map[string]int, len(body.Data.Players))
	for _, p := range body.Data.Players {
		points[p.PlayerID] = p.Points
	}
	if points["idn-mid-01"] != 16 || points["idn-gk-01"] != 12 {
		t.Fatalf("unexpected fixture points: %+v", points)
	}
}

func TestListFormations(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/v1/formations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope[[]formationDTO](t, rec)
	if len(body.Data) == 0 {
		t.Fatalf("expected formations")
	}
	for _, f := range body.Data {
		if f.GK+f.DEF+f.MID+f.FWD != 11 {
			t.Fatalf("formation %s does not add up to 11: %+v", f.Name, f)
		}
	}
}

func TestValidateLineup(t *testing.T) {
	srv := newTestServer(t, false)

	valid := `{"formation":"4-4-2","entries":[
		{"player_id":"idn-gk-01"},
		{"position":"CB"},{"position":"CB"},{"position":"LB"},{"position":"RB"},
		{"position":"CM"},{"position":"CDM"},{"position":"CAM"},{"role":"MID"},
		{"position":"ST"},{"player_id":"idn-fwd-03"}
	]}`
	invalid := `{"formation":"4-3-3","entries":[
		{"position":"GK"},
		{"position":"CB"},{"position":"CB"},{"position":"LB"},{"position":"RB"},
		{"position":"CM"},{"position":"CDM"},{"position":"CAM"},{"position":"IW"},
		{"position":"ST"},{"position":"CF"}
	]}`

	tests := []struct {
		name           string
		body           string
		wantValid      bool
		wantFound      bool
		wantUnknownLen int
	}{
		{name: "valid 4-4-2", body: valid, wantValid: true, wantFound: true},
		{name: "wrong shape", body: invalid, wantValid: false, wantFound: true, wantUnknownLen: 1},
		{name: "unknown formation", body: `{"formation":"9-0-1","entries":[{"position":"GK"}]}`, wantValid: false, wantFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/v1/lineups/validate", tc.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
			}
			body := decodeEnvelope[lineupCheckDTO](t, rec)
			if body.Data.Valid != tc.wantValid || body.Data.FormationFound != tc.wantFound {
				t.Fatalf("unexpected verdict: %+v", body.Data)
			}
			if len(body.Data.UnknownPositions) != tc.wantUnknownLen {
				t.Fatalf("expected %d unknown positions, got %v", tc.wantUnknownLen, body.Data.UnknownPositions)
			}
			if !tc.wantValid && body.Data.Reason == "" {
				t.Fatalf("expected a reason for an invalid lineup")
			}
		})
	}
}

func TestValidateLineup_Errors(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "no entries", body: `{"formation":"4-4-2","entries":[]}`, wantStatus: http.StatusBadRequest},
		{name: "bad role override", body: `{"formation":"4-4-2","entries":[{"role":"SW"}]}`, wantStatus: http.StatusBadRequest},
		{name: "unknown player", body: `{"formation":"4-4-2","entries":[{"player_id":"ghost"}]}`, wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/v1/lineups/validate", tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d body=%s", tc.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCheckPassword(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/v1/passwords/check", `{"password":"abc"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[passwordCheckDTO](t, rec)
	if body.Data.IsValid || body.Data.Policy != "basic" || len(body.Data.Errors) == 0 {
		t.Fatalf("expected weak password rejected under basic policy, got %+v", body.Data)
	}

	rec = srv.do(t, http.MethodPost, "/v1/passwords/check", `{"password":"Garuda#Muda2025","policy":"basic"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body = decodeEnvelope[passwordCheckDTO](t, rec)
	if !body.Data.IsValid || body.Data.Score != 5 {
		t.Fatalf("expected strong password accepted, got %+v", body.Data)
	}

	rec = srv.do(t, http.MethodPost, "/v1/passwords/check", `{"password":"abc","policy":"lenient"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown policy, got %d", rec.Code)
	}
}

func TestOpenAPIRoutes(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var doc struct {
		OpenAPI string         `yaml:"openapi"`
		Paths   map[string]any `yaml:"paths"`
	}
	if err := yaml.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("parse openapi document: %v", err)
	}
	for _, path := range []string{
		"/healthz",
		"/v1/scoring/rulesets",
		"/v1/scoring/points",
		"/v1/players/points",
		"/v1/players/{playerID}/points",
		"/v1/players/{playerID}/fixtures/{fixtureID}/points",
		"/v1/fixtures/{fixtureID}/points",
		"/v1/fixtures/{fixtureID}/recalculate",
		"/v1/formations",
		"/v1/lineups/validate",
		"/v1/passwords/check",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Fatalf("openapi document is missing %s", path)
		}
	}

	rec = srv.do(t, http.MethodGet, "/docs", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Fatalf("expected swagger ui page, got %d", rec.Code)
	}
}

func TestOpenAPIRoutes_Disabled(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 when swagger is disabled, got %d", rec.Code)
	}
}
