package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

func (h *Handler) ListRuleSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRuleSets")
	defer span.End()

	sets := h.scoringService.RuleSets()
	out := make([]ruleSetDTO, 0, len(sets))
	for _, set := range sets {
		out = append(out, ruleSetDTO{Name: set.Name, Version: set.Version, Default: set.Default})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CalculatePoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculatePoints")
	defer span.End()

	var req calculatePointsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	breakdown, err := h.scoringService.CalculatePoints(ctx, usecase.CalculatePointsInput{
		Stat:    req.Stat.toDomain(),
		Role:    req.Role,
		RuleSet: req.RuleSet,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "calculate points failed", "role", req.Role, "rule_set", req.RuleSet, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdownToDTO(ctx, breakdown))
}

func (h *Handler) GetPlayerFixturePoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerFixturePoints")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	item, err := h.scoringService.PlayerFixturePoints(ctx, playerID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player fixture points failed", "player_id", playerID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerFixturePointsToDTO(ctx, item))
}

func (h *Handler) GetPlayerSeasonPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonPoints")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	item, err := h.scoringService.PlayerSeasonPoints(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player season points failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonPointsToDTO(ctx, item))
}

func (h *Handler) ListSeasonTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonTotals")
	defer span.End()

	var req seasonTotalsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.scoringService.SeasonTotals(ctx, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "list season totals failed", "players", len(req.PlayerIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerSeasonPointsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerSeasonPointsToDTO(ctx, item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFixturePoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixturePoints")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	snapshot, err := h.scoringService.FixturePoints(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture points failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturePointsToDTO(ctx, snapshot.FixtureID, snapshot.RuleSet, snapshot.CalculatedAt, snapshot.Points, nil))
}

func (h *Handler) RecalculateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateFixture")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	if fixtureID == "" {
		writeError(ctx, w, fmt.Errorf("%w: fixture id is required", usecase.ErrInvalidInput))
		return
	}

	result, err := h.scoringService.RecalculateFixture(ctx, fixtureID)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturePointsToDTO(ctx, result.FixtureID, result.RuleSet, result.CalculatedAt, result.Points, result.UnknownRoles))
}
