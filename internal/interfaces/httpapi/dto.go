package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/password"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type matchStatRequest struct {
	PlayerID        string  `json:"player_id" validate:"omitempty,max=64"`
	FixtureID       string  `json:"fixture_id" validate:"omitempty,max=64"`
	Gameweek        int     `json:"gameweek" validate:"gte=0"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	MinutesPlayed   int     `json:"minutes_played"`
	Rating          float64 `json:"rating" validate:"gte=0,lte=10"`
	Appeared        bool    `json:"appeared"`
	ManOfTheMatch   bool    `json:"man_of_the_match"`
	RedCard         bool    `json:"red_card"`
	YellowCard      bool    `json:"yellow_card"`
	CleanSheet      bool    `json:"clean_sheet"`
	Saves           int     `json:"saves"`
	PenaltySaves    int     `json:"penalty_saves"`
	PossessionsWon  int     `json:"possessions_won"`
	GoalsConceded   int     `json:"goals_conceded"`
	OwnGoals        int     `json:"own_goals"`
	PenaltiesMissed int     `json:"penalties_missed"`
}

func (r matchStatRequest) toDomain() playerstats.MatchStat {
	return playerstats.MatchStat{
		PlayerID:        r.PlayerID,
		FixtureID:       r.FixtureID,
		Gameweek:        r.Gameweek,
		Goals:           r.Goals,
		Assists:         r.Assists,
		MinutesPlayed:   r.MinutesPlayed,
		Rating:          r.Rating,
		Appeared:        r.Appeared,
		ManOfTheMatch:   r.ManOfTheMatch,
		RedCard:         r.RedCard,
		YellowCard:      r.YellowCard,
		CleanSheet:      r.CleanSheet,
		Saves:           r.Saves,
		PenaltySaves:    r.PenaltySaves,
		PossessionsWon:  r.PossessionsWon,
		GoalsConceded:   r.GoalsConceded,
		OwnGoals:        r.OwnGoals,
		PenaltiesMissed: r.PenaltiesMissed,
	}
}

type calculatePointsRequest struct {
	Role    string           `json:"role" validate:"required,max=32"`
	RuleSet string           `json:"rule_set" validate:"omitempty,max=32"`
	Stat    matchStatRequest `json:"stat"`
}

type seasonTotalsRequest struct {
	PlayerIDs []string `json:"player_ids" validate:"required,min=1,max=200,dive,required,max=64"`
}

type lineupEntryRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=64"`
	Position string `json:"position" validate:"omitempty,max=32"`
	Role     string `json:"role" validate:"omitempty,oneof=GK DEF MID FWD"`
}

type validateLineupRequest struct {
	Formation string               `json:"formation" validate:"required,max=16"`
	Entries   []lineupEntryRequest `json:"entries" validate:"required,min=1,max=30,dive"`
}

type checkPasswordRequest struct {
	Password string `json:"password" validate:"max=256"`
	Policy   string `json:"policy" validate:"omitempty,oneof=basic strict"`
}

type contributionDTO struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}

type breakdownDTO struct {
	RuleSet       string            `json:"ruleSet"`
	Role          string            `json:"role"`
	RoleKnown     bool              `json:"roleKnown"`
	Total         int               `json:"total"`
	Contributions []contributionDTO `json:"contributions"`
}

type playerFixturePointsDTO struct {
	PlayerID  string       `json:"playerId"`
	FixtureID string       `json:"fixtureId"`
	Gameweek  int          `json:"gameweek"`
	Role      string       `json:"role"`
	Points    int          `json:"points"`
	Breakdown breakdownDTO `json:"breakdown"`
}

type fixtureScoreDTO struct {
	FixtureID string `json:"fixtureId"`
	Gameweek  int    `json:"gameweek"`
	Points    int    `json:"points"`
}

type playerSeasonPointsDTO struct {
	PlayerID string            `json:"playerId"`
	Role     string            `json:"role"`
	RuleSet  string            `json:"ruleSet"`
	Matches  int               `json:"matches"`
	Total    int               `json:"total"`
	Fixtures []fixtureScoreDTO `json:"fixtures"`
}

type fixturePointsItemDTO struct {
	PlayerID string `json:"playerId"`
	Gameweek int    `json:"gameweek"`
	Points   int    `json:"points"`
}

type fixturePointsDTO struct {
	FixtureID    string                 `json:"fixtureId"`
	RuleSet      string                 `json:"ruleSet"`
	CalculatedAt time.Time              `json:"calculatedAt"`
	UnknownRoles []string               `json:"unknownRoles,omitempty"`
	Players      []fixturePointsItemDTO `json:"players"`
}

type ruleSetDTO struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
	Default bool   `json:"default"`
}

type formationDTO struct {
	Name string `json:"name"`
	GK   int    `json:"gk"`
	DEF  int    `json:"def"`
	MID  int    `json:"mid"`
	FWD  int    `json:"fwd"`
}

type roleMismatchDTO struct {
	Role     string `json:"role"`
	Required int    `json:"required"`
	Actual   int    `json:"actual"`
}

type lineupCheckDTO struct {
	Valid            bool              `json:"valid"`
	Formation        string            `json:"formation"`
	FormationFound   bool              `json:"formationFound"`
	Counts           map[string]int    `json:"counts"`
	Mismatches       []roleMismatchDTO `json:"mismatches"`
	UnknownPositions []string          `json:"unknownPositions"`
	Reason           string            `json:"reason,omitempty"`
}

type passwordCheckDTO struct {
	Policy   string   `json:"policy"`
	IsValid  bool     `json:"isValid"`
	Strength string   `json:"strength"`
	Score    int      `json:"score"`
	Errors   []string `json:"errors"`
}

func breakdownToDTO(_ context.Context, b scoring.Breakdown) breakdownDTO {
	items := make([]contributionDTO, 0, len(b.Contributions))
	for _, c := range b.Contributions {
		items = append(items, contributionDTO{Rule: c.Rule, Points: c.Points})
	}
	return breakdownDTO{
		RuleSet:       b.RuleSet,
		Role:          string(b.Role),
		RoleKnown:     b.RoleKnown,
		Total:         b.Total,
		Contributions: items,
	}
}

func playerFixturePointsToDTO(ctx context.Context, v usecase.PlayerFixturePoints) playerFixturePointsDTO {
	return playerFixturePointsDTO{
		PlayerID:  v.PlayerID,
		FixtureID: v.FixtureID,
		Gameweek:  v.Gameweek,
		Role:      string(v.Role),
		Points:    v.Breakdown.Total,
		Breakdown: breakdownToDTO(ctx, v.Breakdown),
	}
}

func playerSeasonPointsToDTO(_ context.Context, v usecase.PlayerSeasonPoints) playerSeasonPointsDTO {
	fixtures := make([]fixtureScoreDTO, 0, len(v.Fixtures))
	for _, f := range v.Fixtures {
		fixtures = append(fixtures, fixtureScoreDTO{FixtureID: f.FixtureID, Gameweek: f.Gameweek, Points: f.Points})
	}
	return playerSeasonPointsDTO{
		PlayerID: v.PlayerID,
		Role:     string(v.Role),
		RuleSet:  v.RuleSet,
		Matches:  v.Matches,
		Total:    v.Total,
		Fixtures: fixtures,
	}
}

func fixturePointsToDTO(_ context.Context, fixtureID, ruleSet string, calculatedAt time.Time, points []playerstats.FixturePoints, unknown []string) fixturePointsDTO {
	players := make([]fixturePointsItemDTO, 0, len(points))
	for _, p := range points {
		players = append(players, fixturePointsItemDTO{PlayerID: p.PlayerID, Gameweek: p.Gameweek, Points: p.Points})
	}
	return fixturePointsDTO{
		FixtureID:    fixtureID,
		RuleSet:      ruleSet,
		CalculatedAt: calculatedAt,
		UnknownRoles: unknown,
		Players:      players,
	}
}

func lineupCheckToDTO(_ context.Context, c fantasy.LineupCheck) lineupCheckDTO {
	counts := make(map[string]int, len(fantasy.AllRoles))
	for _, role := range fantasy.AllRoles {
		counts[string(role)] = c.Counts[role]
	}
	mismatches := make([]roleMismatchDTO, 0, len(c.Mismatches))
	for _, m := range c.Mismatches {
		mismatches = append(mismatches, roleMismatchDTO{Role: string(m.Role), Required: m.Required, Actual: m.Actual})
	}
	unknown := c.UnknownPositions
	if unknown == nil {
		unknown = []string{}
	}

	out := lineupCheckDTO{
		Valid:            c.Valid,
		Formation:        c.Formation.Name,
		FormationFound:   c.FormationFound,
		Counts:           counts,
		Mismatches:       mismatches,
		UnknownPositions: unknown,
	}
	if err := c.Err(); err != nil {
		out.Reason = err.Error()
	}
	return out
}

func passwordResultToDTO(_ context.Context, policy string, r password.Result) passwordCheckDTO {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return passwordCheckDTO{
		Policy:   policy,
		IsValid:  r.IsValid,
		Strength: string(r.Strength),
		Score:    r.Score,
		Errors:   errs,
	}
}
