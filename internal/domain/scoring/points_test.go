package scoring

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

func TestCalculateFantasyPoints(t *testing.T) {
	tests := []struct {
		name string
		stat playerstats.MatchStat
		role string
		want int
	}{
		{
			name: "clean forward line",
			stat: playerstats.MatchStat{Appeared: true, Rating: 7},
			role: "FWD",
			want: 4,
		},
		{
			name: "goalkeeper clean sheet with saves",
			stat: playerstats.MatchStat{
				Appeared:     true,
				Rating:       9,
				CleanSheet:   true,
				Saves:        4,
				PenaltySaves: 1,
			},
			role: "GK",
			want: 19,
		},
		{
			name: "defender full pipeline",
			stat: playerstats.MatchStat{
				MinutesPlayed:  90,
				Rating:         8.7,
				Goals:          1,
				Assists:        1,
				ManOfTheMatch:  true,
				RedCard:        true,
				CleanSheet:     true,
				PossessionsWon: 5,
				GoalsConceded:  3,
			},
			role: "defender",
			want: 19,
		},
		{
			name: "midfielder possessions floor division",
			stat: playerstats.MatchStat{
				MinutesPlayed:  30,
				Rating:         6.0,
				Goals:          2,
				CleanSheet:     true,
				PossessionsWon: 3,
			},
			role: "mid",
			want: 16,
		},
		{
			name: "unknown role skips position block",
			stat: playerstats.MatchStat{
				Appeared: true,
				Rating:   10,
				Assists:  1,
				Goals:    3,
			},
			role: "coach",
			want: 10,
		},
		{
			name: "rating above ten has no bonus",
			stat: playerstats.MatchStat{Rating: 11},
			role: "FWD",
			want: 0,
		},
		{
			name: "rating floors to ten",
			stat: playerstats.MatchStat{Rating: 10.5},
			role: "FWD",
			want: 5,
		},
		{
			name: "rating below six has no bonus",
			stat: playerstats.MatchStat{Rating: 5.99},
			role: "FWD",
			want: 0,
		},
		{
			name: "nan rating",
			stat: playerstats.MatchStat{Rating: math.NaN(), MinutesPlayed: 1},
			role: "FWD",
			want: 2,
		},
		{
			name: "empty stat line",
			stat: playerstats.MatchStat{},
			role: "FWD",
			want: 0,
		},
		{
			name: "negative counts are ignored",
			stat: playerstats.MatchStat{Goals: -2, Assists: -1, Saves: -9, GoalsConceded: -4},
			role: "GK",
			want: 0,
		},
		{
			name: "red card alone goes negative",
			stat: playerstats.MatchStat{RedCard: true},
			role: "MID",
			want: -3,
		},
		{
			name: "yellow card and own goal do not score in standard",
			stat: playerstats.MatchStat{YellowCard: true, OwnGoals: 1, PenaltiesMissed: 1},
			role: "DEF",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateFantasyPoints(tt.stat, tt.role); got != tt.want {
				t.Fatalf("CalculateFantasyPoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateFantasyPoints_RoleAliases(t *testing.T) {
	stat := playerstats.MatchStat{MinutesPlayed: 90, Goals: 2}
	for _, label := range []string{"striker", "Forward", "FWD", "st", " cf "} {
		if got := CalculateFantasyPoints(stat, label); got != 10 {
			t.Fatalf("role %q scored %d, want 10", label, got)
		}
	}
}

func TestCalculateFantasyPoints_GoalValueByRole(t *testing.T) {
	stat := playerstats.MatchStat{Goals: 1}
	want := map[string]int{"FWD": 4, "MID": 5, "DEF": 6, "GK": 10}
	for role, points := range want {
		if got := CalculateFantasyPoints(stat, role); got != points {
			t.Fatalf("goal for %s scored %d, want %d", role, got, points)
		}
	}
}

func TestCalculateTotalFantasyPoints_OrderIndependent(t *testing.T) {
	stats := []playerstats.MatchStat{
		{MinutesPlayed: 90, Goals: 1, Rating: 7.5},
		{MinutesPlayed: 12, RedCard: true},
		{Appeared: true, Assists: 2, Rating: 9.1, ManOfTheMatch: true},
	}
	reversed := []playerstats.MatchStat{stats[2], stats[1], stats[0]}

	forward := CalculateTotalFantasyPoints(stats, "FWD")
	backward := CalculateTotalFantasyPoints(reversed, "FWD")
	if forward != backward {
		t.Fatalf("total depends on order: %d vs %d", forward, backward)
	}

	sum := 0
	for _, stat := range stats {
		sum += CalculateFantasyPoints(stat, "FWD")
	}
	if forward != sum {
		t.Fatalf("total %d differs from per-match sum %d", forward, sum)
	}
	if CalculateTotalFantasyPoints(nil, "FWD") != 0 {
		t.Fatalf("expected zero total for no matches")
	}
}

func TestCalculator_Breakdown(t *testing.T) {
	calc := NewCalculator(StandardRuleSet())
	got := calc.Breakdown(playerstats.MatchStat{
		Appeared:     true,
		Rating:       9,
		CleanSheet:   true,
		Saves:        4,
		PenaltySaves: 1,
	}, "goalkeeper")

	want := Breakdown{
		RuleSet:   RuleSetStandard,
		Role:      fantasy.RoleGoalkeeper,
		RoleKnown: true,
		Contributions: []Contribution{
			{Rule: RuleRating, Points: 4},
			{Rule: RuleAppearance, Points: 2},
			{Rule: RuleCleanSheet, Points: 6},
			{Rule: RuleSaves, Points: 2},
			{Rule: RulePenaltySaves, Points: 5},
		},
		Total: 19,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_ClassicRuleSet(t *testing.T) {
	calc := NewCalculator(ClassicRuleSet())

	gk := playerstats.MatchStat{
		MinutesPlayed: 90,
		Rating:        9,
		Goals:         1,
		CleanSheet:    true,
		Saves:         7,
		PenaltySaves:  1,
		YellowCard:    true,
	}
	if got := calc.Points(gk, "GK"); got != 16 {
		t.Fatalf("classic GK points = %d, want 16", got)
	}

	benchOnly := playerstats.MatchStat{Appeared: true}
	if got := calc.Points(benchOnly, "FWD"); got != 0 {
		t.Fatalf("classic appearance without minutes = %d, want 0", got)
	}

	penalties := playerstats.MatchStat{MinutesPlayed: 90, OwnGoals: 1, PenaltiesMissed: 1}
	if got := calc.Points(penalties, "DEF"); got != -2 {
		t.Fatalf("classic penalties = %d, want -2", got)
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := ParseRole("Keeper"); !ok || role != fantasy.RoleGoalkeeper {
		t.Fatalf("expected keeper alias to resolve to GK, got %s %t", role, ok)
	}
	if _, ok := ParseRole("manager"); ok {
		t.Fatalf("expected manager to be unknown")
	}
}
