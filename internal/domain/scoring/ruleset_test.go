package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()

	names := reg.Names()
	if len(names) != 2 || names[0] != RuleSetClassic || names[1] != RuleSetStandard {
		t.Fatalf("unexpected registry names: %v", names)
	}

	set, err := reg.Get("")
	if err != nil {
		t.Fatalf("get default rule set: %v", err)
	}
	if set.Name != RuleSetStandard {
		t.Fatalf("empty name should resolve to standard, got %s", set.Name)
	}

	if _, err := reg.Get("fantasy-2030"); !errors.Is(err, ErrUnknownRuleSet) {
		t.Fatalf("expected ErrUnknownRuleSet, got %v", err)
	}
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	reg := NewRegistry()

	set, err := reg.Get(RuleSetStandard)
	if err != nil {
		t.Fatalf("get standard: %v", err)
	}
	set.RatingBonus[7] = 100
	set.Roles[fantasy.RoleForward] = RoleRules{Goal: 100}

	again, err := reg.Get(RuleSetStandard)
	if err != nil {
		t.Fatalf("get standard again: %v", err)
	}
	if again.RatingBonus[7] != 2 || again.Roles[fantasy.RoleForward].Goal != 4 {
		t.Fatalf("registry was mutated through a returned rule set")
	}
}

func TestRuleSet_Validate(t *testing.T) {
	set := StandardRuleSet()
	set.Name = " "
	if err := set.Validate(); !errors.Is(err, ErrInvalidRuleSet) {
		t.Fatalf("expected ErrInvalidRuleSet for blank name, got %v", err)
	}

	set = StandardRuleSet()
	set.Roles[fantasy.RoleDefender] = RoleRules{GoalsConcededPer: -1}
	if err := set.Validate(); !errors.Is(err, ErrInvalidRuleSet) {
		t.Fatalf("expected ErrInvalidRuleSet for negative divisor, got %v", err)
	}
}

func TestLoadRuleSetYAML(t *testing.T) {
	const profile = `
name: Cup
version: 2
rating_bonus:
  9: 2
  10: 3
appearance: 1
assist: 2
yellow_card: -1
roles:
  striker:
    goal: 5
  GK:
    goal: 8
    clean_sheet: 4
    saves_per: 3
`
	set, err := LoadRuleSetYAML(strings.NewReader(profile))
	if err != nil {
		t.Fatalf("load rule set: %v", err)
	}
	if set.Version != 2 || set.RatingBonus[10] != 3 {
		t.Fatalf("unexpected decoded rule set: %+v", set)
	}
	if set.Roles[fantasy.RoleForward].Goal != 5 {
		t.Fatalf("striker alias not mapped to FWD: %+v", set.Roles)
	}

	reg := NewRegistry()
	if err := reg.Register(set); err != nil {
		t.Fatalf("register: %v", err)
	}
	cup, err := reg.Get("cup")
	if err != nil {
		t.Fatalf("get cup: %v", err)
	}

	calc := NewCalculator(cup)
	// rating 2 + appearance 1 + goal 5 + yellow -1
	got := calc.Points(playerstats.MatchStat{MinutesPlayed: 70, Rating: 9.4, Goals: 1, YellowCard: true}, "FWD")
	if got != 7 {
		t.Fatalf("cup points = %d, want 7", got)
	}
	// midfield has no rules in this profile
	if got := calc.Points(playerstats.MatchStat{Goals: 3}, "MID"); got != 0 {
		t.Fatalf("cup MID points = %d, want 0", got)
	}
}

func TestLoadRuleSetYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
	}{
		{name: "unknown field", profile: "name: x\nbonus: 3\n"},
		{name: "unknown role", profile: "name: x\nroles:\n  coach:\n    goal: 1\n"},
		{name: "missing name", profile: "assist: 3\n"},
		{name: "negative divisor", profile: "name: x\nroles:\n  DEF:\n    goals_conceded_per: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadRuleSetYAML(strings.NewReader(tt.profile)); !errors.Is(err, ErrInvalidRuleSet) {
				t.Fatalf("expected ErrInvalidRuleSet, got %v", err)
			}
		})
	}
}
