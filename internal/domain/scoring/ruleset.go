package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
)

const (
	RuleSetStandard = "standard"
	RuleSetClassic  = "classic"
)

var (
	ErrInvalidRuleSet = errors.New("invalid rule set")
	ErrUnknownRuleSet = errors.New("unknown rule set")
)

// RoleRules holds the position-specific coefficients.
// The *Per fields are divisors: one point per N units, 0 disables the rule.
type RoleRules struct {
	Goal              int
	CleanSheet        int
	PossessionsWonPer int
	SavesPer          int
	PenaltySave       int
	GoalsConcededPer  int
}

// RuleSet is one named scoring profile.
type RuleSet struct {
	Name    string
	Version int
	// RatingBonus is keyed by the floored match rating.
	RatingBonus map[int]int
	Appearance  int
	// AppearanceNeedsMinutes ignores the Appeared flag and only counts minutes.
	AppearanceNeedsMinutes bool
	Assist                 int
	ManOfTheMatch          int
	RedCard                int
	YellowCard             int
	OwnGoal                int
	PenaltyMiss            int
	Roles                  map[fantasy.Role]RoleRules
}

// StandardRuleSet is the canonical profile.
func StandardRuleSet() RuleSet {
	return RuleSet{
		Name:    RuleSetStandard,
		Version: 1,
		RatingBonus: map[int]int{
			10: 5,
			9:  4,
			8:  3,
			7:  2,
			6:  1,
		},
		Appearance:    2,
		Assist:        3,
		ManOfTheMatch: 3,
		RedCard:       -3,
		Roles: map[fantasy.Role]RoleRules{
			fantasy.RoleForward: {
				Goal: 4,
			},
			fantasy.RoleMidfielder: {
				Goal:              5,
				CleanSheet:        2,
				PossessionsWonPer: 2,
			},
			fantasy.RoleDefender: {
				Goal:              6,
				CleanSheet:        4,
				PossessionsWonPer: 2,
				GoalsConcededPer:  2,
			},
			fantasy.RoleGoalkeeper: {
				Goal:             10,
				CleanSheet:       6,
				SavesPer:         2,
				PenaltySave:      5,
				GoalsConcededPer: 2,
			},
		},
	}
}

// ClassicRuleSet is the simpler flat-goal profile kept as an alternative.
func ClassicRuleSet() RuleSet {
	return RuleSet{
		Name:                   RuleSetClassic,
		Version:                1,
		Appearance:             2,
		AppearanceNeedsMinutes: true,
		Assist:                 3,
		RedCard:                -3,
		YellowCard:             -1,
		OwnGoal:                -2,
		PenaltyMiss:            -2,
		Roles: map[fantasy.Role]RoleRules{
			fantasy.RoleForward: {
				Goal: 4,
			},
			fantasy.RoleMidfielder: {
				Goal:       4,
				CleanSheet: 1,
			},
			fantasy.RoleDefender: {
				Goal:             4,
				CleanSheet:       4,
				GoalsConcededPer: 2,
			},
			fantasy.RoleGoalkeeper: {
				Goal:             4,
				CleanSheet:       4,
				SavesPer:         3,
				PenaltySave:      5,
				GoalsConcededPer: 2,
			},
		},
	}
}

func (r RuleSet) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRuleSet)
	}
	for role, rules := range r.Roles {
		if !role.Valid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidRuleSet, role)
		}
		if rules.PossessionsWonPer < 0 || rules.SavesPer < 0 || rules.GoalsConcededPer < 0 {
			return fmt.Errorf("%w: role %s divisors must be >= 0", ErrInvalidRuleSet, role)
		}
	}
	return nil
}

func (r RuleSet) clone() RuleSet {
	out := r
	out.RatingBonus = make(map[int]int, len(r.RatingBonus))
	for k, v := range r.RatingBonus {
		out.RatingBonus[k] = v
	}
	out.Roles = make(map[fantasy.Role]RoleRules, len(r.Roles))
	for k, v := range r.Roles {
		out.Roles[k] = v
	}
	return out
}

// Registry maps rule-set names to profiles. It is populated at startup and
// read-only afterwards.
type Registry struct {
	sets map[string]RuleSet
}

// NewRegistry returns a registry holding the standard and classic profiles.
func NewRegistry() *Registry {
	reg := &Registry{sets: make(map[string]RuleSet)}
	reg.sets[RuleSetStandard] = StandardRuleSet()
	reg.sets[RuleSetClassic] = ClassicRuleSet()
	return reg
}

// Register adds or replaces a profile.
func (g *Registry) Register(set RuleSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	set.Name = strings.ToLower(strings.TrimSpace(set.Name))
	g.sets[set.Name] = set.clone()
	return nil
}

func (g *Registry) Get(name string) (RuleSet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = RuleSetStandard
	}
	set, ok := g.sets[key]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
	}
	return set.clone(), nil
}

func (g *Registry) Names() []string {
	out := make([]string, 0, len(g.sets))
	for name := range g.sets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
