package scoring

import (
	"fmt"
	"io"
	"os"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"gopkg.in/yaml.v3"
)

type roleRulesFile struct {
	Goal              int `yaml:"goal"`
	CleanSheet        int `yaml:"clean_sheet"`
	PossessionsWonPer int `yaml:"possessions_won_per"`
	SavesPer          int `yaml:"saves_per"`
	PenaltySave       int `yaml:"penalty_save"`
	GoalsConcededPer  int `yaml:"goals_conceded_per"`
}

type ruleSetFile struct {
	Name                   string                   `yaml:"name"`
	Version                int                      `yaml:"version"`
	RatingBonus            map[int]int              `yaml:"rating_bonus"`
	Appearance             int                      `yaml:"appearance"`
	AppearanceNeedsMinutes bool                     `yaml:"appearance_needs_minutes"`
	Assist                 int                      `yaml:"assist"`
	ManOfTheMatch          int                      `yaml:"man_of_the_match"`
	RedCard                int                      `yaml:"red_card"`
	YellowCard             int                      `yaml:"yellow_card"`
	OwnGoal                int                      `yaml:"own_goal"`
	PenaltyMiss            int                      `yaml:"penalty_miss"`
	Roles                  map[string]roleRulesFile `yaml:"roles"`
}

// LoadRuleSetYAML decodes a rule set profile such as:
//
//	name: cup
//	rating_bonus: {9: 2, 10: 3}
//	appearance: 1
//	roles:
//	  FWD: {goal: 5}
//	  GK: {goal: 8, clean_sheet: 4, saves_per: 3}
//
// Role keys accept the same aliases as ParseRole.
func LoadRuleSetYAML(r io.Reader) (RuleSet, error) {
	var raw ruleSetFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return RuleSet{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRuleSet, err)
	}

	out := RuleSet{
		Name:                   raw.Name,
		Version:                raw.Version,
		RatingBonus:            raw.RatingBonus,
		Appearance:             raw.Appearance,
		AppearanceNeedsMinutes: raw.AppearanceNeedsMinutes,
		Assist:                 raw.Assist,
		ManOfTheMatch:          raw.ManOfTheMatch,
		RedCard:                raw.RedCard,
		YellowCard:             raw.YellowCard,
		OwnGoal:                raw.OwnGoal,
		PenaltyMiss:            raw.PenaltyMiss,
	}
	if len(raw.Roles) > 0 {
		out.Roles = make(map[fantasy.Role]RoleRules, len(raw.Roles))
	}
	for label, rules := range raw.Roles {
		role, ok := ParseRole(label)
		if !ok {
			return RuleSet{}, fmt.Errorf("%w: unknown role %q", ErrInvalidRuleSet, label)
		}
		out.Roles[role] = RoleRules(rules)
	}

	if err := out.Validate(); err != nil {
		return RuleSet{}, err
	}
	return out, nil
}

// LoadRuleSetFile reads a YAML profile from disk.
func LoadRuleSetFile(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("open rule set file: %w", err)
	}
	defer f.Close()

	return LoadRuleSetYAML(f)
}
