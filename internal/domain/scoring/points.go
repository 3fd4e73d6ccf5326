package scoring

import (
	"math"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

// Rule names used in a Breakdown, in pipeline order.
const (
	RuleRating         = "rating"
	RuleAppearance     = "appearance"
	RuleAssists        = "assists"
	RuleManOfTheMatch  = "man_of_the_match"
	RuleRedCard        = "red_card"
	RuleYellowCard     = "yellow_card"
	RuleOwnGoals       = "own_goals"
	RulePenaltyMisses  = "penalty_misses"
	RuleGoals          = "goals"
	RuleCleanSheet     = "clean_sheet"
	RulePossessionsWon = "possessions_won"
	RuleSaves          = "saves"
	RulePenaltySaves   = "penalty_saves"
	RuleGoalsConceded  = "goals_conceded"
)

// Contribution is the points one rule added to the total.
type Contribution struct {
	Rule   string
	Points int
}

// Breakdown explains how a stat line was scored.
type Breakdown struct {
	RuleSet       string
	Role          fantasy.Role
	RoleKnown     bool
	Contributions []Contribution
	Total         int
}

// Calculator scores stat lines against one rule set. It is stateless and
// safe for concurrent use.
type Calculator struct {
	rules RuleSet
}

func NewCalculator(rules RuleSet) *Calculator {
	return &Calculator{rules: rules.clone()}
}

func (c *Calculator) RuleSet() string {
	return c.rules.Name
}

// Points returns the fantasy points of one stat line. Unknown roles skip the
// position-specific block.
func (c *Calculator) Points(stat playerstats.MatchStat, role string) int {
	return c.Breakdown(stat, role).Total
}

// Total sums the points of several stat lines.
func (c *Calculator) Total(stats []playerstats.MatchStat, role string) int {
	total := 0
	for _, stat := range stats {
		total += c.Points(stat, role)
	}
	return total
}

func (c *Calculator) Breakdown(stat playerstats.MatchStat, role string) Breakdown {
	r := c.rules
	out := Breakdown{RuleSet: r.Name}
	add := func(rule string, points int) {
		if points == 0 {
			return
		}
		out.Contributions = append(out.Contributions, Contribution{Rule: rule, Points: points})
		out.Total += points
	}

	add(RuleRating, r.ratingBonus(stat.Rating))
	if r.appeared(stat) {
		add(RuleAppearance, r.Appearance)
	}
	add(RuleAssists, nonNegative(stat.Assists)*r.Assist)
	if stat.ManOfTheMatch {
		add(RuleManOfTheMatch, r.ManOfTheMatch)
	}
	if stat.RedCard {
		add(RuleRedCard, r.RedCard)
	}
	if stat.YellowCard {
		add(RuleYellowCard, r.YellowCard)
	}
	add(RuleOwnGoals, nonNegative(stat.OwnGoals)*r.OwnGoal)
	add(RulePenaltyMisses, nonNegative(stat.PenaltiesMissed)*r.PenaltyMiss)

	resolved, ok := ParseRole(role)
	if !ok {
		return out
	}
	out.Role = resolved
	out.RoleKnown = true

	rr := r.Roles[resolved]
	add(RuleGoals, nonNegative(stat.Goals)*rr.Goal)
	if stat.CleanSheet {
		add(RuleCleanSheet, rr.CleanSheet)
	}
	add(RulePossessionsWon, per(stat.PossessionsWon, rr.PossessionsWonPer))
	add(RuleSaves, per(stat.Saves, rr.SavesPer))
	add(RulePenaltySaves, nonNegative(stat.PenaltySaves)*rr.PenaltySave)
	add(RuleGoalsConceded, -per(stat.GoalsConceded, rr.GoalsConcededPer))

	return out
}

func (r RuleSet) ratingBonus(rating float64) int {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0
	}
	return r.RatingBonus[int(math.Floor(rating))]
}

func (r RuleSet) appeared(stat playerstats.MatchStat) bool {
	if stat.MinutesPlayed > 0 {
		return true
	}
	return stat.Appeared && !r.AppearanceNeedsMinutes
}

func per(value, divisor int) int {
	if divisor <= 0 {
		return 0
	}
	return nonNegative(value) / divisor
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

var standardCalculator = NewCalculator(StandardRuleSet())

// CalculateFantasyPoints scores one stat line with the standard rule set.
func CalculateFantasyPoints(stat playerstats.MatchStat, role string) int {
	return standardCalculator.Points(stat, role)
}

// CalculateTotalFantasyPoints sums standard points over several matches.
func CalculateTotalFantasyPoints(stats []playerstats.MatchStat, role string) int {
	return standardCalculator.Total(stats, role)
}
