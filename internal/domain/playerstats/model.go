package playerstats

import "time"

// MatchStat is one player's recorded line for one fixture.
// Records are produced by match ingestion and never mutated afterwards.
type MatchStat struct {
	PlayerID        string
	FixtureID       string
	Gameweek        int
	Goals           int
	Assists         int
	MinutesPlayed   int
	Rating          float64
	Appeared        bool
	ManOfTheMatch   bool
	RedCard         bool
	YellowCard      bool
	CleanSheet      bool
	Saves           int
	PenaltySaves    int
	PossessionsWon  int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesMissed int
	RecordedAt      time.Time
}

// FixturePoints stores the computed fantasy points of one stat line.
type FixturePoints struct {
	PlayerID     string
	FixtureID    string
	Gameweek     int
	RuleSet      string
	Points       int
	CalculatedAt time.Time
}
