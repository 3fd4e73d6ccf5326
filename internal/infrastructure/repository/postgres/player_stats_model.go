package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

type matchStatTableModel struct {
	ID              int64      `db:"id"`
	PlayerID        string     `db:"player_public_id"`
	FixtureID       string     `db:"fixture_public_id"`
	Gameweek        int        `db:"gameweek"`
	Goals           int        `db:"goals"`
	Assists         int        `db:"assists"`
	MinutesPlayed   int        `db:"minutes_played"`
	Rating          float64    `db:"rating"`
	Appeared        bool       `db:"appeared"`
	ManOfTheMatch   bool       `db:"man_of_the_match"`
	RedCard         bool       `db:"red_card"`
	YellowCard      bool       `db:"yellow_card"`
	CleanSheet      bool       `db:"clean_sheet"`
	Saves           int        `db:"saves"`
	PenaltySaves    int        `db:"penalty_saves"`
	PossessionsWon  int        `db:"possessions_won"`
	GoalsConceded   int        `db:"goals_conceded"`
	OwnGoals        int        `db:"own_goals"`
	PenaltiesMissed int        `db:"penalties_missed"`
	RecordedAt      time.Time  `db:"recorded_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (m matchStatTableModel) toDomain() playerstats.MatchStat {
	return playerstats.MatchStat{
		PlayerID:        m.PlayerID,
		FixtureID:       m.FixtureID,
		Gameweek:        m.Gameweek,
		Goals:           m.Goals,
		Assists:         m.Assists,
		MinutesPlayed:   m.MinutesPlayed,
		Rating:          m.Rating,
		Appeared:        m.Appeared,
		ManOfTheMatch:   m.ManOfTheMatch,
		RedCard:         m.RedCard,
		YellowCard:      m.YellowCard,
		CleanSheet:      m.CleanSheet,
		Saves:           m.Saves,
		PenaltySaves:    m.PenaltySaves,
		PossessionsWon:  m.PossessionsWon,
		GoalsConceded:   m.GoalsConceded,
		OwnGoals:        m.OwnGoals,
		PenaltiesMissed: m.PenaltiesMissed,
		RecordedAt:      m.RecordedAt,
	}
}

type fixturePointsInsertModel struct {
	PlayerID     string    `db:"player_public_id"`
	FixtureID    string    `db:"fixture_public_id"`
	Gameweek     int       `db:"gameweek"`
	RuleSet      string    `db:"rule_set"`
	Points       int       `db:"points"`
	CalculatedAt time.Time `db:"calculated_at"`
}

func fixturePointsInsertModelFrom(fixtureID string, item playerstats.FixturePoints) fixturePointsInsertModel {
	return fixturePointsInsertModel{
		PlayerID:     item.PlayerID,
		FixtureID:    fixtureID,
		Gameweek:     item.Gameweek,
		RuleSet:      item.RuleSet,
		Points:       item.Points,
		CalculatedAt: item.CalculatedAt.UTC(),
	}
}
