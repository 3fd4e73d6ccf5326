package memory

import (
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

const (
	FixtureIDPersijaPersib    = "idn-2025-gw01-psj-psb"
	FixtureIDPersebayaBaliUtd = "idn-2025-gw01-prb-bu"
	FixtureIDPersibPersebaya  = "idn-2025-gw02-psb-prb"
)

// SeedPlayers returns a small Liga 1 squad used when no database is configured.
// Position codes are deliberately mixed so role resolution sees aliases and
// one code it does not know ("IW").
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "idn-gk-01", TeamID: "idn-persija", Name: "Andritany Ardhiyasa", Position: "GK"},
		{ID: "idn-gk-02", TeamID: "idn-persib", Name: "Teja Paku Alam", Position: "Goalkeeper"},
		{ID: "idn-def-01", TeamID: "idn-persija", Name: "Hansamu Yama", Position: "CB"},
		{ID: "idn-def-02", TeamID: "idn-persib", Name: "Nick Kuipers", Position: "CB"},
		{ID: "idn-def-03", TeamID: "idn-persebaya", Name: "Dusan Stevanovic", Position: "DEF"},
		{ID: "idn-def-04", TeamID: "idn-baliutd", Name: "Ricky Fajrin", Position: "LB"},
		{ID: "idn-mid-01", TeamID: "idn-persija", Name: "Maciej Gajos", Position: "CM"},
		{ID: "idn-mid-02", TeamID: "idn-persib", Name: "Marc Klok", Position: "CDM"},
		{ID: "idn-mid-03", TeamID: "idn-persebaya", Name: "Bruno Moreira", Position: "IW"},
		{ID: "idn-mid-04", TeamID: "idn-baliutd", Name: "Eber Bessa", Position: "CAM"},
		{ID: "idn-fwd-01", TeamID: "idn-persija", Name: "Gustavo Almeida", Position: "ST"},
		{ID: "idn-fwd-02", TeamID: "idn-persib", Name: "David da Silva", Position: "FWD"},
		{ID: "idn-fwd-03", TeamID: "idn-baliutd", Name: "Mirza Mustafic", Position: "CF"},
	}
}

// SeedMatchStats returns stat lines for the seeded fixtures.
func SeedMatchStats() []playerstats.MatchStat {
	gw1 := time.Date(2025, time.August, 9, 21, 0, 0, 0, time.UTC)
	gw2 := gw1.AddDate(0, 0, 7)

	return []playerstats.MatchStat{
		{PlayerID: "idn-gk-01", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 90, Appeared: true, CleanSheet: true, Saves: 5, Rating: 7.4, RecordedAt: gw1},
		{PlayerID: "idn-gk-02", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 90, Appeared: true, GoalsConceded: 2, Saves: 3, PenaltySaves: 1, Rating: 6.9, RecordedAt: gw1},
		{PlayerID: "idn-def-01", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 90, Appeared: true, CleanSheet: true, PossessionsWon: 7, YellowCard: true, Rating: 7.1, RecordedAt: gw1},
		{PlayerID: "idn-def-02", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 78, Appeared: true, GoalsConceded: 2, OwnGoals: 1, Rating: 5.8, RecordedAt: gw1},
		{PlayerID: "idn-mid-01", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 90, Appeared: true, Goals: 1, Assists: 1, ManOfTheMatch: true, Rating: 8.6, RecordedAt: gw1},
		{PlayerID: "idn-mid-02", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 64, Appeared: true, PossessionsWon: 4, Rating: 6.5, RecordedAt: gw1},
		{PlayerID: "idn-fwd-01", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 88, Appeared: true, Goals: 1, PenaltiesMissed: 1, Rating: 7.0, RecordedAt: gw1},
		{PlayerID: "idn-fwd-02", FixtureID: FixtureIDPersijaPersib, Gameweek: 1, MinutesPlayed: 90, Appeared: true, RedCard: true, Rating: 5.2, RecordedAt: gw1},

		{PlayerID: "idn-def-03", FixtureID: FixtureIDPersebayaBaliUtd, Gameweek: 1, MinutesPlayed: 90, Appeared: true, Goals: 1, CleanSheet: true, Rating: 7.8, RecordedAt: gw1},
		{PlayerID: "idn-def-04", FixtureID: FixtureIDPersebayaBaliUtd, Gameweek: 1, MinutesPlayed: 90, Appeared: true, GoalsConceded: 1, Rating: 6.4, RecordedAt: gw1},
		{PlayerID: "idn-mid-03", FixtureID: FixtureIDPersebayaBaliUtd, Gameweek: 1, MinutesPlayed: 90, Appeared: true, Assists: 1, Rating: 7.2, RecordedAt: gw1},
		{PlayerID: "idn-mid-04", FixtureID: FixtureIDPersebayaBaliUtd, Gameweek: 1, MinutesPlayed: 15, Appeared: true, Rating: 6.0, RecordedAt: gw1},
		{PlayerID: "idn-fwd-03", FixtureID: FixtureIDPersebayaBaliUtd, Gameweek: 1, Appeared: false, RecordedAt: gw1},

		{PlayerID: "idn-gk-02", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 90, Appeared: true, CleanSheet: true, Saves: 6, Rating: 7.9, RecordedAt: gw2},
		{PlayerID: "idn-def-02", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 90, Appeared: true, CleanSheet: true, Goals: 1, Rating: 8.1, ManOfTheMatch: true, RecordedAt: gw2},
		{PlayerID: "idn-mid-02", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 90, Appeared: true, Assists: 2, Rating: 7.6, RecordedAt: gw2},
		{PlayerID: "idn-fwd-02", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 82, Appeared: true, Goals: 2, YellowCard: true, Rating: 8.0, RecordedAt: gw2},
		{PlayerID: "idn-def-03", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 90, Appeared: true, GoalsConceded: 3, Rating: 5.9, RecordedAt: gw2},
		{PlayerID: "idn-mid-03", FixtureID: FixtureIDPersibPersebaya, Gameweek: 2, MinutesPlayed: 45, Appeared: true, Rating: 6.1, RecordedAt: gw2},
	}
}
