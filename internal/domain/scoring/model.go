package scoring

import (
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

// FixtureSnapshot is the scored state of one fixture after a recalculation.
type FixtureSnapshot struct {
	FixtureID    string
	RuleSet      string
	Points       []playerstats.FixturePoints
	CalculatedAt time.Time
}

// PointsFor returns the points of one player in the snapshot.
func (s FixtureSnapshot) PointsFor(playerID string) (playerstats.FixturePoints, bool) {
	for _, item := range s.Points {
		if item.PlayerID == playerID {
			return item, true
		}
	}
	return playerstats.FixturePoints{}, false
}
