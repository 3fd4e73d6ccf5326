package playerstats

import "context"

type Repository interface {
	GetByPlayerAndFixture(ctx context.Context, playerID, fixtureID string) (MatchStat, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]MatchStat, error)
	ListByFixture(ctx context.Context, fixtureID string) ([]MatchStat, error)
	UpsertFixturePoints(ctx context.Context, fixtureID string, points []FixturePoints) error
}
