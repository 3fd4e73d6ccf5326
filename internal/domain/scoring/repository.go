package scoring

import "context"

// SnapshotStore keeps the latest scored snapshot per fixture so readers do
// not have to rescore every stat line.
type SnapshotStore interface {
	SaveFixtureSnapshot(ctx context.Context, snapshot FixtureSnapshot) error
	GetFixtureSnapshot(ctx context.Context, fixtureID string) (FixtureSnapshot, bool, error)
}
