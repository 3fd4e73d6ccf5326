package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
	qb "github.com/riskibarqy/fantasy-points/internal/platform/querybuilder"
)

const fixturePointsBatchSize = 500

var matchStatSelectColumns = []string{
	"id",
	"player_public_id",
	"fixture_public_id",
	"gameweek",
	"goals",
	"assists",
	"minutes_played",
	"rating",
	"appeared",
	"man_of_the_match",
	"red_card",
	"yellow_card",
	"clean_sheet",
	"saves",
	"penalty_saves",
	"possessions_won",
	"goals_conceded",
	"own_goals",
	"penalties_missed",
	"recorded_at",
	"deleted_at",
}

var fixturePointsConflictColumns = []string{"fixture_public_id", "player_public_id"}

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) GetByPlayerAndFixture(ctx context.Context, playerID, fixtureID string) (playerstats.MatchStat, bool, error) {
	query, args, err := qb.Select(matchStatSelectColumns...).From("player_fixture_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("fixture_public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return playerstats.MatchStat{}, false, fmt.Errorf("build get player fixture stat query: %w", err)
	}

	var row matchStatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.MatchStat{}, false, nil
		}
		return playerstats.MatchStat{}, false, fmt.Errorf("get player fixture stat: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstats.MatchStat, error) {
	query, args, err := qb.Select(matchStatSelectColumns...).From("player_fixture_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("gameweek", "fixture_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player stats query: %w", err)
	}

	return r.selectStats(ctx, "list player stats", query, args)
}

func (r *PlayerStatsRepository) ListByFixture(ctx context.Context, fixtureID string) ([]playerstats.MatchStat, error) {
	query, args, err := qb.Select(matchStatSelectColumns...).From("player_fixture_stats").
		Where(
			qb.Eq("fixture_public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixture stats query: %w", err)
	}

	return r.selectStats(ctx, "list fixture stats", query, args)
}

func (r *PlayerStatsRepository) selectStats(ctx context.Context, op, query string, args []any) ([]playerstats.MatchStat, error) {
	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]playerstats.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// UpsertFixturePoints writes every row in one transaction, batching inserts.
// A serialization conflict or dropped prepared statement is retried once.
func (r *PlayerStatsRepository) UpsertFixturePoints(ctx context.Context, fixtureID string, points []playerstats.FixturePoints) error {
	if len(points) == 0 {
		return nil
	}

	err := r.upsertFixturePoints(ctx, fixtureID, points)
	if isRetryable(err) {
		err = r.upsertFixturePoints(ctx, fixtureID, points)
	}
	return err
}

func (r *PlayerStatsRepository) upsertFixturePoints(ctx context.Context, fixtureID string, points []playerstats.FixturePoints) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert fixture points tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for start := 0; start < len(points); start += fixturePointsBatchSize {
		end := min(start+fixturePointsBatchSize, len(points))
		query, args, buildErr := buildFixturePointsUpsert(fixtureID, points[start:end])
		if buildErr != nil {
			return fmt.Errorf("build upsert fixture points query: %w", buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixture points: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert fixture points: %w", err)
	}
	return nil
}

func buildFixturePointsUpsert(fixtureID string, points []playerstats.FixturePoints) (string, []any, error) {
	rows := make([]fixturePointsInsertModel, 0, len(points))
	for _, item := range points {
		rows = append(rows, fixturePointsInsertModelFrom(fixtureID, item))
	}

	builder, err := qb.InsertRows("fixture_points", rows)
	if err != nil {
		return "", nil, err
	}
	return builder.
		OnConflictUpdate(fixturePointsConflictColumns, "gameweek", "rule_set", "points", "calculated_at").
		ToSQL()
}
