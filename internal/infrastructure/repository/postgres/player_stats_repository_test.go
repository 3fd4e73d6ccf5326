package postgres

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

func TestBuildFixturePointsUpsert(t *testing.T) {
	at := time.Date(2025, time.August, 9, 23, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	query, args, err := buildFixturePointsUpsert("fx-1", []playerstats.FixturePoints{
		{PlayerID: "p1", FixtureID: "ignored", Gameweek: 1, RuleSet: "standard", Points: 7, CalculatedAt: at},
		{PlayerID: "p2", Gameweek: 1, RuleSet: "standard", Points: -2, CalculatedAt: at},
	})
	if err != nil {
		t.Fatalf("buildFixturePointsUpsert: %v", err)
	}

	wantQuery := "INSERT INTO fixture_points (player_public_id, fixture_public_id, gameweek, rule_set, points, calculated_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6), ($7, $8, $9, $10, $11, $12) " +
		"ON CONFLICT (fixture_public_id, player_public_id) DO UPDATE SET " +
		"gameweek = EXCLUDED.gameweek, rule_set = EXCLUDED.rule_set, points = EXCLUDED.points, calculated_at = EXCLUDED.calculated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 12 {
		t.Fatalf("expected 12 args, got %d", len(args))
	}
	if args[1] != "fx-1" || args[7] != "fx-1" {
		t.Fatalf("fixture id must come from the call, got %v and %v", args[1], args[7])
	}
	if args[10] != -2 {
		t.Fatalf("negative points must be stored as-is, got %v", args[10])
	}
	ts, ok := args[5].(time.Time)
	if !ok || ts.Location() != time.UTC {
		t.Fatalf("calculated_at must be stored in UTC, got %v", args[5])
	}
}

func TestMatchStatTableModelToDomain(t *testing.T) {
	row := matchStatTableModel{
		PlayerID:      "p1",
		FixtureID:     "fx-1",
		Gameweek:      3,
		Goals:         2,
		MinutesPlayed: 90,
		Rating:        8.2,
		Appeared:      true,
		CleanSheet:    true,
	}
	got := row.toDomain()
	if got.PlayerID != "p1" || got.FixtureID != "fx-1" || got.Goals != 2 || !got.CleanSheet || got.Rating != 8.2 {
		t.Fatalf("unexpected domain stat: %+v", got)
	}
}
