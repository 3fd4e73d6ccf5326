package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

func TestPlayerRepositoryGetByIDs(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	got, err := repo.GetByIDs(ctx, []string{"idn-fwd-01", "missing", "idn-gk-01"})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 || got[0].ID != "idn-fwd-01" || got[1].ID != "idn-gk-01" {
		t.Fatalf("unexpected players: %+v", got)
	}

	if _, ok, _ := repo.GetByID(ctx, "missing"); ok {
		t.Fatalf("expected missing player to be absent")
	}
	p, ok, err := repo.GetByID(ctx, "idn-def-04")
	if err != nil || !ok || p.Position != "LB" {
		t.Fatalf("unexpected player lookup: %+v ok=%t err=%v", p, ok, err)
	}
}

func TestSeedPlayersAreValid(t *testing.T) {
	for _, p := range SeedPlayers() {
		if err := p.Validate(); err != nil {
			t.Fatalf("seed player %s invalid: %v", p.ID, err)
		}
	}
}

func TestPlayerStatsRepositoryListings(t *testing.T) {
	repo := NewPlayerStatsRepository(SeedMatchStats())
	ctx := context.Background()

	byPlayer, err := repo.ListByPlayer(ctx, "idn-def-02")
	if err != nil {
		t.Fatalf("ListByPlayer: %v", err)
	}
	if len(byPlayer) != 2 || byPlayer[0].Gameweek != 1 || byPlayer[1].Gameweek != 2 {
		t.Fatalf("unexpected player history: %+v", byPlayer)
	}

	byFixture, err := repo.ListByFixture(ctx, FixtureIDPersebayaBaliUtd)
	if err != nil {
		t.Fatalf("ListByFixture: %v", err)
	}
	if len(byFixture) != 5 {
		t.Fatalf("expected 5 stat lines, got %d", len(byFixture))
	}
	for i := 1; i < len(byFixture); i++ {
		if byFixture[i-1].PlayerID > byFixture[i].PlayerID {
			t.Fatalf("fixture lines not ordered by player: %+v", byFixture)
		}
	}

	if _, ok, _ := repo.GetByPlayerAndFixture(ctx, "idn-gk-01", FixtureIDPersibPersebaya); ok {
		t.Fatalf("expected no stat line for unplayed fixture")
	}
}

func TestPlayerStatsRepositoryPutReplacesLine(t *testing.T) {
	repo := NewPlayerStatsRepository(nil)
	repo.Put(playerstats.MatchStat{PlayerID: "p1", FixtureID: "f1", Goals: 1})
	repo.Put(playerstats.MatchStat{PlayerID: "p1", FixtureID: "f1", Goals: 3})

	got, ok, err := repo.GetByPlayerAndFixture(context.Background(), "p1", "f1")
	if err != nil || !ok || got.Goals != 3 {
		t.Fatalf("unexpected stat: %+v ok=%t err=%v", got, ok, err)
	}
}

func TestPlayerStatsRepositoryUpsertFixturePoints(t *testing.T) {
	repo := NewPlayerStatsRepository(nil)
	ctx := context.Background()

	if err := repo.UpsertFixturePoints(ctx, "f1", []playerstats.FixturePoints{
		{PlayerID: "p2", Points: 4},
		{PlayerID: "p1", Points: 2},
	}); err != nil {
		t.Fatalf("UpsertFixturePoints: %v", err)
	}
	if err := repo.UpsertFixturePoints(ctx, "f1", []playerstats.FixturePoints{{PlayerID: "p1", Points: 9}}); err != nil {
		t.Fatalf("UpsertFixturePoints: %v", err)
	}

	got := repo.StoredPoints("f1")
	if len(got) != 2 {
		t.Fatalf("expected 2 stored rows, got %+v", got)
	}
	if got[0].PlayerID != "p1" || got[0].Points != 9 || got[0].FixtureID != "f1" {
		t.Fatalf("expected overwritten row for p1, got %+v", got[0])
	}
	if got[1].PlayerID != "p2" || got[1].Points != 4 {
		t.Fatalf("unexpected row for p2: %+v", got[1])
	}
}
