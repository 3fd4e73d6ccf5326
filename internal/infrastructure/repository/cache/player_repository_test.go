package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-points/internal/platform/cache"
)

type countingPlayerRepo struct {
	players   map[string]player.Player
	getCalls  int
	listCalls int
	lastIDs   []string
	err       error
}

func (r *countingPlayerRepo) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.getCalls++
	if r.err != nil {
		return player.Player{}, false, r.err
	}
	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *countingPlayerRepo) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.listCalls++
	r.lastIDs = append([]string(nil), playerIDs...)
	if r.err != nil {
		return nil, r.err
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := r.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newCountingRepo() *countingPlayerRepo {
	return &countingPlayerRepo{players: map[string]player.Player{
		"p1": {ID: "p1", Name: "Keeper", Position: "GK"},
		"p2": {ID: "p2", Name: "Striker", Position: "ST"},
	}}
}

func TestPlayerRepositoryGetByIDCachesHitsAndMisses(t *testing.T) {
	next := newCountingRepo()
	repo := NewPlayerRepository(next, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, ok, err := repo.GetByID(ctx, "p1")
		if err != nil || !ok || p.Name != "Keeper" {
			t.Fatalf("unexpected lookup: %+v ok=%t err=%v", p, ok, err)
		}
		if _, ok, err := repo.GetByID(ctx, "ghost"); err != nil || ok {
			t.Fatalf("expected cached miss, ok=%t err=%v", ok, err)
		}
	}
	if next.getCalls != 2 {
		t.Fatalf("expected 2 backing calls, got %d", next.getCalls)
	}

	repo.Invalidate("p1")
	if _, _, err := repo.GetByID(ctx, "p1"); err != nil {
		t.Fatalf("GetByID after invalidate: %v", err)
	}
	if next.getCalls != 3 {
		t.Fatalf("expected reload after invalidate, got %d calls", next.getCalls)
	}
}

func TestPlayerRepositoryGetByIDDoesNotCacheErrors(t *testing.T) {
	next := newCountingRepo()
	next.err = errors.New("db down")
	repo := NewPlayerRepository(next, 0)

	if _, _, err := repo.GetByID(context.Background(), "p1"); err == nil {
		t.Fatalf("expected error")
	}
	next.err = nil
	if _, ok, err := repo.GetByID(context.Background(), "p1"); err != nil || !ok {
		t.Fatalf("expected recovery after error, ok=%t err=%v", ok, err)
	}
}

func TestPlayerRepositoryGetByIDsLoadsOnlyMissing(t *testing.T) {
	next := newCountingRepo()
	repo := NewPlayerRepository(next, 0, basecache.WithMaxSize(100))
	ctx := context.Background()

	if _, _, err := repo.GetByID(ctx, "p1"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	got, err := repo.GetByIDs(ctx, []string{"p2", "p1", "ghost", "p2"})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 3 || got[0].ID != "p2" || got[1].ID != "p1" || got[2].ID != "p2" {
		t.Fatalf("unexpected players: %+v", got)
	}
	if next.listCalls != 1 || len(next.lastIDs) != 2 || next.lastIDs[0] != "p2" || next.lastIDs[1] != "ghost" {
		t.Fatalf("expected one load of missing ids, calls=%d ids=%v", next.listCalls, next.lastIDs)
	}

	if _, err := repo.GetByIDs(ctx, []string{"ghost", "p2"}); err != nil {
		t.Fatalf("GetByIDs second pass: %v", err)
	}
	if next.listCalls != 1 {
		t.Fatalf("expected fully cached second pass, got %d calls", next.listCalls)
	}
}
