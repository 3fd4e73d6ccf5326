package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	stats  map[string]map[string]playerstats.MatchStat // fixture -> player -> stat
	points map[string]map[string]playerstats.FixturePoints
}

func NewPlayerStatsRepository(stats []playerstats.MatchStat) *PlayerStatsRepository {
	r := &PlayerStatsRepository{
		stats:  make(map[string]map[string]playerstats.MatchStat),
		points: make(map[string]map[string]playerstats.FixturePoints),
	}
	for _, s := range stats {
		r.putLocked(s)
	}
	return r
}

// Put records a stat line, replacing any earlier line for the same
// player and fixture.
func (r *PlayerStatsRepository) Put(stat playerstats.MatchStat) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.putLocked(stat)
}

func (r *PlayerStatsRepository) putLocked(stat playerstats.MatchStat) {
	byPlayer, ok := r.stats[stat.FixtureID]
	if !ok {
		byPlayer = make(map[string]playerstats.MatchStat)
		r.stats[stat.FixtureID] = byPlayer
	}
	byPlayer[stat.PlayerID] = stat
}

func (r *PlayerStatsRepository) GetByPlayerAndFixture(_ context.Context, playerID, fixtureID string) (playerstats.MatchStat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stat, ok := r.stats[fixtureID][playerID]
	return stat, ok, nil
}

// ListByPlayer returns the player's lines ordered by gameweek, then fixture.
func (r *PlayerStatsRepository) ListByPlayer(_ context.Context, playerID string) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.MatchStat, 0)
	for _, byPlayer := range r.stats {
		if stat, ok := byPlayer[playerID]; ok {
			out = append(out, stat)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gameweek != out[j].Gameweek {
			return out[i].Gameweek < out[j].Gameweek
		}
		return out[i].FixtureID < out[j].FixtureID
	})
	return out, nil
}

// ListByFixture returns the fixture's lines ordered by player id.
func (r *PlayerStatsRepository) ListByFixture(_ context.Context, fixtureID string) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPlayer := r.stats[fixtureID]
	out := make([]playerstats.MatchStat, 0, len(byPlayer))
	for _, stat := range byPlayer {
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *PlayerStatsRepository) UpsertFixturePoints(_ context.Context, fixtureID string, points []playerstats.FixturePoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPlayer, ok := r.points[fixtureID]
	if !ok {
		byPlayer = make(map[string]playerstats.FixturePoints, len(points))
		r.points[fixtureID] = byPlayer
	}
	for _, item := range points {
		item.FixtureID = fixtureID
		byPlayer[item.PlayerID] = item
	}
	return nil
}

// StoredPoints returns the persisted points of a fixture ordered by player id.
func (r *PlayerStatsRepository) StoredPoints(fixtureID string) []playerstats.FixturePoints {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPlayer := r.points[fixtureID]
	out := make([]playerstats.FixturePoints, 0, len(byPlayer))
	for _, item := range byPlayer {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}
