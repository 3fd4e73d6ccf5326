package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-points/internal/platform/cache"
)

// PlayerRepository caches player lookups by id, including misses, for the
// lifetime of the underlying cache entries.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Cache[cachedPlayerByID]
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func NewPlayerRepository(next player.Repository, ttl time.Duration, opts ...basecache.Option) *PlayerRepository {
	return &PlayerRepository{
		next:  next,
		cache: basecache.New[cachedPlayerByID](ttl, opts...),
	}
}

func playerKey(playerID string) string {
	return "player:id:" + playerID
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := basecache.GetOrSetShared(ctx, r.cache, playerKey(playerID), func(ctx context.Context) (cachedPlayerByID, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedPlayerByID{}, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	return cached.value, cached.exists, nil
}

// GetByIDs serves what it can from cache and loads the rest in one call.
// Ids the backing repository does not return are cached as misses.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	found := make(map[string]cachedPlayerByID, len(playerIDs))
	missing := make([]string, 0)
	for _, id := range playerIDs {
		if _, seen := found[id]; seen {
			continue
		}
		if cached, ok := r.cache.Get(playerKey(id)); ok {
			found[id] = cached
			continue
		}
		found[id] = cachedPlayerByID{}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		items, err := r.next.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			found[item.ID] = cachedPlayerByID{value: item, exists: true}
		}
		for _, id := range missing {
			r.cache.Set(playerKey(id), found[id])
		}
	}

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if cached := found[id]; cached.exists {
			out = append(out, cached.value)
		}
	}
	return out, nil
}

// Invalidate drops one cached player, or all of them when playerID is empty.
func (r *PlayerRepository) Invalidate(playerID string) {
	if playerID == "" {
		r.cache.DeletePrefix("player:id:")
		return
	}
	r.cache.Delete(playerKey(playerID))
}
