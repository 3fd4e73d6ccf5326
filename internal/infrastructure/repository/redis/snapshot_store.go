package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
)

const snapshotKeyPrefix = "fantasy-points:snapshot:"

// commander is the subset of goredis.Cmdable the store needs.
type commander interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// SnapshotStore keeps fixture snapshots as JSON documents in Redis.
type SnapshotStore struct {
	client commander
	ttl    time.Duration
}

func NewSnapshotStore(client commander, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

// NewClient parses a redis:// URL and verifies the server answers.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func snapshotKey(fixtureID string) string {
	return snapshotKeyPrefix + fixtureID
}

func (s *SnapshotStore) SaveFixtureSnapshot(ctx context.Context, snapshot scoring.FixtureSnapshot) error {
	payload, err := sonic.Marshal(snapshotDocumentFrom(snapshot))
	if err != nil {
		return fmt.Errorf("encode fixture snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(snapshot.FixtureID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save fixture snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) GetFixtureSnapshot(ctx context.Context, fixtureID string) (scoring.FixtureSnapshot, bool, error) {
	raw, err := s.client.Get(ctx, snapshotKey(fixtureID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return scoring.FixtureSnapshot{}, false, nil
		}
		return scoring.FixtureSnapshot{}, false, fmt.Errorf("get fixture snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return scoring.FixtureSnapshot{}, false, fmt.Errorf("decode fixture snapshot: %w", err)
	}
	return doc.toDomain(), true, nil
}

func (s *SnapshotStore) DeleteFixtureSnapshot(ctx context.Context, fixtureID string) error {
	if err := s.client.Del(ctx, snapshotKey(fixtureID)).Err(); err != nil {
		return fmt.Errorf("delete fixture snapshot: %w", err)
	}
	return nil
}

type snapshotDocument struct {
	FixtureID    string          `json:"fixtureId"`
	RuleSet      string          `json:"ruleSet"`
	CalculatedAt time.Time       `json:"calculatedAt"`
	Points       []pointDocument `json:"points"`
}

type pointDocument struct {
	PlayerID     string    `json:"playerId"`
	Gameweek     int       `json:"gameweek"`
	RuleSet      string    `json:"ruleSet"`
	Points       int       `json:"points"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

func snapshotDocumentFrom(snapshot scoring.FixtureSnapshot) snapshotDocument {
	doc := snapshotDocument{
		FixtureID:    snapshot.FixtureID,
		RuleSet:      snapshot.RuleSet,
		CalculatedAt: snapshot.CalculatedAt.UTC(),
		Points:       make([]pointDocument, 0, len(snapshot.Points)),
	}
	for _, item := range snapshot.Points {
		doc.Points = append(doc.Points, pointDocument{
			PlayerID:     item.PlayerID,
			Gameweek:     item.Gameweek,
			RuleSet:      item.RuleSet,
			Points:       item.Points,
			CalculatedAt: item.CalculatedAt.UTC(),
		})
	}
	return doc
}

func (d snapshotDocument) toDomain() scoring.FixtureSnapshot {
	out := scoring.FixtureSnapshot{
		FixtureID:    d.FixtureID,
		RuleSet:      d.RuleSet,
		CalculatedAt: d.CalculatedAt,
		Points:       make([]playerstats.FixturePoints, 0, len(d.Points)),
	}
	for _, item := range d.Points {
		out.Points = append(out.Points, playerstats.FixturePoints{
			PlayerID:     item.PlayerID,
			FixtureID:    d.FixtureID,
			Gameweek:     item.Gameweek,
			RuleSet:      item.RuleSet,
			Points:       item.Points,
			CalculatedAt: item.CalculatedAt,
		})
	}
	return out
}
