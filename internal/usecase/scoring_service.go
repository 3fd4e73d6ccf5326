package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/platform/cache"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
)

const (
	defaultScoringWorkers  = 8
	maxSeasonTotalsPlayers = 200
)

type ScoringConfig struct {
	RuleSet string
	Workers int
}

type CalculatePointsInput struct {
	Stat    playerstats.MatchStat
	Role    string
	RuleSet string
}

type PlayerFixturePoints struct {
	PlayerID  string
	FixtureID string
	Gameweek  int
	Role      fantasy.Role
	Breakdown scoring.Breakdown
}

type FixtureScore struct {
	FixtureID string
	Gameweek  int
	Points    int
}

type PlayerSeasonPoints struct {
	PlayerID string
	Role     fantasy.Role
	RuleSet  string
	Matches  int
	Total    int
	Fixtures []FixtureScore
}

type RecalculateResult struct {
	FixtureID    string
	RuleSet      string
	Points       []playerstats.FixturePoints
	UnknownRoles []string
	CalculatedAt time.Time
}

type RuleSetSummary struct {
	Name    string
	Version int
	Default bool
}

// ScoringService scores stored match stats. Stats reads go through a circuit
// breaker and a TTL cache; recalculated fixtures are persisted and, when a
// snapshot store is configured, published there too.
type ScoringService struct {
	players   player.Repository
	stats     playerstats.Repository
	snapshots scoring.SnapshotStore
	registry  *scoring.Registry
	ruleSet   string
	workers   int
	statCache *cache.Cache[[]playerstats.MatchStat]
	breaker   *resilience.CircuitBreaker
	logger    *logging.Logger
	now       func() time.Time
}

func NewScoringService(
	players player.Repository,
	stats playerstats.Repository,
	registry *scoring.Registry,
	statCache *cache.Cache[[]playerstats.MatchStat],
	breaker *resilience.CircuitBreaker,
	cfg ScoringConfig,
	logger *logging.Logger,
) *ScoringService {
	if registry == nil {
		registry = scoring.NewRegistry()
	}
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultScoringWorkers
	}
	ruleSet := strings.ToLower(strings.TrimSpace(cfg.RuleSet))
	if ruleSet == "" {
		ruleSet = scoring.RuleSetStandard
	}

	return &ScoringService{
		players:   players,
		stats:     stats,
		registry:  registry,
		ruleSet:   ruleSet,
		workers:   workers,
		statCache: statCache,
		breaker:   breaker,
		logger:    logger,
		now:       time.Now,
	}
}

// SetSnapshotStore enables publishing recalculated fixtures.
func (s *ScoringService) SetSnapshotStore(store scoring.SnapshotStore) {
	s.snapshots = store
}

func (s *ScoringService) RuleSets() []RuleSetSummary {
	names := s.registry.Names()
	out := make([]RuleSetSummary, 0, len(names))
	for _, name := range names {
		set, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		out = append(out, RuleSetSummary{
			Name:    set.Name,
			Version: set.Version,
			Default: set.Name == s.ruleSet,
		})
	}
	return out
}

// CalculatePoints scores a single stat line supplied by the caller.
func (s *ScoringService) CalculatePoints(ctx context.Context, input CalculatePointsInput) (scoring.Breakdown, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculatePoints")
	defer span.End()

	calc, err := s.calculator(input.RuleSet)
	if err != nil {
		return scoring.Breakdown{}, err
	}

	out := calc.Breakdown(input.Stat, input.Role)
	if !out.RoleKnown {
		s.logger.WarnContext(ctx, "unknown role, position block skipped", "role", input.Role, "rule_set", calc.RuleSet())
	}
	return out, nil
}

func (s *ScoringService) PlayerFixturePoints(ctx context.Context, playerID, fixtureID string) (PlayerFixturePoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PlayerFixturePoints",
		attribute.String("player_id", playerID),
		attribute.String("fixture_id", fixtureID),
	)
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	fixtureID = strings.TrimSpace(fixtureID)
	if playerID == "" || fixtureID == "" {
		return PlayerFixturePoints{}, invalidInput("player_id and fixture_id are required")
	}

	role, err := s.playerRole(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return PlayerFixturePoints{}, err
	}

	key := fmt.Sprintf("fixture:%s:player:%s", fixtureID, playerID)
	stats, err := s.cachedStats(ctx, key, false, func(ctx context.Context) ([]playerstats.MatchStat, error) {
		stat, ok, err := s.stats.GetByPlayerAndFixture(ctx, playerID, fixtureID)
		if err != nil || !ok {
			return nil, err
		}
		return []playerstats.MatchStat{stat}, nil
	})
	if err != nil {
		err = wrapDependency(err, "get stats player=%s fixture=%s", playerID, fixtureID)
		recordSpanError(span, err)
		return PlayerFixturePoints{}, err
	}
	if len(stats) == 0 {
		return PlayerFixturePoints{}, notFound("no stats for player=%s fixture=%s", playerID, fixtureID)
	}

	calc, err := s.calculator("")
	if err != nil {
		return PlayerFixturePoints{}, err
	}
	stat := stats[0]
	return PlayerFixturePoints{
		PlayerID:  playerID,
		FixtureID: fixtureID,
		Gameweek:  stat.Gameweek,
		Role:      role,
		Breakdown: calc.Breakdown(stat, string(role)),
	}, nil
}

func (s *ScoringService) PlayerSeasonPoints(ctx context.Context, playerID string) (PlayerSeasonPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PlayerSeasonPoints", attribute.String("player_id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerSeasonPoints{}, invalidInput("player_id is required")
	}

	out, err := s.seasonPoints(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return PlayerSeasonPoints{}, err
	}
	return out, nil
}

// SeasonTotals scores several players concurrently. The first failure
// cancels the remaining lookups.
func (s *ScoringService) SeasonTotals(ctx context.Context, playerIDs []string) ([]PlayerSeasonPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SeasonTotals", attribute.Int("player_count", len(playerIDs)))
	defer span.End()

	ids := uniqueTrimmed(playerIDs)
	if len(ids) == 0 {
		return nil, invalidInput("at least one player_id is required")
	}
	if len(ids) > maxSeasonTotalsPlayers {
		return nil, invalidInput("at most %d player ids are allowed, got %d", maxSeasonTotalsPlayers, len(ids))
	}

	type indexed struct {
		index int
		item  PlayerSeasonPoints
	}

	p := pool.NewWithResults[indexed]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(min(s.workers, len(ids)))
	for i, id := range ids {
		p.Go(func(ctx context.Context) (indexed, error) {
			item, err := s.seasonPoints(ctx, id)
			if err != nil {
				return indexed{}, err
			}
			return indexed{index: i, item: item}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })
	out := make([]PlayerSeasonPoints, 0, len(results))
	for _, r := range results {
		out = append(out, r.item)
	}
	return out, nil
}

// RecalculateFixture rescores every stat line of a fixture on a worker pool,
// persists the points and refreshes cached stats of that fixture.
func (s *ScoringService) RecalculateFixture(ctx context.Context, fixtureID string) (RecalculateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateFixture", attribute.String("fixture_id", fixtureID))
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return RecalculateResult{}, invalidInput("fixture_id is required")
	}

	calc, err := s.calculator("")
	if err != nil {
		return RecalculateResult{}, err
	}

	stats, err := resilience.Call(ctx, s.breaker, func(ctx context.Context) ([]playerstats.MatchStat, error) {
		return s.stats.ListByFixture(ctx, fixtureID)
	})
	if err != nil {
		err = wrapDependency(err, "list stats fixture=%s", fixtureID)
		recordSpanError(span, err)
		return RecalculateResult{}, err
	}
	if len(stats) == 0 {
		return RecalculateResult{}, notFound("no stats for fixture=%s", fixtureID)
	}

	roles, unknown, err := s.rolesFor(ctx, stats)
	if err != nil {
		recordSpanError(span, err)
		return RecalculateResult{}, err
	}

	calculatedAt := s.now().UTC()
	points := make([]playerstats.FixturePoints, len(stats))

	workerPool, err := ants.NewPool(min(s.workers, len(stats)))
	if err != nil {
		return RecalculateResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for i, stat := range stats {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			points[i] = playerstats.FixturePoints{
				PlayerID:     stat.PlayerID,
				FixtureID:    fixtureID,
				Gameweek:     stat.Gameweek,
				RuleSet:      calc.RuleSet(),
				Points:       calc.Points(stat, string(roles[stat.PlayerID])),
				CalculatedAt: calculatedAt,
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return RecalculateResult{}, fmt.Errorf("submit scoring task to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(points, func(i, j int) bool { return points[i].PlayerID < points[j].PlayerID })

	if err := s.stats.UpsertFixturePoints(ctx, fixtureID, points); err != nil {
		err = wrapDependency(err, "upsert fixture points fixture=%s", fixtureID)
		recordSpanError(span, err)
		return RecalculateResult{}, err
	}

	s.invalidateFixture(fixtureID, stats)

	if s.snapshots != nil {
		snapshot := scoring.FixtureSnapshot{
			FixtureID:    fixtureID,
			RuleSet:      calc.RuleSet(),
			Points:       points,
			CalculatedAt: calculatedAt,
		}
		if err := s.snapshots.SaveFixtureSnapshot(ctx, snapshot); err != nil {
			s.logger.WarnContext(ctx, "save fixture snapshot failed", "fixture_id", fixtureID, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "fixture points recalculated",
		"fixture_id", fixtureID,
		"rule_set", calc.RuleSet(),
		"players", len(points),
		"unknown_roles", len(unknown),
	)

	return RecalculateResult{
		FixtureID:    fixtureID,
		RuleSet:      calc.RuleSet(),
		Points:       points,
		UnknownRoles: unknown,
		CalculatedAt: calculatedAt,
	}, nil
}

// FixturePoints returns the last published snapshot of a fixture, or scores
// it on the fly when no snapshot exists.
func (s *ScoringService) FixturePoints(ctx context.Context, fixtureID string) (scoring.FixtureSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.FixturePoints", attribute.String("fixture_id", fixtureID))
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return scoring.FixtureSnapshot{}, invalidInput("fixture_id is required")
	}

	if s.snapshots != nil {
		snapshot, ok, err := s.snapshots.GetFixtureSnapshot(ctx, fixtureID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "read fixture snapshot failed, scoring live", "fixture_id", fixtureID, "error", err)
		case ok:
			return snapshot, nil
		}
	}

	calc, err := s.calculator("")
	if err != nil {
		return scoring.FixtureSnapshot{}, err
	}
	stats, err := resilience.Call(ctx, s.breaker, func(ctx context.Context) ([]playerstats.MatchStat, error) {
		return s.stats.ListByFixture(ctx, fixtureID)
	})
	if err != nil {
		err = wrapDependency(err, "list stats fixture=%s", fixtureID)
		recordSpanError(span, err)
		return scoring.FixtureSnapshot{}, err
	}
	if len(stats) == 0 {
		return scoring.FixtureSnapshot{}, notFound("no stats for fixture=%s", fixtureID)
	}
	roles, _, err := s.rolesFor(ctx, stats)
	if err != nil {
		return scoring.FixtureSnapshot{}, err
	}

	calculatedAt := s.now().UTC()
	out := scoring.FixtureSnapshot{
		FixtureID:    fixtureID,
		RuleSet:      calc.RuleSet(),
		Points:       make([]playerstats.FixturePoints, 0, len(stats)),
		CalculatedAt: calculatedAt,
	}
	for _, stat := range stats {
		out.Points = append(out.Points, playerstats.FixturePoints{
			PlayerID:     stat.PlayerID,
			FixtureID:    fixtureID,
			Gameweek:     stat.Gameweek,
			RuleSet:      calc.RuleSet(),
			Points:       calc.Points(stat, string(roles[stat.PlayerID])),
			CalculatedAt: calculatedAt,
		})
	}
	sort.SliceStable(out.Points, func(i, j int) bool { return out.Points[i].PlayerID < out.Points[j].PlayerID })
	return out, nil
}

func (s *ScoringService) seasonPoints(ctx context.Context, playerID string) (PlayerSeasonPoints, error) {
	role, err := s.playerRole(ctx, playerID)
	if err != nil {
		return PlayerSeasonPoints{}, err
	}

	stats, err := s.cachedStats(ctx, "season:"+playerID, true, func(ctx context.Context) ([]playerstats.MatchStat, error) {
		return s.stats.ListByPlayer(ctx, playerID)
	})
	if err != nil {
		return PlayerSeasonPoints{}, wrapDependency(err, "list stats player=%s", playerID)
	}

	calc, err := s.calculator("")
	if err != nil {
		return PlayerSeasonPoints{}, err
	}

	out := PlayerSeasonPoints{
		PlayerID: playerID,
		Role:     role,
		RuleSet:  calc.RuleSet(),
		Matches:  len(stats),
		Fixtures: make([]FixtureScore, 0, len(stats)),
	}
	for _, stat := range stats {
		points := calc.Points(stat, string(role))
		out.Fixtures = append(out.Fixtures, FixtureScore{
			FixtureID: stat.FixtureID,
			Gameweek:  stat.Gameweek,
			Points:    points,
		})
	}
	out.Total = calc.Total(stats, string(role))

	sort.SliceStable(out.Fixtures, func(i, j int) bool {
		if out.Fixtures[i].Gameweek != out.Fixtures[j].Gameweek {
			return out.Fixtures[i].Gameweek < out.Fixtures[j].Gameweek
		}
		return out.Fixtures[i].FixtureID < out.Fixtures[j].FixtureID
	})
	return out, nil
}

func (s *ScoringService) playerRole(ctx context.Context, playerID string) (fantasy.Role, error) {
	p, ok, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return "", wrapDependency(err, "get player=%s", playerID)
	}
	if !ok {
		return "", notFound("player=%s", playerID)
	}

	role, known := fantasy.LookupRole(p.Position)
	if !known {
		s.logger.WarnContext(ctx, "unknown position code, defaulting role",
			"player_id", playerID,
			"position", p.Position,
			"role", role,
		)
	}
	return role, nil
}

// rolesFor resolves the role of every player in stats. Players missing from
// the repository fall back to the default role and are reported.
func (s *ScoringService) rolesFor(ctx context.Context, stats []playerstats.MatchStat) (map[string]fantasy.Role, []string, error) {
	ids := make([]string, 0, len(stats))
	for _, stat := range stats {
		ids = append(ids, stat.PlayerID)
	}
	ids = uniqueTrimmed(ids)

	players, err := s.players.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, wrapDependency(err, "get players by ids")
	}

	roles := make(map[string]fantasy.Role, len(ids))
	var unknown []string
	for _, p := range players {
		role, known := fantasy.LookupRole(p.Position)
		if !known {
			unknown = append(unknown, p.ID)
			s.logger.WarnContext(ctx, "unknown position code, defaulting role", "player_id", p.ID, "position", p.Position, "role", role)
		}
		roles[p.ID] = role
	}
	for _, id := range ids {
		if _, ok := roles[id]; ok {
			continue
		}
		roles[id] = fantasy.DefaultRole
		unknown = append(unknown, id)
		s.logger.WarnContext(ctx, "player missing for stat line, defaulting role", "player_id", id, "role", fantasy.DefaultRole)
	}
	sort.Strings(unknown)
	return roles, unknown, nil
}

func (s *ScoringService) cachedStats(
	ctx context.Context,
	key string,
	shared bool,
	fetch func(context.Context) ([]playerstats.MatchStat, error),
) ([]playerstats.MatchStat, error) {
	guarded := func(ctx context.Context) ([]playerstats.MatchStat, error) {
		return resilience.Call(ctx, s.breaker, fetch)
	}
	if s.statCache == nil {
		return guarded(ctx)
	}
	if shared {
		return cache.GetOrSetShared(ctx, s.statCache, key, guarded)
	}
	return cache.GetOrSet(ctx, s.statCache, key, guarded)
}

func (s *ScoringService) invalidateFixture(fixtureID string, stats []playerstats.MatchStat) {
	if s.statCache == nil {
		return
	}
	s.statCache.DeletePrefix("fixture:" + fixtureID + ":")
	for _, stat := range stats {
		s.statCache.Delete("season:" + stat.PlayerID)
	}
}

func (s *ScoringService) calculator(name string) (*scoring.Calculator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.ruleSet
	}
	set, err := s.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return scoring.NewCalculator(set), nil
}

func uniqueTrimmed(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
