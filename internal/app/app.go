package app

import (
	"context"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-points/internal/config"
	"github.com/riskibarqy/fantasy-points/internal/domain/player"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	cacherepo "github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/postgres"
	redisrepo "github.com/riskibarqy/fantasy-points/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/fantasy-points/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-points/internal/platform/cache"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

// Closer releases resources acquired while building the server.
type Closer func(context.Context) error

type repositories struct {
	players player.Repository
	stats   playerstats.Repository
}

// NewHTTPServer wires repositories, services and the router. Without DB_URL
// the seeded in-memory repositories are used.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, Closer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var closers []Closer
	closeAll := func(ctx context.Context) error {
		var err error
		for i := len(closers) - 1; i >= 0; i-- {
			err = crerr.CombineErrors(err, closers[i](ctx))
		}
		return err
	}
	fail := func(err error) (*http.Server, Closer, error) {
		_ = closeAll(context.Background())
		return nil, nil, err
	}

	repos, closeRepos, err := buildRepositories(cfg, logger)
	if err != nil {
		return fail(err)
	}
	if closeRepos != nil {
		closers = append(closers, closeRepos)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return fail(err)
	}

	var statCache *cache.Cache[[]playerstats.MatchStat]
	if cfg.CacheEnabled {
		statCache = cache.New[[]playerstats.MatchStat](cfg.CacheTTL, cache.WithMaxSize(cfg.CacheMaxEntries))
		repos.players = cacherepo.NewPlayerRepository(repos.players, cfg.CacheTTL, cache.WithMaxSize(cfg.CacheMaxEntries))
	}

	breaker := resilience.NewCircuitBreakerFromConfig("player_stats", cfg.StatsCircuit)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})

	scoringService := usecase.NewScoringService(
		repos.players,
		repos.stats,
		registry,
		statCache,
		breaker,
		usecase.ScoringConfig{RuleSet: cfg.ScoringRuleSet, Workers: cfg.ScoringWorkers},
		logger.Named("scoring"),
	)

	if cfg.RedisURL != "" {
		client, err := redisrepo.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fail(fmt.Errorf("connect redis: %w", err))
		}
		closers = append(closers, func(context.Context) error { return client.Close() })
		scoringService.SetSnapshotStore(redisrepo.NewSnapshotStore(client, cfg.RedisSnapshotTTL))
		logger.Info("fixture snapshots enabled", "store", "redis", "ttl", cfg.RedisSnapshotTTL)
	}

	lineupService := usecase.NewLineupService(repos.players, logger.Named("lineup"))
	passwordService := usecase.NewPasswordService(cfg.PasswordPolicy)

	handler := httpapi.NewHandler(scoringService, lineupService, passwordService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return fail(fmt.Errorf("http server addr cannot be empty"))
	}

	logger.Info("app wired",
		"database", cfg.UsesDatabase(),
		"cache_enabled", cfg.CacheEnabled,
		"rule_set", cfg.ScoringRuleSet,
		"rule_sets", registry.Names(),
		"password_policy", cfg.PasswordPolicy,
	)

	return server, closeAll, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, Closer, error) {
	if !cfg.UsesDatabase() {
		logger.Warn("DB_URL empty, using seeded in-memory repositories")
		return repositories{
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			stats:   memory.NewPlayerStatsRepository(memory.SeedMatchStats()),
		}, nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)

	return repositories{
		players: postgres.NewPlayerRepository(db),
		stats:   postgres.NewPlayerStatsRepository(db),
	}, func(context.Context) error { return db.Close() }, nil
}

// buildRegistry loads the built-in rule sets plus an optional YAML profile
// and checks that the configured default exists.
func buildRegistry(cfg config.Config) (*scoring.Registry, error) {
	registry := scoring.NewRegistry()
	if cfg.ScoringRuleSetFile != "" {
		set, err := scoring.LoadRuleSetFile(cfg.ScoringRuleSetFile)
		if err != nil {
			return nil, fmt.Errorf("load SCORING_RULESET_FILE: %w", err)
		}
		if err := registry.Register(set); err != nil {
			return nil, fmt.Errorf("register rule set %s: %w", set.Name, err)
		}
	}
	if _, err := registry.Get(cfg.ScoringRuleSet); err != nil {
		return nil, fmt.Errorf("SCORING_RULESET: %w", err)
	}
	return registry, nil
}
