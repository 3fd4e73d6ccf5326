package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev || cfg.HTTPAddr != ":8080" || cfg.ServiceName != "fantasy-points" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UsesDatabase() {
		t.Fatalf("empty DB_URL should select in-memory repositories")
	}
	if cfg.CacheTTL != 5*time.Minute || cfg.CacheMaxEntries != 10000 {
		t.Fatalf("unexpected cache defaults: ttl=%s max=%d", cfg.CacheTTL, cfg.CacheMaxEntries)
	}
	if cfg.ScoringRuleSet != "standard" || cfg.ScoringWorkers != 8 || cfg.PasswordPolicy != "basic" {
		t.Fatalf("unexpected scoring defaults: %+v", cfg)
	}
	if !cfg.StatsCircuit.Enabled || cfg.StatsCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.StatsCircuit)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("swagger should be enabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("DB_URL", "postgres://localhost:5432/fantasy?sslmode=disable")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CACHE_MAX_ENTRIES", "0")
	t.Setenv("SCORING_RULESET", " Classic ")
	t.Setenv("SCORING_WORKERS", "3")
	t.Setenv("PASSWORD_POLICY", "strict")
	t.Setenv("STATS_CIRCUIT_FAILURE_COUNT", "2")
	t.Setenv("STATS_CIRCUIT_OPEN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || !cfg.UsesDatabase() {
		t.Fatalf("unexpected env/db: %+v", cfg)
	}
	if cfg.CacheTTL != 30*time.Second || cfg.CacheMaxEntries != 0 {
		t.Fatalf("unexpected cache config: ttl=%s max=%d", cfg.CacheTTL, cfg.CacheMaxEntries)
	}
	if cfg.ScoringRuleSet != "classic" || cfg.ScoringWorkers != 3 || cfg.PasswordPolicy != "strict" {
		t.Fatalf("unexpected scoring config: %+v", cfg)
	}
	if cfg.StatsCircuit.FailureThreshold != 2 || cfg.StatsCircuit.OpenTimeout != 3*time.Second {
		t.Fatalf("unexpected circuit config: %+v", cfg.StatsCircuit)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "invalid app env", env: map[string]string{"APP_ENV": "invalid"}},
		{name: "uptrace without dsn", env: map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": "", "OTEL_EXPORTER_OTLP_HEADERS": ""}},
		{name: "negative cache size", env: map[string]string{"CACHE_MAX_ENTRIES": "-1"}},
		{name: "zero cache ttl", env: map[string]string{"CACHE_TTL": "0s"}},
		{name: "bad duration", env: map[string]string{"HTTP_READ_TIMEOUT": "soon"}},
		{name: "zero workers", env: map[string]string{"SCORING_WORKERS": "0"}},
		{name: "unknown password policy", env: map[string]string{"PASSWORD_POLICY": "paranoid"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad swagger flag", env: map[string]string{"SWAGGER_ENABLED": "maybe"}},
		{name: "bad circuit threshold", env: map[string]string{"STATS_CIRCUIT_FAILURE_COUNT": "0"}},
		{name: "pyroscope without server", env: map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %v", tt.env)
			}
		})
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}
