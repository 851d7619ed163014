package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("API_FOOTBALL_KEY", "k")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresAPIFootballKey(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when API_FOOTBALL_KEY is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "matches-nearby-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if len(cfg.LeagueIDs) != 7 || cfg.LeagueIDs[0] != 39 {
		t.Fatalf("unexpected default league ids: %+v", cfg.LeagueIDs)
	}
	if cfg.Season != 2025 {
		t.Fatalf("unexpected default season: %d", cfg.Season)
	}
	if cfg.FixturesNext != 50 {
		t.Fatalf("unexpected default fixtures next: %d", cfg.FixturesNext)
	}
	if cfg.SyncFreshness != 6*time.Hour {
		t.Fatalf("unexpected default sync freshness: %s", cfg.SyncFreshness)
	}
	if cfg.SyncWorkers != 4 {
		t.Fatalf("unexpected default sync workers: %d", cfg.SyncWorkers)
	}
	if cfg.APIFootballBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected default base url: %q", cfg.APIFootballBaseURL)
	}
	if !cfg.APIFootballCircuitEnabled {
		t.Fatalf("expected circuit breaker enabled by default")
	}
}

func TestLoad_LeagueIDsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("LEAGUE_IDS", " 39, 78 ,135 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.LeagueIDs) != 3 || cfg.LeagueIDs[1] != 78 {
			t.Fatalf("unexpected league ids: %+v", cfg.LeagueIDs)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Setenv("LEAGUE_IDS", "39,premier")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric league id")
		}
	})

	t.Run("non-positive id", func(t *testing.T) {
		t.Setenv("LEAGUE_IDS", "39,0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-positive league id")
		}
	})
}

func TestLoad_SyncFreshnessParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")

	t.Run("custom ttl", func(t *testing.T) {
		t.Setenv("SYNC_FRESHNESS_TTL", "90m")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SyncFreshness != 90*time.Minute {
			t.Fatalf("unexpected sync freshness: %s", cfg.SyncFreshness)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("SYNC_FRESHNESS_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid SYNC_FRESHNESS_TTL")
		}
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		t.Setenv("SYNC_FRESHNESS_TTL", "-1h")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-positive SYNC_FRESHNESS_TTL")
		}
	})
}

func TestLoad_CircuitBreakerParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("API_FOOTBALL_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("API_FOOTBALL_CIRCUIT_OPEN_TIMEOUT", "30s")
		t.Setenv("API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.APIFootballCircuitFailureCount != 3 {
			t.Fatalf("unexpected failure count: %d", cfg.APIFootballCircuitFailureCount)
		}
		if cfg.APIFootballCircuitOpenTimeout != 30*time.Second {
			t.Fatalf("unexpected open timeout: %s", cfg.APIFootballCircuitOpenTimeout)
		}
		if cfg.APIFootballCircuitHalfOpenMaxReq != 1 {
			t.Fatalf("unexpected half-open max req: %d", cfg.APIFootballCircuitHalfOpenMaxReq)
		}
	})

	t.Run("invalid failure count", func(t *testing.T) {
		t.Setenv("API_FOOTBALL_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero failure count")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")
	t.Setenv("APP_SERVICE_NAME", "matches-nearby-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "matches-nearby-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "k")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
	})
}
