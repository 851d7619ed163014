package app

import (
	"fmt"
	"net/http"

	"github.com/SarbajitChatterjee/MatchesNearby/external/apifootball"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/config"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/infrastructure/repository/postgres"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/interfaces/httpapi"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/logging"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/resilience"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/usecase"
)

// NewHTTPServer wires the full request path: provider client, Postgres
// repositories, freshness gate, match service, HTTP handler. The
// returned cleanup closes the database pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := newDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	matchRepo := postgres.NewMatchRepository(db)
	syncLogRepo := postgres.NewSyncLogRepository(db)

	gate := usecase.NewFreshnessGate(syncLogRepo, cfg.SyncFreshness, logger)

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Key:        cfg.APIFootballKey,
		Season:     cfg.Season,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})

	matchSvc := usecase.NewMatchService(provider, matchRepo, gate, usecase.MatchServiceConfig{
		LeagueIDs:      cfg.LeagueIDs,
		LookaheadCount: cfg.FixturesNext,
		SyncWorkers:    cfg.SyncWorkers,
	}, logger)

	handler := httpapi.NewHandler(matchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}
