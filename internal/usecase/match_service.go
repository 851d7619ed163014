package usecase

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/logging"
)

const (
	defaultLookaheadCount = 50
	defaultSyncWorkers    = 4
)

type MatchServiceConfig struct {
	// LeagueIDs is the tracked league set; every read request checks
	// freshness for each of them.
	LeagueIDs      []int64
	LookaheadCount int
	SyncWorkers    int
}

// MatchService orchestrates one read request: consult the freshness
// gate per league, refresh stale leagues from upstream, then serve the
// merged result from storage sorted by kickoff.
type MatchService struct {
	provider UpstreamProvider
	matches  match.Repository
	gate     *FreshnessGate
	cfg      MatchServiceConfig
	logger   *logging.Logger
	now      func() time.Time
}

func NewMatchService(
	provider UpstreamProvider,
	matches match.Repository,
	gate *FreshnessGate,
	cfg MatchServiceConfig,
	logger *logging.Logger,
) *MatchService {
	if cfg.LookaheadCount <= 0 {
		cfg.LookaheadCount = defaultLookaheadCount
	}
	if cfg.SyncWorkers <= 0 {
		cfg.SyncWorkers = defaultSyncWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		provider: provider,
		matches:  matches,
		gate:     gate,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

type ListMatchesInput struct {
	// Date narrows to one calendar date (YYYY-MM-DD); empty means the
	// upcoming window from today onward.
	Date string
	Type string
	City string
	// Lookahead overrides the configured upcoming fixture count per
	// league when > 0.
	Lookahead int
}

// ListMatches is the request entry point. Per-league sync failures are
// contained at league scope; the read proceeds with whatever data is
// persisted.
func (s *MatchService) ListMatches(ctx context.Context, in ListMatchesInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	typeFilter := strings.TrimSpace(in.Type)
	if typeFilter == "" {
		typeFilter = match.TypeAll
	}
	if !match.IsValidTypeFilter(typeFilter) {
		return nil, fmt.Errorf("%w: unknown competition type %q", ErrInvalidInput, in.Type)
	}
	if in.Date != "" {
		if _, err := time.Parse(match.DateLayout, in.Date); err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, in.Date)
		}
	}

	lookahead := in.Lookahead
	if lookahead <= 0 {
		lookahead = s.cfg.LookaheadCount
	}

	upcoming := in.Date == ""
	today := s.now().UTC().Format(match.DateLayout)
	gateDate := in.Date
	if upcoming {
		gateDate = today
	}

	s.syncStaleLeagues(ctx, gateDate, upcoming, lookahead)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := match.Filter{
		Type: typeFilter,
		City: strings.TrimSpace(in.City),
	}

	var rows []match.Match
	var err error
	if upcoming {
		rows, err = s.matches.ListFromDate(ctx, today, filter)
	} else {
		rows, err = s.matches.ListByDate(ctx, in.Date, filter)
	}
	if err != nil {
		if isStoreDown(err) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		s.logger.ErrorContext(ctx, "match query failed, serving empty result", "error", err)
		return []match.Match{}, nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].KickoffAt.Before(rows[j].KickoffAt)
	})

	return rows, nil
}

// syncStaleLeagues refreshes every tracked league whose gate reports
// stale for gateDate. Leagues sync concurrently within the request;
// in-flight fetches run to completion even if the caller goes away,
// since their results still warm the cache.
func (s *MatchService) syncStaleLeagues(ctx context.Context, gateDate string, upcoming bool, lookahead int) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.syncStaleLeagues")
	defer span.End()

	stale := make([]int64, 0, len(s.cfg.LeagueIDs))
	for _, leagueID := range s.cfg.LeagueIDs {
		if !s.gate.IsFresh(ctx, leagueID, gateDate) {
			stale = append(stale, leagueID)
		}
	}
	if len(stale) == 0 {
		return
	}

	syncCtx := context.WithoutCancel(ctx)
	runTask := func(leagueID int64) {
		if upcoming {
			s.syncLeagueUpcoming(syncCtx, leagueID, gateDate, lookahead)
		} else {
			s.syncLeagueForDate(syncCtx, leagueID, gateDate)
		}
	}

	pool, err := ants.NewPool(min(len(stale), s.cfg.SyncWorkers))
	if err != nil {
		s.logger.ErrorContext(ctx, "create sync worker pool failed, syncing serially", "error", err)
		for _, leagueID := range stale {
			runTask(leagueID)
		}
		return
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, leagueID := range stale {
		leagueID := leagueID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			runTask(leagueID)
		}); err != nil {
			workers.Done()
			s.logger.ErrorContext(ctx, "submit sync task failed, running inline", "league_id", leagueID, "error", err)
			runTask(leagueID)
		}
	}
	workers.Wait()
}

// syncLeagueForDate runs one fetch-normalize-upsert-mark cycle for a
// single league+date. The mark is written even for zero-fixture days;
// it is skipped when the fetch or the upsert failed, so the pair is
// retried once the dependency recovers.
func (s *MatchService) syncLeagueForDate(ctx context.Context, leagueID int64, date string) {
	raws, err := s.provider.FixturesByDate(ctx, leagueID, date)
	if err != nil {
		s.logger.ErrorContext(ctx, "fixtures-by-date fetch failed, keeping existing data",
			"league_id", leagueID,
			"date", date,
			"error", err,
		)
		return
	}

	matches := s.normalizeBatch(ctx, leagueID, raws)
	if len(matches) > 0 {
		if err := s.matches.UpsertMany(ctx, matches); err != nil {
			s.logger.ErrorContext(ctx, "match upsert failed",
				"league_id", leagueID,
				"date", date,
				"count", len(matches),
				"error", err,
			)
			return
		}
	}

	if err := s.gate.MarkSynced(ctx, leagueID, date); err != nil {
		s.logger.ErrorContext(ctx, "mark synced failed", "league_id", leagueID, "date", date, "error", err)
	}
}

// syncLeagueUpcoming fetches the league's upcoming window. The response
// spans many future dates; each distinct kickoff date gets its own
// mark so later exact-date requests for those dates stay fresh.
func (s *MatchService) syncLeagueUpcoming(ctx context.Context, leagueID int64, today string, lookahead int) {
	raws, err := s.provider.FixturesUpcoming(ctx, leagueID, lookahead)
	if err != nil {
		s.logger.ErrorContext(ctx, "upcoming fixtures fetch failed, keeping existing data",
			"league_id", leagueID,
			"error", err,
		)
		return
	}

	matches := s.normalizeBatch(ctx, leagueID, raws)
	if len(matches) > 0 {
		if err := s.matches.UpsertMany(ctx, matches); err != nil {
			s.logger.ErrorContext(ctx, "match upsert failed",
				"league_id", leagueID,
				"count", len(matches),
				"error", err,
			)
			return
		}
	}

	dates := map[string]struct{}{today: {}}
	for _, m := range matches {
		dates[m.Date()] = struct{}{}
	}

	ordered := make([]string, 0, len(dates))
	for date := range dates {
		ordered = append(ordered, date)
	}
	sort.Strings(ordered)

	for _, date := range ordered {
		if err := s.gate.MarkSynced(ctx, leagueID, date); err != nil {
			s.logger.ErrorContext(ctx, "mark synced failed", "league_id", leagueID, "date", date, "error", err)
		}
	}
}

// normalizeBatch converts fetched records, skipping malformed ones so a
// single bad record never sinks the batch.
func (s *MatchService) normalizeBatch(ctx context.Context, leagueID int64, raws []UpstreamFixture) []match.Match {
	out := make([]match.Match, 0, len(raws))
	for _, raw := range raws {
		m, err := NormalizeFixture(raw)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping fixture record", "league_id", leagueID, "error", err)
			continue
		}
		if m.LeagueID == 0 {
			m.LeagueID = leagueID
		}
		out = append(out, m)
	}
	return out
}

func isStoreDown(err error) bool {
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone)
}
