package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/synclog"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/cache"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/logging"
)

const defaultFreshnessTTL = 6 * time.Hour

// FreshnessGate decides whether cached data for a league+date pair is
// still usable or a refresh against upstream is due.
//
// Failure policy is deliberately asymmetric with match reads: when the
// sync-log read fails the gate fails OPEN toward refresh (reports
// stale), so a store hiccup costs at most one extra upstream call
// instead of silently serving stale or absent data.
type FreshnessGate struct {
	marks  synclog.Repository
	ttl    time.Duration
	local  *cache.Store
	logger *logging.Logger
	now    func() time.Time
}

func NewFreshnessGate(marks synclog.Repository, ttl time.Duration, logger *logging.Logger) *FreshnessGate {
	if ttl <= 0 {
		ttl = defaultFreshnessTTL
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FreshnessGate{
		marks:  marks,
		ttl:    ttl,
		local:  cache.NewStore(ttl),
		logger: logger,
		now:    time.Now,
	}
}

func (g *FreshnessGate) TTL() time.Duration {
	return g.ttl
}

// IsFresh reports whether the league+date pair was checked against
// upstream within the TTL window. A process-local cache fronts the
// sync-log read; the store stays the source of truth across replicas.
func (g *FreshnessGate) IsFresh(ctx context.Context, leagueID int64, date string) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.FreshnessGate.IsFresh")
	defer span.End()

	key := markKey(leagueID, date)
	if v, ok := g.local.Get(ctx, key); ok {
		if syncedAt, ok := v.(time.Time); ok && g.withinTTL(syncedAt) {
			return true
		}
	}

	mark, found, err := g.marks.Get(ctx, leagueID, date)
	if err != nil {
		g.logger.WarnContext(ctx, "freshness check failed, treating as stale",
			"league_id", leagueID,
			"date", date,
			"error", err,
		)
		return false
	}
	if !found {
		return false
	}
	if !g.withinTTL(mark.SyncedAt) {
		return false
	}

	g.local.Set(ctx, key, mark.SyncedAt)
	return true
}

// MarkSynced records that the pair was just checked, overwriting any
// previous mark. Called even when the fetch returned zero records, so
// empty days are not re-fetched on every request within the window.
func (g *FreshnessGate) MarkSynced(ctx context.Context, leagueID int64, date string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FreshnessGate.MarkSynced")
	defer span.End()

	syncedAt := g.now().UTC()
	mark := synclog.Mark{
		LeagueID: leagueID,
		Date:     date,
		SyncedAt: syncedAt,
	}
	if err := g.marks.Upsert(ctx, mark); err != nil {
		return fmt.Errorf("upsert sync mark league_id=%d date=%s: %w", leagueID, date, err)
	}

	g.local.Set(ctx, markKey(leagueID, date), syncedAt)
	return nil
}

func (g *FreshnessGate) withinTTL(syncedAt time.Time) bool {
	return g.now().Sub(syncedAt) < g.ttl
}

func markKey(leagueID int64, date string) string {
	return fmt.Sprintf("synclog:%d:%s", leagueID, date)
}
