package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
	qb "github.com/SarbajitChatterjee/MatchesNearby/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// UpsertMany writes the batch in one transaction, keyed on the provider
// fixture id. Re-syncing the same date is a no-op apart from refreshed
// mutable fields (kickoff, venue, live flag).
func (r *MatchRepository) UpsertMany(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		query, args, err := qb.InsertModel("matches", matchToInsertModel(item), `ON CONFLICT (id)
DO UPDATE SET
    league_id = EXCLUDED.league_id,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    home_team_badge = EXCLUDED.home_team_badge,
    away_team_badge = EXCLUDED.away_team_badge,
    competition = EXCLUDED.competition,
    competition_type = EXCLUDED.competition_type,
    gameweek = EXCLUDED.gameweek,
    kickoff_at = EXCLUDED.kickoff_at,
    match_date = EXCLUDED.match_date,
    venue = EXCLUDED.venue,
    venue_city = EXCLUDED.venue_city,
    is_live = EXCLUDED.is_live,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert match id=%s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListByDate(ctx context.Context, date string, filter match.Filter) ([]match.Match, error) {
	conditions := append(
		[]qb.Condition{qb.Eq("match_date", date)},
		filterConditions(filter)...,
	)

	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(conditions...).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by date query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListFromDate(ctx context.Context, date string, filter match.Filter) ([]match.Match, error) {
	conditions := append(
		[]qb.Condition{qb.Gte("match_date", date)},
		filterConditions(filter)...,
	)

	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(conditions...).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches from date query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func filterConditions(filter match.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 2)
	if filter.Type != "" && filter.Type != match.TypeAll {
		conditions = append(conditions, qb.Eq("competition_type", filter.Type))
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		conditions = append(conditions, qb.ILike("venue_city", city))
	}
	return conditions
}
