package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/synclog"
	qb "github.com/SarbajitChatterjee/MatchesNearby/internal/platform/querybuilder"
)

type SyncLogRepository struct {
	db *sqlx.DB
}

func NewSyncLogRepository(db *sqlx.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

func (r *SyncLogRepository) Get(ctx context.Context, leagueID int64, date string) (synclog.Mark, bool, error) {
	query, args, err := qb.Select("league_id", "sync_date", "synced_at").From("sync_log").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("sync_date", date),
		).
		ToSQL()
	if err != nil {
		return synclog.Mark{}, false, fmt.Errorf("build select sync mark query: %w", err)
	}

	var row syncLogTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return synclog.Mark{}, false, nil
		}
		return synclog.Mark{}, false, fmt.Errorf("select sync mark league_id=%d date=%s: %w", leagueID, date, err)
	}

	return row.toDomain(), true, nil
}

func (r *SyncLogRepository) Upsert(ctx context.Context, mark synclog.Mark) error {
	model := syncLogTableModel{
		LeagueID: mark.LeagueID,
		SyncDate: mark.Date,
		SyncedAt: mark.SyncedAt,
	}

	query, args, err := qb.InsertModel("sync_log", model, `ON CONFLICT (league_id, sync_date)
DO UPDATE SET
    synced_at = EXCLUDED.synced_at`)
	if err != nil {
		return fmt.Errorf("build upsert sync mark query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert sync mark league_id=%d date=%s: %w", mark.LeagueID, mark.Date, err)
	}

	return nil
}
