package postgres

import (
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/synclog"
)

type syncLogTableModel struct {
	LeagueID int64     `db:"league_id"`
	SyncDate string    `db:"sync_date"`
	SyncedAt time.Time `db:"synced_at"`
}

func (m syncLogTableModel) toDomain() synclog.Mark {
	return synclog.Mark{
		LeagueID: m.LeagueID,
		Date:     m.SyncDate,
		SyncedAt: m.SyncedAt,
	}
}
