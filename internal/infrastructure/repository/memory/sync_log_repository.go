package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/synclog"
)

type SyncLogRepository struct {
	mu    sync.RWMutex
	items map[string]synclog.Mark
}

func NewSyncLogRepository() *SyncLogRepository {
	return &SyncLogRepository{
		items: make(map[string]synclog.Mark),
	}
}

func (r *SyncLogRepository) Get(_ context.Context, leagueID int64, date string) (synclog.Mark, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mark, ok := r.items[syncLogKey(leagueID, date)]
	return mark, ok, nil
}

func (r *SyncLogRepository) Upsert(_ context.Context, mark synclog.Mark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[syncLogKey(mark.LeagueID, mark.Date)] = mark
	return nil
}

func syncLogKey(leagueID int64, date string) string {
	return fmt.Sprintf("%d:%s", leagueID, date)
}
