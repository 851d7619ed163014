package synclog

import "context"

// Repository owns persisted sync marks. Marks are never deleted here;
// age-based pruning is an external concern.
type Repository interface {
	Get(ctx context.Context, leagueID int64, date string) (Mark, bool, error)
	Upsert(ctx context.Context, mark Mark) error
}
