package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/synclog"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/infrastructure/repository/memory"
	"github.com/SarbajitChatterjee/MatchesNearby/internal/platform/logging"
)

func TestFreshnessGate_MarkThenFresh(t *testing.T) {
	t.Parallel()

	gate := NewFreshnessGate(memory.NewSyncLogRepository(), 6*time.Hour, logging.NewNop())
	ctx := context.Background()

	if gate.IsFresh(ctx, 39, "2025-08-28") {
		t.Fatalf("expected unmarked pair to be stale")
	}

	// Zero-fixture days are marked too, so they stay fresh.
	if err := gate.MarkSynced(ctx, 39, "2025-08-28"); err != nil {
		t.Fatalf("MarkSynced error: %v", err)
	}
	if !gate.IsFresh(ctx, 39, "2025-08-28") {
		t.Fatalf("expected marked pair to be fresh")
	}

	if gate.IsFresh(ctx, 39, "2025-08-29") {
		t.Fatalf("different date must not inherit freshness")
	}
	if gate.IsFresh(ctx, 140, "2025-08-28") {
		t.Fatalf("different league must not inherit freshness")
	}
}

func TestFreshnessGate_TTLExpiry(t *testing.T) {
	t.Parallel()

	gate := NewFreshnessGate(memory.NewSyncLogRepository(), 6*time.Hour, logging.NewNop())
	ctx := context.Background()

	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return now }

	if err := gate.MarkSynced(ctx, 39, "2025-08-28"); err != nil {
		t.Fatalf("MarkSynced error: %v", err)
	}

	now = now.Add(5 * time.Hour)
	if !gate.IsFresh(ctx, 39, "2025-08-28") {
		t.Fatalf("expected fresh within the window")
	}

	now = now.Add(2 * time.Hour)
	if gate.IsFresh(ctx, 39, "2025-08-28") {
		t.Fatalf("expected stale past the window")
	}
}

func TestFreshnessGate_FailsOpenOnRepoError(t *testing.T) {
	t.Parallel()

	gate := NewFreshnessGate(failingSyncLogRepo{}, 6*time.Hour, logging.NewNop())

	if gate.IsFresh(context.Background(), 39, "2025-08-28") {
		t.Fatalf("repo failure must report stale, not fresh")
	}
}

func TestFreshnessGate_LocalCacheFrontsRepo(t *testing.T) {
	t.Parallel()

	repo := &countingSyncLogRepo{inner: memory.NewSyncLogRepository()}
	gate := NewFreshnessGate(repo, 6*time.Hour, logging.NewNop())
	ctx := context.Background()

	if err := gate.MarkSynced(ctx, 39, "2025-08-28"); err != nil {
		t.Fatalf("MarkSynced error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if !gate.IsFresh(ctx, 39, "2025-08-28") {
			t.Fatalf("expected fresh on check %d", i)
		}
	}
	if repo.gets != 0 {
		t.Fatalf("expected local cache to absorb reads after mark, repo saw %d", repo.gets)
	}
}

type failingSyncLogRepo struct{}

func (failingSyncLogRepo) Get(context.Context, int64, string) (synclog.Mark, bool, error) {
	return synclog.Mark{}, false, fmt.Errorf("connection refused")
}

func (failingSyncLogRepo) Upsert(context.Context, synclog.Mark) error {
	return fmt.Errorf("connection refused")
}

type countingSyncLogRepo struct {
	inner *memory.SyncLogRepository
	gets  int
}

func (r *countingSyncLogRepo) Get(ctx context.Context, leagueID int64, date string) (synclog.Mark, bool, error) {
	r.gets++
	return r.inner.Get(ctx, leagueID, date)
}

func (r *countingSyncLogRepo) Upsert(ctx context.Context, mark synclog.Mark) error {
	return r.inner.Upsert(ctx, mark)
}
