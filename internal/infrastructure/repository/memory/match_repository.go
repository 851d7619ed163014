package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
)

// MatchRepository is the in-memory twin of the Postgres adapter, used
// in tests and local runs without a database.
type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items: make(map[string]match.Match),
	}
}

func (r *MatchRepository) UpsertMany(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

func (r *MatchRepository) ListByDate(_ context.Context, date string, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if item.Date() != date {
			continue
		}
		if !matchesFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) ListFromDate(_ context.Context, date string, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if item.Date() < date {
			continue
		}
		if !matchesFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	sortMatches(out)
	return out, nil
}

func matchesFilter(item match.Match, filter match.Filter) bool {
	if filter.Type != "" && filter.Type != match.TypeAll && item.Type != filter.Type {
		return false
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		if !strings.Contains(strings.ToLower(item.VenueCity), strings.ToLower(city)) {
			return false
		}
	}
	return true
}

func sortMatches(items []match.Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
