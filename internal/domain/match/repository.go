package match

import "context"

// Filter narrows read-back queries. Type "all" passes everything; City
// is a case-insensitive substring match against the venue city.
type Filter struct {
	Type string
	City string
}

// Repository owns persisted match rows. Both list variants return rows
// ordered by kickoff ascending as a first pass; the caller re-asserts
// the final ordering.
type Repository interface {
	UpsertMany(ctx context.Context, matches []Match) error
	ListByDate(ctx context.Context, date string, filter Filter) ([]Match, error)
	ListFromDate(ctx context.Context, date string, filter Filter) ([]Match, error)
}
