package usecase

import "context"

// UpstreamProvider is the sports-data provider seen from the sync side.
// Both calls cost one upstream request per league; failures surface as
// ErrUpstreamUnavailable and are never retried within a request cycle.
type UpstreamProvider interface {
	// FixturesByDate returns every fixture for one league on one
	// calendar date (YYYY-MM-DD).
	FixturesByDate(ctx context.Context, leagueID int64, date string) ([]UpstreamFixture, error)
	// FixturesUpcoming returns up to next future fixtures for one
	// league, spanning multiple dates.
	FixturesUpcoming(ctx context.Context, leagueID int64, next int) ([]UpstreamFixture, error)
}

// UpstreamFixture is one provider fixture record, decoded but not yet
// validated. Zero values mean the provider omitted the field; the
// normalizer decides which absences are fatal.
type UpstreamFixture struct {
	FixtureID     int64
	KickoffAt     string // ISO-8601 with offset, as sent by the provider
	StatusCode    string
	VenueName     string
	VenueCity     string
	HomeTeamName  string
	HomeTeamBadge string
	AwayTeamName  string
	AwayTeamBadge string
	LeagueID      int64
	LeagueName    string
	LeagueType    string
	Round         string
}
