package postgres

import (
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
)

type matchTableModel struct {
	ID            string    `db:"id"`
	LeagueID      int64     `db:"league_id"`
	HomeTeam      string    `db:"home_team"`
	AwayTeam      string    `db:"away_team"`
	HomeTeamBadge string    `db:"home_team_badge"`
	AwayTeamBadge string    `db:"away_team_badge"`
	Competition   string    `db:"competition"`
	Type          string    `db:"competition_type"`
	Gameweek      string    `db:"gameweek"`
	KickoffAt     time.Time `db:"kickoff_at"`
	Venue         string    `db:"venue"`
	VenueCity     string    `db:"venue_city"`
	IsLive        bool      `db:"is_live"`
}

// matchInsertModel adds match_date, which exists only for date-range
// filtering and is always derived from the kickoff timestamp.
type matchInsertModel struct {
	ID            string    `db:"id"`
	LeagueID      int64     `db:"league_id"`
	HomeTeam      string    `db:"home_team"`
	AwayTeam      string    `db:"away_team"`
	HomeTeamBadge string    `db:"home_team_badge"`
	AwayTeamBadge string    `db:"away_team_badge"`
	Competition   string    `db:"competition"`
	Type          string    `db:"competition_type"`
	Gameweek      string    `db:"gameweek"`
	KickoffAt     time.Time `db:"kickoff_at"`
	MatchDate     string    `db:"match_date"`
	Venue         string    `db:"venue"`
	VenueCity     string    `db:"venue_city"`
	IsLive        bool      `db:"is_live"`
}

var matchSelectColumns = []string{
	"id",
	"league_id",
	"home_team",
	"away_team",
	"home_team_badge",
	"away_team_badge",
	"competition",
	"competition_type",
	"gameweek",
	"kickoff_at",
	"venue",
	"venue_city",
	"is_live",
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		LeagueID:      m.LeagueID,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		HomeTeamBadge: m.HomeTeamBadge,
		AwayTeamBadge: m.AwayTeamBadge,
		Competition:   m.Competition,
		Type:          m.Type,
		Gameweek:      m.Gameweek,
		KickoffAt:     m.KickoffAt,
		Venue:         m.Venue,
		VenueCity:     m.VenueCity,
		IsLive:        m.IsLive,
	}
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		ID:            m.ID,
		LeagueID:      m.LeagueID,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		HomeTeamBadge: m.HomeTeamBadge,
		AwayTeamBadge: m.AwayTeamBadge,
		Competition:   m.Competition,
		Type:          m.Type,
		Gameweek:      m.Gameweek,
		KickoffAt:     m.KickoffAt,
		MatchDate:     m.Date(),
		Venue:         m.Venue,
		VenueCity:     m.VenueCity,
		IsLive:        m.IsLive,
	}
}
