package httpapi

import (
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
)

type matchDTO struct {
	ID            string `json:"id"`
	LeagueID      int64  `json:"leagueId"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	HomeTeamBadge string `json:"homeTeamBadge"`
	AwayTeamBadge string `json:"awayTeamBadge"`
	Competition   string `json:"competition"`
	Type          string `json:"type"`
	Gameweek      string `json:"gameweek"`
	Kickoff       string `json:"kickoff"`
	Date          string `json:"date"`
	Venue         string `json:"venue"`
	VenueCity     string `json:"venueCity"`
	IsLive        bool   `json:"isLive"`
}

type matchesResponse struct {
	Matches []matchDTO `json:"matches"`
}

func toMatchesResponse(items []match.Match) matchesResponse {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchDTO{
			ID:            item.ID,
			LeagueID:      item.LeagueID,
			HomeTeam:      item.HomeTeam,
			AwayTeam:      item.AwayTeam,
			HomeTeamBadge: item.HomeTeamBadge,
			AwayTeamBadge: item.AwayTeamBadge,
			Competition:   item.Competition,
			Type:          item.Type,
			Gameweek:      item.Gameweek,
			Kickoff:       item.KickoffAt.Format(time.RFC3339),
			Date:          item.Date(),
			Venue:         item.Venue,
			VenueCity:     item.VenueCity,
			IsLive:        item.IsLive,
		})
	}
	return matchesResponse{Matches: out}
}
