package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/domain/match"
)

// Sentinel for fixtures whose venue the provider does not know yet.
const unknownVenue = "Unknown"

// NormalizeFixture converts one upstream record into the internal match
// shape. Fixture id, both team names, league info and a parseable
// kickoff are required; a missing venue never fails the record.
func NormalizeFixture(raw UpstreamFixture) (match.Match, error) {
	if raw.FixtureID <= 0 {
		return match.Match{}, fmt.Errorf("%w: fixture id is missing", ErrMalformedUpstreamRecord)
	}
	if raw.HomeTeamName == "" || raw.AwayTeamName == "" {
		return match.Match{}, fmt.Errorf("%w: team names are missing fixture_id=%d", ErrMalformedUpstreamRecord, raw.FixtureID)
	}
	if raw.LeagueName == "" {
		return match.Match{}, fmt.Errorf("%w: league info is missing fixture_id=%d", ErrMalformedUpstreamRecord, raw.FixtureID)
	}

	kickoff, err := time.Parse(time.RFC3339, raw.KickoffAt)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: bad kickoff timestamp %q fixture_id=%d", ErrMalformedUpstreamRecord, raw.KickoffAt, raw.FixtureID)
	}

	venue := raw.VenueName
	if venue == "" {
		venue = unknownVenue
	}
	venueCity := raw.VenueCity
	if venueCity == "" {
		venueCity = unknownVenue
	}

	return match.Match{
		ID:            strconv.FormatInt(raw.FixtureID, 10),
		LeagueID:      raw.LeagueID,
		HomeTeam:      raw.HomeTeamName,
		AwayTeam:      raw.AwayTeamName,
		HomeTeamBadge: raw.HomeTeamBadge,
		AwayTeamBadge: raw.AwayTeamBadge,
		Competition:   raw.LeagueName,
		Type:          match.Classify(raw.LeagueID, raw.LeagueType),
		Gameweek:      raw.Round,
		KickoffAt:     kickoff,
		Venue:         venue,
		VenueCity:     venueCity,
		IsLive:        match.IsLiveStatus(raw.StatusCode),
	}, nil
}
