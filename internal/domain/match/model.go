package match

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form used for storage filtering and
// sync tracking.
const DateLayout = "2006-01-02"

const (
	TypeAll           = "all"
	TypeLeague        = "league"
	TypeCup           = "cup"
	TypeInternational = "international"
)

// Match is one fixture in the shape the API serves. Identity is the
// provider-assigned fixture id; re-fetching the same id updates the
// stored row in place.
type Match struct {
	ID            string
	LeagueID      int64
	HomeTeam      string
	AwayTeam      string
	HomeTeamBadge string
	AwayTeamBadge string
	Competition   string
	Type          string
	Gameweek      string
	KickoffAt     time.Time
	Venue         string
	VenueCity     string
	IsLive        bool
}

// Date returns the calendar date of the kickoff in the fixture's own
// timezone offset, matching how dates are tracked in the sync log.
func (m Match) Date() string {
	return m.KickoffAt.Format(DateLayout)
}

// Status codes the provider uses for a match in progress. Anything
// outside this set counts as not live.
var liveStatusCodes = map[string]struct{}{
	"1H":   {},
	"2H":   {},
	"HT":   {},
	"ET":   {},
	"P":    {},
	"BT":   {},
	"LIVE": {},
}

func IsLiveStatus(code string) bool {
	_, ok := liveStatusCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Provider league ids for international competitions. The provider only
// labels competitions "League" or "Cup"; the API contract needs an
// "international" category, so these are tagged by id.
var internationalLeagueIDs = map[int64]struct{}{
	1:  {}, // FIFA World Cup
	4:  {}, // Euro Championship
	5:  {}, // UEFA Nations League
	6:  {}, // Africa Cup of Nations
	7:  {}, // Asian Cup
	9:  {}, // Copa America
	10: {}, // Friendlies
	11: {}, // Friendlies (Women)
	29: {}, // World Cup Qualifiers - South America
	30: {}, // World Cup Qualifiers - CONCACAF
	31: {}, // World Cup Qualifiers - Europe
	32: {}, // World Cup Qualifiers - Africa
	33: {}, // World Cup Qualifiers - Asia
	34: {}, // World Cup Qualifiers - Oceania
}

// Classify maps a provider league to a competition type. The
// international allow-list wins over the provider's own label; absent a
// label the fixture defaults to a league match.
func Classify(leagueID int64, providerType string) string {
	if _, ok := internationalLeagueIDs[leagueID]; ok {
		return TypeInternational
	}

	if strings.EqualFold(strings.TrimSpace(providerType), "cup") {
		return TypeCup
	}
	return TypeLeague
}

func IsValidTypeFilter(value string) bool {
	switch value {
	case TypeAll, TypeLeague, TypeCup, TypeInternational:
		return true
	default:
		return false
	}
}
