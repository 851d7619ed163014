package apifootball

// Wire shapes for the fixtures endpoint. Only the fields the sync path
// reads are declared; sonic ignores the rest of the payload.

type fixturesEnvelope struct {
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture fixtureCore   `json:"fixture"`
	League  fixtureLeague `json:"league"`
	Teams   fixtureTeams  `json:"teams"`
}

type fixtureCore struct {
	ID     int64         `json:"id"`
	Date   string        `json:"date"`
	Status fixtureStatus `json:"status"`
	Venue  fixtureVenue  `json:"venue"`
}

type fixtureStatus struct {
	Short string `json:"short"`
}

type fixtureVenue struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type fixtureLeague struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Round string `json:"round"`
}

type fixtureTeams struct {
	Home fixtureTeam `json:"home"`
	Away fixtureTeam `json:"away"`
}

type fixtureTeam struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}
