package synclog

import "time"

// Mark records that one league+date pair was checked against upstream.
// At most one mark exists per pair; a later mark overwrites it.
type Mark struct {
	LeagueID int64
	Date     string
	SyncedAt time.Time
}
