package model

import "time"

// Match represents a recorded handball match. Team names are free text so a
// scout can record opponents that are not registered in the system; the
// optional team IDs associate a registered team with either side.
type Match struct {
	ID           int64
	HomeTeamName string
	AwayTeamName string
	HomeTeamID   *int64
	AwayTeamID   *int64
	Result       string
	Competition  string
	MatchDate    time.Time
	RecordedBy   int64 // User who registered the match
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsScouting reports whether the match has no associated registered team.
// Scouting matches are visible only to their recorder (and admins).
func (m *Match) IsScouting() bool {
	return m.HomeTeamID == nil && m.AwayTeamID == nil
}

// Clone returns a deep copy of the match
func (m *Match) Clone() *Match {
	c := *m
	if m.HomeTeamID != nil {
		id := *m.HomeTeamID
		c.HomeTeamID = &id
	}
	if m.AwayTeamID != nil {
		id := *m.AwayTeamID
		c.AwayTeamID = &id
	}
	return &c
}
