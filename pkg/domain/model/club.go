package model

import "time"

// Club represents a handball club
type Club struct {
	ID        int64
	Name      string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Team represents a club's team for a given category and season. ClubID is
// optional so independent teams can be recorded.
type Team struct {
	ID        int64
	ClubID    *int64
	Name      string
	Category  string
	Season    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the team
func (t *Team) Clone() *Team {
	c := *t
	if t.ClubID != nil {
		id := *t.ClubID
		c.ClubID = &id
	}
	return &c
}
