package types

import "fmt"

// TeamSide represents which side of the match performed an action
type TeamSide string

const (
	TeamSideHome TeamSide = "HOME"
	TeamSideAway TeamSide = "AWAY"
)

// AllTeamSides returns all valid team sides
func AllTeamSides() []TeamSide {
	return []TeamSide{
		TeamSideHome,
		TeamSideAway,
	}
}

// IsValid checks if the team side is valid
func (s TeamSide) IsValid() bool {
	switch s {
	case TeamSideHome, TeamSideAway:
		return true
	default:
		return false
	}
}

// String returns the string representation of the team side
func (s TeamSide) String() string {
	return string(s)
}

// ParseTeamSide parses a string into a TeamSide
func ParseTeamSide(s string) (TeamSide, error) {
	side := TeamSide(s)
	if !side.IsValid() {
		return "", fmt.Errorf("invalid team side: %s", s)
	}
	return side, nil
}
