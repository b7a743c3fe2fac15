package types

import "fmt"

// Role represents a user's permission level
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleClubManager Role = "CLUB_MANAGER"
	RoleCoach       Role = "COACH"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleClubManager,
		RoleCoach,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClubManager, RoleCoach:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
