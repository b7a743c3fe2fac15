package model

import (
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/types"
)

// User represents an account that can record and review match statistics
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string `masq:"secret"`
	Role         types.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClubMembership assigns a club manager to a club
type ClubMembership struct {
	UserID int64
	ClubID int64
}

// TeamMembership assigns a coach to a team
type TeamMembership struct {
	UserID int64
	TeamID int64
}
