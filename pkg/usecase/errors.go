package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrUserNotFound   = errors.New("user not found")
	ErrClubNotFound   = errors.New("club not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrActionNotFound = errors.New("action not found")

	// Access control errors
	ErrPermissionDenied = errors.New("permission denied")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Conflict errors
	ErrDuplicateEmail = errors.New("email already registered")
)

// Context keys for error values
const (
	UserIDKey   = "user_id"
	ClubIDKey   = "club_id"
	TeamIDKey   = "team_id"
	MatchIDKey  = "match_id"
	ActionIDKey = "action_id"
)
