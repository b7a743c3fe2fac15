package interfaces

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

// UserRepository defines the interface for User data access
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

// MembershipRepository defines the interface for manager/coach assignments
type MembershipRepository interface {
	// AssignClub assigns a club manager to a club (idempotent)
	AssignClub(ctx context.Context, userID, clubID int64) error

	// RemoveClub removes a club assignment
	RemoveClub(ctx context.Context, userID, clubID int64) error

	// ManagesClub reports whether the user is assigned to the club
	ManagesClub(ctx context.Context, userID, clubID int64) (bool, error)

	// ListClubsByUser retrieves club IDs the user manages
	ListClubsByUser(ctx context.Context, userID int64) ([]int64, error)

	// AssignTeam assigns a coach to a team (idempotent)
	AssignTeam(ctx context.Context, userID, teamID int64) error

	// RemoveTeam removes a team assignment
	RemoveTeam(ctx context.Context, userID, teamID int64) error

	// CoachesTeam reports whether the user is assigned to the team
	CoachesTeam(ctx context.Context, userID, teamID int64) (bool, error)

	// ListTeamsByUser retrieves team IDs the user coaches
	ListTeamsByUser(ctx context.Context, userID int64) ([]int64, error)
}
