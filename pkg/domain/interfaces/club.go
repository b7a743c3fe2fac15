package interfaces

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

// ClubRepository defines the interface for Club data access
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) (*model.Club, error)
	Get(ctx context.Context, id int64) (*model.Club, error)
	List(ctx context.Context) ([]*model.Club, error)
	Update(ctx context.Context, club *model.Club) (*model.Club, error)
	Delete(ctx context.Context, id int64) error
}

// TeamRepository defines the interface for Team data access
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) (*model.Team, error)
	Get(ctx context.Context, id int64) (*model.Team, error)
	List(ctx context.Context) ([]*model.Team, error)

	// ListByClub retrieves all teams belonging to a club
	ListByClub(ctx context.Context, clubID int64) ([]*model.Team, error)

	Update(ctx context.Context, team *model.Team) (*model.Team, error)
	Delete(ctx context.Context, id int64) error
}
