package interfaces

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

// MatchRepository defines the interface for Match data access
type MatchRepository interface {
	// Create creates a new match with auto-generated ID
	Create(ctx context.Context, match *model.Match) (*model.Match, error)

	// Get retrieves a match by ID
	Get(ctx context.Context, id int64) (*model.Match, error)

	// List retrieves all matches
	List(ctx context.Context) ([]*model.Match, error)

	// ListByTeams retrieves matches where either side is one of the given teams
	ListByTeams(ctx context.Context, teamIDs []int64) ([]*model.Match, error)

	// ListByRecorder retrieves matches registered by the given user
	ListByRecorder(ctx context.Context, userID int64) ([]*model.Match, error)

	// Update updates an existing match
	Update(ctx context.Context, match *model.Match) (*model.Match, error)

	// Delete deletes a match by ID
	Delete(ctx context.Context, id int64) error
}
