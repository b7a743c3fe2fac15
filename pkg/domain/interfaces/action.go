package interfaces

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

// ActionRepository defines the interface for Action data access
type ActionRepository interface {
	// Create creates a new action with auto-generated ID
	Create(ctx context.Context, action *model.Action) (*model.Action, error)

	// Get retrieves an action by ID
	Get(ctx context.Context, id int64) (*model.Action, error)

	// ListByMatch retrieves all actions of a match ordered by creation (ID ascending)
	ListByMatch(ctx context.Context, matchID int64) ([]*model.Action, error)

	// GetLastByMatch retrieves the most recently created action of a match,
	// skipping excludeID (pass 0 to exclude nothing). Returns nil without
	// error when the match has no matching action.
	GetLastByMatch(ctx context.Context, matchID, excludeID int64) (*model.Action, error)

	// Update updates an existing action
	Update(ctx context.Context, action *model.Action) (*model.Action, error)

	// Delete deletes an action by ID
	Delete(ctx context.Context, id int64) error

	// DeleteAllByMatch deletes every action of a match
	DeleteAllByMatch(ctx context.Context, matchID int64) error
}
