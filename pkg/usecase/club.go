package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
	"github.com/courtside-dev/courtside/pkg/domain/types"
)

type ClubUseCase struct {
	repo interfaces.Repository
}

func NewClubUseCase(repo interfaces.Repository) *ClubUseCase {
	return &ClubUseCase{repo: repo}
}

func (uc *ClubUseCase) CreateClub(ctx context.Context, p *auth.Principal, club *model.Club) (*model.Club, error) {
	if !p.IsAdmin() {
		return nil, goerr.Wrap(ErrPermissionDenied, "only admins can create clubs", goerr.V(UserIDKey, p.UserID))
	}
	if club.Name == "" {
		return nil, goerr.New("club name is required")
	}

	created, err := uc.repo.Club().Create(ctx, club)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create club")
	}

	return created, nil
}

func (uc *ClubUseCase) GetClub(ctx context.Context, p *auth.Principal, id int64) (*model.Club, error) {
	club, err := uc.repo.Club().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, id))
	}
	return club, nil
}

// ListClubs returns every club except for club managers, who only see the
// clubs they are assigned to.
func (uc *ClubUseCase) ListClubs(ctx context.Context, p *auth.Principal) ([]*model.Club, error) {
	clubs, err := uc.repo.Club().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list clubs")
	}

	if p.Role != types.RoleClubManager {
		return clubs, nil
	}

	managed, err := uc.repo.Membership().ListClubsByUser(ctx, p.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list managed clubs", goerr.V(UserIDKey, p.UserID))
	}

	managedSet := make(map[int64]bool, len(managed))
	for _, id := range managed {
		managedSet[id] = true
	}

	filtered := make([]*model.Club, 0, len(managed))
	for _, club := range clubs {
		if managedSet[club.ID] {
			filtered = append(filtered, club)
		}
	}
	return filtered, nil
}

func (uc *ClubUseCase) UpdateClub(ctx context.Context, p *auth.Principal, club *model.Club) (*model.Club, error) {
	if !p.IsAdmin() {
		return nil, goerr.Wrap(ErrPermissionDenied, "only admins can update clubs", goerr.V(UserIDKey, p.UserID))
	}

	if _, err := uc.repo.Club().Get(ctx, club.ID); err != nil {
		return nil, goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, club.ID))
	}

	updated, err := uc.repo.Club().Update(ctx, club)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update club", goerr.V(ClubIDKey, club.ID))
	}

	return updated, nil
}

func (uc *ClubUseCase) DeleteClub(ctx context.Context, p *auth.Principal, id int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can delete clubs", goerr.V(UserIDKey, p.UserID))
	}

	if err := uc.repo.Club().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, id))
	}

	return nil
}
