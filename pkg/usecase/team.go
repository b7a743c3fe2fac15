package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

type TeamUseCase struct {
	repo interfaces.Repository
}

func NewTeamUseCase(repo interfaces.Repository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// canManageTeam allows admins, and club managers of the owning club when
// the team belongs to one.
func (uc *TeamUseCase) canManageTeam(ctx context.Context, p *auth.Principal, clubID *int64) (bool, error) {
	if p.IsAdmin() {
		return true, nil
	}
	if clubID == nil {
		return false, nil
	}

	manages, err := uc.repo.Membership().ManagesClub(ctx, p.UserID, *clubID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check club assignment", goerr.V(ClubIDKey, *clubID))
	}
	return manages, nil
}

func (uc *TeamUseCase) CreateTeam(ctx context.Context, p *auth.Principal, team *model.Team) (*model.Team, error) {
	if team.Name == "" {
		return nil, goerr.New("team name is required")
	}

	if team.ClubID != nil {
		if _, err := uc.repo.Club().Get(ctx, *team.ClubID); err != nil {
			return nil, goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, *team.ClubID))
		}
	}

	ok, err := uc.canManageTeam(ctx, p, team.ClubID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no permission to create team", goerr.V(UserIDKey, p.UserID))
	}

	created, err := uc.repo.Team().Create(ctx, team)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create team")
	}

	return created, nil
}

func (uc *TeamUseCase) GetTeam(ctx context.Context, p *auth.Principal, id int64) (*model.Team, error) {
	team, err := uc.repo.Team().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTeamNotFound, "team not found", goerr.V(TeamIDKey, id))
	}
	return team, nil
}

func (uc *TeamUseCase) ListTeams(ctx context.Context, p *auth.Principal) ([]*model.Team, error) {
	teams, err := uc.repo.Team().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list teams")
	}
	return teams, nil
}

func (uc *TeamUseCase) ListTeamsByClub(ctx context.Context, p *auth.Principal, clubID int64) ([]*model.Team, error) {
	if _, err := uc.repo.Club().Get(ctx, clubID); err != nil {
		return nil, goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, clubID))
	}

	teams, err := uc.repo.Team().ListByClub(ctx, clubID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list teams by club", goerr.V(ClubIDKey, clubID))
	}
	return teams, nil
}

func (uc *TeamUseCase) UpdateTeam(ctx context.Context, p *auth.Principal, team *model.Team) (*model.Team, error) {
	existing, err := uc.repo.Team().Get(ctx, team.ID)
	if err != nil {
		return nil, goerr.Wrap(ErrTeamNotFound, "team not found", goerr.V(TeamIDKey, team.ID))
	}

	ok, err := uc.canManageTeam(ctx, p, existing.ClubID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no permission to update team",
			goerr.V(TeamIDKey, team.ID), goerr.V(UserIDKey, p.UserID))
	}

	if team.ClubID != nil {
		if _, err := uc.repo.Club().Get(ctx, *team.ClubID); err != nil {
			return nil, goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, *team.ClubID))
		}
	}

	updated, err := uc.repo.Team().Update(ctx, team)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update team", goerr.V(TeamIDKey, team.ID))
	}

	return updated, nil
}

func (uc *TeamUseCase) DeleteTeam(ctx context.Context, p *auth.Principal, id int64) error {
	existing, err := uc.repo.Team().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrTeamNotFound, "team not found", goerr.V(TeamIDKey, id))
	}

	ok, err := uc.canManageTeam(ctx, p, existing.ClubID)
	if err != nil {
		return err
	}
	if !ok {
		return goerr.Wrap(ErrPermissionDenied, "no permission to delete team",
			goerr.V(TeamIDKey, id), goerr.V(UserIDKey, p.UserID))
	}

	if err := uc.repo.Team().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete team", goerr.V(TeamIDKey, id))
	}

	return nil
}
