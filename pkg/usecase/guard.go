package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

// matchGuard decides who can see and work on a match. Scouting matches
// (no associated team) stay private to their recorder; otherwise access
// follows club/team assignments.
type matchGuard struct {
	repo interfaces.Repository
}

func newMatchGuard(repo interfaces.Repository) *matchGuard {
	return &matchGuard{repo: repo}
}

// CanAccess reports whether the principal may view the match and record
// actions on it.
func (g *matchGuard) CanAccess(ctx context.Context, p *auth.Principal, match *model.Match) (bool, error) {
	if p.IsAdmin() || match.RecordedBy == p.UserID {
		return true, nil
	}

	if match.IsScouting() {
		return false, nil
	}

	for _, teamID := range matchTeamIDs(match) {
		ok, err := g.linkedToTeam(ctx, p, teamID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// CanAdminister reports whether the principal may update or delete the
// match itself. Only the recorder and admins can.
func (g *matchGuard) CanAdminister(p *auth.Principal, match *model.Match) bool {
	return p.IsAdmin() || match.RecordedBy == p.UserID
}

// VisibleTeamIDs returns the teams whose matches the principal can see
// through club management or coaching assignments.
func (g *matchGuard) VisibleTeamIDs(ctx context.Context, p *auth.Principal) ([]int64, error) {
	seen := make(map[int64]bool)
	teamIDs := make([]int64, 0)

	coached, err := g.repo.Membership().ListTeamsByUser(ctx, p.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list coached teams", goerr.V(UserIDKey, p.UserID))
	}
	for _, id := range coached {
		if !seen[id] {
			seen[id] = true
			teamIDs = append(teamIDs, id)
		}
	}

	clubIDs, err := g.repo.Membership().ListClubsByUser(ctx, p.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list managed clubs", goerr.V(UserIDKey, p.UserID))
	}
	for _, clubID := range clubIDs {
		teams, err := g.repo.Team().ListByClub(ctx, clubID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list club teams", goerr.V(ClubIDKey, clubID))
		}
		for _, team := range teams {
			if !seen[team.ID] {
				seen[team.ID] = true
				teamIDs = append(teamIDs, team.ID)
			}
		}
	}

	return teamIDs, nil
}

func (g *matchGuard) linkedToTeam(ctx context.Context, p *auth.Principal, teamID int64) (bool, error) {
	coaches, err := g.repo.Membership().CoachesTeam(ctx, p.UserID, teamID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check coaching assignment", goerr.V(TeamIDKey, teamID))
	}
	if coaches {
		return true, nil
	}

	team, err := g.repo.Team().Get(ctx, teamID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get team", goerr.V(TeamIDKey, teamID))
	}
	if team.ClubID == nil {
		return false, nil
	}

	manages, err := g.repo.Membership().ManagesClub(ctx, p.UserID, *team.ClubID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check club assignment", goerr.V(ClubIDKey, *team.ClubID))
	}
	return manages, nil
}

func matchTeamIDs(match *model.Match) []int64 {
	ids := make([]int64, 0, 2)
	if match.HomeTeamID != nil {
		ids = append(ids, *match.HomeTeamID)
	}
	if match.AwayTeamID != nil {
		ids = append(ids, *match.AwayTeamID)
	}
	return ids
}
