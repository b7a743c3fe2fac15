package usecase

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

type MatchUseCase struct {
	repo  interfaces.Repository
	guard *matchGuard
}

func NewMatchUseCase(repo interfaces.Repository, guard *matchGuard) *MatchUseCase {
	return &MatchUseCase{
		repo:  repo,
		guard: guard,
	}
}

// CreateMatch registers a match. RecordedBy is always the caller; the
// associated team IDs, when given, must exist.
func (uc *MatchUseCase) CreateMatch(ctx context.Context, p *auth.Principal, match *model.Match) (*model.Match, error) {
	if match.HomeTeamName == "" || match.AwayTeamName == "" {
		return nil, goerr.New("both team names are required")
	}

	for _, teamID := range matchTeamIDs(match) {
		if _, err := uc.repo.Team().Get(ctx, teamID); err != nil {
			return nil, goerr.Wrap(ErrTeamNotFound, "associated team not found", goerr.V(TeamIDKey, teamID))
		}
	}

	match = match.Clone()
	match.RecordedBy = p.UserID

	created, err := uc.repo.Match().Create(ctx, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create match")
	}

	return created, nil
}

func (uc *MatchUseCase) GetMatch(ctx context.Context, p *auth.Principal, id int64) (*model.Match, error) {
	match, err := uc.repo.Match().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrMatchNotFound, "match not found", goerr.V(MatchIDKey, id))
	}

	ok, err := uc.guard.CanAccess(ctx, p, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check match access", goerr.V(MatchIDKey, id))
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no access to match",
			goerr.V(MatchIDKey, id), goerr.V(UserIDKey, p.UserID))
	}

	return match, nil
}

// ListMatches returns the matches visible to the caller: everything for
// admins, otherwise the matches of managed or coached teams plus the
// caller's own recordings (which covers scouting matches).
func (uc *MatchUseCase) ListMatches(ctx context.Context, p *auth.Principal) ([]*model.Match, error) {
	if p.IsAdmin() {
		matches, err := uc.repo.Match().List(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list matches")
		}
		return matches, nil
	}

	teamIDs, err := uc.guard.VisibleTeamIDs(ctx, p)
	if err != nil {
		return nil, err
	}

	byTeam, err := uc.repo.Match().ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches by teams")
	}

	own, err := uc.repo.Match().ListByRecorder(ctx, p.UserID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list recorded matches", goerr.V(UserIDKey, p.UserID))
	}

	seen := make(map[int64]bool, len(byTeam))
	matches := make([]*model.Match, 0, len(byTeam)+len(own))
	for _, m := range byTeam {
		seen[m.ID] = true
		matches = append(matches, m)
	}
	for _, m := range own {
		if !seen[m.ID] {
			matches = append(matches, m)
		}
	}

	sortMatchesByID(matches)
	return matches, nil
}

func (uc *MatchUseCase) UpdateMatch(ctx context.Context, p *auth.Principal, match *model.Match) (*model.Match, error) {
	existing, err := uc.repo.Match().Get(ctx, match.ID)
	if err != nil {
		return nil, goerr.Wrap(ErrMatchNotFound, "match not found", goerr.V(MatchIDKey, match.ID))
	}

	if !uc.guard.CanAdminister(p, existing) {
		return nil, goerr.Wrap(ErrPermissionDenied, "only the recorder can modify a match",
			goerr.V(MatchIDKey, match.ID), goerr.V(UserIDKey, p.UserID))
	}

	for _, teamID := range matchTeamIDs(match) {
		if _, err := uc.repo.Team().Get(ctx, teamID); err != nil {
			return nil, goerr.Wrap(ErrTeamNotFound, "associated team not found", goerr.V(TeamIDKey, teamID))
		}
	}

	match = match.Clone()
	match.RecordedBy = existing.RecordedBy

	updated, err := uc.repo.Match().Update(ctx, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update match", goerr.V(MatchIDKey, match.ID))
	}

	return updated, nil
}

// DeleteMatch removes the match and every action recorded on it.
func (uc *MatchUseCase) DeleteMatch(ctx context.Context, p *auth.Principal, id int64) error {
	existing, err := uc.repo.Match().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrMatchNotFound, "match not found", goerr.V(MatchIDKey, id))
	}

	if !uc.guard.CanAdminister(p, existing) {
		return goerr.Wrap(ErrPermissionDenied, "only the recorder can delete a match",
			goerr.V(MatchIDKey, id), goerr.V(UserIDKey, p.UserID))
	}

	if err := uc.repo.Action().DeleteAllByMatch(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete match actions", goerr.V(MatchIDKey, id))
	}

	if err := uc.repo.Match().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete match", goerr.V(MatchIDKey, id))
	}

	return nil
}

func sortMatchesByID(matches []*model.Match) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
}
