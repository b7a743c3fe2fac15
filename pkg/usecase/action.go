package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

// ActionDetail is an action together with the team names of its match, so
// clients do not need a second request to label the sides.
type ActionDetail struct {
	*model.Action
	HomeTeamName string
	AwayTeamName string
}

// matchLocks hands out one mutex per match ID. The sequential validation
// rule reads the last action and then writes; without serializing that
// window two concurrent creates could both validate against the same
// predecessor. Entries are never released; one mutex per recorded match
// stays small. Revisit if matches are ever archived in bulk.
type matchLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *matchLocks) get(matchID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[matchID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[matchID] = m
	}
	return m
}

type ActionUseCase struct {
	repo  interfaces.Repository
	guard *matchGuard
	locks *matchLocks
}

func NewActionUseCase(repo interfaces.Repository, guard *matchGuard) *ActionUseCase {
	return &ActionUseCase{
		repo:  repo,
		guard: guard,
		locks: newMatchLocks(),
	}
}

// CreateAction validates and records a new action. The match lock is held
// across the last-action read and the write so Rule 5 sees a stable
// predecessor.
func (uc *ActionUseCase) CreateAction(ctx context.Context, p *auth.Principal, action *model.Action) (*ActionDetail, error) {
	match, err := uc.repo.Match().Get(ctx, action.MatchID)
	if err != nil {
		return nil, goerr.Wrap(ErrMatchNotFound, "match not found", goerr.V(MatchIDKey, action.MatchID))
	}

	ok, err := uc.guard.CanAccess(ctx, p, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check match access", goerr.V(MatchIDKey, match.ID))
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no access to match",
			goerr.V(MatchIDKey, match.ID), goerr.V(UserIDKey, p.UserID))
	}

	lock := uc.locks.get(match.ID)
	lock.Lock()
	defer lock.Unlock()

	lastAction := func(ctx context.Context) (*model.Action, error) {
		return uc.repo.Action().GetLastByMatch(ctx, match.ID, 0)
	}
	if err := model.ValidateAction(ctx, action, lastAction); err != nil {
		return nil, err
	}

	created, err := uc.repo.Action().Create(ctx, action)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create action", goerr.V(MatchIDKey, match.ID))
	}

	return newActionDetail(created, match), nil
}

func (uc *ActionUseCase) GetAction(ctx context.Context, p *auth.Principal, id int64) (*ActionDetail, error) {
	action, err := uc.repo.Action().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	match, err := uc.accessibleMatch(ctx, p, action.MatchID)
	if err != nil {
		return nil, err
	}

	return newActionDetail(action, match), nil
}

// ListActionsByMatch returns the match's actions in creation order. The
// match and its actions are fetched concurrently.
func (uc *ActionUseCase) ListActionsByMatch(ctx context.Context, p *auth.Principal, matchID int64) ([]*ActionDetail, error) {
	var match *model.Match
	var actions []*model.Action

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		m, err := uc.repo.Match().Get(egCtx, matchID)
		if err != nil {
			return goerr.Wrap(ErrMatchNotFound, "match not found", goerr.V(MatchIDKey, matchID))
		}
		match = m
		return nil
	})
	eg.Go(func() error {
		as, err := uc.repo.Action().ListByMatch(egCtx, matchID)
		if err != nil {
			return goerr.Wrap(err, "failed to list actions", goerr.V(MatchIDKey, matchID))
		}
		actions = as
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ok, err := uc.guard.CanAccess(ctx, p, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check match access", goerr.V(MatchIDKey, matchID))
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no access to match",
			goerr.V(MatchIDKey, matchID), goerr.V(UserIDKey, p.UserID))
	}

	details := make([]*ActionDetail, len(actions))
	for i, a := range actions {
		details[i] = newActionDetail(a, match)
	}
	return details, nil
}

// UpdateAction merges the patch over the stored action and re-validates the
// merged candidate in full. The last-action lookup excludes the action being
// updated so the tail action validates against its true predecessor.
func (uc *ActionUseCase) UpdateAction(ctx context.Context, p *auth.Principal, id int64, patch *model.ActionPatch) (*ActionDetail, error) {
	stored, err := uc.repo.Action().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	match, err := uc.accessibleMatch(ctx, p, stored.MatchID)
	if err != nil {
		return nil, err
	}

	lock := uc.locks.get(match.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock so concurrent updates of the same action merge
	// over each other instead of a shared stale base.
	stored, err = uc.repo.Action().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	merged := patch.ApplyTo(stored)

	lastAction := func(ctx context.Context) (*model.Action, error) {
		return uc.repo.Action().GetLastByMatch(ctx, match.ID, id)
	}
	if err := model.ValidateAction(ctx, merged, lastAction); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Action().Update(ctx, merged)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update action", goerr.V(ActionIDKey, id))
	}

	return newActionDetail(updated, match), nil
}

func (uc *ActionUseCase) DeleteAction(ctx context.Context, p *auth.Principal, id int64) error {
	stored, err := uc.repo.Action().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	match, err := uc.accessibleMatch(ctx, p, stored.MatchID)
	if err != nil {
		return err
	}

	lock := uc.locks.get(match.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.repo.Action().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	return nil
}

// accessibleMatch resolves the match and enforces the access guard. The
// parent match existing is an invariant, so a lookup failure here is an
// internal error, not a 404.
func (uc *ActionUseCase) accessibleMatch(ctx context.Context, p *auth.Principal, matchID int64) (*model.Match, error) {
	match, err := uc.repo.Match().Get(ctx, matchID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent match", goerr.V(MatchIDKey, matchID))
	}

	ok, err := uc.guard.CanAccess(ctx, p, match)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check match access", goerr.V(MatchIDKey, matchID))
	}
	if !ok {
		return nil, goerr.Wrap(ErrPermissionDenied, "no access to match",
			goerr.V(MatchIDKey, matchID), goerr.V(UserIDKey, p.UserID))
	}

	return match, nil
}

func newActionDetail(action *model.Action, match *model.Match) *ActionDetail {
	return &ActionDetail{
		Action:       action,
		HomeTeamName: match.HomeTeamName,
		AwayTeamName: match.AwayTeamName,
	}
}
