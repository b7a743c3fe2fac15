package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type actionRepository struct {
	mu      sync.RWMutex
	actions map[int64]*model.Action
	nextID  int64
}

func newActionRepository() *actionRepository {
	return &actionRepository{
		actions: make(map[int64]*model.Action),
		nextID:  1,
	}
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := action.Clone()
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.actions[created.ID] = created
	return created.Clone(), nil
}

func (r *actionRepository) Get(ctx context.Context, id int64) (*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	action, exists := r.actions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}

	return action.Clone(), nil
}

func (r *actionRepository) ListByMatch(ctx context.Context, matchID int64) ([]*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*model.Action, 0)
	for _, action := range r.actions {
		if action.MatchID == matchID {
			actions = append(actions, action.Clone())
		}
	}

	// Creation order equals ID order
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].ID < actions[j].ID
	})

	return actions, nil
}

func (r *actionRepository) GetLastByMatch(ctx context.Context, matchID, excludeID int64) (*model.Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last *model.Action
	for _, action := range r.actions {
		if action.MatchID != matchID || action.ID == excludeID {
			continue
		}
		if last == nil || action.ID > last.ID {
			last = action
		}
	}

	if last == nil {
		return nil, nil
	}
	return last.Clone(), nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.actions[action.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", action.ID))
	}

	updated := action.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.actions[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}

	delete(r.actions, id)
	return nil
}

func (r *actionRepository) DeleteAllByMatch(ctx context.Context, matchID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, action := range r.actions {
		if action.MatchID == matchID {
			delete(r.actions, id)
		}
	}
	return nil
}
