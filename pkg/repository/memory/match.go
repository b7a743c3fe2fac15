package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type matchRepository struct {
	mu      sync.RWMutex
	matches map[int64]*model.Match
	nextID  int64
}

func newMatchRepository() *matchRepository {
	return &matchRepository{
		matches: make(map[int64]*model.Match),
		nextID:  1,
	}
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) (*model.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := match.Clone()
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.matches[created.ID] = created
	return created.Clone(), nil
}

func (r *matchRepository) Get(ctx context.Context, id int64) (*model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, exists := r.matches[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", id))
	}

	return match.Clone(), nil
}

func (r *matchRepository) List(ctx context.Context) ([]*model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*model.Match, 0, len(r.matches))
	for _, match := range r.matches {
		matches = append(matches, match.Clone())
	}

	sortMatches(matches)
	return matches, nil
}

func (r *matchRepository) ListByTeams(ctx context.Context, teamIDs []int64) ([]*model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idSet := make(map[int64]bool, len(teamIDs))
	for _, id := range teamIDs {
		idSet[id] = true
	}

	matches := make([]*model.Match, 0)
	for _, match := range r.matches {
		if (match.HomeTeamID != nil && idSet[*match.HomeTeamID]) ||
			(match.AwayTeamID != nil && idSet[*match.AwayTeamID]) {
			matches = append(matches, match.Clone())
		}
	}

	sortMatches(matches)
	return matches, nil
}

func (r *matchRepository) ListByRecorder(ctx context.Context, userID int64) ([]*model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*model.Match, 0)
	for _, match := range r.matches {
		if match.RecordedBy == userID {
			matches = append(matches, match.Clone())
		}
	}

	sortMatches(matches)
	return matches, nil
}

func (r *matchRepository) Update(ctx context.Context, match *model.Match) (*model.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.matches[match.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", match.ID))
	}

	updated := match.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.matches[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *matchRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[id]; !exists {
		return goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", id))
	}

	delete(r.matches, id)
	return nil
}

func sortMatches(matches []*model.Match) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
}
