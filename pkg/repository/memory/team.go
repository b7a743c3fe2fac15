package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type teamRepository struct {
	mu     sync.RWMutex
	teams  map[int64]*model.Team
	nextID int64
}

func newTeamRepository() *teamRepository {
	return &teamRepository{
		teams:  make(map[int64]*model.Team),
		nextID: 1,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := team.Clone()
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.teams[created.ID] = created
	return created.Clone(), nil
}

func (r *teamRepository) Get(ctx context.Context, id int64) (*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, exists := r.teams[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
	}

	return team.Clone(), nil
}

func (r *teamRepository) List(ctx context.Context) ([]*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]*model.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team.Clone())
	}

	sortTeams(teams)
	return teams, nil
}

func (r *teamRepository) ListByClub(ctx context.Context, clubID int64) ([]*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]*model.Team, 0)
	for _, team := range r.teams {
		if team.ClubID != nil && *team.ClubID == clubID {
			teams = append(teams, team.Clone())
		}
	}

	sortTeams(teams)
	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.teams[team.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", team.ID))
	}

	updated := team.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.teams[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[id]; !exists {
		return goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
	}

	delete(r.teams, id)
	return nil
}

func sortTeams(teams []*model.Team) {
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].ID < teams[j].ID
	})
}
