package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type clubRepository struct {
	mu     sync.RWMutex
	clubs  map[int64]*model.Club
	nextID int64
}

func newClubRepository() *clubRepository {
	return &clubRepository{
		clubs:  make(map[int64]*model.Club),
		nextID: 1,
	}
}

func copyClub(c *model.Club) *model.Club {
	clone := *c
	return &clone
}

func (r *clubRepository) Create(ctx context.Context, club *model.Club) (*model.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyClub(club)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.nextID++

	r.clubs[created.ID] = created
	return copyClub(created), nil
}

func (r *clubRepository) Get(ctx context.Context, id int64) (*model.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	club, exists := r.clubs[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", id))
	}

	return copyClub(club), nil
}

func (r *clubRepository) List(ctx context.Context) ([]*model.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clubs := make([]*model.Club, 0, len(r.clubs))
	for _, club := range r.clubs {
		clubs = append(clubs, copyClub(club))
	}

	sort.Slice(clubs, func(i, j int) bool {
		return clubs[i].ID < clubs[j].ID
	})

	return clubs, nil
}

func (r *clubRepository) Update(ctx context.Context, club *model.Club) (*model.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.clubs[club.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", club.ID))
	}

	updated := copyClub(club)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.clubs[updated.ID] = updated
	return copyClub(updated), nil
}

func (r *clubRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clubs[id]; !exists {
		return goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", id))
	}

	delete(r.clubs, id)
	return nil
}
