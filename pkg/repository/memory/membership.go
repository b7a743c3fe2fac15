package memory

import (
	"context"
	"sort"
	"sync"
)

type pair struct {
	userID int64
	other  int64
}

type membershipRepository struct {
	mu    sync.RWMutex
	clubs map[pair]bool
	teams map[pair]bool
}

func newMembershipRepository() *membershipRepository {
	return &membershipRepository{
		clubs: make(map[pair]bool),
		teams: make(map[pair]bool),
	}
}

func (r *membershipRepository) AssignClub(ctx context.Context, userID, clubID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clubs[pair{userID, clubID}] = true
	return nil
}

func (r *membershipRepository) RemoveClub(ctx context.Context, userID, clubID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clubs, pair{userID, clubID})
	return nil
}

func (r *membershipRepository) ManagesClub(ctx context.Context, userID, clubID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clubs[pair{userID, clubID}], nil
}

func (r *membershipRepository) ListClubsByUser(ctx context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0)
	for p := range r.clubs {
		if p.userID == userID {
			ids = append(ids, p.other)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *membershipRepository) AssignTeam(ctx context.Context, userID, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[pair{userID, teamID}] = true
	return nil
}

func (r *membershipRepository) RemoveTeam(ctx context.Context, userID, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.teams, pair{userID, teamID})
	return nil
}

func (r *membershipRepository) CoachesTeam(ctx context.Context, userID, teamID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teams[pair{userID, teamID}], nil
}

func (r *membershipRepository) ListTeamsByUser(ctx context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0)
	for p := range r.teams {
		if p.userID == userID {
			ids = append(ids, p.other)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
