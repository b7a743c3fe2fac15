package memory

import (
	"errors"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist in the store
var ErrNotFound = errors.New("record not found")

// Memory is the in-memory repository backend, intended for development and
// tests. All repositories hand out deep copies so callers can never mutate
// stored records in place.
type Memory struct {
	user       *userRepository
	club       *clubRepository
	team       *teamRepository
	match      *matchRepository
	action     *actionRepository
	membership *membershipRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		user:       newUserRepository(),
		club:       newClubRepository(),
		team:       newTeamRepository(),
		match:      newMatchRepository(),
		action:     newActionRepository(),
		membership: newMembershipRepository(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Club() interfaces.ClubRepository {
	return m.club
}

func (m *Memory) Team() interfaces.TeamRepository {
	return m.team
}

func (m *Memory) Match() interfaces.MatchRepository {
	return m.match
}

func (m *Memory) Action() interfaces.ActionRepository {
	return m.action
}

func (m *Memory) Membership() interfaces.MembershipRepository {
	return m.membership
}

func (m *Memory) Close() error {
	return nil
}
