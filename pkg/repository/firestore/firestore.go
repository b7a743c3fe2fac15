package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	user       *userRepository
	club       *clubRepository
	team       *teamRepository
	match      *matchRepository
	action     *actionRepository
	membership *membershipRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, mainly for tests
// sharing a project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.user.collectionPrefix = prefix
		f.club.collectionPrefix = prefix
		f.team.collectionPrefix = prefix
		f.match.collectionPrefix = prefix
		f.action.collectionPrefix = prefix
		f.membership.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		user:       newUserRepository(client),
		club:       newClubRepository(client),
		team:       newTeamRepository(client),
		match:      newMatchRepository(client),
		action:     newActionRepository(client),
		membership: newMembershipRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Club() interfaces.ClubRepository {
	return f.club
}

func (f *Firestore) Team() interfaces.TeamRepository {
	return f.team
}

func (f *Firestore) Match() interfaces.MatchRepository {
	return f.match
}

func (f *Firestore) Action() interfaces.ActionRepository {
	return f.action
}

func (f *Firestore) Membership() interfaces.MembershipRepository {
	return f.membership
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
