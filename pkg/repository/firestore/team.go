package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type teamRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTeamRepository(client *firestore.Client) *teamRepository {
	return &teamRepository{client: client}
}

func (r *teamRepository) collection() string {
	return prefixed(r.collectionPrefix, "teams")
}

func (r *teamRepository) counters() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) (*model.Team, error) {
	id, err := nextID(ctx, r.client, r.counters(), "team_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := team.Clone()
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create team", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *teamRepository) Get(ctx context.Context, id int64) (*model.Team, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get team", goerr.V("id", id))
	}

	var t model.Team
	if err := docSnap.DataTo(&t); err != nil {
		return nil, goerr.Wrap(err, "failed to decode team", goerr.V("id", id))
	}

	return &t, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*model.Team, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("ID", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	return collectTeams(iter)
}

func (r *teamRepository) ListByClub(ctx context.Context, clubID int64) ([]*model.Team, error) {
	iter := r.client.Collection(r.collection()).
		Where("ClubID", "==", clubID).
		Documents(ctx)
	defer iter.Stop()

	teams, err := collectTeams(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list teams by club", goerr.V("club_id", clubID))
	}

	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) (*model.Team, error) {
	docID := fmt.Sprintf("%d", team.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", team.ID))
		}
		return nil, goerr.Wrap(err, "failed to check team existence", goerr.V("id", team.ID))
	}

	var existing model.Team
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode team", goerr.V("id", team.ID))
	}

	updated := team.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update team", goerr.V("id", team.ID))
	}

	return updated, nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	docID := fmt.Sprintf("%d", id)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "team not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check team existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete team", goerr.V("id", id))
	}

	return nil
}

func collectTeams(iter *firestore.DocumentIterator) ([]*model.Team, error) {
	teams := make([]*model.Team, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate teams")
		}

		var t model.Team
		if err := docSnap.DataTo(&t); err != nil {
			return nil, goerr.Wrap(err, "failed to decode team", goerr.V("doc_id", docSnap.Ref.ID))
		}

		teams = append(teams, &t)
	}

	return teams, nil
}
