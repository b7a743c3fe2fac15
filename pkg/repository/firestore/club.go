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

type clubRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newClubRepository(client *firestore.Client) *clubRepository {
	return &clubRepository{client: client}
}

func (r *clubRepository) collection() string {
	return prefixed(r.collectionPrefix, "clubs")
}

func (r *clubRepository) counters() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *clubRepository) Create(ctx context.Context, club *model.Club) (*model.Club, error) {
	id, err := nextID(ctx, r.client, r.counters(), "club_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *club
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create club", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *clubRepository) Get(ctx context.Context, id int64) (*model.Club, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get club", goerr.V("id", id))
	}

	var c model.Club
	if err := docSnap.DataTo(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode club", goerr.V("id", id))
	}

	return &c, nil
}

func (r *clubRepository) List(ctx context.Context) ([]*model.Club, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("ID", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	clubs := make([]*model.Club, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate clubs")
		}

		var c model.Club
		if err := docSnap.DataTo(&c); err != nil {
			return nil, goerr.Wrap(err, "failed to decode club", goerr.V("doc_id", docSnap.Ref.ID))
		}

		clubs = append(clubs, &c)
	}

	return clubs, nil
}

func (r *clubRepository) Update(ctx context.Context, club *model.Club) (*model.Club, error) {
	docID := fmt.Sprintf("%d", club.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", club.ID))
		}
		return nil, goerr.Wrap(err, "failed to check club existence", goerr.V("id", club.ID))
	}

	var existing model.Club
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode club", goerr.V("id", club.ID))
	}

	updated := *club
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update club", goerr.V("id", club.ID))
	}

	return &updated, nil
}

func (r *clubRepository) Delete(ctx context.Context, id int64) error {
	docID := fmt.Sprintf("%d", id)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "club not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check club existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete club", goerr.V("id", id))
	}

	return nil
}
