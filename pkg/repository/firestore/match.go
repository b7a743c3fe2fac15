package firestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/courtside-dev/courtside/pkg/domain/model"
)

type matchRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMatchRepository(client *firestore.Client) *matchRepository {
	return &matchRepository{client: client}
}

func (r *matchRepository) collection() string {
	return prefixed(r.collectionPrefix, "matches")
}

func (r *matchRepository) counters() string {
	return prefixed(r.collectionPrefix, "counters")
}

func (r *matchRepository) Create(ctx context.Context, match *model.Match) (*model.Match, error) {
	id, err := nextID(ctx, r.client, r.counters(), "match_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := match.Clone()
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	docID := fmt.Sprintf("%d", created.ID)
	if _, err := r.client.Collection(r.collection()).Doc(docID).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create match", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *matchRepository) Get(ctx context.Context, id int64) (*model.Match, error) {
	docID := fmt.Sprintf("%d", id)
	docSnap, err := r.client.Collection(r.collection()).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get match", goerr.V("id", id))
	}

	var m model.Match
	if err := docSnap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode match", goerr.V("id", id))
	}

	return &m, nil
}

func (r *matchRepository) List(ctx context.Context) ([]*model.Match, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("ID", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	return collectMatches(iter)
}

func (r *matchRepository) ListByTeams(ctx context.Context, teamIDs []int64) ([]*model.Match, error) {
	if len(teamIDs) == 0 {
		return []*model.Match{}, nil
	}

	// Two queries per side instead of one OR query, which would need a
	// composite index.
	seen := make(map[int64]bool)
	matches := make([]*model.Match, 0)

	for _, field := range []string{"HomeTeamID", "AwayTeamID"} {
		iter := r.client.Collection(r.collection()).
			Where(field, "in", teamIDs).
			Documents(ctx)

		side, err := collectMatches(iter)
		iter.Stop()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list matches by teams", goerr.V("field", field))
		}

		for _, m := range side {
			if !seen[m.ID] {
				seen[m.ID] = true
				matches = append(matches, m)
			}
		}
	}

	sortMatchesByID(matches)
	return matches, nil
}

func (r *matchRepository) ListByRecorder(ctx context.Context, userID int64) ([]*model.Match, error) {
	iter := r.client.Collection(r.collection()).
		Where("RecordedBy", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	matches, err := collectMatches(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list matches by recorder", goerr.V("user_id", userID))
	}

	sortMatchesByID(matches)
	return matches, nil
}

func (r *matchRepository) Update(ctx context.Context, match *model.Match) (*model.Match, error) {
	docID := fmt.Sprintf("%d", match.ID)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", match.ID))
		}
		return nil, goerr.Wrap(err, "failed to check match existence", goerr.V("id", match.ID))
	}

	var existing model.Match
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode match", goerr.V("id", match.ID))
	}

	updated := match.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update match", goerr.V("id", match.ID))
	}

	return updated, nil
}

func (r *matchRepository) Delete(ctx context.Context, id int64) error {
	docID := fmt.Sprintf("%d", id)
	docRef := r.client.Collection(r.collection()).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "match not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check match existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete match", goerr.V("id", id))
	}

	return nil
}

func collectMatches(iter *firestore.DocumentIterator) ([]*model.Match, error) {
	matches := make([]*model.Match, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate matches")
		}

		var m model.Match
		if err := docSnap.DataTo(&m); err != nil {
			return nil, goerr.Wrap(err, "failed to decode match", goerr.V("doc_id", docSnap.Ref.ID))
		}

		matches = append(matches, &m)
	}

	return matches, nil
}

func sortMatchesByID(matches []*model.Match) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
}
