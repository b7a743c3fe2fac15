package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type membershipRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMembershipRepository(client *firestore.Client) *membershipRepository {
	return &membershipRepository{client: client}
}

func (r *membershipRepository) clubCollection() string {
	return prefixed(r.collectionPrefix, "club_memberships")
}

func (r *membershipRepository) teamCollection() string {
	return prefixed(r.collectionPrefix, "team_memberships")
}

type membershipDoc struct {
	UserID   int64
	TargetID int64
}

// Deterministic document IDs make Assign idempotent without a lookup.
func membershipDocID(userID, targetID int64) string {
	return fmt.Sprintf("%d_%d", userID, targetID)
}

func (r *membershipRepository) assign(ctx context.Context, collection string, userID, targetID int64) error {
	doc := membershipDoc{UserID: userID, TargetID: targetID}
	docID := membershipDocID(userID, targetID)

	if _, err := r.client.Collection(collection).Doc(docID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to assign membership",
			goerr.V("user_id", userID), goerr.V("target_id", targetID))
	}
	return nil
}

func (r *membershipRepository) remove(ctx context.Context, collection string, userID, targetID int64) error {
	docID := membershipDocID(userID, targetID)
	if _, err := r.client.Collection(collection).Doc(docID).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to remove membership",
			goerr.V("user_id", userID), goerr.V("target_id", targetID))
	}
	return nil
}

func (r *membershipRepository) exists(ctx context.Context, collection string, userID, targetID int64) (bool, error) {
	docID := membershipDocID(userID, targetID)
	_, err := r.client.Collection(collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check membership",
			goerr.V("user_id", userID), goerr.V("target_id", targetID))
	}
	return true, nil
}

func (r *membershipRepository) listTargets(ctx context.Context, collection string, userID int64) ([]int64, error) {
	iter := r.client.Collection(collection).
		Where("UserID", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	ids := make([]int64, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate memberships", goerr.V("user_id", userID))
		}

		var doc membershipDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode membership", goerr.V("doc_id", docSnap.Ref.ID))
		}

		ids = append(ids, doc.TargetID)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *membershipRepository) AssignClub(ctx context.Context, userID, clubID int64) error {
	return r.assign(ctx, r.clubCollection(), userID, clubID)
}

func (r *membershipRepository) RemoveClub(ctx context.Context, userID, clubID int64) error {
	return r.remove(ctx, r.clubCollection(), userID, clubID)
}

func (r *membershipRepository) ManagesClub(ctx context.Context, userID, clubID int64) (bool, error) {
	return r.exists(ctx, r.clubCollection(), userID, clubID)
}

func (r *membershipRepository) ListClubsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return r.listTargets(ctx, r.clubCollection(), userID)
}

func (r *membershipRepository) AssignTeam(ctx context.Context, userID, teamID int64) error {
	return r.assign(ctx, r.teamCollection(), userID, teamID)
}

func (r *membershipRepository) RemoveTeam(ctx context.Context, userID, teamID int64) error {
	return r.remove(ctx, r.teamCollection(), userID, teamID)
}

func (r *membershipRepository) CoachesTeam(ctx context.Context, userID, teamID int64) (bool, error) {
	return r.exists(ctx, r.teamCollection(), userID, teamID)
}

func (r *membershipRepository) ListTeamsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return r.listTargets(ctx, r.teamCollection(), userID)
}
