package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/types"
)

func testAction(matchID, possessionID int64) *model.Action {
	detail := types.FinishDetailBackcourt
	zone := types.ShotZoneCenterBack
	return &model.Action{
		MatchID:           matchID,
		PossessionID:      possessionID,
		ActingTeam:        types.TeamSideHome,
		AttackType:        types.AttackTypePositional,
		ActionOrigin:      types.ActionOriginContinuousPlay,
		Event:             types.MatchEventGoal,
		FinishDetail:      &detail,
		ShotZone:          &zone,
		PossessionChanged: true,
	}
}

func runActionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns auto-increment ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "BM Granollers",
			AwayTeamName: "CB Ademar",
			RecordedBy:   1,
		})
		gt.NoError(t, err).Required()

		created, err := repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(int64(0))
		gt.Value(t, created.MatchID).Equal(m.ID)
		gt.Value(t, created.Event).Equal(types.MatchEventGoal)
		gt.B(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListByMatch returns actions in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		var ids []int64
		for i := int64(1); i <= 3; i++ {
			a, err := repo.Action().Create(ctx, testAction(m.ID, i))
			gt.NoError(t, err).Required()
			ids = append(ids, a.ID)
		}

		actions, err := repo.Action().ListByMatch(ctx, m.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(3)
		for i, a := range actions {
			gt.Value(t, a.ID).Equal(ids[i])
		}
	})

	t.Run("ListByMatch returns empty for match without actions", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		actions, err := repo.Action().ListByMatch(ctx, m.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(0)
	})

	t.Run("GetLastByMatch returns most recent action", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		_, err = repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()
		second, err := repo.Action().Create(ctx, testAction(m.ID, 2))
		gt.NoError(t, err).Required()

		last, err := repo.Action().GetLastByMatch(ctx, m.ID, 0)
		gt.NoError(t, err).Required()
		gt.Value(t, last).NotNil()
		gt.Value(t, last.ID).Equal(second.ID)
	})

	t.Run("GetLastByMatch skips excluded action", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		first, err := repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()
		second, err := repo.Action().Create(ctx, testAction(m.ID, 2))
		gt.NoError(t, err).Required()

		last, err := repo.Action().GetLastByMatch(ctx, m.ID, second.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, last).NotNil()
		gt.Value(t, last.ID).Equal(first.ID)
	})

	t.Run("GetLastByMatch returns nil for empty match", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		last, err := repo.Action().GetLastByMatch(ctx, m.ID, 0)
		gt.NoError(t, err).Required()
		gt.Value(t, last).Nil()
	})

	t.Run("GetLastByMatch returns nil when only action is excluded", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		only, err := repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()

		last, err := repo.Action().GetLastByMatch(ctx, m.ID, only.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, last).Nil()
	})

	t.Run("Update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		created, err := repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()

		created.Event = types.MatchEventShotMissed
		created.FinishDetail = nil
		created.ShotZone = nil
		detail := types.EventDetailDirectlyOut
		created.EventDetail = &detail

		updated, err := repo.Action().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Event).Equal(types.MatchEventShotMissed)
		gt.Value(t, updated.FinishDetail).Nil()
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("Delete removes action", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		created, err := repo.Action().Create(ctx, testAction(m.ID, 1))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Action().Delete(ctx, created.ID)).Required()

		_, err = repo.Action().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()
	})

	t.Run("DeleteAllByMatch removes only that match's actions", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		m1, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()
		m2, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "C", AwayTeamName: "D", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		for i := int64(1); i <= 2; i++ {
			_, err := repo.Action().Create(ctx, testAction(m1.ID, i))
			gt.NoError(t, err).Required()
		}
		kept, err := repo.Action().Create(ctx, testAction(m2.ID, 1))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Action().DeleteAllByMatch(ctx, m1.ID)).Required()

		actions, err := repo.Action().ListByMatch(ctx, m1.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(0)

		remaining, err := repo.Action().ListByMatch(ctx, m2.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, remaining).Length(1)
		gt.Value(t, remaining[0].ID).Equal(kept.ID)
	})
}

func TestActionRepository_Memory(t *testing.T) {
	runActionRepositoryTest(t, newMemoryRepo)
}

func TestActionRepository_Firestore(t *testing.T) {
	runActionRepositoryTest(t, newFirestoreRepo)
}
