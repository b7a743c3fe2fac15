package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/repository/memory"
)

func runMatchRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns auto-increment ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "FC Barcelona",
			AwayTeamName: "Bidasoa Irun",
			Competition:  "Liga ASOBAL",
			MatchDate:    time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC),
			RecordedBy:   1,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(int64(0))
		gt.Value(t, created.HomeTeamName).Equal("FC Barcelona")
		gt.B(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Get retrieves existing match", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		teamID := int64(7)
		created, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "Home",
			AwayTeamName: "Away",
			HomeTeamID:   &teamID,
			RecordedBy:   1,
		})
		gt.NoError(t, err).Required()

		got, err := repo.Match().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(created.ID)
		gt.Value(t, got.HomeTeamID).NotNil()
		gt.Value(t, *got.HomeTeamID).Equal(teamID)
	})

	t.Run("ListByTeams matches either side", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		home := int64(10)
		away := int64(20)
		other := int64(30)

		m1, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", HomeTeamID: &home, RecordedBy: 1,
		})
		gt.NoError(t, err).Required()
		m2, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "C", AwayTeamName: "D", AwayTeamID: &away, RecordedBy: 1,
		})
		gt.NoError(t, err).Required()
		_, err = repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "E", AwayTeamName: "F", HomeTeamID: &other, RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		matches, err := repo.Match().ListByTeams(ctx, []int64{home, away})
		gt.NoError(t, err).Required()
		gt.Array(t, matches).Length(2)
		gt.Value(t, matches[0].ID).Equal(m1.ID)
		gt.Value(t, matches[1].ID).Equal(m2.ID)
	})

	t.Run("ListByTeams with no IDs returns empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		matches, err := repo.Match().ListByTeams(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, matches).Length(0)
	})

	t.Run("ListByRecorder filters by user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mine, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 5,
		})
		gt.NoError(t, err).Required()
		_, err = repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "C", AwayTeamName: "D", RecordedBy: 6,
		})
		gt.NoError(t, err).Required()

		matches, err := repo.Match().ListByRecorder(ctx, 5)
		gt.NoError(t, err).Required()
		gt.Array(t, matches).Length(1)
		gt.Value(t, matches[0].ID).Equal(mine.ID)
	})

	t.Run("Update replaces fields and preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		created.Result = "31-27"
		updated, err := repo.Match().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Result).Equal("31-27")
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("Delete removes match", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Match().Create(ctx, &model.Match{
			HomeTeamName: "A", AwayTeamName: "B", RecordedBy: 1,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Match().Delete(ctx, created.ID)).Required()

		_, err = repo.Match().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()
	})
}

func TestMatchRepository_Memory(t *testing.T) {
	runMatchRepositoryTest(t, newMemoryRepo)
}

func TestMatchRepository_Firestore(t *testing.T) {
	runMatchRepositoryTest(t, newFirestoreRepo)
}

func TestMatchNotFoundSentinel(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	_, err := repo.Match().Get(ctx, 9999)
	gt.Value(t, err).NotNil()
	gt.B(t, errors.Is(err, memory.ErrNotFound)).True()
}
