package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

func TestClubUseCase(t *testing.T) {
	t.Run("only admins write clubs", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		_, coach := newUser(t, uc, "coach@example.com", types.RoleCoach)

		_, err := uc.Club.CreateClub(ctx, coach, &model.Club{Name: "Club"})
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club", City: "Vigo"})
		gt.NoError(t, err).Required()

		club.City = "Leon"
		_, err = uc.Club.UpdateClub(ctx, coach, club)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)

		updated, err := uc.Club.UpdateClub(ctx, admin, club)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.City).Equal("Leon")

		err = uc.Club.DeleteClub(ctx, coach, club.ID)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)
		gt.NoError(t, uc.Club.DeleteClub(ctx, admin, club.ID)).Required()
	})

	t.Run("club manager listing is scoped to assignments", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		manager, managerP := newUser(t, uc, "manager@example.com", types.RoleClubManager)

		mine, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Mine"})
		gt.NoError(t, err).Required()
		_, err = uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Other"})
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.User.AssignClubManager(ctx, admin, manager.ID, mine.ID)).Required()

		clubs, err := uc.Club.ListClubs(ctx, managerP)
		gt.NoError(t, err).Required()
		gt.Array(t, clubs).Length(1)
		gt.Value(t, clubs[0].ID).Equal(mine.ID)

		all, err := uc.Club.ListClubs(ctx, admin)
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(2)
	})
}

func TestTeamUseCase(t *testing.T) {
	t.Run("club manager manages own club's teams", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		manager, managerP := newUser(t, uc, "manager@example.com", types.RoleClubManager)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club"})
		gt.NoError(t, err).Required()
		gt.NoError(t, uc.User.AssignClubManager(ctx, admin, manager.ID, club.ID)).Required()

		team, err := uc.Team.CreateTeam(ctx, managerP, &model.Team{
			ClubID: &club.ID, Name: "Juvenil", Category: "JUVENIL", Season: "2025-2026",
		})
		gt.NoError(t, err).Required()

		team.Season = "2026-2027"
		updated, err := uc.Team.UpdateTeam(ctx, managerP, team)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Season).Equal("2026-2027")

		gt.NoError(t, uc.Team.DeleteTeam(ctx, managerP, team.ID)).Required()
	})

	t.Run("coach cannot write teams", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		_, coach := newUser(t, uc, "coach@example.com", types.RoleCoach)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club"})
		gt.NoError(t, err).Required()

		_, err = uc.Team.CreateTeam(ctx, coach, &model.Team{ClubID: &club.ID, Name: "Team"})
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)
	})

	t.Run("unknown club on create fails", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)

		clubID := int64(404)
		_, err := uc.Team.CreateTeam(ctx, admin, &model.Team{ClubID: &clubID, Name: "Team"})
		gt.Error(t, err).Is(usecase.ErrClubNotFound)
	})

	t.Run("teams listed by club", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club"})
		gt.NoError(t, err).Required()

		for _, name := range []string{"Senior", "Juvenil"} {
			_, err := uc.Team.CreateTeam(ctx, admin, &model.Team{ClubID: &club.ID, Name: name})
			gt.NoError(t, err).Required()
		}
		_, err = uc.Team.CreateTeam(ctx, admin, &model.Team{Name: "Independent"})
		gt.NoError(t, err).Required()

		teams, err := uc.Team.ListTeamsByClub(ctx, admin, club.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, teams).Length(2)
	})
}
