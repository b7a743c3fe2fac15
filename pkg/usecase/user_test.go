package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

func TestUserUseCase_Register(t *testing.T) {
	t.Run("new users default to coach", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()

		user, err := uc.User.Register(ctx, "Alex", "alex@example.com", "password123")
		gt.NoError(t, err).Required()
		gt.Value(t, user.Role).Equal(types.RoleCoach)
		gt.Value(t, user.PasswordHash).NotEqual("password123")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()

		_, err := uc.User.Register(ctx, "Alex", "alex@example.com", "password123")
		gt.NoError(t, err).Required()

		_, err = uc.User.Register(ctx, "Imposter", "alex@example.com", "password456")
		gt.Error(t, err).Is(usecase.ErrDuplicateEmail)
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()

		_, err := uc.User.Register(ctx, "Alex", "alex@example.com", "short")
		gt.Value(t, err).NotNil()
	})
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	t.Run("user can rename self but not change role", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		user, p := newUser(t, uc, "coach@example.com", types.RoleCoach)

		name := "Renamed"
		updated, err := uc.User.UpdateUser(ctx, p, user.ID, &name, nil, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Name).Equal("Renamed")

		role := types.RoleAdmin
		_, err = uc.User.UpdateUser(ctx, p, user.ID, nil, nil, &role)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)
	})

	t.Run("user cannot update another user", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, p := newUser(t, uc, "coach@example.com", types.RoleCoach)
		other, _ := newUser(t, uc, "other@example.com", types.RoleCoach)

		name := "Hijacked"
		_, err := uc.User.UpdateUser(ctx, p, other.ID, &name, nil, nil)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)
	})

	t.Run("admin can change roles", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		user, _ := newUser(t, uc, "coach@example.com", types.RoleCoach)

		role := types.RoleClubManager
		updated, err := uc.User.UpdateUser(ctx, admin, user.ID, nil, nil, &role)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Role).Equal(types.RoleClubManager)
	})

	t.Run("email change to an existing address conflicts", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		user, p := newUser(t, uc, "coach@example.com", types.RoleCoach)
		_, _ = newUser(t, uc, "taken@example.com", types.RoleCoach)

		email := "taken@example.com"
		_, err := uc.User.UpdateUser(ctx, p, user.ID, nil, &email, nil)
		gt.Error(t, err).Is(usecase.ErrDuplicateEmail)
	})
}

func TestUserUseCase_Memberships(t *testing.T) {
	t.Run("only admins assign memberships", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		manager, managerP := newUser(t, uc, "manager@example.com", types.RoleClubManager)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club"})
		gt.NoError(t, err).Required()

		err = uc.User.AssignClubManager(ctx, managerP, manager.ID, club.ID)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)

		gt.NoError(t, uc.User.AssignClubManager(ctx, admin, manager.ID, club.ID)).Required()
	})

	t.Run("assignment requires existing user and target", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		user, _ := newUser(t, uc, "coach@example.com", types.RoleCoach)

		err := uc.User.AssignCoach(ctx, admin, 9999, 1)
		gt.Error(t, err).Is(usecase.ErrUserNotFound)

		err = uc.User.AssignCoach(ctx, admin, user.ID, 9999)
		gt.Error(t, err).Is(usecase.ErrTeamNotFound)
	})

	t.Run("removal revokes access", func(t *testing.T) {
		uc := setupUseCases()
		ctx := context.Background()
		_, admin := newUser(t, uc, "admin@example.com", types.RoleAdmin)
		coach, coachP := newUser(t, uc, "coach@example.com", types.RoleCoach)

		club, err := uc.Club.CreateClub(ctx, admin, &model.Club{Name: "Club"})
		gt.NoError(t, err).Required()
		team, err := uc.Team.CreateTeam(ctx, admin, &model.Team{ClubID: &club.ID, Name: "Team"})
		gt.NoError(t, err).Required()
		match, err := uc.Match.CreateMatch(ctx, admin, &model.Match{
			HomeTeamName: "Team", AwayTeamName: "Rivals", HomeTeamID: &team.ID,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.User.AssignCoach(ctx, admin, coach.ID, team.ID)).Required()
		_, err = uc.Match.GetMatch(ctx, coachP, match.ID)
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.User.RemoveCoach(ctx, admin, coach.ID, team.ID)).Required()
		_, err = uc.Match.GetMatch(ctx, coachP, match.ID)
		gt.Error(t, err).Is(usecase.ErrPermissionDenied)
	})
}
