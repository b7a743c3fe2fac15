package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
	"github.com/courtside-dev/courtside/pkg/domain/types"
)

type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Register creates a new account. Self-registered users always start as
// coaches; an admin promotes them afterwards.
func (uc *UserUseCase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" {
		return nil, goerr.New("name and email are required")
	}
	if len(password) < 8 {
		return nil, goerr.New("password must be at least 8 characters")
	}

	if _, err := uc.repo.User().GetByEmail(ctx, email); err == nil {
		return nil, goerr.Wrap(ErrDuplicateEmail, "email already registered", goerr.V("email", email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	created, err := uc.repo.User().Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         types.RoleCoach,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user")
	}

	return created, nil
}

// CreateUser lets an admin create an account with an explicit role, used by
// the bootstrap CLI command and admin tooling.
func (uc *UserUseCase) CreateUser(ctx context.Context, name, email, password string, role types.Role) (*model.User, error) {
	if !role.IsValid() {
		return nil, goerr.New("invalid role", goerr.V("role", role))
	}
	if len(password) < 8 {
		return nil, goerr.New("password must be at least 8 characters")
	}

	if _, err := uc.repo.User().GetByEmail(ctx, email); err == nil {
		return nil, goerr.Wrap(ErrDuplicateEmail, "email already registered", goerr.V("email", email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	created, err := uc.repo.User().Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user")
	}

	return created, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, p *auth.Principal, id int64) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}
	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, p *auth.Principal) ([]*model.User, error) {
	users, err := uc.repo.User().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

// UpdateUser changes name, email, or role. Users edit themselves; admins
// edit anyone. Role changes are admin-only.
func (uc *UserUseCase) UpdateUser(ctx context.Context, p *auth.Principal, id int64, name, email *string, role *types.Role) (*model.User, error) {
	if !p.IsAdmin() && p.UserID != id {
		return nil, goerr.Wrap(ErrPermissionDenied, "cannot update another user",
			goerr.V(UserIDKey, id))
	}

	existing, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}

	if name != nil {
		if *name == "" {
			return nil, goerr.New("name cannot be empty", goerr.V(UserIDKey, id))
		}
		existing.Name = *name
	}

	if email != nil && *email != existing.Email {
		if _, err := uc.repo.User().GetByEmail(ctx, *email); err == nil {
			return nil, goerr.Wrap(ErrDuplicateEmail, "email already registered", goerr.V("email", *email))
		}
		existing.Email = *email
	}

	if role != nil && *role != existing.Role {
		if !p.IsAdmin() {
			return nil, goerr.Wrap(ErrPermissionDenied, "only admins can change roles",
				goerr.V(UserIDKey, id))
		}
		if !role.IsValid() {
			return nil, goerr.New("invalid role", goerr.V("role", *role))
		}
		existing.Role = *role
	}

	updated, err := uc.repo.User().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update user", goerr.V(UserIDKey, id))
	}

	return updated, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, p *auth.Principal, id int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can delete users", goerr.V(UserIDKey, id))
	}

	if err := uc.repo.User().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
	}

	return nil
}

// AssignClubManager links a user to a club for the access guard. Admin-only.
func (uc *UserUseCase) AssignClubManager(ctx context.Context, p *auth.Principal, userID, clubID int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can assign club managers")
	}

	if _, err := uc.repo.User().Get(ctx, userID); err != nil {
		return goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, userID))
	}
	if _, err := uc.repo.Club().Get(ctx, clubID); err != nil {
		return goerr.Wrap(ErrClubNotFound, "club not found", goerr.V(ClubIDKey, clubID))
	}

	if err := uc.repo.Membership().AssignClub(ctx, userID, clubID); err != nil {
		return goerr.Wrap(err, "failed to assign club manager",
			goerr.V(UserIDKey, userID), goerr.V(ClubIDKey, clubID))
	}
	return nil
}

func (uc *UserUseCase) RemoveClubManager(ctx context.Context, p *auth.Principal, userID, clubID int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can remove club managers")
	}

	if err := uc.repo.Membership().RemoveClub(ctx, userID, clubID); err != nil {
		return goerr.Wrap(err, "failed to remove club manager",
			goerr.V(UserIDKey, userID), goerr.V(ClubIDKey, clubID))
	}
	return nil
}

// AssignCoach links a user to a team for the access guard. Admin-only.
func (uc *UserUseCase) AssignCoach(ctx context.Context, p *auth.Principal, userID, teamID int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can assign coaches")
	}

	if _, err := uc.repo.User().Get(ctx, userID); err != nil {
		return goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, userID))
	}
	if _, err := uc.repo.Team().Get(ctx, teamID); err != nil {
		return goerr.Wrap(ErrTeamNotFound, "team not found", goerr.V(TeamIDKey, teamID))
	}

	if err := uc.repo.Membership().AssignTeam(ctx, userID, teamID); err != nil {
		return goerr.Wrap(err, "failed to assign coach",
			goerr.V(UserIDKey, userID), goerr.V(TeamIDKey, teamID))
	}
	return nil
}

func (uc *UserUseCase) RemoveCoach(ctx context.Context, p *auth.Principal, userID, teamID int64) error {
	if !p.IsAdmin() {
		return goerr.Wrap(ErrPermissionDenied, "only admins can remove coaches")
	}

	if err := uc.repo.Membership().RemoveTeam(ctx, userID, teamID); err != nil {
		return goerr.Wrap(err, "failed to remove coach",
			goerr.V(UserIDKey, userID), goerr.V(TeamIDKey, teamID))
	}
	return nil
}
