package usecase

import (
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
)

type UseCases struct {
	repo      interfaces.Repository
	jwtSecret []byte
	tokenTTL  time.Duration

	Auth   *AuthUseCase
	User   *UserUseCase
	Club   *ClubUseCase
	Team   *TeamUseCase
	Match  *MatchUseCase
	Action *ActionUseCase
}

type Option func(*UseCases)

func WithJWTSecret(secret []byte) Option {
	return func(uc *UseCases) {
		uc.jwtSecret = secret
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.tokenTTL = ttl
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		tokenTTL: 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(uc)
	}

	guard := newMatchGuard(repo)

	uc.Auth = NewAuthUseCase(repo, uc.jwtSecret, uc.tokenTTL)
	uc.User = NewUserUseCase(repo)
	uc.Club = NewClubUseCase(repo)
	uc.Team = NewTeamUseCase(repo)
	uc.Match = NewMatchUseCase(repo, guard)
	uc.Action = NewActionUseCase(repo, guard)

	return uc
}
