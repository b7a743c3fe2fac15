package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtside-dev/courtside/pkg/domain/interfaces"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

type AuthUseCase struct {
	repo     interfaces.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthUseCase(repo interfaces.Repository, secret []byte, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login verifies the credentials and issues a signed HS256 token. A missing
// user and a wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := uc.repo.User().GetByEmail(ctx, email)
	if err != nil {
		return "", nil, goerr.Wrap(ErrInvalidCredentials, "unknown email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, goerr.Wrap(ErrInvalidCredentials, "password mismatch", goerr.V(UserIDKey, user.ID))
	}

	now := time.Now().UTC()
	token, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(user.ID, 10)).
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(uc.tokenTTL)).
		Claim("email", user.Email).
		Claim("role", string(user.Role)).
		Build()
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to sign token")
	}

	return string(signed), user, nil
}

// ValidateToken verifies the signature and expiry, then resolves the user
// so that role changes take effect on the next request, not at token expiry.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, signed string) (*auth.Principal, error) {
	token, err := jwt.Parse([]byte(signed),
		jwt.WithKey(jwa.HS256, uc.secret),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "failed to parse or verify token")
	}

	userID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "invalid subject claim", goerr.V("sub", token.Subject()))
	}

	user, err := uc.repo.User().Get(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "token user no longer exists", goerr.V(UserIDKey, userID))
	}

	return &auth.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
