package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/courtside-dev/courtside/pkg/usecase"
)

// Auth holds CLI flags for token issuing configuration
type Auth struct {
	jwtSecret string
	tokenTTL  time.Duration
}

// Flags returns CLI flags for auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret key for signing session tokens (at least 16 characters)",
			Required:    true,
			Sources:     cli.EnvVars("COURTSIDE_JWT_SECRET"),
			Destination: &a.jwtSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Lifetime of issued session tokens",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("COURTSIDE_TOKEN_TTL"),
			Destination: &a.tokenTTL,
		},
	}
}

// Options validates the flags and returns the use case options they imply
func (a *Auth) Options() ([]usecase.Option, error) {
	if len(a.jwtSecret) < 16 {
		return nil, goerr.New("jwt-secret must be at least 16 characters")
	}
	if a.tokenTTL <= 0 {
		return nil, goerr.New("token-ttl must be positive", goerr.V("token_ttl", a.tokenTTL))
	}

	return []usecase.Option{
		usecase.WithJWTSecret([]byte(a.jwtSecret)),
		usecase.WithTokenTTL(a.tokenTTL),
	}, nil
}
