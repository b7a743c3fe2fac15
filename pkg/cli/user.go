package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/courtside-dev/courtside/pkg/cli/config"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
	"github.com/courtside-dev/courtside/pkg/utils/safe"
)

// cmdCreateUser bootstraps an account directly against the repository. The
// first admin has to come from somewhere other than the admin-only API.
func cmdCreateUser() *cli.Command {
	var name string
	var email string
	var password string
	var role string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Display name of the user",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Email address of the user",
			Required:    true,
			Destination: &email,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Password of the user (at least 8 characters)",
			Required:    true,
			Sources:     cli.EnvVars("COURTSIDE_BOOTSTRAP_PASSWORD"),
			Destination: &password,
		},
		&cli.StringFlag{
			Name:        "role",
			Usage:       "Role of the user (ADMIN, CLUB_MANAGER, or COACH)",
			Value:       string(types.RoleAdmin),
			Destination: &role,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "create-user",
		Usage: "Create a user account directly (bootstrap)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			parsedRole, err := types.ParseRole(role)
			if err != nil {
				return goerr.Wrap(err, "invalid role", goerr.V("role", role))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			created, err := uc.User.CreateUser(ctx, name, email, password, parsedRole)
			if err != nil {
				return goerr.Wrap(err, "failed to create user", goerr.V("email", email))
			}

			color.Green("✓ Created user %q (%s) with role %s, ID %d",
				created.Name, created.Email, created.Role, created.ID)
			return nil
		},
	}
}
