package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/courtside-dev/courtside/pkg/cli/config"
	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
	"github.com/courtside-dev/courtside/pkg/utils/safe"
)

// cmdSeed loads clubs, teams, users, and membership assignments from a TOML
// file into a fresh database.
func cmdSeed() *cli.Command {
	var path string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Path to the TOML seed file",
			Required:    true,
			Sources:     cli.EnvVars("COURTSIDE_SEED_FILE"),
			Destination: &path,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load initial data from a TOML file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			seed, err := config.LoadSeedConfiguration(path)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)

			// Seeding runs with system privileges, outside any session.
			system := &auth.Principal{Role: types.RoleAdmin}

			clubIDs := make(map[string]int64)
			teamIDs := make(map[string]int64)
			for _, club := range seed.Clubs {
				created, err := uc.Club.CreateClub(ctx, system, &model.Club{
					Name: club.Name,
					City: club.City,
				})
				if err != nil {
					return goerr.Wrap(err, "failed to seed club", goerr.V("club", club.Name))
				}
				clubIDs[club.Name] = created.ID
				color.Green("✓ Club %q (ID %d)", created.Name, created.ID)

				for _, team := range club.Teams {
					clubID := created.ID
					createdTeam, err := uc.Team.CreateTeam(ctx, system, &model.Team{
						ClubID:   &clubID,
						Name:     team.Name,
						Category: team.Category,
						Season:   team.Season,
					})
					if err != nil {
						return goerr.Wrap(err, "failed to seed team",
							goerr.V("club", club.Name), goerr.V("team", team.Name))
					}
					teamIDs[team.Name] = createdTeam.ID
					color.Green("  ✓ Team %q (ID %d)", createdTeam.Name, createdTeam.ID)
				}
			}

			for _, user := range seed.Users {
				role, err := types.ParseRole(user.Role)
				if err != nil {
					return goerr.Wrap(err, "invalid seed role", goerr.V("email", user.Email))
				}

				created, err := uc.User.CreateUser(ctx, user.Name, user.Email, user.Password, role)
				if err != nil {
					return goerr.Wrap(err, "failed to seed user", goerr.V("email", user.Email))
				}
				color.Green("✓ User %q (%s) as %s", created.Name, created.Email, created.Role)

				for _, clubName := range user.ManagedClubs {
					if err := uc.User.AssignClubManager(ctx, system, created.ID, clubIDs[clubName]); err != nil {
						return goerr.Wrap(err, "failed to assign club manager",
							goerr.V("email", user.Email), goerr.V("club", clubName))
					}
					color.Green("  ✓ Manages club %q", clubName)
				}
				for _, teamName := range user.CoachedTeams {
					if err := uc.User.AssignCoach(ctx, system, created.ID, teamIDs[teamName]); err != nil {
						return goerr.Wrap(err, "failed to assign coach",
							goerr.V("email", user.Email), goerr.V("team", teamName))
					}
					color.Green("  ✓ Coaches team %q", teamName)
				}
			}

			color.Cyan("Seed completed: %d clubs, %d teams, %d users",
				len(seed.Clubs), len(teamIDs), len(seed.Users))
			return nil
		},
	}
}
