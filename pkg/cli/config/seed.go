package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/courtside-dev/courtside/pkg/domain/types"
)

// SeedConfig describes the initial data loaded by the seed command
type SeedConfig struct {
	Users []SeedUser `toml:"user"`
	Clubs []SeedClub `toml:"club"`
}

// SeedUser represents an account to create during seeding
type SeedUser struct {
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Password string `toml:"password" masq:"secret"`
	Role     string `toml:"role"`

	// Clubs the user manages and teams the user coaches, referenced by name
	ManagedClubs []string `toml:"managed_clubs"`
	CoachedTeams []string `toml:"coached_teams"`
}

// Validate checks if the SeedUser is valid
func (u *SeedUser) Validate() error {
	if u.Name == "" {
		return goerr.New("user name is required", goerr.V("email", u.Email))
	}
	if u.Email == "" {
		return goerr.New("user email is required", goerr.V("name", u.Name))
	}
	if len(u.Password) < 8 {
		return goerr.New("user password must be at least 8 characters", goerr.V("email", u.Email))
	}
	if _, err := types.ParseRole(u.Role); err != nil {
		return goerr.Wrap(err, "invalid user role", goerr.V("email", u.Email))
	}
	return nil
}

// SeedClub represents a club and its teams to create during seeding
type SeedClub struct {
	Name  string     `toml:"name"`
	City  string     `toml:"city"`
	Teams []SeedTeam `toml:"team"`
}

// Validate checks if the SeedClub is valid
func (c *SeedClub) Validate() error {
	if c.Name == "" {
		return goerr.New("club name is required")
	}

	teamNames := make(map[string]bool)
	for _, team := range c.Teams {
		if err := team.Validate(); err != nil {
			return goerr.Wrap(err, "invalid team", goerr.V("club", c.Name))
		}
		if teamNames[team.Name] {
			return goerr.New("duplicate team name", goerr.V("club", c.Name), goerr.V("team", team.Name))
		}
		teamNames[team.Name] = true
	}
	return nil
}

// SeedTeam represents a team to create during seeding
type SeedTeam struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Season   string `toml:"season"`
}

// Validate checks if the SeedTeam is valid
func (t *SeedTeam) Validate() error {
	if t.Name == "" {
		return goerr.New("team name is required")
	}
	return nil
}

// Validate checks if the SeedConfig is valid. Membership references must
// point at clubs and teams defined in the same file.
func (s *SeedConfig) Validate() error {
	clubNames := make(map[string]bool)
	teamNames := make(map[string]bool)
	for _, club := range s.Clubs {
		if err := club.Validate(); err != nil {
			return goerr.Wrap(err, "invalid club")
		}
		if clubNames[club.Name] {
			return goerr.New("duplicate club name", goerr.V("club", club.Name))
		}
		clubNames[club.Name] = true
		for _, team := range club.Teams {
			teamNames[team.Name] = true
		}
	}

	emails := make(map[string]bool)
	for _, user := range s.Users {
		if err := user.Validate(); err != nil {
			return goerr.Wrap(err, "invalid user")
		}
		if emails[user.Email] {
			return goerr.New("duplicate user email", goerr.V("email", user.Email))
		}
		emails[user.Email] = true

		for _, club := range user.ManagedClubs {
			if !clubNames[club] {
				return goerr.New("managed club not defined", goerr.V("email", user.Email), goerr.V("club", club))
			}
		}
		for _, team := range user.CoachedTeams {
			if !teamNames[team] {
				return goerr.New("coached team not defined", goerr.V("email", user.Email), goerr.V("team", team))
			}
		}
	}

	return nil
}

// LoadSeedConfiguration loads seed data from a TOML file
func LoadSeedConfiguration(path string) (*SeedConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
	}

	var config SeedConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML seed file", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "seed file validation failed", goerr.V("path", path))
	}

	return &config, nil
}
