package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/cli/config"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadSeedConfiguration(t *testing.T) {
	path := writeSeedFile(t, `
[[club]]
name = "BM Granollers"
city = "Granollers"

  [[club.team]]
  name = "Senior A"
  category = "senior"
  season = "2025-26"

[[user]]
name = "Marta"
email = "marta@example.com"
password = "password123"
role = "COACH"
coached_teams = ["Senior A"]

[[user]]
name = "Jordi"
email = "jordi@example.com"
password = "password123"
role = "CLUB_MANAGER"
managed_clubs = ["BM Granollers"]
`)

	seed := gt.R1(config.LoadSeedConfiguration(path)).NoError(t)
	gt.A(t, seed.Clubs).Length(1)
	gt.A(t, seed.Clubs[0].Teams).Length(1)
	gt.A(t, seed.Users).Length(2)
	gt.Equal(t, seed.Users[0].CoachedTeams, []string{"Senior A"})
}

func TestLoadSeedConfigurationErrors(t *testing.T) {
	cases := map[string]string{
		"invalid role": `
[[user]]
name = "X"
email = "x@example.com"
password = "password123"
role = "REFEREE"
`,
		"short password": `
[[user]]
name = "X"
email = "x@example.com"
password = "short"
role = "COACH"
`,
		"duplicate email": `
[[user]]
name = "X"
email = "x@example.com"
password = "password123"
role = "COACH"

[[user]]
name = "Y"
email = "x@example.com"
password = "password123"
role = "COACH"
`,
		"unknown coached team": `
[[user]]
name = "X"
email = "x@example.com"
password = "password123"
role = "COACH"
coached_teams = ["Nowhere"]
`,
		"duplicate club name": `
[[club]]
name = "Same"

[[club]]
name = "Same"
`,
		"not toml": `{"json": true}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeSeedFile(t, content)
			_, err := config.LoadSeedConfiguration(path)
			gt.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadSeedConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
	})
}
