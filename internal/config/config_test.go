package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
	_ "github.com/leapstack-labs/crudkit/pkg/adapters/sqlite" // register sqlite for Validate
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, ":memory:", cfg.Target.Database)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
verbose: true
target:
  type: postgres
  host: db.internal
  port: 5433
  database: app
  user: svc
  options:
    sslmode: require
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "postgres", cfg.Target.Type)
	assert.Equal(t, "db.internal", cfg.Target.Host)
	assert.Equal(t, 5433, cfg.Target.Port)
	assert.Equal(t, "app", cfg.Target.Database)
	assert.Equal(t, "svc", cfg.Target.User)
	assert.Equal(t, "require", cfg.Target.Options["sslmode"])
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
target:
  type: sqlite
  database: app.db
`)
	t.Setenv("CRUDKIT_TARGET_DATABASE", "override.db")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "override.db", cfg.Target.Database)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CRUDKIT_TARGET_TYPE", "postgres")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("target-type", "", "")
	flags.String("target-database", "", "")
	require.NoError(t, flags.Parse([]string{"--target-type", "duckdb"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "duckdb", cfg.Target.Type)
	assert.Equal(t, ":memory:", cfg.Target.Database, "unchanged flags must not override defaults")
}

func TestPasswordEnvExpansion(t *testing.T) {
	path := writeConfigFile(t, `
target:
  type: postgres
  database: app
  password: ${DB_SECRET}
`)
	t.Setenv("DB_SECRET", "hunter2")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Target.Password)
}

func TestUnsetEnvReferenceIsKept(t *testing.T) {
	path := writeConfigFile(t, `
target:
  type: postgres
  database: app
  password: ${NOT_SET_ANYWHERE}
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "${NOT_SET_ANYWHERE}", cfg.Target.Password)
}

func TestValidate(t *testing.T) {
	valid := TargetConfig{Type: "sqlite"}
	assert.NoError(t, valid.Validate())

	missing := TargetConfig{}
	assert.ErrorContains(t, missing.Validate(), "target type is required")

	unknown := TargetConfig{Type: "mainframe"}
	var unknownErr *adapter.UnknownAdapterError
	require.ErrorAs(t, unknown.Validate(), &unknownErr)
	assert.Equal(t, "mainframe", unknownErr.Type)
}

func TestToAdapterConfig(t *testing.T) {
	fileBased := TargetConfig{Type: "SQLite", Database: "data/app.db"}
	cfg := fileBased.ToAdapterConfig()
	assert.Equal(t, "sqlite", cfg.Type)
	assert.Equal(t, "data/app.db", cfg.Path)

	network := TargetConfig{Type: "postgres", Database: "app", Host: "db", Port: 5432}
	cfg = network.ToAdapterConfig()
	assert.Empty(t, cfg.Path)
	assert.Equal(t, "app", cfg.Database)
	assert.Equal(t, "db", cfg.Host)
}
