// Package config provides configuration loading for the crudkit CLI.
// Configuration is layered: defaults, then crudkit.yaml, then CRUDKIT_*
// environment variables, then command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
)

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // sqlite, duckdb, postgres

	// File-based databases (SQLite, DuckDB): file path or ":memory:".
	// Network databases: database name.
	Database string `koanf:"database"`

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Common
	Schema string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}

// Config is the CLI configuration.
type Config struct {
	Verbose bool         `koanf:"verbose"`
	Target  TargetConfig `koanf:"target"`
}

// Validate checks if the target configuration is valid.
// It uses the adapter registry to determine which adapter types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}

	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}

	return nil
}

// ToAdapterConfig converts the target into an adapter.Config. For file-based
// databases the database value doubles as the file path.
func (t *TargetConfig) ToAdapterConfig() adapter.Config {
	cfg := adapter.Config{
		Type:     strings.ToLower(t.Type),
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Schema:   t.Schema,
		Options:  t.Options,
	}
	switch cfg.Type {
	case "sqlite", "duckdb":
		cfg.Path = t.Database
	}
	return cfg
}
