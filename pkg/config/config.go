// Package config loads the optional .pubcheck.yaml tool configuration.
// A missing file is not an error; every field has a working default.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"github.com/pubcheck/pubcheck/pkg/env"
	"github.com/pubcheck/pubcheck/pkg/validate"
)

// Execution modes. Test mode skips checks that would prompt for credentials
// or hit authenticated registry endpoints.
const (
	ModeInteractive = "interactive"
	ModeTest        = "test"
)

// DefaultRegistryTimeout bounds the registry ping.
const DefaultRegistryTimeout = 15 * time.Second

// Config represents the complete pubcheck configuration.
type Config struct {
	Mode     string         `yaml:"mode,omitempty"`
	Registry RegistryConfig `yaml:"registry,omitempty"`
	GitHub   GitHubConfig   `yaml:"github,omitempty"`
}

// RegistryConfig contains registry connectivity settings.
type RegistryConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the registry ping deadline.
func (c RegistryConfig) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return DefaultRegistryTimeout
}

// GitHubConfig enables the release-collision check when owner, repo, and
// token are all set. Token should use env(VAR) substitution, never a literal.
type GitHubConfig struct {
	Owner string `yaml:"owner,omitempty"`
	Repo  string `yaml:"repo,omitempty"`
	Token string `yaml:"token,omitempty"`
}

// Configured reports whether the GitHub release check can run.
func (c GitHubConfig) Configured() bool {
	return c.Owner != "" && c.Repo != "" && c.Token != ""
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Mode: ModeInteractive}
}

// Load reads and parses the configuration file at path. A nonexistent file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return Default(), nil
	}

	if err := env.SubstituteEnvVarsNode(file.Docs[0].Body); err != nil {
		return nil, fmt.Errorf("environment variable substitution failed: %w", err)
	}

	cfg := Default()
	if err := yaml.NodeToValue(file.Docs[0].Body, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeInteractive
	}
	if err := validate.OneOf(cfg.Mode, []string{ModeInteractive, ModeTest}, "mode"); err != nil {
		return nil, err
	}
	if cfg.GitHub != (GitHubConfig{}) {
		if err := env.CheckResolved(cfg.GitHub.Token, "github.token"); err != nil {
			return nil, err
		}
		if err := validate.RequiredString(cfg.GitHub.Owner, "github.owner"); err != nil {
			return nil, err
		}
		if err := validate.RequiredString(cfg.GitHub.Repo, "github.repo"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
