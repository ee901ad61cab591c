// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sgaunet/open-pr/pkg/platform"
)

// ErrInvalidService is returned when the configured service does not name a
// supported hosting provider.
var ErrInvalidService = errors.New("service must be one of github, gitlab, bitbucket or azure")

// Config holds the optional user preferences read from
// ~/.config/open-pr/config.yml. Every field has a flag counterpart; explicit
// flags win over config values.
type Config struct {
	Remote    string `yaml:"remote"`
	Target    string `yaml:"target"`
	Service   string `yaml:"service"`
	Draft     bool   `yaml:"draft"`
	PrintOnly bool   `yaml:"print_only"`
}

// Load reads and parses the configuration file from the user's home
// directory. A missing file is not an error: the zero Config is returned and
// every setting falls back to flags and heuristics.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "open-pr", "config.yml")

	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate normalizes the fields and checks that service, when set, names a
// supported hosting provider.
func (c *Config) Validate() error {
	c.Remote = strings.TrimSpace(c.Remote)
	c.Target = strings.TrimSpace(c.Target)
	c.Service = strings.TrimSpace(c.Service)

	if c.Service != "" {
		if _, err := platform.FromString(c.Service); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidService, c.Service)
		}
	}

	return nil
}
