// Package config handles configuration loading and management
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/notifier"
)

// Config holds the runtime configuration for the catalog CLI
type Config struct {
	// LogLevel is the diagnostic verbosity (debug, info, warn, error)
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`

	// NoColor disables colored terminal output
	NoColor bool `mapstructure:"noColor" yaml:"noColor"`

	// Groups optionally restricts run/list to the named pattern groups.
	// Empty means all groups.
	Groups []string `mapstructure:"groups" yaml:"groups"`

	// Notifications configures desktop notifications
	Notifications notifier.Config `mapstructure:"notifications" yaml:"notifications"`
}

// Default returns the configuration used when no file or flags are present
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// LoadFromViper builds a Config from the already-initialized viper instance
func LoadFromViper() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	for _, g := range c.Groups {
		if !catalog.Group(g).IsValid() {
			return fmt.Errorf("invalid pattern group %q", g)
		}
	}

	return nil
}

// GroupEnabled reports whether demos of group g should be included
func (c *Config) GroupEnabled(g catalog.Group) bool {
	if len(c.Groups) == 0 {
		return true
	}
	for _, name := range c.Groups {
		if catalog.Group(name) == g {
			return true
		}
	}
	return false
}
