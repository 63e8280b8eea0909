// Package config provides configuration management for claude-profiles using Viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"claudeprofiles/internal/paths"
)

// SupportedVersion is the config schema version this build reads.
const SupportedVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version"`
	ProfilesDir string `mapstructure:"profiles_dir" yaml:"profiles_dir,omitempty"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Subsequent calls reset any previously loaded state.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// CLAUDE_PROFILES_CONFIG_DIR overrides the search path, mainly for tests
	if dir := os.Getenv("CLAUDE_PROFILES_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
	}

	// Environment variable support
	viper.SetEnvPrefix("CLAUDE_PROFILES")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", SupportedVersion)
	viper.SetDefault("profiles_dir", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}

// ResolveProfilesDir returns the profile override directory to use:
// the configured profiles_dir when set, ~/.claude-profiles otherwise.
func (c *Config) ResolveProfilesDir() (string, error) {
	if c != nil && c.ProfilesDir != "" {
		return c.ProfilesDir, nil
	}
	return paths.UserProfilesDir()
}
