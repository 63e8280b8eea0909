// Package config provides configuration management for the claude-profiles CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the profile documents themselves, which are
// managed by the profile store.
//
// # Configuration File
//
// The default configuration file location is
// <XDG_CONFIG_HOME>/claude-profiles/config.yaml. The file uses YAML format:
//
//	version: 1
//	profiles_dir: /custom/profiles   # optional, defaults to ~/.claude-profiles
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// A missing config file is not an error when no explicit path is given;
// defaults apply. Every loaded config is validated, so callers can trust
// the returned values.
//
// # Environment Variables
//
// Values can be overridden via CLAUDE_PROFILES_* environment variables,
// e.g. CLAUDE_PROFILES_PROFILES_DIR. CLAUDE_PROFILES_CONFIG_DIR moves the
// config search path itself.
package config
