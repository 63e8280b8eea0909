package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the config schema version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != SupportedVersion {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version))
	}

	if cfg.ProfilesDir != "" {
		if err := validatePath(cfg.ProfilesDir); err != nil {
			errs = append(errs, &PathError{
				Field: "profiles_dir",
				Path:  cfg.ProfilesDir,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
