package profile

import (
	"regexp"

	"github.com/cockroachdb/errors"

	cperrors "claudeprofiles/internal/errors"
)

// maxNameLength is the maximum allowed length for stack, variant, rule,
// and skill names.
const maxNameLength = 64

// nameRegex validates names: lowercase alphanumeric, single hyphens allowed
// between segments, no start/end hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidName reports whether name can be used as a stack, variant, rule,
// or skill identifier. File paths are derived from these names, so the
// character set is deliberately narrow.
func ValidName(name string) bool {
	return name != "" && len(name) <= maxNameLength && nameRegex.MatchString(name)
}

// CheckName returns ErrInvalidName wrapped with the offending value when
// name is not a valid identifier.
func CheckName(name string) error {
	if !ValidName(name) {
		return errors.Wrapf(cperrors.ErrInvalidName, "%q", name)
	}
	return nil
}

// validate checks every name in the document that a file path will be
// derived from, and rejects null entries the decoders let through.
// Violations make the whole document malformed.
func (p *Profile) validate() error {
	for name := range p.Rules {
		if !ValidName(name) {
			return errors.Wrapf(ErrMalformed, "%s: rule name %q", p.Source, name)
		}
	}
	for name := range p.Skills {
		if !ValidName(name) {
			return errors.Wrapf(ErrMalformed, "%s: skill name %q", p.Source, name)
		}
	}
	for name, srv := range p.MCPServers {
		if srv == nil {
			return errors.Wrapf(ErrMalformed, "%s: mcp server %q is empty", p.Source, name)
		}
	}
	for id, v := range p.Variants {
		if !ValidName(id) {
			return errors.Wrapf(ErrMalformed, "%s: variant name %q", p.Source, id)
		}
		if v == nil {
			return errors.Wrapf(ErrMalformed, "%s: variant %q is empty", p.Source, id)
		}
		for name := range v.Rules {
			if !ValidName(name) {
				return errors.Wrapf(ErrMalformed, "%s: variant %q rule name %q", p.Source, id, name)
			}
		}
		for name := range v.Skills {
			if !ValidName(name) {
				return errors.Wrapf(ErrMalformed, "%s: variant %q skill name %q", p.Source, id, name)
			}
		}
		for name, srv := range v.MCPServers {
			if srv == nil {
				return errors.Wrapf(ErrMalformed, "%s: variant %q mcp server %q is empty", p.Source, id, name)
			}
		}
	}
	return nil
}
