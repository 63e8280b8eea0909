package profile

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"claudeprofiles/pkg/fileutil"
)

// Sentinel errors for profile resolution.
var (
	// ErrNotFound indicates no profile document exists for a stack.
	ErrNotFound = errors.New("profile not found")

	// ErrMalformed indicates a profile document exists but cannot be parsed
	// into a valid profile.
	ErrMalformed = errors.New("profile malformed")
)

// userExtensions are the recognized profile file extensions in the user
// override directory, in resolution order.
var userExtensions = []string{".json", ".yaml", ".yml"}

// Keys recognized at the top level of a profile document.
var knownProfileKeys = map[string]bool{
	"display_name": true,
	"description":  true,
	"mcp_servers":  true,
	"claude_md":    true,
	"rules":        true,
	"skills":       true,
	"settings":     true,
	"variants":     true,
}

// Keys recognized inside a variant document.
var knownVariantKeys = map[string]bool{
	"display_name": true,
	"mcp_servers":  true,
	"claude_md":    true,
	"rules":        true,
	"skills":       true,
	"settings":     true,
}

// Store resolves profile documents, preferring the user override directory
// over the embedded built-in set. Documents are re-read on every call; the
// store holds no cache.
type Store struct {
	userDir string
	builtin fs.FS
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithBuiltins replaces the embedded built-in profile set.
func WithBuiltins(fsys fs.FS) Option {
	return func(s *Store) {
		s.builtin = fsys
	}
}

// NewStore creates a Store reading user overrides from userDir.
// An empty userDir disables overrides entirely.
func NewStore(userDir string, opts ...Option) *Store {
	s := &Store{
		userDir: userDir,
		builtin: BuiltinFS(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve loads the profile for stack. A document in the user override
// directory wins over the built-in one; within the user directory, .json
// is preferred over .yaml and .yml.
//
// Returns ErrNotFound when neither location has a document for stack, and
// ErrMalformed when a document exists but cannot be used.
func (s *Store) Resolve(stack string) (*Profile, error) {
	if err := CheckName(stack); err != nil {
		return nil, err
	}

	if s.userDir != "" {
		for _, ext := range userExtensions {
			path := filepath.Join(s.userDir, stack+ext)
			data, err := fileutil.ReadFileWithLimit(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, errors.Wrapf(err, "reading profile %s", path)
			}
			return s.parse(stack, path, data, ext != ".json")
		}
	}

	data, err := fs.ReadFile(s.builtin, stack+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "stack %q%s", stack, s.searchedHint())
		}
		return nil, errors.Wrapf(err, "reading built-in profile %s", stack)
	}
	return s.parse(stack, "builtin:"+stack+".json", data, false)
}

func (s *Store) searchedHint() string {
	if s.userDir == "" {
		return " (searched built-ins)"
	}
	return " (searched " + s.userDir + " and built-ins)"
}

// parse decodes a profile document, warns about unknown keys, and validates
// every name a file path will be derived from.
func (s *Store) parse(stack, source string, data []byte, isYAML bool) (*Profile, error) {
	var p Profile
	var raw map[string]any

	if isYAML {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%s: %v", source, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%s: %v", source, err)
		}
	} else {
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%s: %v", source, err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%s: %v", source, err)
		}
	}

	s.warnUnknownKeys(source, raw)

	p.Name = stack
	p.Source = source
	for name, srv := range p.MCPServers {
		if srv != nil {
			srv.Name = name
		}
	}
	for _, v := range p.Variants {
		if v == nil {
			continue
		}
		for name, srv := range v.MCPServers {
			if srv != nil {
				srv.Name = name
			}
		}
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// warnUnknownKeys logs keys the schema does not define. Unknown keys are
// ignored rather than fatal so documents written for newer versions still
// load.
func (s *Store) warnUnknownKeys(source string, raw map[string]any) {
	if unknown := unknownKeys(raw, knownProfileKeys); len(unknown) > 0 {
		s.logger.Warn("ignoring unknown profile keys",
			"profile", source,
			"keys", strings.Join(unknown, ","))
	}

	variantsRaw, ok := raw["variants"].(map[string]any)
	if !ok {
		return
	}
	for id, vr := range variantsRaw {
		vm, ok := vr.(map[string]any)
		if !ok {
			continue
		}
		if unknown := unknownKeys(vm, knownVariantKeys); len(unknown) > 0 {
			s.logger.Warn("ignoring unknown variant keys",
				"profile", source,
				"variant", id,
				"keys", strings.Join(unknown, ","))
		}
	}
}

func unknownKeys(raw map[string]any, known map[string]bool) []string {
	var unknown []string
	for k := range raw {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// List returns the sorted union of built-in and user override stacks.
// Files whose names start with "_" are treated as drafts and skipped.
func (s *Store) List() ([]string, error) {
	seen := make(map[string]bool)

	entries, err := fs.ReadDir(s.builtin, ".")
	if err != nil {
		return nil, errors.Wrap(err, "reading built-in profiles")
	}
	for _, e := range entries {
		if name, ok := stackFromFile(e.Name()); ok {
			seen[name] = true
		}
	}

	if s.userDir != "" {
		userEntries, err := os.ReadDir(s.userDir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "reading profiles dir %s", s.userDir)
		}
		for _, e := range userEntries {
			if e.IsDir() {
				continue
			}
			if name, ok := stackFromFile(e.Name()); ok {
				seen[name] = true
			}
		}
	}

	stacks := slices.Collect(maps.Keys(seen))
	slices.Sort(stacks)
	return stacks, nil
}

// stackFromFile maps a profile file name to its stack identifier.
// Returns false for drafts, unrecognized extensions, and invalid names.
func stackFromFile(file string) (string, bool) {
	if strings.HasPrefix(file, "_") {
		return "", false
	}
	ext := filepath.Ext(file)
	if !slices.Contains(userExtensions, ext) {
		return "", false
	}
	name := strings.TrimSuffix(file, ext)
	return name, ValidName(name)
}
