package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used for tool configuration under the
// XDG config home.
const AppName = "claude-profiles"

// DefaultProfilesDirName is the per-user profile override directory,
// relative to the home directory.
const DefaultProfilesDirName = ".claude-profiles"

// ClaudeDir is the project-level directory Claude Code reads.
const ClaudeDir = ".claude"

// Artifact file names within a project.
const (
	// MCPConfigName is the MCP server manifest at the project root.
	MCPConfigName = ".mcp.json"

	// InstructionsName is the instructions file inside ClaudeDir.
	InstructionsName = "CLAUDE.md"

	// SettingsName is the settings file inside ClaudeDir.
	SettingsName = "settings.json"

	// GitignoreName is the ignore file at the project root.
	GitignoreName = ".gitignore"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigDir returns the tool configuration directory.
// On Linux: ~/.config/claude-profiles
// On macOS: ~/Library/Application Support/claude-profiles
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// UserProfilesDir returns the default profile override directory,
// ~/.claude-profiles. Profiles found here shadow the built-in ones.
func UserProfilesDir() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultProfilesDirName), nil
}

// MCPConfigPath returns the project-relative path of the MCP server manifest.
func MCPConfigPath() string {
	return MCPConfigName
}

// InstructionsPath returns the project-relative path of the instructions file.
func InstructionsPath() string {
	return filepath.Join(ClaudeDir, InstructionsName)
}

// RulePath returns the project-relative path of a named rule file.
func RulePath(name string) string {
	return filepath.Join(ClaudeDir, "rules", name+".md")
}

// SkillPath returns the project-relative path of a named skill file.
// Each skill lives in its own directory so supporting files can sit
// next to SKILL.md.
func SkillPath(name string) string {
	return filepath.Join(ClaudeDir, "skills", name, "SKILL.md")
}

// SettingsPath returns the project-relative path of the settings file.
func SettingsPath() string {
	return filepath.Join(ClaudeDir, SettingsName)
}

// GitignorePath returns the project-relative path of the ignore file.
func GitignorePath() string {
	return GitignoreName
}
