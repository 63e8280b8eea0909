package profile

import (
	"maps"
	"slices"
)

// MCPServer represents an MCP (Model Context Protocol) server configuration.
// It supports both stdio-based (Command/Args) and HTTP-based (URL) transports.
type MCPServer struct {
	// Name is the server's identifier, populated from the map key when loading.
	// Not serialized as it's the map key itself.
	Name string `json:"-" yaml:"-"`

	// Type specifies the server transport type: "stdio" or "http".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Command is the executable to run for stdio transport.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`

	// Args are command-line arguments passed to the command.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// URL is the server endpoint for HTTP transport.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`

	// Headers contains HTTP headers for HTTP transport connections.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Disabled indicates the server is configured but turned off.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Clone returns a deep copy of the server.
func (s *MCPServer) Clone() *MCPServer {
	if s == nil {
		return nil
	}
	out := *s
	out.Args = slices.Clone(s.Args)
	out.Env = maps.Clone(s.Env)
	out.Headers = maps.Clone(s.Headers)
	return &out
}

// Profile is one stack's configuration document: the MCP servers,
// instructions, rules, skills, and settings applied to projects of that
// stack, plus named variants refining it per framework.
type Profile struct {
	// Name is the stack identifier, populated from the file name when loading.
	Name string `json:"-" yaml:"-"`

	// Source is the file path the profile was loaded from. Built-in profiles
	// use a "builtin:" prefix.
	Source string `json:"-" yaml:"-"`

	// DisplayName is a human-readable title shown in listings.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	// Description is a one-line summary shown in listings.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// MCPServers maps server names to their configurations.
	MCPServers map[string]*MCPServer `json:"mcp_servers,omitempty" yaml:"mcp_servers,omitempty"`

	// ClaudeMD is the project instructions document body.
	ClaudeMD string `json:"claude_md,omitempty" yaml:"claude_md,omitempty"`

	// Rules maps rule names to markdown rule content.
	Rules map[string]string `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Skills maps skill names to SKILL.md content.
	Skills map[string]string `json:"skills,omitempty" yaml:"skills,omitempty"`

	// Settings is the settings.json document content.
	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`

	// Variants maps variant identifiers to their section overrides.
	Variants map[string]*Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Variant overrides sections of its base profile for one framework
// refinement. Sections left empty inherit from the base.
type Variant struct {
	// DisplayName is a human-readable title shown in listings.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`

	MCPServers map[string]*MCPServer `json:"mcp_servers,omitempty" yaml:"mcp_servers,omitempty"`
	ClaudeMD   string                `json:"claude_md,omitempty" yaml:"claude_md,omitempty"`
	Rules      map[string]string     `json:"rules,omitempty" yaml:"rules,omitempty"`
	Skills     map[string]string     `json:"skills,omitempty" yaml:"skills,omitempty"`
	Settings   map[string]any        `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// VariantNames returns the profile's variant identifiers in sorted order.
func (p *Profile) VariantNames() []string {
	names := slices.Collect(maps.Keys(p.Variants))
	slices.Sort(names)
	return names
}

// HasVariant reports whether the profile defines the given variant.
func (p *Profile) HasVariant(id string) bool {
	_, ok := p.Variants[id]
	return ok
}

// EffectiveConfig is the result of merging a profile with at most one of
// its variants. It carries everything the renderer needs and nothing about
// where the profile came from.
type EffectiveConfig struct {
	// Stack is the base profile's identifier.
	Stack string

	// Variant is the applied variant identifier, empty when none was applied.
	Variant string

	MCPServers map[string]*MCPServer
	ClaudeMD   string
	Rules      map[string]string
	Skills     map[string]string
	Settings   map[string]any
}
