package profile

import (
	"maps"
)

// Merge combines a base profile with at most one of its variants into an
// EffectiveConfig.
//
// Mapping sections (MCPServers, Rules, Skills, Settings) merge key-wise:
// every base key is carried over, and a variant key replaces the base value
// for that key wholesale. ClaudeMD is scalar, so a variant that sets it
// replaces the base document entirely.
//
// Merge is total: an empty variantID, or one the profile does not define,
// yields the base sections verbatim. The inputs are never mutated; all maps
// in the result are freshly allocated.
func Merge(base *Profile, variantID string) *EffectiveConfig {
	eff := &EffectiveConfig{
		Stack:      base.Name,
		MCPServers: cloneServers(base.MCPServers),
		ClaudeMD:   base.ClaudeMD,
		Rules:      maps.Clone(base.Rules),
		Skills:     maps.Clone(base.Skills),
		Settings:   maps.Clone(base.Settings),
	}

	v, ok := base.Variants[variantID]
	if variantID == "" || !ok || v == nil {
		return eff
	}
	eff.Variant = variantID

	if len(v.MCPServers) > 0 && eff.MCPServers == nil {
		eff.MCPServers = make(map[string]*MCPServer, len(v.MCPServers))
	}
	for name, srv := range v.MCPServers {
		s := srv.Clone()
		s.Name = name
		eff.MCPServers[name] = s
	}

	if v.ClaudeMD != "" {
		eff.ClaudeMD = v.ClaudeMD
	}

	if len(v.Rules) > 0 && eff.Rules == nil {
		eff.Rules = make(map[string]string, len(v.Rules))
	}
	maps.Copy(eff.Rules, v.Rules)

	if len(v.Skills) > 0 && eff.Skills == nil {
		eff.Skills = make(map[string]string, len(v.Skills))
	}
	maps.Copy(eff.Skills, v.Skills)

	if len(v.Settings) > 0 && eff.Settings == nil {
		eff.Settings = make(map[string]any, len(v.Settings))
	}
	maps.Copy(eff.Settings, v.Settings)

	return eff
}

func cloneServers(servers map[string]*MCPServer) map[string]*MCPServer {
	if servers == nil {
		return nil
	}
	out := make(map[string]*MCPServer, len(servers))
	for name, srv := range servers {
		s := srv.Clone()
		s.Name = name
		out[name] = s
	}
	return out
}
