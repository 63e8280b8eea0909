// Package redact masks secret values before they reach logs or
// terminal output.
package redact

import (
	"net/url"
	"strings"
)

// secretKeyHints are substrings of env or header names that mark a
// value as sensitive. Matched case-insensitively.
var secretKeyHints = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes mark a value as sensitive regardless of its key.
var tokenPrefixes = []string{
	"ghp_", "gho_", "ghu_", "ghs_", "ghr_", // GitHub token families
	"sk-", "pk-", // OpenAI and Anthropic style keys
	"AKIA",                             // AWS access key IDs
	"xoxb-", "xoxp-", "xoxa-", "xoxr-", // Slack tokens
}

// ShouldMask reports whether a key name suggests its value is secret.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, hint := range secretKeyHints {
		if strings.Contains(upper, hint) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known API
// token prefix. This catches secrets stored under innocuous key names.
func ContainsTokenPrefix(value string) bool {
	for _, p := range tokenPrefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

// MaskValue hides a secret, keeping the last four characters of longer
// values so entries stay distinguishable.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskSecrets returns a copy of env with secret values masked. A value
// is masked when its key matches a secret hint or the value itself
// carries a token prefix. The input map is left untouched.
func MaskSecrets(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	masked := make(map[string]string, len(env))
	for k, v := range env {
		if ShouldMask(k) || ContainsTokenPrefix(v) {
			masked[k] = MaskValue(v)
			continue
		}
		masked[k] = v
	}
	return masked
}

// MaskURL hides the password in a URL with embedded credentials.
// URLs that do not parse, or carry no password, come back unchanged.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	pass, ok := u.User.Password()
	if !ok || pass == "" {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), MaskValue(pass))
	return u.String()
}
