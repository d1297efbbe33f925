// Package profile derives the build profile from the process environment and CLI flags.
package profile

import (
	"maps"
	"strconv"
	"strings"

	"go.trai.ch/wxpack/internal/core/domain"
)

// Environment variable names consulted by Resolve.
const (
	EnvNodeEnv = "NODE_ENV"
	EnvLint    = "LINT"
	EnvProfile = "WXPACK_PROFILE"
)

// Constant symbols injected into the bundle.
const (
	ConstDev     = "__DEV__"
	ConstEnv     = "__ENV__"
	ConstNodeEnv = "process.env.NODE_ENV"
)

// Flags are the overrides supplied on the command line.
type Flags struct {
	// ConfigName selects the environment profile; it wins over WXPACK_PROFILE.
	ConfigName string
	// Minify requests minification; it only takes effect in production.
	Minify bool
	// DisableSpeed turns off cache and worker steps in development.
	DisableSpeed bool
}

// Resolve computes the build profile. It never fails.
func Resolve(env map[string]string, flags Flags) domain.BuildProfile {
	isDev := env[EnvNodeEnv] != "production"

	name := strings.TrimSpace(flags.ConfigName)
	if name == "" {
		name = strings.TrimSpace(env[EnvProfile])
	}
	if name == "" {
		name = domain.DefaultProfileName
	}

	return domain.BuildProfile{
		IsDevelopment:             isDev,
		LintEnabled:               truthy(env[EnvLint]),
		MinifyEnabled:             flags.Minify,
		ConfigName:                name,
		SpeedOptimizationsEnabled: isDev && !flags.DisableSpeed,
	}
}

// truthy treats any non-empty value as set unless it spells false ("false",
// "FALSE", "0", "f" and the other forms strconv.ParseBool accepts).
func truthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}

// Constants returns the compile-time constants for p with payload as the
// environment profile.
func Constants(p domain.BuildProfile, payload map[string]string) map[string]any {
	env := maps.Clone(payload)
	if env == nil {
		env = map[string]string{}
	}
	return map[string]any{
		ConstDev:     p.IsDevelopment,
		ConstEnv:     env,
		ConstNodeEnv: p.NodeEnv(),
	}
}

// EnvMap turns KEY=VALUE pairs, as returned by os.Environ, into a map.
// Later duplicates win.
func EnvMap(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
