// pkg/profile/match.go
package profile

import (
	"github.com/samber/lo"

	"github.com/arc-language/jsbuild/pkg/platform"
	"github.com/arc-language/jsbuild/pkg/version"
)

// Select returns the first entry matching env, or nil when the platform is
// not supported by this profile
func (p *Profile) Select(env platform.Environment) *Entry {
	for i := range p.Platforms {
		if p.Platforms[i].Matches(env) {
			return &p.Platforms[i]
		}
	}
	return nil
}

// Supported lists the platforms that have an entry, in table order
func (p *Profile) Supported() []platform.Platform {
	var out []platform.Platform
	for _, e := range p.Platforms {
		out = append(out, e.Platforms...)
	}
	return lo.Uniq(out)
}

// Matches reports whether the entry covers env's platform and architecture
func (e *Entry) Matches(env platform.Environment) bool {
	if !lo.Contains(e.Platforms, env.Platform) {
		return false
	}
	return len(e.Arch) == 0 || lo.Contains(e.Arch, env.Architecture)
}

// VersionGated reports whether the group depends on the runtime version
func (g *Group) VersionGated() bool {
	return g.When.Version != ""
}

// Applies reports whether the group is linked for v and env.
// Version-gated groups never apply to the zero version.
func (g *Group) Applies(v version.Version, env platform.Environment) bool {
	switch g.When.Configuration {
	case ConfigDebug:
		if !env.Configuration.IsDebug() {
			return false
		}
	case ConfigRelease:
		if env.Configuration.IsDebug() {
			return false
		}
	}

	if g.When.Editor != nil && *g.When.Editor != env.Editor {
		return false
	}

	if g.VersionGated() {
		if v.IsZero() || g.constraint == nil {
			return false
		}
		return g.constraint.Check(v.Semver())
	}

	return true
}
