// pkg/resolver/resolver.go
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/arc-language/jsbuild/pkg/platform"
	"github.com/arc-language/jsbuild/pkg/profile"
	"github.com/arc-language/jsbuild/pkg/version"
)

// ErrDebugLibraryInRelease indicates a release plan links a debug-only library
var ErrDebugLibraryInRelease = errors.New("debug-only library in release build")

// Resolver turns a version and an environment into a Plan using one profile.
// It never reads the filesystem; roots are made absolute once, in New.
type Resolver struct {
	profile *profile.Profile
	paths   Paths
	logger  *zap.Logger
}

// New creates a resolver for the given decision table. Relative or empty
// roots in paths are taken from the working directory.
func New(p *profile.Profile, paths Paths, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		profile: p,
		paths:   paths.Abs(),
		logger:  logger,
	}
}

var (
	defaultOnce    sync.Once
	defaultProfile *profile.Profile
)

// Resolve resolves against the embedded default profile
func Resolve(v version.Version, env platform.Environment, paths Paths) *Plan {
	defaultOnce.Do(func() {
		p, err := profile.Get(profile.Default)
		if err != nil {
			panic(fmt.Sprintf("embedded profile %s: %v", profile.Default, err))
		}
		defaultProfile = p
	})
	return New(defaultProfile, paths, nil).Resolve(v, env)
}

// Resolve builds the plan for v and env
func (r *Resolver) Resolve(v version.Version, env platform.Environment) *Plan {
	entry := r.profile.Select(env)
	if entry == nil {
		r.logger.Info("runtime unsupported on target, building without it",
			zap.String("profile", r.profile.Name), zap.Stringer("env", env))
		return Disabled(r.profile.Name)
	}

	vars := r.variables(env)
	plan := &Plan{
		Enabled:          true,
		Profile:          r.profile.Name,
		Definitions:      []string{DefinitionName + "=1"},
		EnableExceptions: r.profile.EnableExceptions,
	}

	plan.IncludePaths = append(expandAll(r.profile.IncludePaths, vars), expandAll(entry.IncludePaths, vars)...)
	plan.LibraryPaths = expandAll(entry.LibraryPaths, vars)

	for i := range entry.Groups {
		g := &entry.Groups[i]
		if !g.Applies(v, env) {
			r.logger.Debug("skipping library group",
				zap.String("group", g.Name), zap.Stringer("version", v))
			continue
		}

		dir := ""
		if g.Dir != "" {
			dir = expand(g.Dir, vars)
		}
		for _, lib := range g.Libraries {
			ref := LibraryRef{Ref: lib, DebugOnly: g.DebugOnly, Group: g.Name}
			if dir != "" {
				ref.Ref = filepath.Join(dir, lib)
				ref.Absolute = true
			}
			plan.Libraries = append(plan.Libraries, ref)
		}
	}

	mods := r.profile.Modules
	plan.PublicModules = append([]string(nil), mods.Public...)
	plan.PrivateModules = append([]string(nil), mods.Private...)
	if env.Editor {
		plan.PublicModules = append(plan.PublicModules, mods.EditorPublic...)
		plan.PrivateModules = append(plan.PrivateModules, mods.EditorPrivate...)
	}

	r.logger.Debug("resolved build plan",
		zap.String("profile", r.profile.Name),
		zap.Stringer("env", env),
		zap.Stringer("version", v),
		zap.Strings("libraries", plan.LibraryRefs()))

	return plan
}

// Verify checks a plan against env. A release configuration must never
// link a debug-only library.
func Verify(plan *Plan, env platform.Environment) error {
	if env.Configuration.IsDebug() {
		return nil
	}
	if libs := plan.DebugOnlyLibraries(); len(libs) > 0 {
		return fmt.Errorf("%w: %s links %s", ErrDebugLibraryInRelease, env.Configuration, libs[0].Ref)
	}
	return nil
}

// WebSocketPlatformDir returns the platform subdirectory of the
// libwebsockets include tree for env
func WebSocketPlatformDir(env platform.Environment) string {
	win32HTML5 := env.Platform == platform.HTML5 && env.HTML5Win32

	dir := env.Platform.String()
	if win32HTML5 {
		dir = "Win32"
	}
	if (env.Platform.IsWindows() || win32HTML5) && env.CompilerVersion != "" {
		dir = path.Join(dir, env.CompilerVersion)
	}
	return dir
}

// variables binds every name in profile.Variables
func (r *Resolver) variables(env platform.Environment) map[string]string {
	return map[string]string{
		"third_party": filepath.ToSlash(r.paths.ThirdParty),
		"module":      filepath.ToSlash(r.paths.Module),
		"websockets":  filepath.ToSlash(r.paths.WebSockets),
		"platform":    env.Platform.String(),
		"arch":        env.Architecture,
		"config":      env.Configuration.ArtifactDir(),
		"ws_platform": WebSocketPlatformDir(env),
	}
}

func expand(template string, vars map[string]string) string {
	s := os.Expand(template, func(key string) string {
		return vars[key]
	})
	return filepath.Clean(filepath.FromSlash(s))
}

func expandAll(templates []string, vars map[string]string) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, expand(t, vars))
	}
	return out
}
