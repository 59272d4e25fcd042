// jsbuild.go
package jsbuild

import (
	"go.uber.org/zap"

	"github.com/arc-language/jsbuild/pkg/build"
	"github.com/arc-language/jsbuild/pkg/core"
	"github.com/arc-language/jsbuild/pkg/platform"
	"github.com/arc-language/jsbuild/pkg/profile"
	"github.com/arc-language/jsbuild/pkg/resolver"
	"github.com/arc-language/jsbuild/pkg/version"
)

// Re-export types for convenience
type (
	Config      = core.Config
	Environment = platform.Environment
	Version     = version.Version
	Plan        = resolver.Plan
	LibraryRef  = resolver.LibraryRef
	Description = build.Description
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Resolve probes the configured version descriptor and resolves the plan
// for env with the configured profile. It does not modify any build
// description. A missing descriptor or an unsupported platform is not an
// error; an unusable profile or a plan that links debug-only libraries
// into a release build is.
func Resolve(cfg *Config, env Environment) (*Plan, Version, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	logger := cfg.GetLogger()

	v := (&version.Prober{Logger: logger}).Probe(cfg.VersionFilePath())

	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return nil, v, &Error{Op: "load profile", Err: err}
	}

	if cfg.CompilerVersion != "" && env.CompilerVersion == "" {
		env.CompilerVersion = cfg.CompilerVersion
	}

	plan := resolver.New(prof, cfg.Paths(), logger).Resolve(v, env)
	if err := resolver.Verify(plan, env); err != nil {
		return nil, v, &Error{Op: "verify plan", Target: env.String(), Err: err}
	}

	logger.Info("resolved runtime build plan",
		zap.String("profile", plan.Profile),
		zap.Stringer("env", env),
		zap.Stringer("version", v),
		zap.Bool("enabled", plan.Enabled),
		zap.Int("libraries", len(plan.Libraries)))

	return plan, v, nil
}

// Configure runs the whole pipeline: probe, resolve, verify, then emit the
// plan into d. d must be owned by the caller and used for one build.
func Configure(cfg *Config, env Environment, d *Description) (*Plan, error) {
	if d == nil {
		return nil, &Error{Op: "configure", Target: env.String(), Err: ErrNilDescription}
	}

	plan, _, err := Resolve(cfg, env)
	if err != nil {
		return nil, err
	}

	build.Emit(plan, d)
	return plan, nil
}
