// pkg/profile/loader.go
package profile

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/jsbuild/pkg/platform"
)

// Default is the profile used when none is configured
const Default = "current"

// Variables are the names path templates may reference as ${name}
var Variables = []string{"third_party", "module", "websockets", "platform", "arch", "config", "ws_platform"}

var (
	// ErrNotFound indicates no embedded profile has the requested name
	ErrNotFound = errors.New("profile not found")

	// ErrInvalid indicates a decision table failed validation
	ErrInvalid = errors.New("invalid profile")
)

//go:embed tables/*.yaml
var tables embed.FS

// Names returns the names of the embedded profiles
func Names() []string {
	entries, err := tables.ReadDir("tables")
	if err != nil {
		return nil
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return strings.TrimSuffix(e.Name(), ".yaml"), strings.HasSuffix(e.Name(), ".yaml")
	})
	sort.Strings(names)
	return names
}

// Get returns a freshly parsed embedded profile
func Get(name string) (*Profile, error) {
	data, err := tables.ReadFile(path.Join("tables", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return Parse(data)
}

// Load reads a profile from an embedded name or a YAML file path
func Load(nameOrPath string) (*Profile, error) {
	if nameOrPath == "" {
		nameOrPath = Default
	}
	if lo.Contains(Names(), nameOrPath) {
		return Get(nameOrPath)
	}

	data, err := os.ReadFile(nameOrPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, nameOrPath)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a profile
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: parsing: %v", ErrInvalid, err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// compile validates the table and prepares version constraints
func (p *Profile) compile() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalid)
	}

	if err := checkTemplates(p.IncludePaths...); err != nil {
		return fmt.Errorf("%w: %s: include paths: %v", ErrInvalid, p.Name, err)
	}

	for i := range p.Platforms {
		e := &p.Platforms[i]
		if len(e.Platforms) == 0 {
			return fmt.Errorf("%w: %s: entry %d has no platforms", ErrInvalid, p.Name, i)
		}
		for _, plat := range e.Platforms {
			if !lo.Contains(platform.All, plat) {
				return fmt.Errorf("%w: %s: unknown platform %q", ErrInvalid, p.Name, plat)
			}
		}
		if err := checkTemplates(append(append([]string(nil), e.IncludePaths...), e.LibraryPaths...)...); err != nil {
			return fmt.Errorf("%w: %s: entry %d: %v", ErrInvalid, p.Name, i, err)
		}

		for j := range e.Groups {
			if err := e.Groups[j].compile(); err != nil {
				return fmt.Errorf("%w: %s: entry %d group %d: %v", ErrInvalid, p.Name, i, j, err)
			}
		}
	}

	return nil
}

func (g *Group) compile() error {
	if len(g.Libraries) == 0 {
		return errors.New("no libraries")
	}

	if err := checkTemplates(g.Dir); err != nil {
		return err
	}

	switch g.When.Configuration {
	case "", ConfigDebug, ConfigRelease:
	default:
		return fmt.Errorf("unknown configuration condition %q", g.When.Configuration)
	}

	// Debug-only artifacts must never be reachable from a release build
	if g.DebugOnly && g.When.Configuration != ConfigDebug {
		return errors.New("debug_only group must require the debug configuration")
	}

	if g.When.Version != "" {
		c, err := semver.NewConstraint(g.When.Version)
		if err != nil {
			return fmt.Errorf("version constraint %q: %v", g.When.Version, err)
		}
		g.constraint = c
	}

	return nil
}

// checkTemplates rejects ${name} references outside Variables
func checkTemplates(templates ...string) error {
	for _, t := range templates {
		var unknown []string
		os.Expand(t, func(key string) string {
			if !lo.Contains(Variables, key) {
				unknown = append(unknown, key)
			}
			return ""
		})
		if len(unknown) > 0 {
			return fmt.Errorf("template %q: unknown variable %q", t, unknown[0])
		}
	}
	return nil
}
