// pkg/resolver/types.go
package resolver

import (
	"path/filepath"

	"github.com/samber/lo"
)

// DefinitionName is the only preprocessor definition a plan carries
const DefinitionName = "WITH_CHAKRA_CORE"

// Paths are the roots the table's path templates are expanded against
type Paths struct {
	ThirdParty string // directory holding chakracore/ and v8/
	Module     string // the runtime module's source directory
	WebSockets string // libwebsockets source tree of the host
}

// Abs returns p with every root made absolute against the working
// directory. An empty root becomes the working directory itself.
func (p Paths) Abs() Paths {
	return Paths{
		ThirdParty: absPath(p.ThirdParty),
		Module:     absPath(p.Module),
		WebSockets: absPath(p.WebSockets),
	}
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// LibraryRef is one link input. Absolute refs are file paths; the rest are
// bare names the linker resolves through the library search path.
type LibraryRef struct {
	Ref       string `yaml:"ref" json:"ref"`
	Absolute  bool   `yaml:"absolute,omitempty" json:"absolute,omitempty"`
	DebugOnly bool   `yaml:"debug_only,omitempty" json:"debug_only,omitempty"`
	Group     string `yaml:"group,omitempty" json:"group,omitempty"`
}

// Plan is everything one build must add to its compile and link units.
// A disabled plan means the runtime is unsupported on the target.
type Plan struct {
	Enabled          bool         `yaml:"enabled" json:"enabled"`
	Profile          string       `yaml:"profile" json:"profile"`
	IncludePaths     []string     `yaml:"include_paths" json:"include_paths"`
	LibraryPaths     []string     `yaml:"library_paths" json:"library_paths"`
	Libraries        []LibraryRef `yaml:"libraries" json:"libraries"`
	Definitions      []string     `yaml:"definitions" json:"definitions"`
	PublicModules    []string     `yaml:"public_modules" json:"public_modules"`
	PrivateModules   []string     `yaml:"private_modules" json:"private_modules"`
	EnableExceptions bool         `yaml:"enable_exceptions" json:"enable_exceptions"`
}

// Disabled returns the plan for a platform without runtime support
func Disabled(profileName string) *Plan {
	return &Plan{
		Enabled:     false,
		Profile:     profileName,
		Definitions: []string{DefinitionName + "=0"},
	}
}

// LibraryRefs returns the library references in link order
func (p *Plan) LibraryRefs() []string {
	return lo.Map(p.Libraries, func(l LibraryRef, _ int) string {
		return l.Ref
	})
}

// DebugOnlyLibraries returns the references that exist only for debugging
func (p *Plan) DebugOnlyLibraries() []LibraryRef {
	return lo.Filter(p.Libraries, func(l LibraryRef, _ int) bool {
		return l.DebugOnly
	})
}
