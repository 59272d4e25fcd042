// pkg/build/description.go
package build

import (
	"github.com/samber/lo"

	"github.com/arc-language/jsbuild/pkg/resolver"
)

// Description is the host build description a plan is applied to.
// It has a single owner; pass it by pointer and never share it.
type Description struct {
	IncludePaths     []string              `yaml:"include_paths" json:"include_paths"`
	LibraryPaths     []string              `yaml:"library_paths" json:"library_paths"`
	Libraries        []resolver.LibraryRef `yaml:"libraries" json:"libraries"`
	Definitions      []string              `yaml:"definitions" json:"definitions"`
	PublicModules    []string              `yaml:"public_modules" json:"public_modules"`
	PrivateModules   []string              `yaml:"private_modules" json:"private_modules"`
	EnableExceptions bool                  `yaml:"enable_exceptions" json:"enable_exceptions"`
}

// NewDescription creates an empty build description
func NewDescription() *Description {
	return &Description{}
}

// Emit applies plan to d. Lists are appended in plan order and are not
// deduplicated, so emitting the same plan twice doubles them. Definitions
// form a set. A nil plan or description is a no-op.
func Emit(plan *resolver.Plan, d *Description) {
	if plan == nil || d == nil {
		return
	}
	d.IncludePaths = append(d.IncludePaths, plan.IncludePaths...)
	d.LibraryPaths = append(d.LibraryPaths, plan.LibraryPaths...)
	d.Libraries = append(d.Libraries, plan.Libraries...)
	for _, def := range plan.Definitions {
		d.AddDefinition(def)
	}
	d.PublicModules = append(d.PublicModules, plan.PublicModules...)
	d.PrivateModules = append(d.PrivateModules, plan.PrivateModules...)
	if plan.EnableExceptions {
		d.EnableExceptions = true
	}
}

// AddDefinition adds a KEY=VALUE definition unless it is already present
func (d *Description) AddDefinition(def string) {
	if !lo.Contains(d.Definitions, def) {
		d.Definitions = append(d.Definitions, def)
	}
}
