// pkg/profile/types.go
package profile

import (
	"github.com/Masterminds/semver/v3"

	"github.com/arc-language/jsbuild/pkg/platform"
)

// Profile is one revision of the platform decision table
type Profile struct {
	Name             string   `yaml:"name"`
	Revision         int      `yaml:"revision"`
	Description      string   `yaml:"description"`
	IncludePaths     []string `yaml:"include_paths"` // shared by every enabled platform
	Modules          Modules  `yaml:"modules"`
	EnableExceptions bool     `yaml:"enable_exceptions"`
	Platforms        []Entry  `yaml:"platforms"`
}

// Modules lists the host modules the runtime module depends on
type Modules struct {
	Public        []string `yaml:"public"`
	Private       []string `yaml:"private"`
	EditorPublic  []string `yaml:"editor_public"`
	EditorPrivate []string `yaml:"editor_private"`
}

// Entry is the row of the table for a set of platforms and, optionally,
// an architecture class. Entries are matched in table order.
type Entry struct {
	Platforms    []platform.Platform `yaml:"platforms"`
	Arch         []string            `yaml:"arch"`
	IncludePaths []string            `yaml:"include_paths"`
	LibraryPaths []string            `yaml:"library_paths"`
	Groups       []Group             `yaml:"groups"`
}

// Group is an ordered set of libraries linked together under one condition.
// With Dir set, libraries are absolute paths below it; otherwise they are
// bare names resolved against the library search path.
type Group struct {
	Name      string    `yaml:"name"`
	When      Condition `yaml:"when"`
	Dir       string    `yaml:"dir"`
	Libraries []string  `yaml:"libraries"`
	DebugOnly bool      `yaml:"debug_only"`

	constraint *semver.Constraints
}

// Condition gates a group. Empty fields always match.
type Condition struct {
	Configuration string `yaml:"configuration"` // debug or release
	Version       string `yaml:"version"`       // semver constraint, e.g. ">= 6.0.0"
	Editor        *bool  `yaml:"editor"`
}

const (
	ConfigDebug   = "debug"
	ConfigRelease = "release"
)
