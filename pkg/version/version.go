// pkg/version/version.go
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the embedded runtime's (major, minor, patch) triple.
// The zero value is what a missing or unreadable descriptor degrades to.
type Version struct {
	Major int `yaml:"major" json:"major"`
	Minor int `yaml:"minor" json:"minor"`
	Patch int `yaml:"patch" json:"patch"`
}

// IsZero reports whether v is 0.0.0
func (v Version) IsZero() bool {
	return v == Version{}
}

// AtLeastMajor reports whether v.Major >= major
func (v Version) AtLeastMajor(major int) bool {
	return v.Major >= major
}

// Semver converts v for constraint checks. Negative fields clamp to 0.
func (v Version) Semver() *semver.Version {
	return semver.New(clamp(v.Major), clamp(v.Minor), clamp(v.Patch), "", "")
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func clamp(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
