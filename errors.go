// errors.go
package jsbuild

import (
	"errors"
	"fmt"

	"github.com/arc-language/jsbuild/pkg/profile"
	"github.com/arc-language/jsbuild/pkg/resolver"
)

var (
	// ErrProfileNotFound indicates the configured profile does not exist
	ErrProfileNotFound = profile.ErrNotFound

	// ErrInvalidProfile indicates a decision table failed validation
	ErrInvalidProfile = profile.ErrInvalid

	// ErrDebugLibraryInRelease indicates a release plan links a debug-only library
	ErrDebugLibraryInRelease = resolver.ErrDebugLibraryInRelease

	// ErrNilDescription indicates Configure was given no build description
	ErrNilDescription = errors.New("build description is nil")
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Target string // Target environment if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
