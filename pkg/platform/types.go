// pkg/platform/types.go
package platform

import (
	"fmt"
	"strings"
)

// Platform is a target platform of the host build
type Platform string

const (
	// Win64 is 64-bit Windows
	Win64 Platform = "Win64"
	// Win32 is 32-bit Windows
	Win32 Platform = "Win32"
	// Linux is desktop Linux
	Linux Platform = "Linux"
	// Mac is macOS
	Mac Platform = "Mac"
	// Android covers every Android ABI
	Android Platform = "Android"
	// IOS is iOS
	IOS Platform = "IOS"
	// HTML5 is the browser target
	HTML5 Platform = "HTML5"
)

// All lists every platform the host build system knows about
var All = []Platform{Win64, Win32, Linux, Mac, Android, IOS, HTML5}

// ParsePlatform parses a platform name case-insensitively
func ParsePlatform(s string) (Platform, error) {
	for _, p := range All {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// IsWindows reports whether p is one of the Windows targets
func (p Platform) IsWindows() bool {
	return p == Win64 || p == Win32
}

func (p Platform) String() string {
	return string(p)
}

// Configuration is a build configuration (compilation profile)
type Configuration string

const (
	Debug       Configuration = "Debug"
	DebugGame   Configuration = "DebugGame"
	Development Configuration = "Development"
	Test        Configuration = "Test"
	Shipping    Configuration = "Shipping"
	Release     Configuration = "Release"
)

// Configurations lists every known build configuration
var Configurations = []Configuration{Debug, DebugGame, Development, Test, Shipping, Release}

// ParseConfiguration parses a configuration name case-insensitively
func ParseConfiguration(s string) (Configuration, error) {
	for _, c := range Configurations {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown build configuration: %q", s)
}

// IsDebug reports whether c links the debug artifact variants
func (c Configuration) IsDebug() bool {
	return c == Debug || c == DebugGame
}

// ArtifactDir returns the artifact subdirectory name for c
func (c Configuration) ArtifactDir() string {
	if c.IsDebug() {
		return "Debug"
	}
	return "Release"
}

func (c Configuration) String() string {
	return string(c)
}

// Environment holds the facts the host build system supplies for one build
type Environment struct {
	Platform        Platform
	Architecture    string        // e.g. x64, arm64, ARMv7
	Configuration   Configuration
	Editor          bool   // building the editor variant of the host
	HTML5Win32      bool   // HTML5 target built with the Win32 toolchain
	CompilerVersion string // Visual Studio directory name, e.g. VS2015
}

// String returns a string representation of the environment
func (e Environment) String() string {
	s := fmt.Sprintf("%s/%s %s", e.Platform, e.Architecture, e.Configuration)
	if e.Editor {
		s += " (editor)"
	}
	return s
}
