// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

var archNames = map[string]string{
	"amd64": "x64",
	"386":   "x86",
	"arm64": "arm64",
	"arm":   "ARMv7",
}

// Detect returns an Environment describing the machine jsbuild runs on.
// Configuration defaults to Development.
func Detect() (Environment, error) {
	return detect(runtime.GOOS, runtime.GOARCH)
}

func detect(goos, goarch string) (Environment, error) {
	env := Environment{
		Architecture:  ArchName(goarch),
		Configuration: Development,
	}

	switch goos {
	case "windows":
		if goarch == "386" {
			env.Platform = Win32
		} else {
			env.Platform = Win64
		}
	case "linux":
		env.Platform = Linux
	case "darwin":
		env.Platform = Mac
	case "android":
		env.Platform = Android
	case "ios":
		env.Platform = IOS
	case "js":
		env.Platform = HTML5
	default:
		return Environment{}, fmt.Errorf("unsupported operating system: %s", goos)
	}

	return env, nil
}

// ArchName maps a GOARCH value to the architecture name used in library layouts
func ArchName(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return goarch
}
