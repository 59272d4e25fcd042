// pkg/locate/locate.go
package locate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/jsbuild/pkg/build"
	"github.com/arc-language/jsbuild/pkg/platform"
)

// systemLibraries are provided by the platform SDK, not the runtime tree
var systemLibraries = map[string]bool{
	"winmm.lib": true,
	"dl":        true,
	"pthread":   true,
	"m":         true,
}

// Library is a planned library found on disk
type Library struct {
	Ref      string // reference as planned
	Path     string // file it resolved to
	IsStatic bool
}

// Find resolves every library of d for target. It returns the libraries
// found and the references that could not be resolved, both in link order.
// extraDirs are searched after d's library paths.
func Find(d *build.Description, target platform.Platform, extraDirs ...string) ([]*Library, []string) {
	searchPaths := append(append([]string(nil), d.LibraryPaths...), extraDirs...)

	var found []*Library
	var missing []string
	for _, lib := range d.Libraries {
		if lib.Absolute {
			if fileExists(lib.Ref) {
				found = append(found, &Library{Ref: lib.Ref, Path: lib.Ref, IsStatic: isStatic(lib.Ref)})
			} else {
				missing = append(missing, lib.Ref)
			}
			continue
		}

		if systemLibraries[lib.Ref] {
			continue
		}

		if l := findInPaths(lib.Ref, searchPaths, target); l != nil {
			found = append(found, l)
		} else {
			missing = append(missing, lib.Ref)
		}
	}

	return found, missing
}

// Missing returns the references of d that cannot be found on disk
func Missing(d *build.Description, target platform.Platform, extraDirs ...string) []string {
	_, missing := Find(d, target, extraDirs...)
	return missing
}

// findInPaths searches for a bare library name using target's naming rules
func findInPaths(name string, searchPaths []string, target platform.Platform) *Library {
	candidates := candidateFiles(name, target)

	for _, dir := range searchPaths {
		for _, filename := range candidates {
			fullPath := filepath.Join(dir, filename)
			if fileExists(fullPath) {
				return &Library{Ref: name, Path: fullPath, IsStatic: isStatic(filename)}
			}

			// Versioned shared objects, e.g. libv8.so.6
			if strings.HasSuffix(filename, ".so") {
				matches, _ := filepath.Glob(fullPath + ".*")
				if len(matches) > 0 {
					return &Library{Ref: name, Path: matches[0]}
				}
			}
		}
	}

	return nil
}

// candidateFiles lists the file names a bare reference may resolve to
func candidateFiles(name string, target platform.Platform) []string {
	if target.IsWindows() {
		if strings.HasSuffix(strings.ToLower(name), ".lib") {
			return []string{name}
		}
		return []string{name + ".lib"}
	}

	exts := []string{".a", ".so"}
	if target == platform.Mac || target == platform.IOS {
		exts = []string{".a", ".dylib"}
	}

	var out []string
	for _, ext := range exts {
		out = append(out, "lib"+name+ext)
	}
	return out
}

func isStatic(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".a" || ext == ".lib"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
