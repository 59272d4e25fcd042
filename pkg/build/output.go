// pkg/build/output.go
package build

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	DefineFlags  []string // -D flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags and absolute archives
}

// Flags renders d as compiler and linker flags. Bare library names become
// -l flags; absolute references are passed through as link inputs.
func (d *Description) Flags() CompilerFlags {
	var f CompilerFlags
	for _, p := range d.IncludePaths {
		f.IncludeFlags = append(f.IncludeFlags, "-I"+p)
	}
	for _, def := range d.Definitions {
		f.DefineFlags = append(f.DefineFlags, "-D"+def)
	}
	for _, p := range d.LibraryPaths {
		f.LibraryFlags = append(f.LibraryFlags, "-L"+p)
	}
	for _, lib := range d.Libraries {
		if lib.Absolute {
			f.LinkFlags = append(f.LinkFlags, lib.Ref)
		} else {
			f.LinkFlags = append(f.LinkFlags, "-l"+lib.Ref)
		}
	}
	return f
}

// CFlags returns the compile-side flags joined for a shell
func (f CompilerFlags) CFlags() string {
	return strings.Join(append(append([]string(nil), f.IncludeFlags...), f.DefineFlags...), " ")
}

// LDFlags returns the link-side flags joined for a shell
func (f CompilerFlags) LDFlags() string {
	return strings.Join(append(append([]string(nil), f.LibraryFlags...), f.LinkFlags...), " ")
}

// WriteYAML writes d as YAML
func (d *Description) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding description: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes d as indented JSON
func (d *Description) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding description: %w", err)
	}
	return nil
}

// WriteFlags writes CFLAGS and LDFLAGS lines
func (d *Description) WriteFlags(w io.Writer) error {
	f := d.Flags()
	_, err := fmt.Fprintf(w, "CFLAGS=%s\nLDFLAGS=%s\n", f.CFlags(), f.LDFlags())
	return err
}
