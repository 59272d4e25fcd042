// pkg/version/probe.go
package version

import (
	"archive/tar"
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/ulikunitz/xz"
	"go.uber.org/zap"
	"zombiezen.com/go/nix/nar"
)

// Prober reads version descriptors. The zero value is ready to use.
type Prober struct {
	Logger *zap.Logger
}

// Probe reads the version from a descriptor file, or from the descriptor
// inside a runtime SDK archive (.tar, .tar.xz, .txz, .nar, .nar.xz).
// Any failure degrades to 0.0.0, which disables every version-gated component.
func Probe(path string) Version {
	return (&Prober{}).Probe(path)
}

// Probe is like the package-level Probe but logs why a probe degraded
func (p *Prober) Probe(filePath string) Version {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	v, err := probe(filePath)
	if err != nil {
		logger.Warn("version descriptor unusable, assuming 0.0.0",
			zap.String("path", filePath), zap.Error(err))
		return Version{}
	}

	logger.Debug("probed runtime version",
		zap.String("path", filePath), zap.Stringer("version", v))
	return v
}

func probe(filePath string) (Version, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Version{}, fmt.Errorf("opening descriptor: %w", err)
	}
	defer f.Close()

	name := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(name, ".nar.xz"):
		xzReader, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			return Version{}, fmt.Errorf("creating xz reader: %w", err)
		}
		return probeNAR(xzReader)
	case strings.HasSuffix(name, ".nar"):
		return probeNAR(bufio.NewReader(f))
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		xzReader, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			return Version{}, fmt.Errorf("creating xz reader: %w", err)
		}
		return probeTar(xzReader)
	case strings.HasSuffix(name, ".tar"):
		return probeTar(f)
	default:
		return Parse(f), nil
	}
}

// probeTar scans a tar stream for the descriptor member
func probeTar(r io.Reader) (Version, error) {
	tarReader := tar.NewReader(r)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Version{}, fmt.Errorf("reading tar entry: %w", err)
		}

		if header.Typeflag != tar.TypeReg || !isDescriptor(header.Name) {
			continue
		}
		return Parse(tarReader), nil
	}

	return Version{}, fmt.Errorf("no %s found in archive", HeaderName)
}

// probeNAR scans a Nix archive for the descriptor member
func probeNAR(r io.Reader) (Version, error) {
	narReader := nar.NewReader(r)
	for {
		hdr, err := narReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Version{}, fmt.Errorf("reading NAR entry: %w", err)
		}

		// Regular files only
		if hdr.Mode.Type() != 0 || !isDescriptor(hdr.Path) {
			continue
		}
		return Parse(narReader), nil
	}

	return Version{}, fmt.Errorf("no %s found in archive", HeaderName)
}

// isDescriptor matches include/ChakraCoreVersion.h at any depth
func isDescriptor(name string) bool {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	return path.Base(name) == HeaderName && path.Base(path.Dir(name)) == "include"
}
