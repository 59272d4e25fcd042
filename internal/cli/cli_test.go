package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arc-language/jsbuild/pkg/platform"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, []byte("third_party_path: "+filepath.ToSlash(dir)+"\nmodule_path: /src/V8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	t.Cleanup(func() { profileName = "" })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveDisabledPlatform(t *testing.T) {
	out, err := execute(t, "resolve", "-p", "HTML5", "-c", "Shipping", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "WITH_CHAKRA_CORE=0") {
		t.Fatalf("output missing disabled definition:\n%s", out)
	}
}

func TestResolveFlags(t *testing.T) {
	out, err := execute(t, "resolve", "-p", "Linux", "-c", "Development", "--format", "flags")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"-DWITH_CHAKRA_CORE=1", "-lv8_base"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolveUnknownFormat(t *testing.T) {
	if _, err := execute(t, "resolve", "-p", "Linux", "--format", "toml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestResolveUnknownPlatform(t *testing.T) {
	if _, err := execute(t, "resolve", "-p", "Amiga"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}

func TestProbeMissingDescriptor(t *testing.T) {
	out, err := execute(t, "probe", filepath.Join(t.TempDir(), "missing.h"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0.0.0" {
		t.Fatalf("probe output = %q", out)
	}
}

func TestProfiles(t *testing.T) {
	out, err := execute(t, "profiles")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "* current") || !strings.Contains(out, "legacy") {
		t.Fatalf("unexpected profiles output:\n%s", out)
	}
}

func TestTargetFlagsWithoutDetectedHost(t *testing.T) {
	tf := &targetFlags{platform: "Linux", arch: "x64"}
	env, err := tf.apply(platform.Environment{})
	if err != nil {
		t.Fatal(err)
	}
	if env.Platform != platform.Linux || env.Configuration != platform.Development {
		t.Fatalf("apply() = %+v, want Linux Development", env)
	}

	tf.configuration = "release"
	if env, err = tf.apply(platform.Environment{}); err != nil || env.Configuration != platform.Release {
		t.Fatalf("apply(release) = %+v, %v", env, err)
	}
}
