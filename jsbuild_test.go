package jsbuild

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/arc-language/jsbuild/pkg/build"
	"github.com/arc-language/jsbuild/pkg/platform"
)

func writeDescriptor(t *testing.T, thirdParty, body string) {
	t.Helper()
	dir := filepath.Join(thirdParty, "chakracore", "include")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ChakraCoreVersion.h"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) *Config {
	cfg := DefaultConfig()
	cfg.ThirdPartyPath = t.TempDir()
	cfg.ModulePath = "/src/V8"
	cfg.WebSocketsPath = "/engine/libwebsockets"
	return cfg
}

func TestConfigureLinux(t *testing.T) {
	cfg := testConfig(t)
	writeDescriptor(t, cfg.ThirdPartyPath, "#define CHAKRA_CORE_MAJOR_VERSION 6\n#define CHAKRA_CORE_MINOR_VERSION 1\n#define CHAKRA_CORE_PATCH_VERSION 0\n")

	d := build.NewDescription()
	env := Environment{Platform: platform.Linux, Architecture: "x64", Configuration: platform.Release}
	plan, err := Configure(cfg, env, d)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"v8_base", "v8_libbase", "v8_libplatform", "v8_nosnapshot", "v8_init", "v8_initializers"}
	if !reflect.DeepEqual(plan.LibraryRefs(), want) {
		t.Fatalf("libraries = %v, want %v", plan.LibraryRefs(), want)
	}
	if len(d.Libraries) != len(want) || !reflect.DeepEqual(d.Definitions, []string{"WITH_CHAKRA_CORE=1"}) {
		t.Fatalf("description not emitted: %+v", d)
	}
}

func TestConfigureMissingDescriptor(t *testing.T) {
	cfg := testConfig(t)

	d := build.NewDescription()
	env := Environment{Platform: platform.Win64, Architecture: "x64", Configuration: platform.Debug}
	plan, err := Configure(cfg, env, d)
	if err != nil {
		t.Fatal(err)
	}
	for _, lib := range plan.Libraries {
		switch lib.Group {
		case "initializers", "sampler":
			t.Fatalf("0.0.0 linked optional library %s", lib.Ref)
		}
	}
	if len(plan.DebugOnlyLibraries()) == 0 {
		t.Fatal("debug build should link debugger libraries")
	}
}

func TestConfigureUnsupported(t *testing.T) {
	cfg := testConfig(t)
	d := build.NewDescription()
	plan, err := Configure(cfg, Environment{Platform: platform.HTML5, Configuration: platform.Shipping}, d)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Enabled || !reflect.DeepEqual(d.Definitions, []string{"WITH_CHAKRA_CORE=0"}) {
		t.Fatalf("unexpected plan %+v / description %+v", plan, d)
	}
}

func TestConfigureCompilerVersionFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.CompilerVersion = "VS2017"

	plan, _, err := Resolve(cfg, Environment{Platform: platform.Win64, Architecture: "x64", Configuration: platform.Release})
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/engine/libwebsockets/include/Win64/VS2017")
	found := false
	for _, p := range plan.IncludePaths {
		if p == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("include paths %v missing %s", plan.IncludePaths, want)
	}
}

func TestConfigureRejectsBadProfile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile = filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(cfg.Profile, []byte(`
name: broken
platforms:
  - platforms: [Win64]
    groups: [{name: debugger, debug_only: true, libraries: [dbg.lib]}]
`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Configure(cfg, Environment{Platform: platform.Win64, Configuration: platform.Shipping}, build.NewDescription())
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("Configure() error = %v, want ErrInvalidProfile", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != "load profile" {
		t.Fatalf("expected *Error with op, got %T %v", err, err)
	}
}

func TestConfigureNilDescription(t *testing.T) {
	_, err := Configure(testConfig(t), Environment{Platform: platform.Linux}, nil)
	if !errors.Is(err, ErrNilDescription) {
		t.Fatalf("Configure(nil) error = %v", err)
	}
}

func TestResolveDefaultConfigAbsoluteRefs(t *testing.T) {
	env := Environment{Platform: platform.Win64, Architecture: "x64", Configuration: platform.Release}
	plan, _, err := Resolve(DefaultConfig(), env)
	if err != nil {
		t.Fatal(err)
	}

	absolute := 0
	for _, lib := range plan.Libraries {
		if !lib.Absolute {
			continue
		}
		absolute++
		if !filepath.IsAbs(lib.Ref) {
			t.Errorf("library %s is marked absolute but is relative", lib.Ref)
		}
	}
	if absolute == 0 {
		t.Fatal("Win64 plan should link libraries by absolute path")
	}
}
