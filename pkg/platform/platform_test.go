package platform

import "testing"

func TestParsePlatform(t *testing.T) {
	cases := map[string]Platform{
		"win64":   Win64,
		"Win32":   Win32,
		"LINUX":   Linux,
		"mac":     Mac,
		"android": Android,
		"ios":     IOS,
		"html5":   HTML5,
	}
	for in, want := range cases {
		got, err := ParsePlatform(in)
		if err != nil {
			t.Fatalf("ParsePlatform(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePlatform(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParsePlatform("PS4"); err == nil {
		t.Fatal("expected error for unknown platform")
	}
}

func TestConfigurationIsDebug(t *testing.T) {
	debug := map[Configuration]bool{
		Debug:       true,
		DebugGame:   true,
		Development: false,
		Test:        false,
		Shipping:    false,
		Release:     false,
	}
	for c, want := range debug {
		if c.IsDebug() != want {
			t.Fatalf("%s.IsDebug() = %v, want %v", c, c.IsDebug(), want)
		}
	}
	if Debug.ArtifactDir() != "Debug" || Shipping.ArtifactDir() != "Release" {
		t.Fatalf("unexpected artifact dirs: %s %s", Debug.ArtifactDir(), Shipping.ArtifactDir())
	}
}

func TestParseConfiguration(t *testing.T) {
	c, err := ParseConfiguration("debuggame")
	if err != nil || c != DebugGame {
		t.Fatalf("ParseConfiguration(debuggame) = %s, %v", c, err)
	}
	if _, err := ParseConfiguration("Profile"); err == nil {
		t.Fatal("expected error for unknown configuration")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		goos, goarch string
		platform     Platform
		arch         string
	}{
		{"windows", "amd64", Win64, "x64"},
		{"windows", "386", Win32, "x86"},
		{"linux", "amd64", Linux, "x64"},
		{"linux", "arm64", Linux, "arm64"},
		{"darwin", "arm64", Mac, "arm64"},
		{"android", "arm", Android, "ARMv7"},
	}
	for _, tc := range cases {
		env, err := detect(tc.goos, tc.goarch)
		if err != nil {
			t.Fatalf("detect(%s, %s): %v", tc.goos, tc.goarch, err)
		}
		if env.Platform != tc.platform || env.Architecture != tc.arch {
			t.Fatalf("detect(%s, %s) = %s/%s, want %s/%s",
				tc.goos, tc.goarch, env.Platform, env.Architecture, tc.platform, tc.arch)
		}
		if env.Configuration != Development {
			t.Fatalf("default configuration = %s", env.Configuration)
		}
	}

	if _, err := detect("plan9", "amd64"); err == nil {
		t.Fatal("expected error for plan9")
	}
}
