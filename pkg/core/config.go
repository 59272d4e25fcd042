// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/jsbuild/pkg/profile"
	"github.com/arc-language/jsbuild/pkg/resolver"
	"github.com/arc-language/jsbuild/pkg/version"
)

// Config holds jsbuild configuration
type Config struct {
	ThirdPartyPath  string `yaml:"third_party_path"`
	ModulePath      string `yaml:"module_path"`
	WebSocketsPath  string `yaml:"websockets_path"`
	VersionFile     string `yaml:"version_file"` // descriptor or SDK archive; derived from ThirdPartyPath if empty
	Profile         string `yaml:"profile"`      // embedded profile name or path to a table
	CompilerVersion string `yaml:"compiler_version"`
	Debug           bool   `yaml:"debug"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ThirdPartyPath: getDefaultThirdPartyPath(),
		ModulePath:     filepath.Join("Source", "V8"),
		WebSocketsPath: getDefaultWebSocketsPath(),
		Profile:        profile.Default,
		Debug:          false,
	}
}

// LoadConfig loads configuration from file. Values in the file override
// the defaults; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "jsbuild", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "jsbuild", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Paths returns the roots the resolver expands its tables against
func (c *Config) Paths() resolver.Paths {
	return resolver.Paths{
		ThirdParty: c.ThirdPartyPath,
		Module:     c.ModulePath,
		WebSockets: c.WebSocketsPath,
	}
}

// VersionFilePath returns the descriptor to probe
func (c *Config) VersionFilePath() string {
	if c.VersionFile != "" {
		return c.VersionFile
	}
	return filepath.Join(c.ThirdPartyPath, "chakracore", "include", version.HeaderName)
}

// GetLogger returns the configured logger or a no-op one
func (c *Config) GetLogger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func getDefaultThirdPartyPath() string {
	if path := os.Getenv("JSBUILD_THIRD_PARTY"); path != "" {
		return path
	}
	return "ThirdParty"
}

func getDefaultWebSocketsPath() string {
	if path := os.Getenv("JSBUILD_WEBSOCKETS"); path != "" {
		return path
	}
	return filepath.Join("Engine", "Source", "ThirdParty", "libWebSockets", "libwebsockets")
}
