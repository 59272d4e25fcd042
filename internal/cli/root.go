// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/jsbuild/pkg/core"
)

var (
	cfgFile     string
	profileName string
	debug       bool
	config      *core.Config
	logger      *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jsbuild",
	Short: "Embedded JavaScript runtime build resolver",
	Long: `jsbuild - Embedded JavaScript runtime build resolver

Works out which runtime libraries, include paths and definitions a host
build must use for a target platform, architecture and configuration.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/jsbuild/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "decision table to use (current, legacy, or a YAML file)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(extensionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if profileName != "" {
		config.Profile = profileName
	}
	if debug {
		config.Debug = true
	}

	logger = newLogger(config.Debug)
	config.Logger = logger
}

// newLogger builds the CLI logger; every invocation gets its own id
func newLogger(debug bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		l, err = cfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l.With(zap.String("invocation", uuid.NewString()))
}
