// internal/cli/target.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/jsbuild/pkg/platform"
)

// targetFlags describe the build being configured; unset fields fall back
// to the host
type targetFlags struct {
	platform      string
	arch          string
	configuration string
	compiler      string
	editor        bool
	html5Win32    bool
}

func (t *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.platform, "platform", "p", "", "target platform (Win64, Win32, Linux, Mac, Android, IOS, HTML5)")
	cmd.Flags().StringVarP(&t.arch, "arch", "a", "", "target architecture")
	cmd.Flags().StringVarP(&t.configuration, "configuration", "c", "", "build configuration (Debug, DebugGame, Development, Test, Shipping, Release)")
	cmd.Flags().StringVar(&t.compiler, "compiler", "", "compiler version tag used for Windows WebSocket headers")
	cmd.Flags().BoolVar(&t.editor, "editor", false, "configure an editor build")
	cmd.Flags().BoolVar(&t.html5Win32, "html5-win32", false, "HTML5 target hosted on Win32")
}

func (t *targetFlags) environment() (platform.Environment, error) {
	env, err := platform.Detect()
	if err != nil {
		if t.platform == "" {
			return env, fmt.Errorf("detecting platform: %w", err)
		}
		env = platform.Environment{Configuration: platform.Development}
	}
	return t.apply(env)
}

// apply overrides the detected env with whatever flags were given
func (t *targetFlags) apply(env platform.Environment) (platform.Environment, error) {
	if env.Configuration == "" {
		env.Configuration = platform.Development
	}

	if t.platform != "" {
		p, err := platform.ParsePlatform(t.platform)
		if err != nil {
			return env, err
		}
		env.Platform = p
	}
	if t.arch != "" {
		env.Architecture = t.arch
	}
	if t.configuration != "" {
		c, err := platform.ParseConfiguration(t.configuration)
		if err != nil {
			return env, err
		}
		env.Configuration = c
	}
	env.CompilerVersion = t.compiler
	env.Editor = t.editor
	env.HTML5Win32 = t.html5Win32

	return env, nil
}
