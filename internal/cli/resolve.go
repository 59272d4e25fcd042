// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/jsbuild"
	"github.com/arc-language/jsbuild/pkg/build"
)

var (
	resolveTarget targetFlags
	resolveFormat string
	resolvePlan   bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the runtime build description for a target",
	Long: `Resolve the runtime build description for a target.

Probes the runtime version descriptor, selects the libraries for the target
platform and configuration, and prints the resulting build description.`,
	Example: `  jsbuild resolve
  jsbuild resolve --platform Win64 --configuration Debug
  jsbuild resolve -p Linux --format flags`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveTarget.register(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "yaml", "output format (yaml, json, flags)")
	resolveCmd.Flags().BoolVar(&resolvePlan, "plan", false, "print the resolved plan instead of the build description")
}

func runResolve(cmd *cobra.Command, args []string) error {
	env, err := resolveTarget.environment()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if resolvePlan {
		plan, _, err := jsbuild.Resolve(config, env)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(plan)
	}

	d := build.NewDescription()
	if _, err := jsbuild.Configure(config, env, d); err != nil {
		return err
	}

	switch resolveFormat {
	case "yaml", "yml":
		return d.WriteYAML(out)
	case "json":
		return d.WriteJSON(out)
	case "flags":
		return d.WriteFlags(out)
	default:
		return fmt.Errorf("unknown format %q", resolveFormat)
	}
}
