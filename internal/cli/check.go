// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/jsbuild"
	"github.com/arc-language/jsbuild/pkg/build"
	"github.com/arc-language/jsbuild/pkg/locate"
)

var (
	checkTarget   targetFlags
	checkLibPaths []string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every planned library exists on disk",
	Long: `Resolve the build description for a target and look up every library
it links. System libraries provided by the platform SDK are skipped.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkTarget.register(checkCmd)
	checkCmd.Flags().StringSliceVarP(&checkLibPaths, "lib-path", "L", nil, "additional library search paths")
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := checkTarget.environment()
	if err != nil {
		return err
	}

	d := build.NewDescription()
	plan, err := jsbuild.Configure(config, env, d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !plan.Enabled {
		fmt.Fprintf(out, "Runtime is disabled for %s\n", env)
		return nil
	}

	found, missing := locate.Find(d, env.Platform, checkLibPaths...)

	fmt.Fprintf(out, "Libraries for %s:\n\n", env)
	for _, lib := range found {
		kind := "shared"
		if lib.IsStatic {
			kind = "static"
		}
		fmt.Fprintf(out, "  ✓ %-30s %s (%s)\n", lib.Ref, lib.Path, kind)
	}
	for _, ref := range missing {
		fmt.Fprintf(out, "  ✗ %s\n", ref)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%d of %d libraries not found", len(missing), len(found)+len(missing))
	}
	fmt.Fprintf(out, "\nAll %d libraries found\n", len(found))
	return nil
}
