// internal/cli/profiles.go
package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arc-language/jsbuild/pkg/platform"
	"github.com/arc-language/jsbuild/pkg/profile"
)

var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"ls"},
	Short:   "List the built-in decision tables",
	Args:    cobra.NoArgs,
	RunE:    runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range profile.Names() {
		p, err := profile.Get(name)
		if err != nil {
			return fmt.Errorf("loading profile %s: %w", name, err)
		}

		marker := " "
		if name == config.Profile {
			marker = "*"
		}
		platforms := lo.Map(p.Supported(), func(pl platform.Platform, _ int) string { return pl.String() })

		fmt.Fprintf(out, "%s %-10s %s\n", marker, name, p.Description)
		fmt.Fprintf(out, "    platforms: %s\n", strings.Join(platforms, ", "))
	}

	return nil
}
