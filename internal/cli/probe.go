// internal/cli/probe.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/jsbuild/pkg/version"
)

var probeCmd = &cobra.Command{
	Use:   "probe [file]",
	Short: "Read the runtime version from its descriptor",
	Long: `Read the runtime version from its version descriptor.

The file may be the header itself or an SDK archive (.tar, .tar.xz, .nar,
.nar.xz) containing include/ChakraCoreVersion.h. Without an argument the
configured descriptor is used. A missing or unreadable descriptor reports
0.0.0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) error {
	path := config.VersionFilePath()
	if len(args) == 1 {
		path = args[0]
	}

	v := (&version.Prober{Logger: logger}).Probe(path)

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", v)
	if debug {
		fmt.Fprintf(cmd.OutOrStderr(), "descriptor: %s\n", path)
	}
	return nil
}
