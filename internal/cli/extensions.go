// internal/cli/extensions.go
package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arc-language/jsbuild/pkg/extension"
)

var extensionsWait bool

var extensionsCmd = &cobra.Command{
	Use:   "extensions [dir]",
	Short: "Run the JavaScript extensions found under a scripts directory",
	Long: `Run every extension script (files matching extension*.js) found under dir.

Each script exports a function; a function it returns is called as cleanup
when the command exits. The default directory is Content/Scripts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtensions,
}

func init() {
	extensionsCmd.Flags().BoolVarP(&extensionsWait, "wait", "w", false, "keep extensions loaded until interrupted")
}

func runExtensions(cmd *cobra.Command, args []string) error {
	root := filepath.Join("Content", "Scripts")
	if len(args) == 1 {
		root = args[0]
	}

	r := &extension.Runner{Root: root, Logger: logger}
	cleanup, err := r.Run()
	defer cleanup()
	if err != nil {
		return err
	}

	if extensionsWait {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		logger.Info("waiting for interrupt")
		s := <-sig
		logger.Info("shutting down extensions", zap.Stringer("signal", s))
	}

	return nil
}
