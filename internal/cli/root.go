package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/airseal/airseal/pkg/buildinfo"
)

// Execute runs the airseal CLI and returns an error if any command fails.
//
// The function sets up the root command with the analyze and build
// subcommands, configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "airseal",
		Short:        "AirSeal packages a source file and its dependencies into a runnable image",
		Long:         `AirSeal analyzes a source file, discovers its direct and transitive dependencies, synthesizes the build manifest for its language, and can build the result into a portable container image artifact.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBuildCmd())

	return root.ExecuteContext(ctx)
}
