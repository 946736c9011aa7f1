package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ib-77/stepkit/internal/logging"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

type rootFlags struct {
	verbose bool
	quiet   bool
	noColor bool
}

// NewRootCmd builds the stepkit command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "stepkit",
		Short: "Chainable value pipelines and small math helpers",
		Long: `stepkit runs values through chains of transformation steps, keeping every
attempt in a history, and exposes the toolkit's math helpers on the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envBool(cmd.Flags(), "verbose", "STEPKIT_VERBOSE", &flags.verbose)
			envBool(cmd.Flags(), "quiet", "STEPKIT_QUIET", &flags.quiet)
			envBool(cmd.Flags(), "no-color", "NO_COLOR", &flags.noColor)

			logging.Setup(flags.verbose, flags.quiet, os.Getenv("STEPKIT_LOG_FORMAT") == "json")

			if flags.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug output (env: STEPKIT_VERBOSE)")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only log errors (env: STEPKIT_QUIET)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output (env: NO_COLOR)")

	cmd.AddCommand(newDemoCmd(), newMathCmd(), newVersionCmd())
	return cmd
}

// envBool turns target on when the flag was not given and env is set.
func envBool(fs *pflag.FlagSet, flag, env string, target *bool) {
	if !fs.Changed(flag) && os.Getenv(env) != "" {
		*target = true
	}
}

// Execute runs the command tree with the process arguments and returns the exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
