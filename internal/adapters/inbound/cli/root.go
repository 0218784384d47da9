package cli

import (
	"log/slog"

	"github.com/issuecheck/issuecheck/internal/logger"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions holds persistent flags shared by subcommands.
type globalOptions struct {
	verbose bool
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return logger.Discard()
	}
	return logger.New(cmd.ErrOrStderr(), true)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "issuecheck",
		Short:         "Check parsed issues against their expected values",
		Long:          "issuecheck runs case files that pair an issue produced by a log parser with the issue it is expected to equal, and reports the first field that differs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newVerifyCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
