package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/issuecheck/issuecheck/internal/adapters/outbound/config"
	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		cases         []string
		recordHistory bool
		minPassRate   int
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .issuecheck.yaml configuration file",
		Long:  "Create a .issuecheck.yaml that tells issuecheck where to find case files.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.ProjectConfig{
				Cases:         cases,
				RecordHistory: recordHistory,
				MinPassRate:   minPassRate,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := config.Render(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&cases, "cases", []string{domain.DefaultCasePattern}, "Glob patterns selecting case files")
	cmd.Flags().BoolVar(&recordHistory, "history", true, "Record a summary of every run")
	cmd.Flags().IntVar(&minPassRate, "min", 100, "Minimum pass rate for CI mode")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}
