package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/issuecheck/issuecheck/internal/adapters/outbound/casefile"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/config"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/gitinfo"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/history"
	"github.com/issuecheck/issuecheck/internal/adapters/outbound/tui"
	"github.com/issuecheck/issuecheck/internal/application"
	"github.com/issuecheck/issuecheck/internal/domain"
	"github.com/spf13/cobra"
)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minPassRate int
		dump        bool
		caseFile    string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Run the project's issue case files",
		Long:  "Discover case files in a project, check every actual issue against its expected issue, and report the first mismatching field of each failing case.",
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

			hist := history.New()
			svc := application.NewVerifyService(
				config.New(),
				casefile.New(),
				gitinfo.New(),
				hist,
				opts.logger(cmd),
			)

			var report *domain.RunReport
			if caseFile != "" {
				report, err = svc.VerifyFile(absPath, caseFile)
			} else {
				report, err = svc.Verify(absPath)
			}
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report, tui.Options{Dump: dump}))
			}

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			}

			if ciMode {
				threshold := minPassRate
				if !cmd.Flags().Changed("min") {
					cfg, err := svc.Config(absPath)
					if err != nil {
						return err
					}
					if cfg.MinPassRate > 0 {
						threshold = cfg.MinPassRate
					}
				}
				if report.PassRate < threshold {
					return fmt.Errorf("pass rate %d%% is below minimum %d%%", report.PassRate, threshold)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the pass rate is below --min (or min_pass_rate)")
	cmd.Flags().IntVar(&minPassRate, "min", 100, "Minimum pass rate for CI mode")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the actual issue of every failing case")
	cmd.Flags().StringVar(&caseFile, "case", "", "Run a single case file (relative to the project path)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show recorded run history")

	return cmd
}
