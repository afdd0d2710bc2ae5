package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routeguard/routeguard/internal/adapters/outbound/backup"
	"github.com/routeguard/routeguard/internal/adapters/outbound/config"
	"github.com/routeguard/routeguard/internal/adapters/outbound/gitinfo"
	"github.com/routeguard/routeguard/internal/adapters/outbound/history"
	"github.com/routeguard/routeguard/internal/adapters/outbound/scanner"
	"github.com/routeguard/routeguard/internal/adapters/outbound/tui"
	"github.com/routeguard/routeguard/internal/application"
	"github.com/routeguard/routeguard/internal/domain"
)

// newRunService wires the standard set of outbound adapters.
func newRunService() *application.RunService {
	sc := scanner.New()
	return application.NewRunService(
		sc,
		config.New(),
		sc,
		backup.New(),
		gitinfo.New(),
		history.New(),
	)
}

func newPreviewCmd() *cobra.Command {
	var (
		jsonOutput bool
		noDiffs    bool
	)

	cmd := &cobra.Command{
		Use:   "preview [path]",
		Short: "Show the transformations a run would make, without writing",
		Long:  "Classify every route file, compute its rate-limit rewrite, and print diffs plus a run summary. No file is modified.",
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

			report, err := newRunService().Preview(absPath)
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				if !noDiffs {
					for _, r := range report.Results {
						if r.Status == domain.StatusSuccess {
							fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiff(r.Output))
						}
					}
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, domain.ModePreview))
			}

			return exitError(report.Stats)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full report as JSON")
	cmd.Flags().BoolVar(&noDiffs, "no-diffs", false, "Suppress per-file diffs, print only the summary")

	return cmd
}

// exitError turns per-file failures into a nonzero process exit without
// aborting mid-run: the summary has already been printed by the time this
// is evaluated.
func exitError(stats *domain.RunStats) error {
	if n := stats.Failed + stats.Errors; n > 0 {
		return fmt.Errorf("%d of %d files failed", n, stats.Total())
	}
	return nil
}
