package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routeguard/routeguard/internal/adapters/outbound/tui"
	"github.com/routeguard/routeguard/internal/domain"
)

func newApplyCmd() *cobra.Command {
	var (
		jsonOutput bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "apply [path]",
		Short: "Rewrite route files in place",
		Long:  "Back up every candidate route file, then transform and overwrite the ones that pass verification. Refuses a dirty git worktree unless --force is given.",
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

			report, err := newRunService().Apply(absPath, force)
			if err != nil {
				return fmt.Errorf("apply failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, domain.ModeApply))
			}

			return exitError(report.Stats)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full report as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Apply even when the git worktree is dirty")

	return cmd
}
