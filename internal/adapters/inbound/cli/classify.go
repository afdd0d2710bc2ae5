package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routeguard/routeguard/internal/adapters/outbound/tui"
)

func newClassifyCmd() *cobra.Command {
	var (
		jsonOutput  bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Show the pattern and category of a single route file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath := args[0]

			absProject, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving project path: %w", err)
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", filePath, err)
			}

			ins, err := newRunService().Inspect(absProject, filepath.ToSlash(filePath), string(data))
			if err != nil {
				return fmt.Errorf("classify failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ins)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderInspection(ins))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root used for config lookup")

	return cmd
}
