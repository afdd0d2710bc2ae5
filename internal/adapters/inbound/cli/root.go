package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "routeguard",
		Short:         "Inject rate-limit wrappers into API route handlers",
		Long:          "RouteGuard rewrites Next.js API route-handler files to enforce rate limiting: it classifies each handler's shape, assigns a policy category from the route path, and wraps the handler without changing its body.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newClassifyCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
