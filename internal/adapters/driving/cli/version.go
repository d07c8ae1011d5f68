package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	// Skips loading config and building services.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if short {
			fmt.Fprintln(out, version)
			return nil
		}
		fmt.Fprintf(out, "issuefeed version %s\n", version)
		fmt.Fprintf(out, "  go:  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  mcp: %s\n", mcp.Version)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the version")
	rootCmd.AddCommand(versionCmd)
}
