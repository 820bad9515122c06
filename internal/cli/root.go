// Package cli wires fshunter's two subcommands with spf13/cobra,
// matching the teacher's root-command construction in main.go.
package cli

import (
	"github.com/spf13/cobra"

	"fshunter/internal/config"
	"fshunter/internal/logging"
)

// NewRootCommand builds the `fshunter` root command with `scan` and
// `compare` attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fshunter",
		Short: "Filesystem inventory and diff tool",
		Long: `fshunter enumerates files beneath one or more root directories, applies a
layered filter cascade, produces a uniform metadata record per surviving
file, and can diff two such inventories.`,
		Example: `  # Scan everything under /data modified in the last hour
  fshunter scan --base-path /data --lookback 1H

  # Compare two previously written inventories
  fshunter compare --source s.csv --target t.csv --join`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				logging.Warn("cli: .env load failed: %v", err)
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			logging.SetVerbose(verbose)
			return nil
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "show debug-level logging and a console summary")

	root.AddCommand(newScanCommand())
	root.AddCommand(newCompareCommand())
	return root
}
