// Command fshunter is the filesystem inventory and diff tool described
// in this repository's SPEC_FULL.md.
package main

import (
	"os"

	"fshunter/internal/cli"
	"fshunter/internal/logging"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		logging.Logger.Error(err)
		os.Exit(1)
	}
}
