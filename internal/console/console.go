// Package console renders the ambient terminal output shared by both
// subcommands: the startup banner, progress bars and summary tables,
// grounded on the teacher's ui.go/backup.go console styling.
package console

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

const banner = `
  __         _                 _
 / _|___| |__  _   _ _ __ | |_ ___ _ __
| |_/ __| '_ \| | | | '_ \| __/ _ \ '__|
|  _\__ \ | | | |_| | | | | ||  __/ |
|_| |___/_| |_|\__,_|_| |_|\__\___|_|

filesystem inventory and diff
`

// PrintBanner prints the startup banner the way ui.go:printBanner does.
func PrintBanner() {
	color.New(color.FgCyan, color.Bold).Println(banner)
}

// NewScanBar builds a per-target progress bar the way backup.go's
// planning/execution bars do.
func NewScanBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// PrintSuccess and PrintError mirror the teacher's pass/fail coloring.
func PrintSuccess(format string, args ...interface{}) {
	color.New(color.FgGreen, color.Bold).Printf(format+"\n", args...)
}

func PrintError(format string, args ...interface{}) {
	color.New(color.FgRed, color.Bold).Printf(format+"\n", args...)
}

// SummaryRow is one row of the scan-result console summary table.
type SummaryRow struct {
	Label string
	Value string
}

// PrintSummaryTable renders a two-column summary with tablewriter.
func PrintSummaryTable(title string, rows []SummaryRow) {
	color.New(color.FgYellow, color.Bold).Println(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	for _, r := range rows {
		table.Append([]string{r.Label, r.Value})
	}
	table.Render()
}

// FormatBytes renders a byte count in human-readable form, e.g. "1.2 MB".
func FormatBytes(n int64) string {
	return humanize.Bytes(uint64(n))
}

// FormatCount renders an integer with thousands separators, e.g. "12,345".
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
