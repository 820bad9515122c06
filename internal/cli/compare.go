package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fshunter/internal/config"
	"fshunter/internal/console"
	"fshunter/internal/diff"
	"fshunter/internal/inventory"
	"fshunter/internal/metrics"
	"fshunter/internal/record"
)

type compareFlags struct {
	source      string
	target      string
	outputDir   string
	join        bool
	bucketMins  int
}

func newCompareCommand() *cobra.Command {
	f := &compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two fshunter inventories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.source, "source", "", "path to the source (baseline) inventory CSV")
	fl.StringVar(&f.target, "target", "", "path to the target (current) inventory CSV")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "output root (defaults to OUTPUT_DIR or $HOME)")
	fl.BoolVar(&f.join, "join", false, "also run the full attribute-level join diff")
	fl.IntVar(&f.bucketMins, "bucket-minutes", 60, "interval for the optional time-bucketed NDJSON stream")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")
	return cmd
}

func runCompare(cmd *cobra.Command, f *compareFlags) error {
	source, err := inventory.ReadCSV(f.source)
	if err != nil {
		return fmt.Errorf("read source inventory: %w", err)
	}
	target, err := inventory.ReadCSV(f.target)
	if err != nil {
		return fmt.Errorf("read target inventory: %w", err)
	}

	outputRoot := f.outputDir
	if outputRoot == "" {
		outputRoot = config.OutputDir()
	}
	dir, err := inventory.OutputDir(outputRoot, "compare", time.Now())
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := copyInventory(dir+"/s_result.csv", source); err != nil {
		return err
	}
	if err := copyInventory(dir+"/t_result.csv", target); err != nil {
		return err
	}

	pathSet := diff.PathSet(source, target)
	if err := diff.WritePathSetCSV(dir+"/delta.csv", pathSet); err != nil {
		return fmt.Errorf("write path-set diff: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	rows := []console.SummaryRow{
		{Label: "Added (+)", Value: console.FormatCount(pathSet.Added)},
		{Label: "Removed (-)", Value: console.FormatCount(pathSet.Removed)},
		{Label: "Unchanged", Value: console.FormatCount(pathSet.Unchanged)},
	}

	if f.join {
		comparisonRows, err := diff.Join(source, target)
		if err != nil {
			return fmt.Errorf("run join diff: %w", err)
		}
		if err := diff.WriteComparisonCSV(dir+"/comparison.csv", comparisonRows); err != nil {
			return fmt.Errorf("write comparison csv: %w", err)
		}

		m := metrics.ComputeComparison(comparisonRows)
		if err := writeJSON(dir+"/delta_metrics.json", m); err != nil {
			return fmt.Errorf("write delta metrics: %w", err)
		}
		if err := metrics.WriteBucketNDJSON(dir+"/metrics.jsonl", comparisonRows, f.bucketMins); err != nil {
			return fmt.Errorf("write bucketed metrics: %w", err)
		}

		rows = append(rows,
			console.SummaryRow{Label: "Match rate", Value: fmt.Sprintf("%.4f", m.Overview.MatchRate)},
			console.SummaryRow{Label: "Total comparison rows", Value: console.FormatCount(m.Overview.TotalRows)},
		)
	}

	if verbose {
		console.PrintSummaryTable("Compare summary", rows)
	}
	console.PrintSuccess("compare complete: %s", dir)
	return nil
}

// copyInventory re-serializes an already-loaded inventory to path, used
// to produce compare's s_result.csv/t_result.csv alongside the diff.
func copyInventory(path string, recs []record.FileRecord) error {
	w, err := inventory.Open(path, inventory.FormatCSV, false)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			w.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return w.Close()
}
