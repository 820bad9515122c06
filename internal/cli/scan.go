package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"fshunter/internal/config"
	"fshunter/internal/console"
	"fshunter/internal/dedup"
	"fshunter/internal/discover"
	"fshunter/internal/filter"
	"fshunter/internal/inventory"
	"fshunter/internal/logging"
	"fshunter/internal/metrics"
	"fshunter/internal/pattern"
	"fshunter/internal/pipeline"
	"fshunter/internal/record"
	"fshunter/internal/timeparse"
)

type scanFlags struct {
	basePath    string
	paths       []string
	pathList    string
	deltaCSV    string
	scanStart   string
	scanEnd     string
	lookback    string
	dayStart    string
	dayEnd      string
	filePattern string
	pathPattern string
	minSize     int64
	maxSize     int64
	unique      string
	outputFmt   string
	outputDir   string
	workers     int
	interactive bool
}

func newScanCommand() *cobra.Command {
	f := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan one or more roots and write a filesystem inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.basePath, "base-path", "", "single scan root")
	fl.StringArrayVar(&f.paths, "paths", nil, "repeatable scan root (may be passed multiple times)")
	fl.StringVar(&f.pathList, "path-list", "", "newline-delimited file of scan roots")
	fl.StringVar(&f.deltaCSV, "delta-csv", "", "delta-manifest CSV supplying scan roots and enrichment")
	fl.StringVar(&f.scanStart, "scan-start", "", "inclusive mtime lower bound (YYYY[-MM[-DD]])")
	fl.StringVar(&f.scanEnd, "scan-end", "", "inclusive mtime upper bound (YYYY[-MM[-DD]])")
	fl.StringVar(&f.lookback, "lookback", "1H", "relative duration scanned instead of an explicit range")
	fl.StringVar(&f.dayStart, "day-start", "00:00:00", "time-of-day window lower bound")
	fl.StringVar(&f.dayEnd, "day-end", "23:59:59", "time-of-day window upper bound")
	fl.StringVar(&f.filePattern, "file-pattern", "", "glob matched against each file's basename")
	fl.StringVar(&f.pathPattern, "path-pattern", "", "glob matched against each file's relative path")
	fl.Int64Var(&f.minSize, "min-size", 0, "minimum size in bytes")
	fl.Int64Var(&f.maxSize, "max-size", 0, "maximum size in bytes (0 = unbounded)")
	fl.StringVar(&f.unique, "unique", "namepattern", "dedup mode: content|namepattern")
	fl.StringVar(&f.outputFmt, "output-format", "csv", "inventory format: csv|jsonl")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "output root (defaults to OUTPUT_DIR or $HOME)")
	fl.IntVarP(&f.workers, "workers", "w", 4, "worker pool size")
	fl.BoolVar(&f.interactive, "interactive", false, "prompt for root/dedup/format instead of flags")

	return cmd
}

func resolveTargets(f *scanFlags) ([]string, []record.DeltaSpec, error) {
	modes := 0
	if f.basePath != "" {
		modes++
	}
	if len(f.paths) > 0 {
		modes++
	}
	if f.pathList != "" {
		modes++
	}
	if f.deltaCSV != "" {
		modes++
	}
	if modes != 1 {
		return nil, nil, fmt.Errorf("exactly one of --base-path, --paths, --path-list, --delta-csv is required")
	}

	switch {
	case f.basePath != "":
		return []string{f.basePath}, nil, nil
	case len(f.paths) > 0:
		return f.paths, nil, nil
	case f.pathList != "":
		roots, err := record.LoadPathList(f.pathList)
		return roots, nil, err
	default:
		specs, err := record.LoadDeltaManifest(f.deltaCSV)
		if err != nil {
			return nil, nil, err
		}
		return record.ScanRoots(specs), specs, nil
	}
}

func buildCascade(f *scanFlags) (filter.Cascade, error) {
	var cascade filter.Cascade

	if f.filePattern != "" {
		m, err := pattern.Compile(pattern.KindGlob, pattern.TargetName, f.filePattern)
		if err != nil {
			return cascade, err
		}
		cascade.Tier0.NameMatchers = append(cascade.Tier0.NameMatchers, m)
	}
	if f.pathPattern != "" {
		m, err := pattern.Compile(pattern.KindGlob, pattern.TargetPath, f.pathPattern)
		if err != nil {
			return cascade, err
		}
		cascade.Tier0.PathMatchers = append(cascade.Tier0.PathMatchers, m)
	}

	if f.scanStart != "" || f.scanEnd != "" {
		if f.scanStart != "" {
			t, err := timeparse.ParseDate(f.scanStart)
			if err != nil {
				return cascade, err
			}
			cascade.Tier1.DateStart = t
		}
		if f.scanEnd != "" {
			t, err := timeparse.ParseDate(f.scanEnd)
			if err != nil {
				return cascade, err
			}
			cascade.Tier1.DateEnd = t
		}
	} else if f.lookback != "" {
		d, err := timeparse.ParseDuration(f.lookback)
		if err != nil {
			return cascade, err
		}
		cascade.Tier1.DateStart = time.Now().Add(-d)
	}

	if f.dayStart != "" && f.dayEnd != "" {
		start, err := timeparse.ParseTimeOfDay(f.dayStart)
		if err != nil {
			return cascade, err
		}
		end, err := timeparse.ParseTimeOfDay(f.dayEnd)
		if err != nil {
			return cascade, err
		}
		cascade.Tier1.TimeWindow = &timeparse.Window{Start: start, End: end}
	}

	cascade.Tier1.MinSize = f.minSize
	cascade.Tier1.MaxSize = f.maxSize

	return cascade, nil
}

func runScan(cmd *cobra.Command, f *scanFlags) error {
	if f.interactive {
		root, dedupMode, outputFmt := console.ScanWizard()
		f.basePath = root
		f.unique = dedupMode
		f.outputFmt = outputFmt
	}

	roots, deltaSpecs, err := resolveTargets(f)
	if err != nil {
		logging.Fatalf("scan: %v", err)
		return err
	}

	cascade, err := buildCascade(f)
	if err != nil {
		logging.Fatalf("scan: invalid filter configuration: %v", err)
		return err
	}

	var dedupMode dedup.Mode
	switch f.unique {
	case "content":
		dedupMode = dedup.ModeContent
	case "namepattern":
		dedupMode = dedup.ModeNamePattern
	default:
		logging.Fatalf("scan: unknown --unique mode %q", f.unique)
		return fmt.Errorf("unknown --unique mode %q", f.unique)
	}
	cascade.NeedHash = dedupMode == dedup.ModeContent && config.HashEnabled()

	var outFormat inventory.Format
	switch f.outputFmt {
	case "csv":
		outFormat = inventory.FormatCSV
	case "jsonl":
		outFormat = inventory.FormatNDJSON
	default:
		logging.Fatalf("scan: unknown --output-format %q", f.outputFmt)
		return fmt.Errorf("unknown --output-format %q", f.outputFmt)
	}

	outputRoot := f.outputDir
	if outputRoot == "" {
		outputRoot = config.OutputDir()
	}

	scanStart := time.Now()
	dir, err := inventory.OutputDir(outputRoot, "scan", scanStart)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	invocationID := uuid.New().String()
	logging.Logger.Infof("scan %s: %d root(s), workers=%d, dedup=%s", invocationID, len(roots), f.workers, dedupMode)

	verbose, _ := cmd.Flags().GetBool("verbose")
	onUnitDone, closeBars := newScanProgress(roots, verbose)
	defer closeBars()

	opts := pipeline.Options{
		Workers:    f.workers,
		Cascade:    cascade,
		DedupMode:  dedupMode,
		DeltaSpecs: deltaSpecs,
		OnUnitDone: onUnitDone,
	}

	result, err := pipeline.Run(context.Background(), roots, opts)
	if err != nil {
		return fmt.Errorf("run scan pipeline: %w", err)
	}

	hasDelta := len(deltaSpecs) > 0
	resultsPath := dir + "/results." + string(outFormat)
	writer, err := inventory.Open(resultsPath, outFormat, hasDelta)
	if err != nil {
		return fmt.Errorf("open inventory writer: %w", err)
	}
	for _, rec := range result.Records {
		if err := writer.Write(rec); err != nil {
			writer.Close()
			return fmt.Errorf("write inventory record: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close inventory writer: %w", err)
	}

	scanEnd := time.Now()
	if err := inventory.WriteSummary(dir+"/_summary.csv", scanEnd, scanStart, scanEnd, roots,
		writer.Count(), writer.SizeSum(), writer.UniqueExtensions()); err != nil {
		return fmt.Errorf("write scan summary: %w", err)
	}

	m := metrics.ComputeInventory(result.Records, result.Duration, 60)
	if err := writeJSON(dir+"/metrics.json", m); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	if verbose {
		console.PrintSummaryTable("Scan summary", []console.SummaryRow{
			{Label: "Total files", Value: console.FormatCount(writer.Count())},
			{Label: "Total size", Value: console.FormatBytes(writer.SizeSum())},
			{Label: "Unique extensions", Value: console.FormatCount(writer.UniqueExtensions())},
			{Label: "Output", Value: dir},
		})
	}
	console.PrintSuccess("scan complete: %d files -> %s", writer.Count(), dir)
	return nil
}

// newScanProgress builds the live scan progress display (SPEC_FULL.md
// §2.1): one schollz/progressbar/v3 bar per scan unit when verbose is
// set (grounded on original_source/scanner.py's per-directory progress
// reporting), or a single aggregate bar otherwise. It returns the
// per-unit completion callback to wire into pipeline.Options.OnUnitDone,
// plus a func to finish/clear every bar once the scan is done.
func newScanProgress(roots []string, verbose bool) (func(discover.ScanUnit), func()) {
	var units []discover.ScanUnit
	for _, root := range roots {
		u, err := discover.ExpandRoot(root)
		if err != nil {
			logging.Warn("scan: skipping root %s while sizing progress: %v", root, err)
			continue
		}
		units = append(units, u...)
	}

	var mu sync.Mutex

	if verbose {
		bars := make(map[string]*progressbar.ProgressBar, len(units))
		for _, u := range units {
			bars[u.Path] = console.NewScanBar(1, u.Path)
		}
		onDone := func(u discover.ScanUnit) {
			mu.Lock()
			defer mu.Unlock()
			if b, ok := bars[u.Path]; ok {
				b.Finish()
			}
		}
		closeAll := func() {
			mu.Lock()
			defer mu.Unlock()
			for _, b := range bars {
				b.Finish()
			}
		}
		return onDone, closeAll
	}

	bar := console.NewScanBar(len(units), "scanning")
	onDone := func(discover.ScanUnit) {
		mu.Lock()
		defer mu.Unlock()
		bar.Add(1)
	}
	closeAll := func() {
		mu.Lock()
		defer mu.Unlock()
		bar.Finish()
	}
	return onDone, closeAll
}
