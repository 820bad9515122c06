// Package pipeline is the concurrency core of fshunter (spec §4.5): a
// bounded worker pool that turns scan units into filtered, enriched
// FileRecords, preserving discovery order within a unit. Records are
// collected in memory and returned together once every unit has
// finished; nothing is streamed to the caller while the scan runs.
//
// Grounded on the teacher's files.go job/result channel worker pool
// (evaluateFilesForPlanningParallel / processFilesParallel), generalized
// from planning/copy semantics to the spec's stat -> tier1 -> enrich ->
// tier2 -> dedup/hash chain, and bounded additionally by
// golang.org/x/sync/semaphore the way weka-locar bounds its Explorer
// worker pool.
package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"fshunter/internal/dedup"
	"fshunter/internal/discover"
	"fshunter/internal/filter"
	"fshunter/internal/logging"
	"fshunter/internal/mimetype"
	"fshunter/internal/record"
)

// Options configures a single scan invocation.
type Options struct {
	Workers    int
	Cascade    filter.Cascade
	DedupMode  dedup.Mode
	DirCutoff  time.Time
	DeltaSpecs []record.DeltaSpec

	// OnUnitDone, when set, is invoked once a scan unit's records have
	// been fully computed, letting the caller drive a progress bar
	// (SPEC_FULL.md §2.1). It is called from worker goroutines and must
	// be safe for concurrent use.
	OnUnitDone func(unit discover.ScanUnit)
}

// Result is the outcome of one scan: the surviving records plus counters
// useful for the scan summary and metrics (spec §4.10/§6).
type Result struct {
	Records        []record.FileRecord
	TotalCandidates int
	Duration       time.Duration
}

// Run expands each root into scan units, fans work out across a bounded
// worker pool, and returns every FileRecord that survives the full
// cascade. Cancellation via ctx is cooperative at batch boundaries: a
// worker draining a scan unit finishes it, then stops accepting new
// units (spec §4.5).
func Run(ctx context.Context, roots []string, opts Options) (*Result, error) {
	start := time.Now()

	var units []discover.ScanUnit
	for _, root := range roots {
		u, err := discover.ExpandRoot(root)
		if err != nil {
			logging.Warn("pipeline: skipping root %s: %v", root, err)
			continue
		}
		units = append(units, u...)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	dedupFilter := dedup.New(opts.DedupMode)

	var mu sync.Mutex
	var allRecords []record.FileRecord
	var candidateCount int64
	var wg sync.WaitGroup

	for _, unit := range units {
		if err := sem.Acquire(ctx, 1); err != nil {
			break // cancellation observed at a batch boundary
		}
		wg.Add(1)
		go func(u discover.ScanUnit) {
			defer wg.Done()
			defer sem.Release(1)

			candidates := discover.WalkNative(u, opts.DirCutoff)
			recs := processUnit(u, candidates, opts, dedupFilter)

			mu.Lock()
			candidateCount += int64(len(candidates))
			allRecords = append(allRecords, recs...)
			mu.Unlock()

			if opts.OnUnitDone != nil {
				opts.OnUnitDone(u)
			}
		}(unit)
	}
	wg.Wait()

	return &Result{
		Records:         allRecords,
		TotalCandidates: int(candidateCount),
		Duration:        time.Since(start),
	}, nil
}

// processUnit runs the full tier0->tier1->enrich->tier2->dedup/hash
// cascade for every candidate discovered in a single scan unit,
// preserving discovery order in the returned slice.
func processUnit(unit discover.ScanUnit, candidates []discover.Candidate, opts Options, dd *dedup.Filter) []record.FileRecord {
	out := make([]record.FileRecord, 0, len(candidates))

	for _, c := range candidates {
		rec := record.NewFileRecord(c.Path, unit.BaseDir)

		if !opts.Cascade.Tier0.Keep(rec.Name, rec.RelativePath) {
			continue
		}

		rec.StatEnrich(c.Info)
		if !opts.Cascade.Tier1.Keep(rec.MTime, rec.SizeBytes) {
			continue
		}

		rec.ResolveOwner(c.Info)
		rec.MIMEType = mimetype.Detect(c.Path)
		if !opts.Cascade.Tier2.Keep(rec) {
			continue
		}

		for _, spec := range opts.DeltaSpecs {
			if spec.Matches(rec.FullPath) {
				spec.Enrich(&rec)
				break
			}
		}

		if opts.Cascade.NeedHash {
			rec.ContentHash = record.ComputeContentHash(c.Path)
			if rec.ContentHash == "" {
				logging.Debugf("pipeline: could not hash %s", c.Path)
			}
		}

		if !dd.Keep(rec) {
			continue
		}

		out = append(out, rec)
	}
	return out
}

// ExtensionKey returns a lowercased extension key for a record, mapping
// an empty extension to "(none)" per spec §4.10. The by_extension
// breakdown in internal/metrics keys on the extension as written, without
// lowercasing.
func ExtensionKey(rec record.FileRecord) string {
	if rec.Extension == "" {
		return "(none)"
	}
	return strings.ToLower(rec.Extension)
}
