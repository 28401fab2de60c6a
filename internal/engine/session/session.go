// Package session coordinates one analysis run over the persistent caches.
//
// A run loads every cache once, fans file analysis out to workers that only see a read-only
// Snapshot, merges the results on a single goroutine and writes every cache back once.
package session

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configure a Coordinator.
type Options struct {
	// Threads is the number of concurrent analysis workers. Zero means one per CPU.
	Threads int
}

// Result summarizes a finished run.
type Result struct {
	// Full reports whether every file was analyzed.
	Full bool
	// Analyzed lists the files analyzed this run, sorted.
	Analyzed []string
	// Reused lists the files whose cached results were kept, sorted.
	Reused []string
	// Issues holds the merged diagnostics of every project file.
	Issues domain.DiagnosticSet
	// Coverage is the project-wide type coverage.
	Coverage domain.Coverage
}

// Coordinator owns the analysis cache for the duration of one run.
type Coordinator struct {
	cache     ports.AnalysisCache
	telemetry ports.Telemetry
	logger    ports.Logger
	threads   int

	snapshot *Snapshot
}

// New creates a Coordinator for cache.
func New(cache ports.AnalysisCache, telemetry ports.Telemetry, logger ports.Logger, opts Options) *Coordinator {
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Coordinator{
		cache:     cache,
		telemetry: telemetry,
		logger:    logger,
		threads:   threads,
	}
}

// Load reads every cache into a Snapshot. It runs at most once per Coordinator.
func (c *Coordinator) Load(ctx context.Context) (*Snapshot, error) {
	if c.snapshot != nil {
		return c.snapshot, nil
	}
	snap, err := Load(ctx, c.cache, c.telemetry)
	if err != nil {
		return nil, err
	}
	c.snapshot = snap
	return snap, nil
}

// Load performs the seven cache loads in a fixed order. A corrupted cache aborts.
func Load(ctx context.Context, reader ports.CacheReader, telemetry ports.Telemetry) (*Snapshot, error) {
	_, vertex := telemetry.Record(ctx, "load caches")
	snap := &Snapshot{
		fingerprintChanged: reader.FingerprintChanged(),
		available:          make(map[domain.Kind]bool, len(domain.AllKinds())),
	}

	err := firstError(
		loadInto(snap, domain.KindReferences, &snap.references, reader.LoadReferences),
		loadInto(snap, domain.KindMethodMemberReferences, &snap.methodReferences, reader.LoadMethodMemberReferences),
		loadInto(snap, domain.KindFileMemberReferences, &snap.memberReferences, reader.LoadFileMemberReferences),
		loadInto(snap, domain.KindIssues, &snap.issues, reader.LoadIssues),
		loadInto(snap, domain.KindAnalyzedMethods, &snap.analyzedMethods, reader.LoadAnalyzedMethods),
		loadInto(snap, domain.KindFileMaps, &snap.fileMaps, reader.LoadFileMaps),
		loadInto(snap, domain.KindTypeCoverage, &snap.typeCoverage, reader.LoadTypeCoverage),
	)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	if snap.fingerprintChanged {
		vertex.Log(domain.LogLevelInfo, "configuration changed, gated caches discarded")
	}
	for _, kind := range reusedKinds {
		if !snap.available[kind] {
			vertex.Log(domain.LogLevelDebug, kind.String()+" unavailable, incremental reuse disabled")
		}
	}
	return snap, nil
}

// loadInto returns a deferred load so that every load runs in declaration order and the first
// error stops the rest. A successful load marks kind available in snap.
func loadInto[T any](snap *Snapshot, kind domain.Kind, dst *T, load func() (T, bool, error)) func() error {
	return func() error {
		v, ok, err := load()
		if err != nil {
			return err
		}
		if ok {
			*dst = v
			snap.available[kind] = true
		}
		return nil
	}
}

func firstError(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Plan returns the files a run must analyze. Every file is analyzed when the snapshot cannot
// be trusted for incremental reuse or when changed is nil. Otherwise the blast radius of
// changed is analyzed, plus files the reference graph has never seen.
func Plan(snap *Snapshot, files, changed []string) (analyze []string, full bool) {
	if changed == nil || !snap.Incremental() {
		return slices.Clone(files), true
	}

	affected := make(map[string]struct{})
	for _, file := range snap.Affected(changed) {
		affected[file] = struct{}{}
	}
	for _, file := range files {
		_, isAffected := affected[file]
		_, known := snap.references[file]
		if isAffected || !known {
			analyze = append(analyze, file)
		}
	}
	return analyze, false
}

// Run analyzes the planned files with analyzer, merges the results with the snapshot and
// stores every cache. files is the complete, sorted project file list.
func (c *Coordinator) Run(
	ctx context.Context,
	files []string,
	changed []string,
	analyzer ports.FileAnalyzer,
) (*Result, error) {
	snap, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	targets, full := Plan(snap, files, changed)
	reused := make(map[string]struct{}, len(files))
	for _, file := range files {
		reused[file] = struct{}{}
	}
	for _, file := range targets {
		delete(reused, file)
	}
	c.logger.Info(fmt.Sprintf("analyzing %d of %d files", len(targets), len(files)))

	if len(reused) > 0 {
		_, vertex := c.telemetry.Record(ctx, "reuse cached results")
		vertex.Cached()
		vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%d files unchanged", len(reused)))
		vertex.Complete(nil)
	}

	results, err := c.analyze(ctx, snap, targets, analyzer)
	if err != nil {
		return nil, err
	}

	merged := merge(snap, files, reused, results)
	c.store(ctx, merged)

	res := &Result{
		Full:     full,
		Analyzed: slices.Sorted(slices.Values(targets)),
		Issues:   merged.issues,
		Coverage: merged.typeCoverage.Sum(),
	}
	for _, file := range files {
		if _, ok := reused[file]; ok {
			res.Reused = append(res.Reused, file)
		}
	}
	slices.Sort(res.Reused)
	return res, nil
}

// analyze fans targets out to the workers. Each worker writes only its own result slot.
func (c *Coordinator) analyze(
	ctx context.Context,
	snap *Snapshot,
	targets []string,
	analyzer ports.FileAnalyzer,
) ([]ports.FileResult, error) {
	results := make([]ports.FileResult, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.threads)

	for i, file := range targets {
		g.Go(func() error {
			fileCtx, vertex := c.telemetry.Record(ctx, file)
			res, err := analyzer.AnalyzeFile(fileCtx, file, snap)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, domain.ErrAnalysisFailed.Error()), "file", file)
				vertex.Complete(err)
				return err
			}
			res.File = file
			results[i] = res
			vertex.Complete(nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Coordinator) store(ctx context.Context, merged caches) {
	_, vertex := c.telemetry.Record(ctx, "store caches")
	defer vertex.Complete(nil)

	c.cache.StoreReferences(merged.references)
	c.cache.StoreMethodMemberReferences(merged.methodReferences)
	c.cache.StoreFileMemberReferences(merged.memberReferences)
	c.cache.StoreIssues(merged.issues)
	c.cache.StoreAnalyzedMethods(merged.analyzedMethods)
	c.cache.StoreFileMaps(merged.fileMaps)
	c.cache.StoreTypeCoverage(merged.typeCoverage)
}
