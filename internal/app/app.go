// Package app implements the application layer for refcache.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/refcache/internal/engine/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	fingerprinter ports.Fingerprinter
	caches        ports.CacheProvider
	resolver      ports.ProjectResolver
	logger        ports.Logger
	telemetry     ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fingerprinter ports.Fingerprinter,
	caches ports.CacheProvider,
	resolver ports.ProjectResolver,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader:  loader,
		fingerprinter: fingerprinter,
		caches:        caches,
		resolver:      resolver,
		logger:        log,
		telemetry:     telemetry,
	}
}

// Options select the configuration and override parts of it.
type Options struct {
	// ConfigPath is an explicit config file. Empty means discovery from Root.
	ConfigPath string
	// Root is the directory discovery starts from. Empty means the working directory.
	Root string
	// NoCache disables every cache operation for this invocation.
	NoCache bool
	// PHPVersion overrides the configured PHP version target.
	PHPVersion string
	// Threads overrides the configured worker count when positive.
	Threads int
}

// Config loads the configuration and applies the overrides in opts.
func (a *App) Config(opts Options) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.Load(opts.ConfigPath)
	} else {
		root := opts.Root
		if root == "" {
			if root, err = os.Getwd(); err != nil {
				return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
			}
		}
		cfg, err = a.configLoader.Discover(root)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.NoCache {
		cfg.CacheDir = ""
	}
	if opts.PHPVersion != "" {
		cfg.PHPVersion = opts.PHPVersion
	}
	if opts.Threads > 0 {
		cfg.Threads = opts.Threads
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Status reports the on-disk state of every cache without changing it.
func (a *App) Status(opts Options) (*domain.CacheReport, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}
	return a.caches.Probe(cfg, a.fingerprinter.Fingerprint(cfg))
}

// Inspect loads one cache read-only. The boolean is false when a run would not use the cache.
func (a *App) Inspect(opts Options, kind domain.Kind) (any, bool, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, false, err
	}
	current := a.fingerprinter.Fingerprint(cfg)

	if kind == domain.KindConfig {
		report, err := a.caches.Probe(cfg, current)
		if err != nil {
			return nil, false, err
		}
		return report.Stored, report.Stored != "", nil
	}

	reader, err := a.caches.OpenReadOnly(cfg, current)
	if err != nil {
		return nil, false, err
	}
	return load(reader, kind)
}

func load(reader ports.CacheReader, kind domain.Kind) (any, bool, error) {
	switch kind {
	case domain.KindReferences:
		return unwrap(reader.LoadReferences())
	case domain.KindMethodMemberReferences:
		return unwrap(reader.LoadMethodMemberReferences())
	case domain.KindFileMemberReferences:
		return unwrap(reader.LoadFileMemberReferences())
	case domain.KindIssues:
		return unwrap(reader.LoadIssues())
	case domain.KindAnalyzedMethods:
		return unwrap(reader.LoadAnalyzedMethods())
	case domain.KindFileMaps:
		return unwrap(reader.LoadFileMaps())
	case domain.KindTypeCoverage:
		return unwrap(reader.LoadTypeCoverage())
	default:
		return nil, false, zerr.With(domain.ErrUnknownCacheKind, "cache", kind.String())
	}
}

func unwrap[T any](v T, ok bool, err error) (any, bool, error) {
	if err != nil || !ok {
		return nil, false, err
	}
	return v, true, nil
}

// Clear removes every cache file and returns the removed names.
func (a *App) Clear(opts Options) ([]string, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}
	if !cfg.CacheEnabled() {
		a.logger.Info("caching is disabled, nothing to clear")
		return nil, nil
	}

	removed, err := a.caches.Clear(cfg)
	for _, name := range removed {
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}
	return removed, err
}

// Impact describes which files the next run would analyze.
type Impact struct {
	// Full reports that every project file would be analyzed.
	Full bool
	// Files lists the files to analyze, sorted.
	Files []string
	// Total is the number of project files.
	Total int
}

// Impact computes the files affected by changed without running any analysis or writing any cache.
// Changed paths may be absolute or relative to the project root.
func (a *App) Impact(ctx context.Context, opts Options, changed []string) (*Impact, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}

	files, err := a.resolver.ProjectFiles(cfg)
	if err != nil {
		return nil, err
	}

	reader, err := a.caches.OpenReadOnly(cfg, a.fingerprinter.Fingerprint(cfg))
	if err != nil {
		return nil, err
	}
	snap, err := session.Load(ctx, reader, a.telemetry)
	if err != nil {
		return nil, err
	}

	targets, full := session.Plan(snap, files, projectPaths(cfg.Root, changed))
	return &Impact{Full: full, Files: targets, Total: len(files)}, nil
}

// Analyze runs analyzer over the project, reusing cached results for files outside the blast
// radius of changed. A nil changed analyzes everything.
func (a *App) Analyze(
	ctx context.Context,
	opts Options,
	changed []string,
	analyzer ports.FileAnalyzer,
) (*session.Result, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}

	files, err := a.resolver.ProjectFiles(cfg)
	if err != nil {
		return nil, err
	}

	cache := a.caches.Open(cfg, a.fingerprinter.Fingerprint(cfg))
	coordinator := session.New(cache, a.telemetry, a.logger, session.Options{Threads: cfg.Threads})
	return coordinator.Run(ctx, files, projectPaths(cfg.Root, changed), analyzer)
}

// projectPaths converts paths to the slash-separated root-relative form used as cache keys.
func projectPaths(root string, paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			if rel, err := filepath.Rel(root, p); err == nil {
				p = rel
			}
		}
		out = append(out, filepath.ToSlash(filepath.Clean(p)))
	}
	return out
}
