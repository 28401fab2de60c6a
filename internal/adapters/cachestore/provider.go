package cachestore

import (
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/refcache/internal/adapters/cachedir"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheProvider = (*Provider)(nil)

// Provider opens the analysis caches of a configuration.
type Provider struct {
	logger ports.Logger
}

// NewProvider creates a Provider reporting write failures through logger.
func NewProvider(logger ports.Logger) *Provider {
	return &Provider{logger: logger}
}

// Open compares and commits the fingerprint, then returns the cache of the run.
func (p *Provider) Open(cfg *domain.Config, current domain.Fingerprint) ports.AnalysisCache {
	if !cfg.CacheEnabled() {
		return newCache(nil, CompareFingerprint(nil, current), p.logger)
	}

	dir, err := cachedir.Open(cfg.CacheDir)
	if err != nil {
		p.logger.Warn("cache disabled for this run: " + err.Error())
		return newCache(nil, CompareFingerprint(nil, current), p.logger)
	}

	guard := CompareFingerprint(dir, current)
	if err := guard.Commit(); err != nil {
		p.logger.Warn("fingerprint not saved, the next run starts cold: " + err.Error())
	}
	return newCache(dir, guard, p.logger)
}

// OpenReadOnly returns a cache that can only be loaded from. Nothing on disk changes.
func (p *Provider) OpenReadOnly(cfg *domain.Config, current domain.Fingerprint) (ports.CacheReader, error) {
	dir, err := p.existing(cfg)
	if err != nil {
		return nil, err
	}
	return newCache(dir, CompareFingerprint(dir, current), p.logger), nil
}

// Probe reports the state of every cache file.
func (p *Provider) Probe(cfg *domain.Config, current domain.Fingerprint) (*domain.CacheReport, error) {
	dir, err := p.existing(cfg)
	if err != nil {
		return nil, err
	}

	guard := CompareFingerprint(dir, current)
	cache := newCache(dir, guard, p.logger)
	stored, _ := guard.Stored()

	report := &domain.CacheReport{
		Current:            current,
		Stored:             stored,
		FingerprintChanged: guard.Changed(),
	}
	if cfg.CacheEnabled() {
		report.Dir = cfg.CacheDir
	}

	for _, kind := range domain.AllKinds() {
		report.Entries = append(report.Entries, probeEntry(dir, guard, cache, kind))
	}
	return report, nil
}

func probeEntry(dir billy.Filesystem, guard *Guard, cache *Cache, kind domain.Kind) domain.CacheEntryStatus {
	entry := domain.CacheEntryStatus{Kind: kind}
	if dir == nil {
		entry.Reason = "disabled"
		return entry
	}

	info, err := dir.Stat(kind.FileName())
	if err != nil {
		entry.Reason = "missing"
		return entry
	}
	entry.Present = true
	entry.Size = info.Size()

	if kind.Policy() == domain.PolicyGated && guard.Changed() {
		entry.Reason = "fingerprint changed"
		return entry
	}

	ok, err := cache.load(kind)
	switch {
	case err != nil:
		entry.Reason = "corrupted"
	case !ok:
		entry.Reason = "unreadable or outdated schema"
	default:
		entry.Usable = true
	}
	return entry
}

// Clear removes the cache files and any temporary files left by interrupted writes.
// Other files in the directory are left alone.
func (p *Provider) Clear(cfg *domain.Config) ([]string, error) {
	dir, err := p.existing(cfg)
	if err != nil || dir == nil {
		return nil, err
	}

	var removed []string
	for _, kind := range domain.AllKinds() {
		ok, err := removeFile(dir, kind.FileName())
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, kind.FileName())
		}
	}

	entries, err := dir.ReadDir(".")
	if err != nil {
		return removed, zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", cfg.CacheDir)
	}
	var leftovers []string
	for _, entry := range entries {
		if entry.IsDir() || !isTempFile(entry.Name()) {
			continue
		}
		ok, err := removeFile(dir, entry.Name())
		if err != nil {
			return removed, err
		}
		if ok {
			leftovers = append(leftovers, entry.Name())
		}
	}
	slices.Sort(leftovers)

	return append(removed, leftovers...), nil
}

func (p *Provider) existing(cfg *domain.Config) (billy.Filesystem, error) {
	if !cfg.CacheEnabled() {
		return nil, nil
	}
	return cachedir.Existing(cfg.CacheDir)
}

func isTempFile(name string) bool {
	for _, kind := range domain.AllKinds() {
		if strings.HasPrefix(name, kind.FileName()+domain.TempFileSuffix) {
			return true
		}
	}
	return false
}
