// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/refcache/internal/core/domain"

// CacheReader exposes the load side of the analysis cache.
//
// Every Load method returns (value, true, nil) when a trustworthy persisted value exists and
// (zero, false, nil) when the cache is unavailable: no directory, no file, unreadable file, an
// older schema, or, for gated kinds, a changed configuration fingerprint. A file that exists but
// does not decode to the expected shape fails with domain.ErrCacheCorrupted.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheReader interface {
	// FingerprintChanged reports the gate decision computed once when the cache was opened.
	FingerprintChanged() bool

	LoadReferences() (domain.ReferenceGraph, bool, error)
	LoadMethodMemberReferences() (domain.MemberReferenceMap, bool, error)
	LoadFileMemberReferences() (domain.FileMemberReferenceMap, bool, error)
	LoadIssues() (domain.DiagnosticSet, bool, error)
	LoadAnalyzedMethods() (domain.MethodStatus, bool, error)
	LoadFileMaps() (domain.FileSymbolMap, bool, error)
	LoadTypeCoverage() (domain.TypeCoverageStats, bool, error)
}

// AnalysisCache is the full cache surface consumed by the analysis coordinator.
//
// Store methods replace the whole persisted entity. They never fail observably: with no
// directory they are no-ops, and a write failure is reported through the Logger as a warning.
type AnalysisCache interface {
	CacheReader

	StoreReferences(refs domain.ReferenceGraph)
	StoreMethodMemberReferences(refs domain.MemberReferenceMap)
	StoreFileMemberReferences(refs domain.FileMemberReferenceMap)
	StoreIssues(issues domain.DiagnosticSet)
	StoreAnalyzedMethods(methods domain.MethodStatus)
	StoreFileMaps(maps domain.FileSymbolMap)
	StoreTypeCoverage(coverage domain.TypeCoverageStats)
}

// CacheProvider opens analysis caches for a configuration.
type CacheProvider interface {
	// Open compares the stored fingerprint with current, then commits current, and returns the cache.
	// A cache directory that cannot be created degrades to a disabled cache with a warning.
	Open(cfg *domain.Config, current domain.Fingerprint) AnalysisCache

	// OpenReadOnly compares fingerprints without committing and never creates the cache directory.
	OpenReadOnly(cfg *domain.Config, current domain.Fingerprint) (CacheReader, error)

	// Probe reports the state of every cache file without modifying anything.
	Probe(cfg *domain.Config, current domain.Fingerprint) (*domain.CacheReport, error)

	// Clear removes every cache file owned by the subsystem and returns the removed names.
	Clear(cfg *domain.Config) ([]string, error)
}
