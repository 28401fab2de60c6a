package ports

import (
	"context"

	"go.trai.ch/refcache/internal/core/domain"
)

// FileResult is everything the analyzer derived from one file.
type FileResult struct {
	// File is the analyzed file path.
	File string
	// References are the files and symbols the file depends on.
	References domain.Set
	// MemberReferences are the class members the file uses.
	MemberReferences domain.Set
	// Methods lists every method declared in the file. Cached method entries of an analyzed
	// file are replaced by the ones below, so a method that is no longer clean loses its status.
	Methods []string
	// MethodReferences maps methods declared in the file to the methods they call.
	MethodReferences domain.MemberReferenceMap
	// Issues are the diagnostics reported for the file, in output order.
	Issues []domain.Issue
	// AnalyzedMethods holds the verification fingerprints of the file's clean methods.
	AnalyzedMethods domain.MethodStatus
	// Maps are the derived offset maps, nil when the analyzer produced none.
	Maps *domain.FileMaps
	// Coverage is the file's type coverage, nil when not collected.
	Coverage *domain.Coverage
}

// FileAnalyzer analyzes a single file against a read-only cache snapshot.
// Implementations are called concurrently and must not touch the cache.
//
//go:generate mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type FileAnalyzer interface {
	AnalyzeFile(ctx context.Context, file string, snapshot Snapshot) (FileResult, error)
}

// Snapshot is the read-only view of the caches loaded before worker fan-out.
type Snapshot interface {
	// FingerprintChanged reports whether the configuration changed since the previous run.
	FingerprintChanged() bool
	// IssuesFor returns the cached diagnostics of a file, if any.
	IssuesFor(file string) ([]domain.Issue, bool)
	// MethodVerified returns the cached verification fingerprint of a method, if any.
	MethodVerified(method string) (map[string]int, bool)
}
