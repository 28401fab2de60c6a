package session

import (
	"maps"
	"slices"

	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
)

var _ ports.Snapshot = (*Snapshot)(nil)

// reusedKinds are the file-keyed caches merge copies for reused files. Reusing a file while one
// of them is unavailable would drop its cached entries for good.
var reusedKinds = []domain.Kind{
	domain.KindReferences,
	domain.KindFileMemberReferences,
	domain.KindIssues,
	domain.KindFileMaps,
	domain.KindTypeCoverage,
}

// Snapshot is the read-only view of every cache, loaded once before workers start.
type Snapshot struct {
	fingerprintChanged bool
	available          map[domain.Kind]bool

	references       domain.ReferenceGraph
	methodReferences domain.MemberReferenceMap
	memberReferences domain.FileMemberReferenceMap
	issues           domain.DiagnosticSet
	analyzedMethods  domain.MethodStatus
	fileMaps         domain.FileSymbolMap
	typeCoverage     domain.TypeCoverageStats
}

// FingerprintChanged reports whether the configuration changed since the previous run.
func (s *Snapshot) FingerprintChanged() bool {
	return s.fingerprintChanged
}

// IssuesFor returns the cached diagnostics of file.
func (s *Snapshot) IssuesFor(file string) ([]domain.Issue, bool) {
	issues, ok := s.issues[file]
	return issues, ok
}

// MethodVerified returns the cached verification fingerprint of method.
func (s *Snapshot) MethodVerified(method string) (map[string]int, bool) {
	status, ok := s.analyzedMethods[method]
	return status, ok
}

// References returns the cached reference graph.
func (s *Snapshot) References() (domain.ReferenceGraph, bool) {
	return s.references, s.available[domain.KindReferences]
}

// Available reports whether kind was loaded.
func (s *Snapshot) Available(kind domain.Kind) bool {
	return s.available[kind]
}

// Incremental reports whether cached per-file results may be reused: the configuration is
// unchanged and every file-keyed cache loaded.
func (s *Snapshot) Incremental() bool {
	if s.fingerprintChanged {
		return false
	}
	for _, kind := range reusedKinds {
		if !s.available[kind] {
			return false
		}
	}
	return true
}

// Affected returns the changed files and every file that reaches one of them through the
// reference graph, sorted.
func (s *Snapshot) Affected(changed []string) []string {
	dependents := make(map[string][]string)
	for file, deps := range s.references {
		for dep := range deps {
			dependents[dep] = append(dependents[dep], file)
		}
	}

	seen := make(map[string]struct{}, len(changed))
	queue := make([]string, 0, len(changed))
	for _, file := range changed {
		if _, ok := seen[file]; !ok {
			seen[file] = struct{}{}
			queue = append(queue, file)
		}
	}

	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]
		for _, dependent := range dependents[file] {
			if _, ok := seen[dependent]; ok {
				continue
			}
			seen[dependent] = struct{}{}
			queue = append(queue, dependent)
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
