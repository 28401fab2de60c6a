package session

import (
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
)

// caches is the full set of values written back at the end of a run.
type caches struct {
	references       domain.ReferenceGraph
	methodReferences domain.MemberReferenceMap
	memberReferences domain.FileMemberReferenceMap
	issues           domain.DiagnosticSet
	analyzedMethods  domain.MethodStatus
	fileMaps         domain.FileSymbolMap
	typeCoverage     domain.TypeCoverageStats
}

// merge combines fresh results with the snapshot.
//
// File-keyed caches are rebuilt from files: reused files keep their cached entries, analyzed
// files take their new ones and files outside the project disappear. Method-keyed caches start
// from the snapshot; every method an analyzed file declares is dropped and replaced.
func merge(snap *Snapshot, files []string, reused map[string]struct{}, results []ports.FileResult) caches {
	out := caches{
		references:       make(domain.ReferenceGraph, len(files)),
		methodReferences: make(domain.MemberReferenceMap, len(snap.methodReferences)),
		memberReferences: make(domain.FileMemberReferenceMap, len(files)),
		issues:           make(domain.DiagnosticSet),
		analyzedMethods:  make(domain.MethodStatus, len(snap.analyzedMethods)),
		fileMaps:         make(domain.FileSymbolMap),
		typeCoverage:     make(domain.TypeCoverageStats),
	}

	for _, file := range files {
		if _, ok := reused[file]; !ok {
			continue
		}
		copyEntry(out.references, snap.references, file)
		copyEntry(out.memberReferences, snap.memberReferences, file)
		copyEntry(out.issues, snap.issues, file)
		copyEntry(out.fileMaps, snap.fileMaps, file)
		copyEntry(out.typeCoverage, snap.typeCoverage, file)
	}

	for method, refs := range snap.methodReferences {
		out.methodReferences[method] = refs
	}
	for method, status := range snap.analyzedMethods {
		out.analyzedMethods[method] = status
	}
	for i := range results {
		for _, method := range results[i].Methods {
			delete(out.methodReferences, method)
			delete(out.analyzedMethods, method)
		}
	}

	for i := range results {
		r := &results[i]
		out.references[r.File] = orEmpty(r.References)
		out.memberReferences[r.File] = orEmpty(r.MemberReferences)
		if len(r.Issues) > 0 {
			out.issues[r.File] = r.Issues
		}
		if r.Maps != nil {
			out.fileMaps[r.File] = *r.Maps
		}
		if r.Coverage != nil {
			out.typeCoverage[r.File] = *r.Coverage
		}
		for method, refs := range r.MethodReferences {
			out.methodReferences[method] = refs
		}
		for method, status := range r.AnalyzedMethods {
			out.analyzedMethods[method] = status
		}
	}

	return out
}

func copyEntry[V any](dst, src map[string]V, key string) {
	if v, ok := src[key]; ok {
		dst[key] = v
	}
}

func orEmpty(s domain.Set) domain.Set {
	if s == nil {
		return domain.NewSet()
	}
	return s
}
