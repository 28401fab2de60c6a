package cachestore

import (
	"github.com/go-git/go-billy/v5"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
)

var _ ports.AnalysisCache = (*Cache)(nil)

// Cache is the analysis cache of one run. A Cache without a directory loads nothing and stores nothing.
// Loads report false when a cache is unavailable. Stores log a warning instead of failing.
type Cache struct {
	guard  *Guard
	logger ports.Logger

	references       *Slot[domain.ReferenceGraph]
	methodReferences *Slot[domain.MemberReferenceMap]
	memberReferences *Slot[domain.FileMemberReferenceMap]
	issues           *Slot[domain.DiagnosticSet]
	analyzedMethods  *Slot[domain.MethodStatus]
	fileMaps         *Slot[domain.FileSymbolMap]
	typeCoverage     *Slot[domain.TypeCoverageStats]
}

func newCache(dir billy.Filesystem, guard *Guard, logger ports.Logger) *Cache {
	return &Cache{
		guard:            guard,
		logger:           logger,
		references:       newSlot[domain.ReferenceGraph](domain.KindReferences, dir, guard),
		methodReferences: newSlot[domain.MemberReferenceMap](domain.KindMethodMemberReferences, dir, guard),
		memberReferences: newSlot[domain.FileMemberReferenceMap](domain.KindFileMemberReferences, dir, guard),
		issues:           newSlot[domain.DiagnosticSet](domain.KindIssues, dir, guard),
		analyzedMethods:  newSlot[domain.MethodStatus](domain.KindAnalyzedMethods, dir, guard),
		fileMaps:         newSlot[domain.FileSymbolMap](domain.KindFileMaps, dir, guard),
		typeCoverage:     newSlot[domain.TypeCoverageStats](domain.KindTypeCoverage, dir, guard),
	}
}

// FingerprintChanged reports the decision taken when the cache was opened.
func (c *Cache) FingerprintChanged() bool {
	return c.guard.Changed()
}

// LoadReferences returns the file reference graph.
func (c *Cache) LoadReferences() (domain.ReferenceGraph, bool, error) {
	return c.references.Load()
}

// LoadMethodMemberReferences returns the method to member reference graph.
func (c *Cache) LoadMethodMemberReferences() (domain.MemberReferenceMap, bool, error) {
	return c.methodReferences.Load()
}

// LoadFileMemberReferences returns the class members each file uses.
func (c *Cache) LoadFileMemberReferences() (domain.FileMemberReferenceMap, bool, error) {
	return c.memberReferences.Load()
}

// LoadIssues returns the previous run's diagnostics.
func (c *Cache) LoadIssues() (domain.DiagnosticSet, bool, error) {
	return c.issues.Load()
}

// LoadAnalyzedMethods returns the verified methods. Discarded when the fingerprint changed.
func (c *Cache) LoadAnalyzedMethods() (domain.MethodStatus, bool, error) {
	return c.analyzedMethods.Load()
}

// LoadFileMaps returns the per-file offset maps. Discarded when the fingerprint changed.
func (c *Cache) LoadFileMaps() (domain.FileSymbolMap, bool, error) {
	return c.fileMaps.Load()
}

// LoadTypeCoverage returns the per-file type coverage. Discarded when the fingerprint changed.
func (c *Cache) LoadTypeCoverage() (domain.TypeCoverageStats, bool, error) {
	return c.typeCoverage.Load()
}

// StoreReferences replaces the file reference graph.
func (c *Cache) StoreReferences(refs domain.ReferenceGraph) {
	c.warn(c.references.Store(refs))
}

// StoreMethodMemberReferences replaces the method to member reference graph.
func (c *Cache) StoreMethodMemberReferences(refs domain.MemberReferenceMap) {
	c.warn(c.methodReferences.Store(refs))
}

// StoreFileMemberReferences replaces the class members each file uses.
func (c *Cache) StoreFileMemberReferences(refs domain.FileMemberReferenceMap) {
	c.warn(c.memberReferences.Store(refs))
}

// StoreIssues replaces the stored diagnostics.
func (c *Cache) StoreIssues(issues domain.DiagnosticSet) {
	c.warn(c.issues.Store(issues))
}

// StoreAnalyzedMethods replaces the verified methods.
func (c *Cache) StoreAnalyzedMethods(methods domain.MethodStatus) {
	c.warn(c.analyzedMethods.Store(methods))
}

// StoreFileMaps replaces the per-file offset maps.
func (c *Cache) StoreFileMaps(maps domain.FileSymbolMap) {
	c.warn(c.fileMaps.Store(maps))
}

// StoreTypeCoverage replaces the per-file type coverage.
func (c *Cache) StoreTypeCoverage(coverage domain.TypeCoverageStats) {
	c.warn(c.typeCoverage.Store(coverage))
}

// load runs the typed load of kind and discards the value.
func (c *Cache) load(kind domain.Kind) (bool, error) {
	var ok bool
	var err error
	switch kind {
	case domain.KindReferences:
		_, ok, err = c.LoadReferences()
	case domain.KindMethodMemberReferences:
		_, ok, err = c.LoadMethodMemberReferences()
	case domain.KindFileMemberReferences:
		_, ok, err = c.LoadFileMemberReferences()
	case domain.KindIssues:
		_, ok, err = c.LoadIssues()
	case domain.KindAnalyzedMethods:
		_, ok, err = c.LoadAnalyzedMethods()
	case domain.KindFileMaps:
		_, ok, err = c.LoadFileMaps()
	case domain.KindTypeCoverage:
		_, ok, err = c.LoadTypeCoverage()
	case domain.KindConfig:
		_, ok = c.guard.Stored()
	}
	return ok, err
}

func (c *Cache) warn(err error) {
	if err == nil || c.logger == nil {
		return
	}
	c.logger.Warn("cache not saved, the next run starts cold: " + err.Error())
}
