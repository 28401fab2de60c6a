package cachestore

import (
	"github.com/go-git/go-billy/v5"
	"go.trai.ch/refcache/internal/core/domain"
)

// Guard holds the configuration fingerprint decision for one run.
//
// The comparison happens once in CompareFingerprint and is never recomputed, so committing the
// new fingerprint does not change what gated loads see for the rest of the run.
type Guard struct {
	dir     billy.Filesystem
	current domain.Fingerprint
	stored  domain.Fingerprint
	found   bool
	changed bool
}

// CompareFingerprint reads the stored fingerprint and compares it with current.
// A missing or unreadable fingerprint counts as changed.
func CompareFingerprint(dir billy.Filesystem, current domain.Fingerprint) *Guard {
	g := &Guard{dir: dir, current: current, changed: true}

	data, ok := readFile(dir, domain.KindConfig.FileName())
	if !ok {
		return g
	}
	var stored string
	if ok, err := decode(domain.KindConfig, data, &stored); err != nil || !ok {
		return g
	}

	g.stored = domain.Fingerprint(stored)
	g.found = true
	g.changed = g.stored != current
	return g
}

// Changed reports whether gated kinds must be treated as unavailable.
func (g *Guard) Changed() bool {
	return g == nil || g.changed
}

// Stored returns the fingerprint of the previous run and whether one was readable.
func (g *Guard) Stored() (domain.Fingerprint, bool) {
	if g == nil {
		return "", false
	}
	return g.stored, g.found
}

// Commit persists the current fingerprint for the next run.
func (g *Guard) Commit() error {
	if g == nil || g.dir == nil {
		return nil
	}
	data, err := encode(domain.KindConfig, string(g.current))
	if err != nil {
		return err
	}
	return writeFile(g.dir, domain.KindConfig.FileName(), data)
}
