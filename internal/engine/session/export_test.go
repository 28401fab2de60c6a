package session

import "go.trai.ch/refcache/internal/core/domain"

// NewSnapshot builds a snapshot holding only a reference graph. Every file-keyed cache counts as
// loaded when refs is non-nil.
func NewSnapshot(refs domain.ReferenceGraph, fingerprintChanged bool) *Snapshot {
	snap := &Snapshot{
		references:         refs,
		fingerprintChanged: fingerprintChanged,
		available:          make(map[domain.Kind]bool),
	}
	if refs != nil {
		for _, kind := range reusedKinds {
			snap.available[kind] = true
		}
	}
	return snap
}

// Without marks kind unavailable.
func (s *Snapshot) Without(kind domain.Kind) *Snapshot {
	delete(s.available, kind)
	return s
}
