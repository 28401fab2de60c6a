package domain

import (
	"maps"
	"slices"
)

// Set is an unordered set of stable identifiers (file paths, symbol or member names).
type Set map[string]struct{}

// NewSet returns a set holding the given members.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts a member.
func (s Set) Add(member string) {
	s[member] = struct{}{}
}

// Has reports whether member is in the set.
func (s Set) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalYAML renders the set as a sorted sequence.
func (s Set) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}
