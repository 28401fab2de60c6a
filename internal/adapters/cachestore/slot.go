package cachestore

import (
	"github.com/go-git/go-billy/v5"
	"go.trai.ch/refcache/internal/core/domain"
)

// Slot loads and stores one cache kind.
type Slot[T any] struct {
	kind  domain.Kind
	dir   billy.Filesystem
	guard *Guard
}

func newSlot[T any](kind domain.Kind, dir billy.Filesystem, guard *Guard) *Slot[T] {
	return &Slot[T]{kind: kind, dir: dir, guard: guard}
}

// Load returns the persisted value when it can be trusted.
func (s *Slot[T]) Load() (T, bool, error) {
	var zero T
	if s.dir == nil {
		return zero, false, nil
	}
	if s.kind.Policy() == domain.PolicyGated && s.guard.Changed() {
		return zero, false, nil
	}

	data, ok := readFile(s.dir, s.kind.FileName())
	if !ok {
		return zero, false, nil
	}

	var v T
	ok, err := decode(s.kind, data, &v)
	if err != nil || !ok {
		return zero, false, err
	}
	return v, true, nil
}

// Store replaces the persisted value. Gated kinds are written regardless of the fingerprint.
func (s *Slot[T]) Store(v T) error {
	if s.dir == nil {
		return nil
	}
	data, err := encode(s.kind, v)
	if err != nil {
		return err
	}
	return writeFile(s.dir, s.kind.FileName(), data)
}
