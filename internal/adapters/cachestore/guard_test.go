package cachestore_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refcache/internal/adapters/cachestore"
	"go.trai.ch/refcache/internal/core/domain"
)

func TestGuard(t *testing.T) {
	fs := memfs.New()

	first := cachestore.CompareFingerprint(fs, "abc123")
	assert.True(t, first.Changed())
	_, found := first.Stored()
	assert.False(t, found)
	require.NoError(t, first.Commit())

	// Committing does not recompute the decision.
	assert.True(t, first.Changed())

	same := cachestore.CompareFingerprint(fs, "abc123")
	assert.False(t, same.Changed())
	stored, found := same.Stored()
	assert.True(t, found)
	assert.Equal(t, domain.Fingerprint("abc123"), stored)

	other := cachestore.CompareFingerprint(fs, "xyz999")
	assert.True(t, other.Changed())
}

func TestGuard_CommitReplacesDifferentFingerprint(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, cachestore.CompareFingerprint(fs, "abc123").Commit())

	other := cachestore.CompareFingerprint(fs, "xyz999")
	assert.True(t, other.Changed())
	stored, found := other.Stored()
	require.True(t, found)
	assert.Equal(t, domain.Fingerprint("abc123"), stored)
	require.NoError(t, other.Commit())

	next := cachestore.CompareFingerprint(fs, "xyz999")
	assert.False(t, next.Changed())
	stored, found = next.Stored()
	require.True(t, found)
	assert.Equal(t, domain.Fingerprint("xyz999"), stored)
}

func TestGuard_UnreadableFingerprintCountsAsChanged(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, domain.KindConfig.FileName(), []byte("abc123"), domain.FilePerm))

	g := cachestore.CompareFingerprint(fs, "abc123")
	assert.True(t, g.Changed())
	_, found := g.Stored()
	assert.False(t, found)
}

func TestGuard_NilDirectory(t *testing.T) {
	g := cachestore.CompareFingerprint(nil, "abc123")
	assert.True(t, g.Changed())
	require.NoError(t, g.Commit())

	var nilGuard *cachestore.Guard
	assert.True(t, nilGuard.Changed())
}
