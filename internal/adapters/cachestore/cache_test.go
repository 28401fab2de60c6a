package cachestore_test

import (
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/refcache/internal/adapters/cachestore"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func sampleData() (
	domain.ReferenceGraph,
	domain.MemberReferenceMap,
	domain.FileMemberReferenceMap,
	domain.DiagnosticSet,
	domain.MethodStatus,
	domain.FileSymbolMap,
	domain.TypeCoverageStats,
) {
	refs := domain.ReferenceGraph{
		"src/A.php": domain.NewSet("src/B.php", "src/C.php"),
		"src/B.php": domain.NewSet("src/C.php"),
	}
	methods := domain.MemberReferenceMap{
		"A::run": domain.NewSet("B::helper"),
	}
	members := domain.FileMemberReferenceMap{
		"src/A.php": domain.NewSet("B::helper", "C::$prop"),
	}
	issues := domain.DiagnosticSet{
		"src/A.php": {
			{Severity: "error", Type: "UndefinedVariable", FileName: "A.php", FilePath: "src/A.php", Message: "second", Span: domain.Span{From: 10, To: 12, LineFrom: 2, LineTo: 2}},
			{Severity: "info", Type: "MixedAssignment", FileName: "A.php", FilePath: "src/A.php", Message: "first", Snippet: "$a = $b;"},
		},
	}
	analyzed := domain.MethodStatus{
		"A::run": {"": 1, "strict": 2},
	}
	maps := domain.FileSymbolMap{
		"src/A.php": {
			References: domain.TaggedSpans{4: {End: 9, Tag: "B::helper"}},
			Types:      domain.TaggedSpans{20: {End: 22, Tag: "int"}},
		},
	}
	coverage := domain.TypeCoverageStats{
		"src/A.php": {Mixed: 1, Total: 8},
	}
	return refs, methods, members, issues, analyzed, maps, coverage
}

func storeAll(c *cachestore.Cache) {
	refs, methods, members, issues, analyzed, maps, coverage := sampleData()
	c.StoreReferences(refs)
	c.StoreMethodMemberReferences(methods)
	c.StoreFileMemberReferences(members)
	c.StoreIssues(issues)
	c.StoreAnalyzedMethods(analyzed)
	c.StoreFileMaps(maps)
	c.StoreTypeCoverage(coverage)
}

// openRun mimics one run against fs: compare, commit, then hand out the cache.
func openRun(t *testing.T, fs billy.Filesystem, fp domain.Fingerprint) *cachestore.Cache {
	t.Helper()
	guard := cachestore.CompareFingerprint(fs, fp)
	require.NoError(t, guard.Commit())
	return cachestore.NewCache(fs, guard, nil)
}

func TestCache_RoundTrip(t *testing.T) {
	fs := memfs.New()
	storeAll(openRun(t, fs, "abc123"))

	c := openRun(t, fs, "abc123")
	require.False(t, c.FingerprintChanged())

	refs, methods, members, issues, analyzed, maps, coverage := sampleData()

	gotRefs, ok, err := c.LoadReferences()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, refs, gotRefs)

	gotMethods, ok, err := c.LoadMethodMemberReferences()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, methods, gotMethods)

	gotMembers, ok, err := c.LoadFileMemberReferences()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, members, gotMembers)

	gotIssues, ok, err := c.LoadIssues()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, issues, gotIssues)
	assert.Equal(t, "second", gotIssues["src/A.php"][0].Message)

	gotAnalyzed, ok, err := c.LoadAnalyzedMethods()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, analyzed, gotAnalyzed)

	gotMaps, ok, err := c.LoadFileMaps()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, maps, gotMaps)

	gotCoverage, ok, err := c.LoadTypeCoverage()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, coverage, gotCoverage)
}

func TestCache_ColdStart(t *testing.T) {
	c := openRun(t, memfs.New(), "abc123")
	assert.True(t, c.FingerprintChanged())

	_, ok, err := c.LoadReferences()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.LoadIssues()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.LoadTypeCoverage()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_FingerprintGatesOnlyGatedKinds(t *testing.T) {
	fs := memfs.New()
	storeAll(openRun(t, fs, "abc123"))

	c := openRun(t, fs, "xyz999")
	assert.True(t, c.FingerprintChanged())

	_, ok, err := c.LoadAnalyzedMethods()
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.LoadFileMaps()
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.LoadTypeCoverage()
	require.NoError(t, err)
	assert.False(t, ok)

	refs, ok, err := c.LoadReferences()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, refs, "src/A.php")

	_, ok, err = c.LoadIssues()
	require.NoError(t, err)
	assert.True(t, ok)

	// The commit above does not change what this run sees.
	c.StoreAnalyzedMethods(domain.MethodStatus{"A::run": {"": 3}})
	_, ok, err = c.LoadAnalyzedMethods()
	require.NoError(t, err)
	assert.False(t, ok)

	next := openRun(t, fs, "xyz999")
	assert.False(t, next.FingerprintChanged())
	analyzed, ok, err := next.LoadAnalyzedMethods()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.MethodStatus{"A::run": {"": 3}}, analyzed)
}

func TestCache_CorruptedScalar(t *testing.T) {
	scalar, err := msgpack.Marshal(42)
	require.NoError(t, err)

	for _, kind := range []domain.Kind{domain.KindReferences, domain.KindAnalyzedMethods} {
		t.Run(kind.String(), func(t *testing.T) {
			fs := memfs.New()
			storeAll(openRun(t, fs, "abc123"))
			require.NoError(t, util.WriteFile(fs, kind.FileName(), scalar, domain.FilePerm))

			c := openRun(t, fs, "abc123")
			var loadErr error
			var ok bool
			if kind == domain.KindReferences {
				_, ok, loadErr = c.LoadReferences()
			} else {
				_, ok, loadErr = c.LoadAnalyzedMethods()
			}
			assert.False(t, ok)
			require.ErrorIs(t, loadErr, domain.ErrCacheCorrupted)
			assert.ErrorContains(t, loadErr, "corrupted")

			// Other kinds are unaffected.
			_, ok, err := c.LoadIssues()
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestCache_PayloadNotMapping(t *testing.T) {
	fs := memfs.New()
	data, err := cachestore.Encode(domain.KindReferences, []string{"src/A.php"})
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fs, domain.KindReferences.FileName(), data, domain.FilePerm))

	_, ok, err := openRun(t, fs, "abc123").LoadReferences()
	assert.False(t, ok)
	require.ErrorIs(t, err, domain.ErrCacheCorrupted)
}

func TestCache_KindSwapIsCorruption(t *testing.T) {
	fs := memfs.New()
	storeAll(openRun(t, fs, "abc123"))

	data, err := util.ReadFile(fs, domain.KindReferences.FileName())
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fs, domain.KindFileMemberReferences.FileName(), data, domain.FilePerm))

	c := openRun(t, fs, "abc123")
	_, ok, err := c.LoadFileMemberReferences()
	assert.False(t, ok)
	require.ErrorIs(t, err, domain.ErrCacheCorrupted)
}

func TestCache_OtherSchemaIsUnavailable(t *testing.T) {
	fs := memfs.New()

	payload, err := msgpack.Marshal(map[string][]string{"src/A.php": {"src/B.php"}})
	require.NoError(t, err)
	data, err := msgpack.Marshal([]any{uint8(domain.KindReferences), uint16(99), msgpack.RawMessage(payload)})
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fs, domain.KindReferences.FileName(), data, domain.FilePerm))

	_, ok, err := openRun(t, fs, "abc123").LoadReferences()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_StoreOverwritesAndNilIsEmpty(t *testing.T) {
	fs := memfs.New()
	c := openRun(t, fs, "abc123")

	c.StoreReferences(domain.ReferenceGraph{"src/A.php": domain.NewSet("src/B.php")})
	c.StoreReferences(nil)

	refs, ok, err := c.LoadReferences()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, refs)
	assert.NotNil(t, refs)

	entries, err := fs.ReadDir(".")
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), domain.TempFileSuffix)
	}
}

func TestCache_Disabled(t *testing.T) {
	c := cachestore.NewCache(nil, cachestore.CompareFingerprint(nil, "abc123"), nil)
	storeAll(c)

	assert.True(t, c.FingerprintChanged())
	_, ok, err := c.LoadReferences()
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.LoadAnalyzedMethods()
	require.NoError(t, err)
	assert.False(t, ok)
}

type readOnlyFS struct {
	billy.Filesystem
}

func (readOnlyFS) TempFile(string, string) (billy.File, error) {
	return nil, os.ErrPermission
}

func TestCache_WriteFailureWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	fs := readOnlyFS{memfs.New()}
	guard := cachestore.CompareFingerprint(fs, "abc123")
	err := guard.Commit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))

	c := cachestore.NewCache(fs, guard, mockLogger)
	c.StoreIssues(domain.DiagnosticSet{})

	_, ok, err := c.LoadIssues()
	require.NoError(t, err)
	assert.False(t, ok)
}
