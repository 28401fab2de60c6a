package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refcache/internal/adapters/cachestore"
	"go.trai.ch/refcache/internal/adapters/telemetry"
	"go.trai.ch/refcache/internal/app"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports"
	"go.trai.ch/refcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl          *gomock.Controller
	loader        *mocks.MockConfigLoader
	fingerprinter *mocks.MockFingerprinter
	caches        *mocks.MockCacheProvider
	resolver      *mocks.MockProjectResolver
	logger        *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		ctrl:          ctrl,
		loader:        mocks.NewMockConfigLoader(ctrl),
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
		caches:        mocks.NewMockCacheProvider(ctrl),
		resolver:      mocks.NewMockProjectResolver(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
	}
}

func (f *fixture) newApp() *app.App {
	return f.newAppWith(f.caches)
}

func (f *fixture) newAppWith(caches ports.CacheProvider) *app.App {
	return app.New(f.loader, f.fingerprinter, caches, f.resolver, f.logger, telemetry.NewNoOp())
}

func testConfig(root string) *domain.Config {
	return &domain.Config{
		Root:         root,
		CacheDir:     filepath.Join(root, domain.DefaultCacheDirName),
		ErrorLevel:   domain.DefaultErrorLevel,
		Threads:      2,
		ProjectFiles: []string{"."},
	}
}

func TestApp_Config(t *testing.T) {
	t.Run("discovers from root and applies overrides", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Discover("/project").Return(testConfig("/project"), nil)

		cfg, err := f.newApp().Config(app.Options{Root: "/project", NoCache: true, PHPVersion: "8.1", Threads: 6})
		require.NoError(t, err)

		assert.False(t, cfg.CacheEnabled())
		assert.Equal(t, "8.1", cfg.PHPVersion)
		assert.Equal(t, 6, cfg.Threads)
	})

	t.Run("explicit path skips discovery", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load("/project/refcache.yaml").Return(testConfig("/project"), nil)

		cfg, err := f.newApp().Config(app.Options{ConfigPath: "/project/refcache.yaml", Root: "/elsewhere"})
		require.NoError(t, err)
		assert.Equal(t, "/project", cfg.Root)
		assert.Equal(t, 2, cfg.Threads)
	})

	t.Run("invalid override", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Discover("/project").Return(testConfig("/project"), nil)

		_, err := f.newApp().Config(app.Options{Root: "/project", PHPVersion: "eight"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidPHPVersion.Error())
	})

	t.Run("loader error", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Discover("/project").Return(nil, domain.ErrConfigParseFailed)

		_, err := f.newApp().Config(app.Options{Root: "/project"})
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to load configuration")
		assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig("/project")
	report := &domain.CacheReport{Dir: cfg.CacheDir, Current: "abc", Stored: "abc"}

	f.loader.EXPECT().Discover("/project").Return(cfg, nil)
	f.fingerprinter.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
	f.caches.EXPECT().Probe(cfg, domain.Fingerprint("abc")).Return(report, nil)

	got, err := f.newApp().Status(app.Options{Root: "/project"})
	require.NoError(t, err)
	assert.Same(t, report, got)
}

func TestApp_Inspect(t *testing.T) {
	t.Run("references", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("/project")
		reader := mocks.NewMockCacheReader(f.ctrl)
		refs := domain.ReferenceGraph{"src/A.php": domain.NewSet("src/B.php")}

		f.loader.EXPECT().Discover("/project").Return(cfg, nil)
		f.fingerprinter.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
		f.caches.EXPECT().OpenReadOnly(cfg, domain.Fingerprint("abc")).Return(reader, nil)
		reader.EXPECT().LoadReferences().Return(refs, true, nil)

		v, ok, err := f.newApp().Inspect(app.Options{Root: "/project"}, domain.KindReferences)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, refs, v)
	})

	t.Run("unavailable", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("/project")
		reader := mocks.NewMockCacheReader(f.ctrl)

		f.loader.EXPECT().Discover("/project").Return(cfg, nil)
		f.fingerprinter.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
		f.caches.EXPECT().OpenReadOnly(cfg, domain.Fingerprint("abc")).Return(reader, nil)
		reader.EXPECT().LoadFileMaps().Return(nil, false, nil)

		v, ok, err := f.newApp().Inspect(app.Options{Root: "/project"}, domain.KindFileMaps)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("corrupted", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("/project")
		reader := mocks.NewMockCacheReader(f.ctrl)

		f.loader.EXPECT().Discover("/project").Return(cfg, nil)
		f.fingerprinter.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
		f.caches.EXPECT().OpenReadOnly(cfg, domain.Fingerprint("abc")).Return(reader, nil)
		reader.EXPECT().LoadIssues().Return(nil, false, errors.Join(domain.ErrCacheCorrupted, errors.New("bad")))

		_, _, err := f.newApp().Inspect(app.Options{Root: "/project"}, domain.KindIssues)
		assert.ErrorIs(t, err, domain.ErrCacheCorrupted)
	})

	t.Run("stored fingerprint", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("/project")

		f.loader.EXPECT().Discover("/project").Return(cfg, nil)
		f.fingerprinter.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
		f.caches.EXPECT().Probe(cfg, domain.Fingerprint("abc")).Return(&domain.CacheReport{Stored: "old"}, nil)

		v, ok, err := f.newApp().Inspect(app.Options{Root: "/project"}, domain.KindConfig)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, domain.Fingerprint("old"), v)
	})
}

func TestApp_Clear(t *testing.T) {
	t.Run("removes and logs", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig("/project")

		f.loader.EXPECT().Discover("/project").Return(cfg, nil)
		f.caches.EXPECT().Clear(cfg).Return([]string{"config", "references"}, nil)
		f.logger.EXPECT().Info("removed config")
		f.logger.EXPECT().Info("removed references")

		removed, err := f.newApp().Clear(app.Options{Root: "/project"})
		require.NoError(t, err)
		assert.Equal(t, []string{"config", "references"}, removed)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Discover("/project").Return(testConfig("/project"), nil)
		f.logger.EXPECT().Info("caching is disabled, nothing to clear")

		removed, err := f.newApp().Clear(app.Options{Root: "/project", NoCache: true})
		require.NoError(t, err)
		assert.Empty(t, removed)
	})
}

// stubAnalyzer analyzes every file with a fixed reference graph.
type stubAnalyzer struct {
	refs map[string][]string
}

func (a stubAnalyzer) AnalyzeFile(_ context.Context, file string, _ ports.Snapshot) (ports.FileResult, error) {
	return ports.FileResult{References: domain.NewSet(a.refs[file]...)}, nil
}

func TestApp_AnalyzeThenImpact(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	files := []string{"src/A.php", "src/B.php", "src/C.php"}
	analyzer := stubAnalyzer{refs: map[string][]string{
		"src/A.php": {"src/B.php"},
		"src/B.php": {},
		"src/C.php": {},
	}}

	f.loader.EXPECT().Discover(root).DoAndReturn(func(string) (*domain.Config, error) {
		return testConfig(root), nil
	}).AnyTimes()
	f.fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return(domain.Fingerprint("abc")).AnyTimes()
	f.resolver.EXPECT().ProjectFiles(gomock.Any()).Return(files, nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := f.newAppWith(cachestore.NewProvider(f.logger))
	opts := app.Options{Root: root}

	impact, err := a.Impact(context.Background(), opts, []string{"src/B.php"})
	require.NoError(t, err)
	assert.True(t, impact.Full, "nothing cached yet")

	res, err := a.Analyze(context.Background(), opts, nil, analyzer)
	require.NoError(t, err)
	assert.True(t, res.Full)
	assert.Equal(t, files, res.Analyzed)

	impact, err = a.Impact(context.Background(), opts, []string{filepath.Join(root, "src", "B.php")})
	require.NoError(t, err)
	assert.False(t, impact.Full)
	assert.Equal(t, []string{"src/A.php", "src/B.php"}, impact.Files)
	assert.Equal(t, 3, impact.Total)

	res, err = a.Analyze(context.Background(), opts, []string{"src/B.php"}, analyzer)
	require.NoError(t, err)
	assert.False(t, res.Full)
	assert.Equal(t, []string{"src/A.php", "src/B.php"}, res.Analyzed)
	assert.Equal(t, []string{"src/C.php"}, res.Reused)
}
