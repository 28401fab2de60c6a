package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/refcache/internal/adapters/telemetry"
	"go.trai.ch/refcache/internal/app"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader *mocks.MockConfigLoader
	caches *mocks.MockCacheProvider
	hasher *mocks.MockFingerprinter
	logger *mocks.MockLogger
}

func provide(t *testing.T) (*appMocks, ComponentProvider, *bool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
		loader: mocks.NewMockConfigLoader(ctrl),
		caches: mocks.NewMockCacheProvider(ctrl),
		hasher: mocks.NewMockFingerprinter(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.loader, m.hasher, m.caches, mocks.NewMockProjectResolver(ctrl), m.logger, telemetry.NewNoOp())

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:       application,
			Logger:    m.logger,
			Telemetry: telemetry.NewNoOp(),
		}, func() { cleaned = true }, nil
	}
	return m, provider, &cleaned
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	_, provider, cleaned := provide(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.True(t, *cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	m, provider, _ := provide(t)
	m.loader.EXPECT().Load("/missing/refcache.yaml").Return(nil, domain.ErrConfigNotFound)
	m.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"status", "-c", "/missing/refcache.yaml"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_CorruptedCache verifies the recovery hint printed for corrupted caches.
func TestRun_CorruptedCache(t *testing.T) {
	m, provider, _ := provide(t)
	cfg := &domain.Config{Root: "/p", CacheDir: "/p/.refcache", ErrorLevel: 2, Threads: 1}
	reader := mocks.NewMockCacheReader(gomock.NewController(t))

	m.loader.EXPECT().Discover("/p").Return(cfg, nil)
	m.hasher.EXPECT().Fingerprint(cfg).Return(domain.Fingerprint("abc"))
	m.caches.EXPECT().OpenReadOnly(cfg, domain.Fingerprint("abc")).Return(reader, nil)
	reader.EXPECT().LoadIssues().Return(nil, false, errors.Join(domain.ErrCacheCorrupted, errors.New("bad payload")))
	m.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"inspect", "issues", "-r", "/p"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "refcache clear")
}
