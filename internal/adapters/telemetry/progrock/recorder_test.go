package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refcache/internal/adapters/telemetry/progrock"
	"go.trai.ch/refcache/internal/core/domain"
)

func TestRecorder_Summary(t *testing.T) {
	rec := progrock.New()
	ctx := context.Background()

	_, load := rec.Record(ctx, "load caches")
	load.Log(domain.LogLevelDebug, "references available")
	load.Complete(nil)

	_, cached := rec.Record(ctx, "src/A.php")
	cached.Cached()
	cached.Complete(nil)

	_, failed := rec.Record(ctx, "src/B.php")
	failed.Complete(errors.New("parse error"))
	failed.Complete(nil)

	_, pending := rec.Record(ctx, "store caches")
	_ = pending

	assert.Equal(t, progrock.Summary{Started: 4, Completed: 1, Cached: 1, Failed: 1}, rec.Summary())
	require.NoError(t, rec.Close())
}
