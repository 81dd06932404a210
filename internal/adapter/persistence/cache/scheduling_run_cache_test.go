package cache

import (
	"context"
	"testing"
	"time"

	"umkm_produksi/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulingRunCache(t *testing.T) {
	ctx := context.Background()
	c := NewSchedulingRunCache(time.Minute, time.Minute)

	run := entities.SchedulingRun{ID: "run-1", DryRun: true}
	require.NoError(t, c.Save(ctx, run))

	got, err := c.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, got)

	missing, err := c.Get(ctx, "run-2")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestSchedulingRunCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewSchedulingRunCache(10*time.Millisecond, time.Minute)

	require.NoError(t, c.Save(ctx, entities.SchedulingRun{ID: "run-1"}))
	time.Sleep(30 * time.Millisecond)

	got, err := c.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestNewSchedulingRunCacheFromEnv(t *testing.T) {
	t.Setenv("SCHEDULING_RUN_TTL", "not-a-duration")
	c := NewSchedulingRunCacheFromEnv()
	require.NoError(t, c.Save(context.Background(), entities.SchedulingRun{ID: "run-1"}))

	got, err := c.Get(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
}
