package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oplens/oplens/pkg/logger"
)

var errTierDown = errors.New("connection refused")

func TestTwoTier_LocalOnly(t *testing.T) {
	c := NewTwoTier(nil, logger.NewTestLogger())
	ctx := context.Background()

	_, ok := c.Get(ctx, "traces:demo")
	assert.False(t, ok)

	c.Set(ctx, "traces:demo", []byte(`{"traces":[]}`), time.Minute)

	data, ok := c.Get(ctx, "traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"traces":[]}`), data)
}

func TestTwoTier_SharedHitSkipsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shared := NewMockSharedTier(ctrl)
	shared.EXPECT().Get(gomock.Any(), "traces:demo").Return([]byte("shared-value"), nil)

	c := NewTwoTier(shared, logger.NewTestLogger())

	data, ok := c.Get(context.Background(), "traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte("shared-value"), data)
	// The local tier was never written; a shared hit must not touch it.
	assert.Zero(t, c.local.len())
}

func TestTwoTier_SharedUnreachableFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shared := NewMockSharedTier(ctrl)
	shared.EXPECT().Set(gomock.Any(), "traces:demo", gomock.Any(), gomock.Any()).Return(errTierDown)
	shared.EXPECT().Get(gomock.Any(), "traces:demo").Return(nil, errTierDown)

	c := NewTwoTier(shared, logger.NewTestLogger())
	ctx := context.Background()

	c.Set(ctx, "traces:demo", []byte("local-value"), time.Minute)

	data, ok := c.Get(ctx, "traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte("local-value"), data)
}

func TestTwoTier_SetWritesBothTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shared := NewMockSharedTier(ctrl)
	shared.EXPECT().Set(gomock.Any(), "traces:demo", []byte("v"), 5*time.Minute).Return(nil)

	c := NewTwoTier(shared, logger.NewTestLogger())
	c.Set(context.Background(), "traces:demo", []byte("v"), 5*time.Minute)

	// The local tier holds the value even though the shared write succeeded,
	// so a later shared outage cannot erase it.
	data, ok := c.local.Get("traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}

func TestTwoTier_SharedMissFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shared := NewMockSharedTier(ctrl)
	shared.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	shared.EXPECT().Get(gomock.Any(), "traces:demo").Return(nil, ErrMiss)

	c := NewTwoTier(shared, logger.NewTestLogger())
	ctx := context.Background()

	c.Set(ctx, "traces:demo", []byte("v"), time.Minute)

	data, ok := c.Get(ctx, "traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}

func TestLocalTier_ExpiredEntryIsMissButRemains(t *testing.T) {
	local := newLocalTier()

	now := time.Now()
	local.now = func() time.Time { return now }

	local.Set("traces:demo", []byte("stale"), 30*time.Second)

	// Advance past expiry. The entry is a miss, but the map still holds it
	// because reads never take the write lock.
	local.now = func() time.Time { return now.Add(31 * time.Second) }

	_, ok := local.Get("traces:demo")
	assert.False(t, ok)
	assert.Equal(t, 1, local.len())

	// The next Set for the key overwrites the stale entry.
	local.Set("traces:demo", []byte("fresh"), 30*time.Second)

	data, ok := local.Get("traces:demo")
	require.True(t, ok)
	assert.Equal(t, []byte("fresh"), data)
	assert.Equal(t, 1, local.len())
}

func TestLocalTier_ConcurrentAccess(t *testing.T) {
	local := newLocalTier()

	done := make(chan struct{})

	go func() {
		defer close(done)

		for i := 0; i < 1000; i++ {
			local.Set("k", []byte("v"), time.Minute)
		}
	}()

	for i := 0; i < 1000; i++ {
		local.Get("k")
	}

	<-done
}
