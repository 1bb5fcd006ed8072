package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		Cache: config.Cache{
			Size:           4,
			TTL:            time.Millisecond,
			CleanupCron:    "*/5 * * * *",
			CleanupEnabled: enabled,
		},
	}
}

func TestCacheCleanupService_CleanExpired(t *testing.T) {
	memo := cache.NewLRUCache[int](4, time.Millisecond)
	memo.Set("France|all", 1)
	memo.Set("all|2014", 2)

	service := NewCacheCleanupService(memo, newTestConfig(true))

	time.Sleep(5 * time.Millisecond)
	removed := service.CleanExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, memo.Stats().Size)

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_removed"])
	assert.Equal(t, 2, status["total_removed"])
	assert.Equal(t, true, status["cleanup_enabled"])
	assert.False(t, status["last_cleanup_at"].(time.Time).IsZero())
}

func TestCacheCleanupService_Purge(t *testing.T) {
	memo := cache.NewLRUCache[int](4, time.Hour)
	memo.Set("a", 1)
	memo.Set("b", 2)
	memo.Set("c", 3)

	service := NewCacheCleanupService(memo, newTestConfig(true))

	assert.Equal(t, 3, service.Purge())
	assert.Equal(t, 0, service.Purge())

	status := service.GetStatus()
	assert.Equal(t, 0, status["last_purge_removed"])
	stats, ok := status["cache"].(cache.Stats)
	require.True(t, ok)
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, 4, stats.MaxSize)
}

func TestCacheCleanupService_Start(t *testing.T) {
	t.Run("desabilitado não agenda", func(t *testing.T) {
		service := NewCacheCleanupService(cache.NewLRUCache[int](1, 0), newTestConfig(false))
		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("cron inválido retorna erro", func(t *testing.T) {
		cfg := newTestConfig(true)
		cfg.Cache.CleanupCron = "a cada hora"
		service := NewCacheCleanupService(cache.NewLRUCache[int](1, 0), cfg)
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewCacheCleanupService(cache.NewLRUCache[int](1, 0), newTestConfig(true))
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
