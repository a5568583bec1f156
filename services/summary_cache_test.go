package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenozu/fittrack-plus/services"
)

func TestSummaryCache_MissThenHit(t *testing.T) {
	cache := services.NewMemorySummaryCache()
	d := day("2024-03-10")

	_, version, ok := cache.Get(1, d)
	assert.False(t, ok)

	summary := services.DailySummary{Date: "2024-03-10", TotalCalories: 1200}
	require.True(t, cache.Put(1, d, summary, version))

	got, _, ok := cache.Get(1, d)
	require.True(t, ok)
	assert.Equal(t, summary, got)
}

func TestSummaryCache_InvalidateForcesMiss(t *testing.T) {
	cache := services.NewMemorySummaryCache()
	d := day("2024-03-10")

	_, version, _ := cache.Get(1, d)
	require.True(t, cache.Put(1, d, services.DailySummary{Date: "2024-03-10"}, version))

	cache.Invalidate(1, d)

	_, _, ok := cache.Get(1, d)
	assert.False(t, ok, "invalidate then get must always miss")
}

func TestSummaryCache_StalePutRejected(t *testing.T) {
	cache := services.NewMemorySummaryCache()
	d := day("2024-03-10")

	// a read observes the version, then a write invalidates before the read
	// finishes computing
	_, version, _ := cache.Get(1, d)
	cache.Invalidate(1, d)

	stale := services.DailySummary{Date: "2024-03-10", TotalCalories: 999}
	assert.False(t, cache.Put(1, d, stale, version), "stale put must not clobber the invalidation")

	_, _, ok := cache.Get(1, d)
	assert.False(t, ok)
}

func TestSummaryCache_KeysAreScopedPerUserAndDay(t *testing.T) {
	cache := services.NewMemorySummaryCache()

	_, v1, _ := cache.Get(1, day("2024-03-10"))
	require.True(t, cache.Put(1, day("2024-03-10"), services.DailySummary{TotalCalories: 100}, v1))

	cache.Invalidate(2, day("2024-03-10")) // other user
	cache.Invalidate(1, day("2024-03-11")) // other day

	_, _, ok := cache.Get(1, day("2024-03-10"))
	assert.True(t, ok, "unrelated invalidations must not evict")
}

func TestSummaryCache_ConcurrentAccess(t *testing.T) {
	cache := services.NewMemorySummaryCache()
	d := day("2024-03-10")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, version, _ := cache.Get(1, d)
			cache.Put(1, d, services.DailySummary{Date: "2024-03-10"}, version)
		}()
		go func() {
			defer wg.Done()
			cache.Invalidate(1, d)
		}()
	}
	wg.Wait()

	// after the last invalidation wins or a fresh put landed, state is coherent
	cache.Invalidate(1, d)
	_, _, ok := cache.Get(1, d)
	assert.False(t, ok)
}
