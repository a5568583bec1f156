package services

import (
	"sync"
	"time"
)

// SummaryCache memoizes daily summaries per (user, day). It is advisory: a
// miss is always answered by recomputing, and every entry mutation for a day
// must invalidate that day before the mutating call returns. Correctness
// depends on write-path invalidation, not expiry, so there is no TTL.
//
// Put carries the version observed by Get before the computation started and
// is rejected if an invalidation bumped the version meanwhile, so a slow read
// can never clobber a fresher invalidation.
type SummaryCache interface {
	Get(userID uint, day time.Time) (DailySummary, uint64, bool)
	Put(userID uint, day time.Time, summary DailySummary, version uint64) bool
	Invalidate(userID uint, day time.Time)
}

type cacheKey struct {
	userID uint
	day    string
}

type cacheEntry struct {
	version uint64
	summary DailySummary
	valid   bool
}

type MemorySummaryCache struct {
	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{entries: map[cacheKey]*cacheEntry{}}
}

func (c *MemorySummaryCache) Get(userID uint, day time.Time) (DailySummary, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey{userID, dayKey(day)}]
	if !ok {
		return DailySummary{}, 0, false
	}
	return e.summary, e.version, e.valid
}

func (c *MemorySummaryCache) Put(userID uint, day time.Time, summary DailySummary, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID, dayKey(day)}
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	if e.version != version {
		// a newer invalidation happened while this summary was computed
		return false
	}
	e.summary = summary
	e.valid = true
	return true
}

func (c *MemorySummaryCache) Invalidate(userID uint, day time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID, dayKey(day)}
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	e.version++
	e.valid = false
}

// NoopSummaryCache disables memoization; every read recomputes. Used in tests
// to verify the engine returns identical results with and without caching.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(uint, time.Time) (DailySummary, uint64, bool) {
	return DailySummary{}, 0, false
}
func (NoopSummaryCache) Put(uint, time.Time, DailySummary, uint64) bool { return false }
func (NoopSummaryCache) Invalidate(uint, time.Time)                     {}
