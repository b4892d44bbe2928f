package enrichment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultNotFoundTTL is how long a confirmed "no match" is remembered.
const DefaultNotFoundTTL = 15 * time.Minute

// ComputeFunc produces the enrichment for a key on a cache miss.
type ComputeFunc func(ctx context.Context) (*Result, Status)

type cacheEntry struct {
	result *Result // nil marks a not-found tombstone
	until  time.Time
}

// Cache memoizes enrichment results per normalized key for the process lifetime.
//
// Found results never expire. Not-found results are kept as tombstones for
// notFoundTTL. Failures are never stored. Concurrent misses on the same key
// share a single computation.
type Cache struct {
	mu          sync.RWMutex
	entries     map[string]cacheEntry
	group       singleflight.Group
	notFoundTTL time.Duration
	now         func() time.Time
}

// NewCache creates an empty cache. A non-positive notFoundTTL disables negative caching.
func NewCache(notFoundTTL time.Duration) *Cache {
	return &Cache{
		entries:     make(map[string]cacheEntry),
		notFoundTTL: notFoundTTL,
		now:         time.Now,
	}
}

type flightOutcome struct {
	result *Result
	status Status
}

// GetOrCompute returns the cached result for key, running compute at most once
// for concurrent callers on a miss.
//
// The computation is detached from the caller's cancellation. A caller whose
// ctx ends stops waiting and gets StatusFailed while the computation continues.
// A miss with an already finished ctx starts nothing.
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (*Result, Status) {
	if result, status, ok := c.lookup(key); ok {
		slog.Debug("Enrichment cache hit", "key", key, "status", status)
		return result, status
	}
	if err := ctx.Err(); err != nil {
		slog.Debug("Skipping enrichment for finished request", "key", key, "error", err)
		return nil, StatusFailed
	}

	ch := c.group.DoChan(key, func() (any, error) {
		// Another flight may have stored the key between our lookup and DoChan.
		if result, status, ok := c.lookup(key); ok {
			return flightOutcome{result: result, status: status}, nil
		}

		slog.Debug("Enrichment cache miss", "key", key)
		result, status := compute(context.WithoutCancel(ctx))
		c.store(key, result, status)
		return flightOutcome{result: result, status: status}, nil
	})

	select {
	case <-ctx.Done():
		slog.Debug("Stopped waiting for enrichment", "key", key, "error", ctx.Err())
		return nil, StatusFailed
	case res := <-ch:
		outcome := res.Val.(flightOutcome)
		return cloneResult(outcome.result), outcome.status
	}
}

// Len returns the number of stored entries, tombstones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key string) (*Result, Status, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, StatusFailed, false
	}

	if entry.result != nil {
		return cloneResult(entry.result), StatusFound, true
	}

	if c.now().Before(entry.until) {
		return nil, StatusNotFound, true
	}

	c.mu.Lock()
	if current, ok := c.entries[key]; ok && current.result == nil && !c.now().Before(current.until) {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil, StatusFailed, false
}

func (c *Cache) store(key string, result *Result, status Status) {
	switch {
	case status == StatusFound && result != nil:
		c.mu.Lock()
		c.entries[key] = cacheEntry{result: cloneResult(result)}
		c.mu.Unlock()
	case status == StatusNotFound && c.notFoundTTL > 0:
		c.mu.Lock()
		c.entries[key] = cacheEntry{until: c.now().Add(c.notFoundTTL)}
		c.mu.Unlock()
	}
}

func cloneResult(r *Result) *Result {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}
