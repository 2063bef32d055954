package classifier

import (
	"sync"
	"time"

	"github.com/asentar-dev/asentar/internal/model"
)

// cacheEntry represents one cached classification.
type cacheEntry struct {
	expiry time.Time
	scores model.Scores
}

// scoreCache provides thread-safe caching of classifier output keyed by
// description text. Prediction is a pure function of (text, loaded model),
// so repeated descriptions can reuse the scored result.
type scoreCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newScoreCache creates a new cache with the specified TTL.
func newScoreCache(ttl time.Duration) *scoreCache {
	if ttl == 0 {
		ttl = 15 * time.Minute // Default TTL
	}

	cache := &scoreCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	// Start cleanup goroutine
	go cache.cleanup()

	return cache
}

// get retrieves scores from the cache if present and not expired.
func (c *scoreCache) get(key string) (model.Scores, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expiry) {
		return nil, false
	}

	return entry.scores, true
}

// set stores scores in the cache.
func (c *scoreCache) set(key string, scores model.Scores) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		scores: scores,
		expiry: time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *scoreCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// size returns the number of entries in the cache.
func (c *scoreCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *scoreCache) Close() {
	close(c.stopCh)
}
