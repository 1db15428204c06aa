// ABOUTME: In-memory allocation result cache with TTL-based expiration
// ABOUTME: Thread-safe via sync.Map, keyed by a digest of the request body

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/twaldron/airlift-planner/models"
)

type entry struct {
	result    *models.AllocationResult
	expiresAt time.Time
}

// ResultCache holds solved allocations so identical requests inside the
// TTL window skip the solver entirely. Solves are deterministic for a
// given request body, which is what makes digest keying sound.
type ResultCache struct {
	store  sync.Map
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

func New(ttl time.Duration) *ResultCache {
	c := &ResultCache{
		ttl: ttl,
	}
	go c.startCleanup()
	return c
}

// RequestKey derives a cache key from a stable hash of the request body.
// Request structs contain only slices and scalars, so their JSON form is
// deterministic.
func RequestKey(prefix string, body any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("hashing request: %w", err)
	}
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:16]), nil
}

func (c *ResultCache) Get(key string) (*models.AllocationResult, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		c.misses.Add(1)
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		c.misses.Add(1)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	c.hits.Add(1)
	slog.Debug("Cache hit", "key", key)
	return e.result, true
}

func (c *ResultCache) Set(key string, result *models.AllocationResult) {
	e := entry{
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.store.Store(key, e)
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

func (c *ResultCache) Clear(key string) {
	c.store.Delete(key)
}

// Stats reports lifetime hit and miss counts for the health endpoint.
func (c *ResultCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len counts live entries, skipping any that have expired but not yet
// been swept. Used by the health endpoint.
func (c *ResultCache) Len() int {
	n := 0
	now := time.Now()
	c.store.Range(func(_, val interface{}) bool {
		if e := val.(entry); now.Before(e.expiresAt) {
			n++
		}
		return true
	})
	return n
}

func (c *ResultCache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.store.Range(func(key, val interface{}) bool {
			e := val.(entry)
			if now.After(e.expiresAt) {
				c.store.Delete(key)
			}
			return true
		})
	}
}
