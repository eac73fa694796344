package settings

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SaleBadge_Go/internal/logger"
)

// CacheConfig sizes the option cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// CachedStore is a read-through cache in front of another Store. Entries
// are keyed by option key and default so an absent key never leaks one
// caller's default to another. Writes drop every entry for the key.
//
// Every write also bumps the key's generation. A read fills the cache only
// if no write to the key happened while it was at the backing store, so a
// value read before a write is never cached after it.
type CachedStore struct {
	next   Store
	lru    *expirable.LRU[string, string]
	hits   atomic.Int64
	misses atomic.Int64

	mu   sync.Mutex
	gens map[string]uint64
}

// NewCachedStore wraps next with an expiring LRU cache.
func NewCachedStore(next Store, cfg CacheConfig) *CachedStore {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, string](cfg.Size, nil, cfg.TTL),
		gens: make(map[string]uint64),
	}
}

func cacheKey(key, def string) string {
	return key + "\x00" + def
}

// Get implements Store.
func (c *CachedStore) Get(ctx context.Context, key, def string) (string, error) {
	ck := cacheKey(key, def)
	if v, ok := c.lru.Get(ck); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	gens := c.snapshot([]string{key})
	v, err := c.next.Get(ctx, key, def)
	if err != nil {
		return "", err
	}
	c.fill(gens, map[string]string{ck: v})
	return v, nil
}

// GetMany implements BatchGetter. The result comes either entirely from the
// cache or entirely from one read of the backing store.
func (c *CachedStore) GetMany(ctx context.Context, defaults map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}

	if values, ok := c.lookupAll(defaults); ok {
		c.hits.Add(int64(len(values)))
		return values, nil
	}
	c.misses.Add(int64(len(defaults)))

	gens := c.snapshot(keys)
	values, err := readMany(ctx, c.next, defaults)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(values))
	for key, v := range values {
		entries[cacheKey(key, defaults[key])] = v
	}
	c.fill(gens, entries)
	return values, nil
}

// Set implements Store.
func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	defer c.invalidate(ctx, key)
	return c.next.Set(ctx, key, value)
}

// Add implements Store.
func (c *CachedStore) Add(ctx context.Context, key, value string) (bool, error) {
	defer c.invalidate(ctx, key)
	return c.next.Add(ctx, key, value)
}

// SetMany implements BatchSetter, falling back to one Set per key when the
// wrapped store cannot batch.
func (c *CachedStore) SetMany(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	defer c.invalidate(ctx, keys...)

	if batch, ok := c.next.(BatchSetter); ok {
		return batch.SetMany(ctx, values)
	}
	for key, value := range values {
		if err := c.next.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns hit/miss counters and the current entry count.
func (c *CachedStore) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// Purge drops every cached entry.
func (c *CachedStore) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.gens {
		c.gens[key]++
	}
	c.lru.Purge()
}

// lookupAll returns the cached values for every key, or false when any of
// them is missing.
func (c *CachedStore) lookupAll(defaults map[string]string) (map[string]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make(map[string]string, len(defaults))
	for key, def := range defaults {
		v, ok := c.lru.Get(cacheKey(key, def))
		if !ok {
			return nil, false
		}
		values[key] = v
	}
	return values, true
}

func (c *CachedStore) snapshot(keys []string) map[string]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	gens := make(map[string]uint64, len(keys))
	for _, key := range keys {
		gens[key] = c.gens[key]
	}
	return gens
}

// fill caches entries unless one of the snapshotted keys was written since.
func (c *CachedStore) fill(gens map[string]uint64, entries map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, gen := range gens {
		if c.gens[key] != gen {
			return
		}
	}
	for ck, v := range entries {
		c.lru.Add(ck, v)
	}
}

func (c *CachedStore) invalidate(ctx context.Context, keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		c.gens[key]++
		prefix := key + "\x00"
		for _, k := range c.lru.Keys() {
			if strings.HasPrefix(k, prefix) {
				c.lru.Remove(k)
			}
		}
	}
	c.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "keys", keys)
}
