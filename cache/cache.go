// Package cache provides a bounded key-value store with access-based expiry
// for memoizing derived artifacts such as projected layer stacks
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/lixenwraith/gamearea/status"
	"github.com/lixenwraith/gamearea/timing"
)

type entry[V any] struct {
	value      V
	lastAccess time.Time
}

// Cache is a concurrency-safe store bounded by entry count with least-recently-used
// eviction and expiry measured from the last successful access
// The recency list doubles as the expiry order: the oldest entry is always the
// one idle the longest, so maintenance stops at the first live entry
type Cache[V any] struct {
	mu     sync.Mutex
	lru    *simplelru.LRU[string, *entry[V]]
	expiry time.Duration
	clock  timing.Clock
	opts   Options

	hits        *atomic.Int64
	misses      *atomic.Int64
	evictions   *atomic.Int64
	expirations *atomic.Int64
}

// Stats is a point-in-time view of cache counters
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64
	Size        int
}

// HitRatio returns hits over total lookups, 0 when nothing was looked up
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache from validated options
func New[V any](opts Options) (*Cache[V], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	lru, err := simplelru.NewLRU[string, *entry[V]](opts.MaximumSize, nil)
	if err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = timing.SystemClock{}
	}
	if opts.Name == "" {
		opts.Name = "cache"
	}

	c := &Cache[V]{
		lru:    lru,
		expiry: opts.Expiry,
		clock:  opts.Clock,
		opts:   opts,
	}
	c.hits = counter(opts, "hits")
	c.misses = counter(opts, "misses")
	c.evictions = counter(opts, "evictions")
	c.expirations = counter(opts, "expirations")
	return c, nil
}

// NewDefault creates a cache with DefaultOptions
func NewDefault[V any]() *Cache[V] {
	c, err := New[V](DefaultOptions())
	if err != nil {
		panic(err) // defaults are valid by construction
	}
	return c
}

// counter returns a registry-backed counter, or a private one without a registry
func counter(opts Options, name string) *atomic.Int64 {
	if opts.Metrics == nil {
		return new(atomic.Int64)
	}
	return opts.Metrics.Counters.Get(opts.Name + "." + name)
}

// Options returns the construction options
func (c *Cache[V]) Options() Options {
	return c.opts
}

// RetrieveIfPresent returns the value for key when present and not expired
// A hit refreshes the entry's access time, extending its expiry window
func (c *Cache[V]) RetrieveIfPresent(key string) (V, bool) {
	c.mu.Lock()
	// Clock read under the lock keeps access times ordered like the recency list
	now := c.clock.Now()
	e, ok := c.lru.Get(key)
	if ok && c.expired(e, now) {
		c.lru.Remove(key)
		c.expirations.Add(1)
		ok = false
	}
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	e.lastAccess = now
	v := e.value
	c.mu.Unlock()

	c.hits.Add(1)
	return v, true
}

// Store inserts or overwrites key and returns value unchanged
// Capacity is enforced immediately; expired entries are swept opportunistically
func (c *Cache[V]) Store(key string, value V) V {
	c.mu.Lock()
	now := c.clock.Now()
	if c.lru.Add(key, &entry[V]{value: value, lastAccess: now}) {
		c.evictions.Add(1)
	}
	c.sweepLocked(now)
	c.mu.Unlock()

	return value
}

// GetOrLoad returns the cached value for key, calling load on a miss and storing
// its result. Load errors are returned and nothing is stored
// load runs outside the lock; concurrent misses on one key may load more than once
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := c.RetrieveIfPresent(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Store(key, v), nil
}

// Invalidate drops key if present
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	c.lru.Remove(key)
	c.mu.Unlock()
}

// InvalidateAll drops every entry
func (c *Cache[V]) InvalidateAll() {
	c.mu.Lock()
	c.lru.Purge()
	c.mu.Unlock()
}

// CleanUp removes every expired entry and returns how many were dropped
func (c *Cache[V]) CleanUp() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(c.clock.Now())
}

// Len returns the number of resident entries, expired ones not yet swept included
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns current counters
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Expirations: c.expirations.Load(),
		Size:        c.Len(),
	}
}

// PublishGauges writes size and hit ratio into the metrics registry, if any
func (c *Cache[V]) PublishGauges() {
	if c.opts.Metrics == nil {
		return
	}
	s := c.Stats()
	publishGauges(c.opts.Metrics, c.opts.Name, s)
}

func publishGauges(r *status.Registry, name string, s Stats) {
	r.SetGauge(name+".size", float64(s.Size))
	r.SetGauge(name+".hit_ratio", s.HitRatio())
}

func (c *Cache[V]) expired(e *entry[V], now time.Time) bool {
	return now.Sub(e.lastAccess) >= c.expiry
}

// sweepLocked drops expired entries from the least recently used end
func (c *Cache[V]) sweepLocked(now time.Time) int {
	n := 0
	for {
		key, e, ok := c.lru.GetOldest()
		if !ok || !c.expired(e, now) {
			break
		}
		c.lru.Remove(key)
		n++
	}
	if n > 0 {
		c.expirations.Add(int64(n))
	}
	return n
}
