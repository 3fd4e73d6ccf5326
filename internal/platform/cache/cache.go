package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
	seq       uint64
}

// Stats counts cache activity since construction or the last Clear.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

type Option func(*options)

type options struct {
	maxSize int
	now     func() time.Time
}

// WithMaxSize bounds the number of live entries. Values <= 0 mean unbounded.
func WithMaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Cache is an in-process TTL cache keyed by string. Expired entries are
// purged lazily on Get, Has and Set. When the cache is over its size limit,
// entries closest to expiry go first.
//
// A ttl <= 0 stores entries that never expire.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	ttl     time.Duration
	maxSize int
	now     func() time.Time
	seq     uint64
	stats   Stats
	flight  resilience.SingleFlight[T]
}

func New[T any](ttl time.Duration, opts ...Option) *Cache[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		maxSize: o.maxSize,
		now:     o.now,
	}
}

func (c *Cache[T]) TTL() time.Duration { return c.ttl }

func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.purgeLocked(now)

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = now.Add(c.ttl)
	}
	c.seq++
	c.entries[key] = &entry[T]{value: value, expiresAt: expiresAt, seq: c.seq}

	if c.maxSize > 0 {
		for len(c.entries) > c.maxSize {
			c.evictLocked()
		}
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.now())
	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		var zero T
		return zero, false
	}
	c.stats.Hits++
	return e.value, true
}

func (c *Cache[T]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.now())
	_, ok := c.entries[key]
	return ok
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// DeletePrefix drops every key starting with prefix and returns how many
// were removed.
func (c *Cache[T]) DeletePrefix(prefix string) int {
	if prefix == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache[T]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry[T])
	c.stats = Stats{}
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet purged.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Cache[T]) purgeLocked(now time.Time) {
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			c.stats.Expirations++
		}
	}
}

// evictLocked removes the entry that expires soonest; ties go to the
// earliest insert. Entries without an expiry sort last.
func (c *Cache[T]) evictLocked() {
	var (
		victim string
		oldest *entry[T]
	)
	for key, e := range c.entries {
		if oldest == nil || e.before(oldest) {
			victim, oldest = key, e
		}
	}
	if oldest == nil {
		return
	}
	delete(c.entries, victim)
	c.stats.Evictions++
}

func (e *entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (e *entry[T]) before(other *entry[T]) bool {
	switch {
	case e.expiresAt.Equal(other.expiresAt):
		return e.seq < other.seq
	case e.expiresAt.IsZero():
		return false
	case other.expiresAt.IsZero():
		return true
	default:
		return e.expiresAt.Before(other.expiresAt)
	}
}

// GetOrSet returns the cached value for key or calls fetch, stores the
// result and returns it. Errors are returned and nothing is stored.
//
// Concurrent misses on the same key each call fetch. Use GetOrSetShared when
// duplicate fetches are too expensive.
func GetOrSet[T any](ctx context.Context, c *Cache[T], key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// GetOrSetShared is GetOrSet with concurrent misses for one key coalesced
// into a single fetch.
func GetOrSetShared[T any](ctx context.Context, c *Cache[T], key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.flight.Do(key, func() (T, error) {
		if cached, ok := c.Get(key); ok {
			return cached, nil
		}
		loaded, err := fetch(ctx)
		if err != nil {
			return loaded, err
		}
		c.Set(key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
