// Package cache keeps resolved font sizes for a bounded lifetime so unchanged
// inputs skip their measurement probes. It is a best-effort memo, not a
// correctness mechanism: a miss or an expired entry only costs a
// recomputation.
package cache

import "time"

const (
	// DefaultTTL is how long an entry stays valid after it is written.
	DefaultTTL = 30 * time.Second

	// DefaultSweepEvery is how many Puts pass between full sweeps of
	// expired entries.
	DefaultSweepEvery = 32
)

// Options configures a Cache. The zero value is usable: defaults apply.
type Options struct {
	// TTL is the entry lifetime; DefaultTTL when <= 0.
	TTL time.Duration

	// SweepEvery prunes all expired entries on every Nth Put, amortizing
	// cleanup without a timer goroutine. DefaultSweepEvery when <= 0.
	SweepEvery int

	// Now overrides the clock, for tests. time.Now when nil.
	Now func() time.Time
}

// Cache is an in-memory, time-expiring size memo. Entries expire TTL after
// they are written; expired entries read as absent and are only deleted by
// the periodic sweep.
//
// Not safe for concurrent use. Hosts calling from several goroutines must
// wrap Get/Put with their own lock.
type Cache struct {
	ttl        time.Duration
	sweepEvery int
	now        func() time.Time

	entries map[string]entry
	puts    int
}

type entry struct {
	size      float64
	createdAt time.Time
}

// New creates an empty cache.
func New(opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.SweepEvery <= 0 {
		opts.SweepEvery = DefaultSweepEvery
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache{
		ttl:        opts.TTL,
		sweepEvery: opts.SweepEvery,
		now:        opts.Now,
		entries:    map[string]entry{},
	}
}

// Get returns the size stored under key, if present and not expired. Expired
// entries are treated as absent, not deleted.
func (c *Cache) Get(key string) (float64, bool) {
	ent, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if c.now().Sub(ent.createdAt) >= c.ttl {
		return 0, false
	}
	return ent.size, true
}

// Put stores size under key, resetting its lifetime. Every SweepEvery-th Put
// additionally deletes all expired entries.
func (c *Cache) Put(key string, size float64) {
	now := c.now()
	c.entries[key] = entry{size: size, createdAt: now}
	c.puts++
	if c.puts >= c.sweepEvery {
		c.puts = 0
		c.sweep(now)
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int { return len(c.entries) }

// Flush removes all entries.
func (c *Cache) Flush() {
	c.entries = map[string]entry{}
	c.puts = 0
}

func (c *Cache) sweep(now time.Time) {
	for key, ent := range c.entries {
		if now.Sub(ent.createdAt) >= c.ttl {
			delete(c.entries, key)
		}
	}
}
