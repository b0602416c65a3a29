package property

import (
	"sync"
	"time"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

// DefaultCacheTTL is the freshness window for the unfiltered listing cache.
const DefaultCacheTTL = 5 * time.Minute

// Cache holds the unfiltered listing result for a bounded time window.
// It is owned by the service that uses it rather than living in package
// state, so tests and multiple instances stay isolated.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	data      []models.Property
	fetchedAt time.Time
}

// NewCache builds a cache with the given freshness window.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// Fresh returns the cached slice when one is present and younger than the TTL.
func (c *Cache) Fresh() ([]models.Property, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil || c.fetchedAt.IsZero() {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.data, true
}

// Set replaces the cached slice and stamps it with the current time.
// Concurrent writers race benignly; the last write wins.
func (c *Cache) Set(items []models.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = items
	c.fetchedAt = c.now()
}

// Invalidate drops the cached slice so the next unfiltered read refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.fetchedAt = time.Time{}
}
