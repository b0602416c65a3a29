package property

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

func TestCacheEmptyByDefault(t *testing.T) {
	cache := NewCache(DefaultCacheTTL)
	_, ok := cache.Fresh()
	assert.False(t, ok)
}

func TestCacheFreshWithinWindow(t *testing.T) {
	now := time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC)
	cache := NewCache(5 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set([]models.Property{{Title: "one"}})

	now = now.Add(4*time.Minute + 59*time.Second)
	items, ok := cache.Fresh()
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestCacheStaleAfterWindow(t *testing.T) {
	now := time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC)
	cache := NewCache(5 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set([]models.Property{{Title: "one"}})

	now = now.Add(5 * time.Minute)
	_, ok := cache.Fresh()
	assert.False(t, ok)
}

func TestCacheSetReplacesNotMerges(t *testing.T) {
	cache := NewCache(time.Hour)
	cache.Set([]models.Property{{Title: "one"}, {Title: "two"}})
	cache.Set([]models.Property{{Title: "three"}})

	items, ok := cache.Fresh()
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "three", items[0].Title)
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache(time.Hour)
	cache.Set([]models.Property{{Title: "one"}})
	cache.Invalidate()

	_, ok := cache.Fresh()
	assert.False(t, ok)
}

func TestCacheEmptySliceIsStillAHit(t *testing.T) {
	// A successful unfiltered fetch of zero rows is cacheable.
	cache := NewCache(time.Hour)
	cache.Set([]models.Property{})

	items, ok := cache.Fresh()
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestCacheConcurrentWritesLastWriteWins(t *testing.T) {
	cache := NewCache(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cache.Set([]models.Property{{TotalRatings: n}})
		}(i)
	}
	wg.Wait()

	items, ok := cache.Fresh()
	require.True(t, ok)
	require.Len(t, items, 1)
}
