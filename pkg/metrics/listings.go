package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ListingCacheMetrics tracks the in-memory listing cache behaviour.
type ListingCacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	refreshes prometheus.Counter
	bypasses  prometheus.Counter
}

// NewListingCacheMetrics registers the cache counters on the provided registerer.
func NewListingCacheMetrics(reg prometheus.Registerer) *ListingCacheMetrics {
	if reg == nil {
		return &ListingCacheMetrics{}
	}
	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_hits_total",
		Help: "Unfiltered listing reads served from the in-memory cache.",
	})
	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_misses_total",
		Help: "Unfiltered listing reads that went to the database.",
	})
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_refreshes_total",
		Help: "Cache refreshes triggered by misses or invalidation.",
	})
	bypasses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listing_cache_bypasses_total",
		Help: "Filtered listing reads that skipped the cache entirely.",
	})
	reg.MustRegister(hits, misses, refreshes, bypasses)
	return &ListingCacheMetrics{
		hits:      hits,
		misses:    misses,
		refreshes: refreshes,
		bypasses:  bypasses,
	}
}

// IncHit increments the cache hit counter.
func (l *ListingCacheMetrics) IncHit() {
	if l == nil || l.hits == nil {
		return
	}
	l.hits.Inc()
}

// IncMiss increments the cache miss counter.
func (l *ListingCacheMetrics) IncMiss() {
	if l == nil || l.misses == nil {
		return
	}
	l.misses.Inc()
}

// IncRefresh increments the cache refresh counter.
func (l *ListingCacheMetrics) IncRefresh() {
	if l == nil || l.refreshes == nil {
		return
	}
	l.refreshes.Inc()
}

// IncBypass increments the cache bypass counter.
func (l *ListingCacheMetrics) IncBypass() {
	if l == nil || l.bypasses == nil {
		return
	}
	l.bypasses.Inc()
}
