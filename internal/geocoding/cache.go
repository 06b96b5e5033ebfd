package geocoding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheEntry struct {
	coords    models.Coordinates
	expiresAt time.Time
}

// CachedProvider remembers successful lookups of the wrapped provider.
// Failures are never cached.
type CachedProvider struct {
	next    Provider
	entries *lru.Cache[string, cacheEntry]
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewCachedProvider keeps up to size addresses for ttl each.
func NewCachedProvider(next Provider, size int, ttl time.Duration, m *metrics.Metrics) (*CachedProvider, error) {
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding cache: %w", err)
	}

	return &CachedProvider{next: next, entries: entries, ttl: ttl, metrics: m}, nil
}

func (c *CachedProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	key := cacheKey(address)

	if entry, ok := c.entries.Get(key); ok {
		if time.Now().Before(entry.expiresAt) {
			c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
			coords := entry.coords
			return &coords, nil
		}
		c.entries.Remove(key)
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	coords, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	c.entries.Add(key, cacheEntry{coords: *coords, expiresAt: time.Now().Add(c.ttl)})

	return coords, nil
}

// Len reports the number of cached addresses, expired ones included.
func (c *CachedProvider) Len() int {
	return c.entries.Len()
}

// cacheKey folds case and whitespace so trivially different spellings share an entry.
func cacheKey(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
