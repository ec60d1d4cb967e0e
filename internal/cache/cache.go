package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

// URLCache is an in-process redirect cache mapping public keys to targets.
type URLCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*URLCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &URLCache{cache: cache, ttl: ttl}, nil
}

func (c *URLCache) Get(_ context.Context, key string) (string, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	return val.(string), true
}

// Set stores the entry asynchronously; zero ttl means no expiry.
func (c *URLCache) Set(_ context.Context, key, targetURL string) {
	cost := int64(len(key) + len(targetURL))
	c.cache.SetWithTTL(key, targetURL, cost, c.ttl)
}

func (c *URLCache) Delete(_ context.Context, key string) {
	c.cache.Del(key)
}

func (c *URLCache) Close() {
	c.cache.Close()
}

func (c *URLCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
