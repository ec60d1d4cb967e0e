package metrics

import "time"

// Business metric names recorded by the service and handler layers.
const (
	URLAllocated    = "url_allocated"
	URLReused       = "url_reused"
	PoolExhausted   = "pool_exhausted"
	AllocationRetry = "allocation_retry"
	Redirects       = "redirects"
	CacheHit        = "cache_hit"
	CacheMiss       = "cache_miss"
	URLNotFound     = "url_not_found"
)

// HTTPMetric is one served request. Route is the echo route template
// (/admin/:secret), never the raw path, so secret keys stay out of
// http_metrics.
type HTTPMetric struct {
	Time       time.Time
	Method     string
	Route      string
	StatusCode int
	DurationMs float64
	ClientIP   string
	RequestID  string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

// InfraMetric is one collector sample of process, connection pool, redirect
// cache and key pool state.
type InfraMetric struct {
	Time time.Time

	PoolAcquired int
	PoolIdle     int
	PoolTotal    int
	PoolMax      int

	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64

	Goroutines  int
	HeapAllocMB float64

	KeysAvailable int
}
