package metrics

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CacheStats interface {
	Stats() (hits, misses uint64, ratio float64)
}

type KeyCounter interface {
	AvailableKeys(ctx context.Context) (int, error)
}

// Collector samples process, connection pool, cache and key pool state on
// a fixed interval. pool may be nil when storage is not Postgres.
type Collector struct {
	recorder *Recorder
	pool     *pgxpool.Pool
	cache    CacheStats
	keys     KeyCounter
	logger   *slog.Logger
}

func NewCollector(recorder *Recorder, pool *pgxpool.Pool, cache CacheStats, keys KeyCounter, logger *slog.Logger) *Collector {
	return &Collector{
		recorder: recorder,
		pool:     pool,
		cache:    cache,
		keys:     keys,
		logger:   logger,
	}
}

func (c *Collector) Run(ctx context.Context, interval time.Duration) {
	if !c.recorder.Enabled() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.recorder.RecordInfra(c.Sample(ctx))
		}
	}
}

func (c *Collector) Sample(ctx context.Context) InfraMetric {
	m := InfraMetric{
		Time:       time.Now(),
		Goroutines: runtime.NumGoroutine(),
	}

	if c.pool != nil {
		stat := c.pool.Stat()
		m.PoolAcquired = int(stat.AcquiredConns())
		m.PoolIdle = int(stat.IdleConns())
		m.PoolTotal = int(stat.TotalConns())
		m.PoolMax = int(stat.MaxConns())
	}

	hits, misses, ratio := c.cache.Stats()
	m.CacheHits = int64(hits)
	m.CacheMisses = int64(misses)
	m.CacheHitRatio = ratio

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	m.HeapAllocMB = float64(memStats.HeapAlloc) / 1024 / 1024

	available, err := c.keys.AvailableKeys(ctx)
	if err != nil {
		c.logger.Warn("failed to count available keys", slog.String("error", err.Error()))
	} else {
		m.KeysAvailable = available
	}

	return m
}
