package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"shortlink/internal/config"
)

// Writer is the subset of *pgxpool.Pool the recorder needs.
type Writer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var (
	httpColumns = []string{
		"time", "method", "path", "status_code", "duration_ms", "client_ip", "request_id", "error",
	}
	businessColumns = []string{"time", "metric_name", "value", "labels"}
	infraColumns    = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb", "keys_available",
	}
)

// Recorder buffers metrics in memory and flushes them to Postgres in
// batches. Records are dropped rather than blocking when a buffer is full.
type Recorder struct {
	writer       Writer
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	businessCh   chan BusinessMetric
	infraCh      chan InfraMetric
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(writer Writer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		writer:     writer,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		businessCh: make(chan BusinessMetric, cfg.BufferSize),
		infraCh:    make(chan InfraMetric, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) Enabled() bool {
	return r.cfg.Enabled && r.writer != nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.Enabled() {
		return
	}
	enqueue(r, r.httpCh, m, "http")
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.Enabled() {
		return
	}
	enqueue(r, r.businessCh, BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}, "business")
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.Enabled() {
		return
	}
	enqueue(r, r.infraCh, m, "infra")
}

func enqueue[T any](r *Recorder, ch chan<- T, m T, kind string) {
	select {
	case ch <- m:
	default:
		r.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", kind))
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.Enabled() {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go runBatcher(ctx, r, r.httpCh, interval, "http_metrics", httpColumns, httpRow)
	go runBatcher(ctx, r, r.businessCh, interval, "business_metrics", businessColumns, businessRow)
	go runBatcher(ctx, r, r.infraCh, interval, "infra_metrics", infraColumns, infraRow)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the batchers after flushing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func runBatcher[T any](
	ctx context.Context,
	r *Recorder,
	ch <-chan T,
	interval time.Duration,
	table string,
	columns []string,
	toRow func(T) []any,
) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		rows := make([][]any, len(batch))
		for i, m := range batch {
			rows[i] = toRow(m)
		}
		if _, err := r.writer.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
			r.logger.Error("failed to write metrics batch",
				slog.String("table", table),
				slog.Int("rows", len(rows)),
				slog.String("error", err.Error()))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			drain(ch, &batch)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			flush(shutdownCtx)
			cancel()
			return
		case <-r.shutdownCh:
			drain(ch, &batch)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			flush(shutdownCtx)
			cancel()
			return
		case m := <-ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

func drain[T any](ch <-chan T, batch *[]T) {
	for {
		select {
		case m := <-ch:
			*batch = append(*batch, m)
		default:
			return
		}
	}
}

func httpRow(m HTTPMetric) []any {
	return []any{m.Time, m.Method, m.Route, m.StatusCode, m.DurationMs, m.ClientIP, m.RequestID, m.Error}
}

func businessRow(m BusinessMetric) []any {
	labelsJSON, _ := json.Marshal(m.Labels)
	return []any{m.Time, m.MetricName, m.Value, labelsJSON}
}

func infraRow(m InfraMetric) []any {
	return []any{
		m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
		m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB, m.KeysAvailable,
	}
}
