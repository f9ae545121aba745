package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/observability"
	"golang.org/x/sync/errgroup"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw weather report into an index report.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.IndexReport, error)
}

// BatchLoader writes multiple index reports to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, reports []domain.IndexReport) error
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets how many messages of a batch are transformed concurrently.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBackoff sets the initial and maximum retry intervals for extract and
// load failures.
func WithBackoff(initial, maxInterval time.Duration) Option {
	return func(p *Pipeline) {
		p.initialBackoff = initial
		p.maxBackoff = maxInterval
	}
}

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
	workers     int

	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor:      e,
		transformer:    t,
		loader:         l,
		logger:         logger,
		metrics:        metrics,
		batchSize:      batchSize,
		workers:        1,
		initialBackoff: 200 * time.Millisecond,
		maxBackoff:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckReadiness returns nil once the pipeline has loaded a batch and is not
// retrying a failed load.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not loaded any reports yet or is retrying")
	}
	return nil
}

// Run executes the batch ETL loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize, "workers", p.workers)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	extractBackoff := p.newBackoff()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx, extractBackoff) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, extractBackoff backoff.BackOff) bool {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		wait := extractBackoff.NextBackOff()
		p.logger.Error("extract batch failed", "error", err, "retry_in", wait)
		return sleepWithContext(ctx, wait)
	}
	extractBackoff.Reset()

	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))

	loaded, ok := p.transformAndLoad(ctx, rawBatch)
	if !ok {
		return false
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
		p.ready.Store(true)
	}
	return true
}

// transformAndLoad transforms the batch, loads the successes, and commits
// offsets. Offsets, including those of skipped messages, are committed in
// batch order only after the load, so an interrupted load never moves the
// group past an unloaded report. Returns the number of loaded reports and
// false if the pipeline should stop.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawEvent) (int, bool) {
	results := p.transformBatch(ctx, rawBatch)

	outBatch := make([]domain.IndexReport, 0, len(rawBatch))
	outRaws := make([]domain.RawEvent, 0, len(rawBatch))

	for i, raw := range rawBatch {
		res := results[i]
		if res.err != nil {
			p.logger.Warn("transform failed, skipping message",
				"error", res.err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			continue
		}
		p.observeReport(res.report)
		outBatch = append(outBatch, res.report)
		outRaws = append(outRaws, raw)
	}

	loaded, ok := p.loadIsolating(ctx, outBatch, outRaws)
	if !ok {
		return 0, false
	}
	p.metrics.MessagesProduced.Add(float64(loaded))

	for _, raw := range rawBatch {
		p.commitOffset(ctx, raw)
	}

	return loaded, true
}

// loadIsolating loads the batch. When a loader rejects it permanently, the
// reports are loaded one at a time so only the rejected ones are skipped.
// Returns the number of loaded reports and false on cancellation.
func (p *Pipeline) loadIsolating(ctx context.Context, batch []domain.IndexReport, raws []domain.RawEvent) (int, bool) {
	if len(batch) == 0 {
		return 0, true
	}

	err := p.load(ctx, batch)
	switch {
	case err == nil:
		return len(batch), true
	case ctx.Err() != nil:
		return 0, false
	case len(batch) == 1:
		raw := raws[0]
		p.logger.Error("load rejected, skipping message",
			"error", err,
			"station_id", batch[0].StationID,
			"report_id", batch[0].ID,
			"topic", raw.Topic,
			"partition", raw.Partition,
			"offset", raw.Offset,
		)
		p.metrics.LoadRejected.Inc()
		return 0, true
	}

	loaded := 0
	for i := range batch {
		n, ok := p.loadIsolating(ctx, batch[i:i+1], raws[i:i+1])
		if !ok {
			return 0, false
		}
		loaded += n
	}
	return loaded, true
}

type transformResult struct {
	report domain.IndexReport
	err    error
}

// transformBatch transforms every message concurrently, keeping results in
// batch order.
func (p *Pipeline) transformBatch(ctx context.Context, rawBatch []domain.RawEvent) []transformResult {
	results := make([]transformResult, len(rawBatch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range rawBatch {
		g.Go(func() error {
			report, err := p.transformer.Transform(gctx, rawBatch[i])
			results[i] = transformResult{report: report, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never fail the group

	return results
}

// load writes the batch, retrying with exponential backoff until it succeeds,
// a loader returns a backoff.Permanent error, or ctx is cancelled. The
// pipeline reports not ready while retrying.
func (p *Pipeline) load(ctx context.Context, batch []domain.IndexReport) error {
	operation := func() error {
		return p.loader.LoadBatch(ctx, batch)
	}
	notify := func(err error, wait time.Duration) {
		p.ready.Store(false)
		p.metrics.LoadRetries.Inc()
		p.logger.Error("load batch failed", "error", err, "batch_size", len(batch), "retry_in", wait)
	}
	return backoff.RetryNotify(operation, backoff.WithContext(p.newBackoff(), ctx), notify)
}

func (p *Pipeline) newBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initialBackoff
	bo.MaxInterval = p.maxBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

func (p *Pipeline) observeReport(r domain.IndexReport) {
	mode := "daily"
	if r.Hourly != nil {
		mode = "hourly"
	}
	p.metrics.ReportsComputed.WithLabelValues(mode, strconv.FormatBool(r.Valid)).Inc()
	for _, index := range r.Violations {
		p.metrics.DomainViolations.WithLabelValues(index).Inc()
	}
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
