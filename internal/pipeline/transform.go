package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/fire-weather-etl/internal/domain"
)

// IndexTransformer implements Transformer by parsing a weather report and
// running the index engine over it.
type IndexTransformer struct {
	resolver domain.GeoResolver
	opts     domain.Options
	logger   *slog.Logger
}

// NewTransformer creates an IndexTransformer. Pass a nil resolver to use the
// offset carried by each report's observed_at.
func NewTransformer(resolver domain.GeoResolver, opts domain.Options, logger *slog.Logger) *IndexTransformer {
	return &IndexTransformer{
		resolver: resolver,
		opts:     opts,
		logger:   logger,
	}
}

func (t *IndexTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.IndexReport, error) {
	report, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.IndexReport{}, err
	}
	return t.Compute(ctx, report), nil
}

// Compute indexes an already parsed report.
func (t *IndexTransformer) Compute(ctx context.Context, report domain.WeatherReport) domain.IndexReport {
	return domain.ComputeIndices(ctx, report, t.resolver, t.opts, t.logger)
}
