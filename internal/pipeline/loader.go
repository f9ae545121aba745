package pipeline

import (
	"context"
	"fmt"

	"github.com/couchcryptid/fire-weather-etl/internal/domain"
)

// FanOut loads every batch into each loader in order. The first failure stops
// the fan-out and is returned, so the whole batch is retried. Loaders must
// tolerate replays; report IDs are deterministic for that reason.
type FanOut []BatchLoader

// Loaders builds a FanOut, skipping nil loaders.
func Loaders(loaders ...BatchLoader) FanOut {
	out := make(FanOut, 0, len(loaders))
	for _, l := range loaders {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (f FanOut) LoadBatch(ctx context.Context, reports []domain.IndexReport) error {
	for i, l := range f {
		if err := l.LoadBatch(ctx, reports); err != nil {
			return fmt.Errorf("loader %d: %w", i, err)
		}
	}
	return nil
}
