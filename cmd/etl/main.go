package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/fire-weather-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/fire-weather-etl/internal/adapter/kafka"
	"github.com/couchcryptid/fire-weather-etl/internal/adapter/sqlite"
	"github.com/couchcryptid/fire-weather-etl/internal/adapter/tzinfo"
	"github.com/couchcryptid/fire-weather-etl/internal/config"
	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	"github.com/couchcryptid/fire-weather-etl/internal/observability"
	"github.com/couchcryptid/fire-weather-etl/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := run(cfg, logger, metrics); err != nil {
		logger.Error("service error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver, err := tzinfo.NewResolver(cfg.DefaultTimezone, cfg.TZCacheSize, metrics)
	if err != nil {
		return err
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	loaders := []pipeline.BatchLoader{writer}
	checks := readiness{}

	// Archive is feature-flagged via SQLITE_PATH.
	var store *sqlite.Store
	if cfg.SQLitePath != "" {
		store, err = sqlite.Open(ctx, cfg.SQLitePath, logger, metrics)
		if err != nil {
			return err
		}
		loaders = append(loaders, store)
		checks = append(checks, store)
		logger.Info("sqlite archive enabled", "path", cfg.SQLitePath)
	} else {
		logger.Info("sqlite archive disabled")
	}

	opts := engineOptions(cfg)
	logger.Info("engine configured",
		"hourly", opts.Hourly,
		"hourly_model", cfg.HourlyModel,
		"lawson_previous_hour_seed", cfg.LawsonPreviousHourSeed,
		"lawson_contiguous", cfg.LawsonContiguous,
		"default_timezone", cfg.DefaultTimezone,
	)

	transformer := pipeline.NewTransformer(resolver, opts, logger)
	p := pipeline.New(reader, transformer, pipeline.Loaders(loaders...), logger, metrics, cfg.BatchSize,
		pipeline.WithWorkers(cfg.TransformWorkers))
	checks = append(readiness{p}, checks...)

	serverOpts := []httpadapter.Option{httpadapter.WithComputer(transformer)}
	if store != nil {
		serverOpts = append(serverOpts, httpadapter.WithStations(store))
	}
	srv := httpadapter.NewServer(cfg.HTTPAddr, checks, logger, serverOpts...)

	g, gctx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Start ETL pipeline.
	g.Go(func() error {
		return p.Run(gctx)
	})

	// Shut down on signal or when either goroutine fails.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		return nil
	})

	err = g.Wait()

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("sqlite close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return err
}

// engineOptions maps the hourly settings onto the engine configuration.
func engineOptions(cfg *config.Config) domain.Options {
	return domain.Options{
		Hourly: cfg.HourlyEnabled,
		HourlyConfig: fwi.HourlyConfig{
			UseVanWagner:              cfg.HourlyModel == config.HourlyModelVanWagner,
			UseLawsonPreviousHourSeed: cfg.LawsonPreviousHourSeed,
			Contiguous:                cfg.LawsonContiguous,
		},
	}
}

// readiness is ready when every check is.
type readiness []sharedobs.ReadinessChecker

func (r readiness) CheckReadiness(ctx context.Context) error {
	for _, c := range r {
		if err := c.CheckReadiness(ctx); err != nil {
			return err
		}
	}
	return nil
}
