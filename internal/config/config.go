package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Hourly FFMC models selectable through HOURLY_MODEL.
const (
	HourlyModelLawson    = "lawson"
	HourlyModelVanWagner = "vanwagner"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration
	TransformWorkers   int

	// Hourly index configuration.
	HourlyEnabled          bool
	HourlyModel            string
	LawsonPreviousHourSeed bool
	LawsonContiguous       bool

	// Station time zone resolution.
	DefaultTimezone string
	TZCacheSize     int

	// SQLitePath enables the index archive when set.
	SQLitePath string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	workers, err := parsePositiveInt("TRANSFORM_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	tzCacheSize, err := parsePositiveInt("TZ_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}

	hourlyEnabled, err := parseBool("HOURLY_ENABLED", true)
	if err != nil {
		return nil, err
	}
	previousHourSeed, err := parseBool("LAWSON_PREVIOUS_HOUR_SEED", false)
	if err != nil {
		return nil, err
	}
	contiguous, err := parseBool("LAWSON_CONTIGUOUS", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "raw-weather-reports"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "fire-weather-indices"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "fwi-etl"),
		HTTPAddr:           sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,
		TransformWorkers:   workers,

		HourlyEnabled:          hourlyEnabled,
		HourlyModel:            strings.ToLower(sharedcfg.EnvOrDefault("HOURLY_MODEL", HourlyModelLawson)),
		LawsonPreviousHourSeed: previousHourSeed,
		LawsonContiguous:       contiguous,

		DefaultTimezone: sharedcfg.EnvOrDefault("DEFAULT_TIMEZONE", "UTC"),
		TZCacheSize:     tzCacheSize,

		SQLitePath: os.Getenv("SQLITE_PATH"),
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.HourlyModel != HourlyModelLawson && cfg.HourlyModel != HourlyModelVanWagner {
		return nil, fmt.Errorf("invalid HOURLY_MODEL %q: must be %s or %s", cfg.HourlyModel, HourlyModelLawson, HourlyModelVanWagner)
	}
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIMEZONE: %w", err)
	}

	return cfg, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: must be true or false", key)
	}
	return b, nil
}
