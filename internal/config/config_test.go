package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBroker = "localhost:9092"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "raw-weather-reports", cfg.KafkaSourceTopic)
	assert.Equal(t, "fire-weather-indices", cfg.KafkaSinkTopic)
	assert.Equal(t, "fwi-etl", cfg.KafkaGroupID)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.Equal(t, 4, cfg.TransformWorkers)
	assert.True(t, cfg.HourlyEnabled)
	assert.Equal(t, HourlyModelLawson, cfg.HourlyModel)
	assert.False(t, cfg.LawsonPreviousHourSeed)
	assert.False(t, cfg.LawsonContiguous)
	assert.Equal(t, "UTC", cfg.DefaultTimezone)
	assert.Equal(t, 256, cfg.TZCacheSize)
	assert.Empty(t, cfg.SQLitePath)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("TRANSFORM_WORKERS", "8")
	t.Setenv("HOURLY_ENABLED", "false")
	t.Setenv("HOURLY_MODEL", "VanWagner")
	t.Setenv("LAWSON_PREVIOUS_HOUR_SEED", "true")
	t.Setenv("LAWSON_CONTIGUOUS", "1")
	t.Setenv("DEFAULT_TIMEZONE", "UTC")
	t.Setenv("TZ_CACHE_SIZE", "16")
	t.Setenv("SQLITE_PATH", "/var/lib/fwi/archive.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.Equal(t, 8, cfg.TransformWorkers)
	assert.False(t, cfg.HourlyEnabled)
	assert.Equal(t, HourlyModelVanWagner, cfg.HourlyModel)
	assert.True(t, cfg.LawsonPreviousHourSeed)
	assert.True(t, cfg.LawsonContiguous)
	assert.Equal(t, 16, cfg.TZCacheSize)
	assert.Equal(t, "/var/lib/fwi/archive.db", cfg.SQLitePath)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"BATCH_SIZE", "0"},
		{"BATCH_SIZE", "9999"},
		{"BATCH_FLUSH_INTERVAL", "not-a-duration"},
		{"TRANSFORM_WORKERS", "0"},
		{"TRANSFORM_WORKERS", "many"},
		{"TZ_CACHE_SIZE", "-3"},
		{"HOURLY_ENABLED", "maybe"},
		{"LAWSON_CONTIGUOUS", "yes please"},
		{"HOURLY_MODEL", "fbp"},
		{"DEFAULT_TIMEZONE", "Mars/Olympus_Mons"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}
