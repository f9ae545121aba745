package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/couchcryptid/fire-weather-etl/internal/config"
	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("CYEG"),
		Value:     []byte(`{"station_id":"CYEG"}`),
		Topic:     "raw-weather-reports",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("cwfis")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("CYEG"), raw.Key)
	assert.JSONEq(t, `{"station_id":"CYEG"}`, string(raw.Value))
	assert.Equal(t, "raw-weather-reports", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "cwfis", raw.Headers["source"])
	assert.Nil(t, raw.Commit)
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 7, 15, 20, 5, 0, 0, time.UTC)
	report := domain.IndexReport{
		ID:          "5d1c1f9e-0000-5000-8000-000000000000",
		StationID:   "CYEG",
		ObservedAt:  time.Date(2024, 7, 15, 20, 0, 0, 0, time.UTC),
		ProcessedAt: now,
		Daily:       fwi.DailyIndices{FFMC: 87.7, FWI: 10.1},
		Valid:       true,
		Violations:  []string{},
	}

	msg, err := serializeToMessage(report)
	require.NoError(t, err)

	assert.Equal(t, []byte("CYEG"), msg.Key)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte(domain.EventType), msg.Headers[0].Value)
	assert.Equal(t, "processed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)

	var roundtrip domain.IndexReport
	require.NoError(t, json.Unmarshal(msg.Value, &roundtrip))
	assert.Equal(t, report.ID, roundtrip.ID)
	assert.InDelta(t, 10.1, roundtrip.Daily.FWI, 0)
}

func TestWriter_LoadBatch_UnencodableReportIsPermanent(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaSinkTopic: "fire-weather-indices", BatchSize: 1}
	w := NewWriter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = w.Close() })

	report := domain.IndexReport{ID: "id-1", StationID: "CYEG", Daily: fwi.DailyIndices{FWI: math.NaN()}}

	// Serialization fails before any broker is contacted.
	err := w.LoadBatch(context.Background(), []domain.IndexReport{report})
	require.ErrorIs(t, err, domain.ErrUnserializable)
	var permanent *backoff.PermanentError
	assert.ErrorAs(t, err, &permanent)
}
