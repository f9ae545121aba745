//go:build integration

package integration_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const kafkaImage = "confluentinc/confluent-local:7.5.0"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("fwi-etl-test"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "kafka brokers")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "find controller")

	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}), "create topic %s", topic)
}

// mockStation is a station and its run of noon observations.
type mockStation struct {
	id       string
	lat, lon float64
	timezone string
	noons    []domain.Observation
}

var mockStations = []mockStation{
	{id: "CYEG", lat: 53.31, lon: -113.58, timezone: "America/Edmonton", noons: []domain.Observation{
		{Temperature: 17, RelativeHumidity: 0.42, WindSpeed: 25},
		{Temperature: 20, RelativeHumidity: 0.30, WindSpeed: 20},
		{Temperature: 12, RelativeHumidity: 0.85, WindSpeed: 10, Precipitation: 12.5},
		{Temperature: 18, RelativeHumidity: 0.40, WindSpeed: 22},
	}},
	{id: "CYQR", lat: 50.43, lon: -104.67, timezone: "America/Regina", noons: []domain.Observation{
		{Temperature: 28, RelativeHumidity: 0.18, WindSpeed: 30},
		{Temperature: 30, RelativeHumidity: 0.15, WindSpeed: 35},
		{Temperature: 27, RelativeHumidity: 0.22, WindSpeed: 28},
	}},
	{id: "CYXD", lat: 53.57, lon: -113.52, noons: []domain.Observation{
		{Temperature: 22, RelativeHumidity: 0.33, WindSpeed: 14},
		{Temperature: 24, RelativeHumidity: 0.29, WindSpeed: 16},
		{Temperature: 25, RelativeHumidity: 0.27, WindSpeed: 18},
	}},
}

// loadMockData builds one weather report per station day. Every day starts
// from the same moisture state so reports are independent of arrival order.
func loadMockData(t *testing.T) []domain.WeatherReport {
	t.Helper()

	start := time.Date(2024, time.July, 15, 13, 0, 0, 0, time.FixedZone("", -6*3600))
	var reports []domain.WeatherReport
	for _, s := range mockStations {
		for day, noon := range s.noons {
			hourly := domain.HourlyObservation{Observation: domain.Observation{
				Temperature:      noon.Temperature + 2,
				RelativeHumidity: noon.RelativeHumidity * 0.9,
				WindSpeed:        noon.WindSpeed,
			}}
			reports = append(reports, domain.WeatherReport{
				StationID:  s.id,
				ObservedAt: start.AddDate(0, 0, day).Add(3 * time.Hour),
				Latitude:   s.lat,
				Longitude:  s.lon,
				Timezone:   s.timezone,
				Previous:   &fwi.MoistureState{FFMC: 85, DMC: 25, DC: 200},
				Noon:       &noon,
				Hourly:     &hourly,
			})
		}
	}
	require.NotEmpty(t, reports)
	return reports
}

func uniqueGroup(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
