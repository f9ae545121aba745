package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Observation is a single weather reading. RelativeHumidity is a fraction in
// [0,1].
type Observation struct {
	Temperature      float64 `json:"temperature"`
	RelativeHumidity float64 `json:"relative_humidity"`
	Precipitation    float64 `json:"precipitation"`
	WindSpeed        float64 `json:"wind_speed"`
}

// HourlyObservation is the reading for the hour being indexed. The start and
// end humidities feed the contiguous Lawson model and default to
// RelativeHumidity when absent.
type HourlyObservation struct {
	Observation
	RelativeHumidityStart *float64 `json:"relative_humidity_start,omitempty"`
	RelativeHumidityEnd   *float64 `json:"relative_humidity_end,omitempty"`
}

// WeatherReport is a station's input for one indexing step.
type WeatherReport struct {
	StationID        string             `json:"station_id"`
	ObservedAt       time.Time          `json:"observed_at"`
	Latitude         float64            `json:"latitude"`
	Longitude        float64            `json:"longitude"`
	Timezone         string             `json:"timezone,omitempty"`
	Previous         *fwi.MoistureState `json:"previous"`
	Noon             *Observation       `json:"noon"`
	Hourly           *HourlyObservation `json:"hourly,omitempty"`
	PreviousHourFFMC *float64           `json:"previous_hour_ffmc,omitempty"`
}

// IndexReport is the computed result for a WeatherReport.
type IndexReport struct {
	ID          string             `json:"id"`
	StationID   string             `json:"station_id"`
	ObservedAt  time.Time          `json:"observed_at"`
	ProcessedAt time.Time          `json:"processed_at"`
	Timezone    string             `json:"timezone"`
	ZoneSource  string             `json:"zone_source"` // "iana", "offset", "default", "fallback"
	Daily       fwi.DailyIndices   `json:"daily"`
	Hourly      *fwi.HourlyIndices `json:"hourly,omitempty"`
	NextState   fwi.MoistureState  `json:"next_state"`
	Valid       bool               `json:"valid"`
	Violations  []string           `json:"violations"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// StationState is the latest moisture state archived for a station, used to
// seed its next report.
type StationState struct {
	StationID  string            `json:"station_id"`
	ObservedAt time.Time         `json:"observed_at"`
	ReportID   string            `json:"report_id"`
	State      fwi.MoistureState `json:"state"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
