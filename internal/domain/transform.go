package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	"github.com/google/uuid"
)

// EventType is the event_type header stamped on every index report.
const EventType = "fire_weather_indices"

var (
	// ErrInvalidReport marks a weather report that cannot be indexed at all.
	ErrInvalidReport = errors.New("invalid weather report")
	// ErrStationNotFound is returned when no state is archived for a station.
	ErrStationNotFound = errors.New("station not found")
	// ErrUnserializable marks an index report that cannot be encoded.
	// Retrying cannot succeed.
	ErrUnserializable = errors.New("index report cannot be serialized")
)

// Options controls how ComputeIndices runs the engine.
type Options struct {
	// Hourly computes hourly indices for reports that carry an hourly
	// observation.
	Hourly       bool
	HourlyConfig fwi.HourlyConfig
}

// DecodeWeatherReport unmarshals and validates a JSON weather report.
func DecodeWeatherReport(data []byte) (WeatherReport, error) {
	var report WeatherReport
	if err := json.Unmarshal(data, &report); err != nil {
		return WeatherReport{}, fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}
	if err := report.Validate(); err != nil {
		return WeatherReport{}, err
	}
	return report, nil
}

// ParseRawEvent deserializes a RawEvent's value into a WeatherReport. The
// message key stands in for a missing station_id.
func ParseRawEvent(raw RawEvent) (WeatherReport, error) {
	var report WeatherReport
	if err := json.Unmarshal(raw.Value, &report); err != nil {
		return WeatherReport{}, fmt.Errorf("parse raw event: %w: %w", ErrInvalidReport, err)
	}
	if report.StationID == "" {
		report.StationID = strings.TrimSpace(string(raw.Key))
	}
	if err := report.Validate(); err != nil {
		return WeatherReport{}, fmt.Errorf("parse raw event: %w", err)
	}
	return report, nil
}

// Validate checks the fields every report must carry. Out-of-range weather is
// not rejected here; the engine reports it as a domain violation instead.
func (r WeatherReport) Validate() error {
	var problems []string
	if strings.TrimSpace(r.StationID) == "" {
		problems = append(problems, "station_id is required")
	}
	if r.ObservedAt.IsZero() {
		problems = append(problems, "observed_at is required")
	}
	if r.Previous == nil {
		problems = append(problems, "previous is required")
	}
	if r.Noon == nil {
		problems = append(problems, "noon is required")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		problems = append(problems, "latitude must be within [-90, 90]")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		problems = append(problems, "longitude must be within [-180, 180]")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidReport, strings.Join(problems, "; "))
	}
	return nil
}

// ComputeIndices runs the engine for a validated report. Domain violations do
// not fail the report: affected indices are Invalid, Valid is false and the
// violated indices are listed.
func ComputeIndices(ctx context.Context, report WeatherReport, resolver GeoResolver, opts Options, logger *slog.Logger) IndexReport {
	zone := ResolveZone(ctx, report, resolver, logger)
	local := report.ObservedAt.In(zone.Location)

	in := fwi.Input{
		Yesterday: *report.Previous,
		Noon:      report.Noon.weather(),
		Geo: fwi.Location{
			LatitudeRad:  fwi.DegToRad(report.Latitude),
			LongitudeRad: fwi.DegToRad(report.Longitude),
			Offset:       zone.Standard,
			DST:          zone.DST,
		},
		When:   local,
		Config: opts.HourlyConfig,
	}
	if opts.Hourly && report.Hourly != nil {
		hw := report.Hourly.weather()
		in.Hour = &hw
		if report.PreviousHourFFMC != nil {
			in.PreviousHourFFMC = *report.PreviousHourFFMC
		} else {
			// No carried-over hourly FFMC, so seed from the Lawson estimate.
			in.Config.UseLawsonPreviousHourSeed = true
		}
	}

	out, err := fwi.Compute(in)
	violations := fwi.Violations(err)
	if len(violations) > 0 {
		logger.Debug("index computed with domain violations",
			"station_id", report.StationID,
			"violations", violations,
		)
	}

	return IndexReport{
		ID:          ReportID(report.StationID, report.ObservedAt),
		StationID:   report.StationID,
		ObservedAt:  report.ObservedAt,
		ProcessedAt: clock.Now().UTC(),
		Timezone:    zoneName(zone, local),
		ZoneSource:  zone.Source,
		Daily:       out.Daily,
		Hourly:      out.Hourly,
		NextState:   out.Daily.Next(),
		Valid:       len(violations) == 0,
		Violations:  nonNil(violations),
	}
}

// reportNamespace scopes report IDs so they cannot collide with other
// name-based UUIDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/couchcryptid/fire-weather-etl/index-report"))

// ReportID derives a deterministic report ID from the station and the
// observation instant, so replays upsert rather than duplicate.
func ReportID(stationID string, observedAt time.Time) string {
	name := stationID + "|" + observedAt.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(reportNamespace, []byte(name)).String()
}

// SerializeIndexReport marshals an IndexReport into an OutputEvent keyed by
// station so a station's reports stay ordered within a partition.
func SerializeIndexReport(report IndexReport) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize index report %s: %w: %w", report.ID, ErrUnserializable, err)
	}
	return OutputEvent{
		Key:   []byte(report.StationID),
		Value: data,
		Headers: map[string]string{
			"event_type":   EventType,
			"processed_at": report.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

func (o Observation) weather() fwi.Weather {
	return fwi.Weather{
		Temperature:   o.Temperature,
		RH:            o.RelativeHumidity,
		Precipitation: o.Precipitation,
		WindSpeed:     o.WindSpeed,
	}
}

func (h HourlyObservation) weather() fwi.HourlyWeather {
	hw := fwi.HourlyWeather{
		Weather: h.Observation.weather(),
		RHStart: h.RelativeHumidity,
		RHEnd:   h.RelativeHumidity,
	}
	if h.RelativeHumidityStart != nil {
		hw.RHStart = *h.RelativeHumidityStart
	}
	if h.RelativeHumidityEnd != nil {
		hw.RHEnd = *h.RelativeHumidityEnd
	}
	return hw
}

// zoneName is the IANA name of the zone, or its UTC offset when it has none.
func zoneName(zone Zone, local time.Time) string {
	if name := zone.Location.String(); name != "" {
		return name
	}
	return local.Format("-07:00")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
