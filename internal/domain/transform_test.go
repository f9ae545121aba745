package domain

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReportJSON = `{
	"station_id": "CYEG",
	"observed_at": "2024-04-15T14:00:00-07:00",
	"latitude": 54.000012,
	"longitude": -115.000021,
	"timezone": "America/Edmonton",
	"previous": {"ffmc": 85, "dmc": 6, "dc": 15},
	"noon": {"temperature": 17, "relative_humidity": 0.42, "precipitation": 0, "wind_speed": 25},
	"hourly": {"temperature": 22, "relative_humidity": 0.35, "relative_humidity_start": 0.37, "precipitation": 0, "wind_speed": 15}
}`

var mst = time.FixedZone("MST", -7*3600)

type fakeResolver struct {
	zone  Zone
	err   error
	calls int
	gotTZ string
}

func (f *fakeResolver) Resolve(_ context.Context, tz string, _ time.Time) (Zone, error) {
	f.calls++
	f.gotTZ = tz
	return f.zone, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mstResolver() *fakeResolver {
	return &fakeResolver{zone: Zone{Location: mst, Standard: -7 * time.Hour, Source: ZoneSourceIANA}}
}

func freezeClock(t *testing.T) clockwork.Clock {
	t.Helper()
	fake := clockwork.NewFakeClockAt(time.Date(2024, time.April, 15, 21, 5, 0, 0, time.UTC))
	SetClock(fake)
	t.Cleanup(func() { SetClock(nil) })
	return fake
}

func TestParseRawEvent(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		report, err := ParseRawEvent(RawEvent{Value: []byte(testReportJSON)})
		require.NoError(t, err)

		assert.Equal(t, "CYEG", report.StationID)
		assert.True(t, report.ObservedAt.Equal(time.Date(2024, time.April, 15, 21, 0, 0, 0, time.UTC)))
		assert.Equal(t, "America/Edmonton", report.Timezone)
		assert.Equal(t, fwi.MoistureState{FFMC: 85, DMC: 6, DC: 15}, *report.Previous)
		assert.Equal(t, Observation{Temperature: 17, RelativeHumidity: 0.42, WindSpeed: 25}, *report.Noon)
		require.NotNil(t, report.Hourly)
		require.NotNil(t, report.Hourly.RelativeHumidityStart)
		assert.Equal(t, 0.37, *report.Hourly.RelativeHumidityStart)
		assert.Nil(t, report.Hourly.RelativeHumidityEnd)
		assert.Nil(t, report.PreviousHourFFMC)
	})

	t.Run("message key stands in for station id", func(t *testing.T) {
		data := []byte(`{"observed_at":"2024-04-15T12:00:00Z","previous":{"ffmc":85,"dmc":6,"dc":15},"noon":{"temperature":17}}`)
		report, err := ParseRawEvent(RawEvent{Key: []byte("CYXD"), Value: data})
		require.NoError(t, err)
		assert.Equal(t, "CYXD", report.StationID)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("not json")})
		require.ErrorIs(t, err, ErrInvalidReport)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte(`{"latitude": 91}`)})
		require.ErrorIs(t, err, ErrInvalidReport)
		for _, msg := range []string{"station_id", "observed_at", "previous", "noon", "latitude"} {
			assert.Contains(t, err.Error(), msg)
		}
	})
}

func TestDecodeWeatherReport(t *testing.T) {
	report, err := DecodeWeatherReport([]byte(testReportJSON))
	require.NoError(t, err)
	assert.Equal(t, "CYEG", report.StationID)

	_, err = DecodeWeatherReport([]byte(`{"station_id":"CYEG","longitude":-200}`))
	require.ErrorIs(t, err, ErrInvalidReport)
	assert.Contains(t, err.Error(), "longitude")
}

func TestComputeIndices(t *testing.T) {
	fake := freezeClock(t)

	parse := func(t *testing.T) WeatherReport {
		t.Helper()
		report, err := DecodeWeatherReport([]byte(testReportJSON))
		require.NoError(t, err)
		return report
	}

	t.Run("daily and hourly", func(t *testing.T) {
		report := parse(t)
		resolver := mstResolver()

		got := ComputeIndices(context.Background(), report, resolver, Options{Hourly: true}, discardLogger())

		assert.Equal(t, "America/Edmonton", resolver.gotTZ)
		assert.Equal(t, ReportID("CYEG", report.ObservedAt), got.ID)
		assert.Equal(t, "CYEG", got.StationID)
		assert.Equal(t, fake.Now().UTC(), got.ProcessedAt)
		assert.Equal(t, "MST", got.Timezone)
		assert.Equal(t, ZoneSourceIANA, got.ZoneSource)
		assert.True(t, got.Valid)
		assert.Empty(t, got.Violations)

		assert.InDelta(t, 87.69298009277445, got.Daily.FFMC, 1e-9)
		assert.InDelta(t, 10.09637139238237, got.Daily.FWI, 1e-9)
		assert.Equal(t, got.Daily.Next(), got.NextState)

		require.NotNil(t, got.Hourly)
		want := fwi.HourlyFFMCLawson(85, got.Daily.FFMC, 0.35, 14*time.Hour)
		assert.Equal(t, want, got.Hourly.FFMC)
	})

	t.Run("hourly disabled", func(t *testing.T) {
		got := ComputeIndices(context.Background(), parse(t), mstResolver(), Options{}, discardLogger())
		assert.Nil(t, got.Hourly)
		assert.True(t, got.Valid)
	})

	t.Run("van wagner without a carried seed uses the lawson estimate", func(t *testing.T) {
		opts := Options{Hourly: true, HourlyConfig: fwi.HourlyConfig{UseVanWagner: true}}
		got := ComputeIndices(context.Background(), parse(t), mstResolver(), opts, discardLogger())

		require.NotNil(t, got.Hourly)
		want := fwi.HourlyFFMCVanWagner(got.Hourly.PreviousFFMC, 0, 22, 0.35, 15, time.Hour)
		assert.Equal(t, want, got.Hourly.FFMC)
	})

	t.Run("van wagner with a carried seed", func(t *testing.T) {
		report := parse(t)
		seed := 86.0
		report.PreviousHourFFMC = &seed
		opts := Options{Hourly: true, HourlyConfig: fwi.HourlyConfig{UseVanWagner: true}}

		got := ComputeIndices(context.Background(), report, mstResolver(), opts, discardLogger())

		require.NotNil(t, got.Hourly)
		assert.Equal(t, fwi.HourlyFFMCVanWagner(86, 0, 22, 0.35, 15, time.Hour), got.Hourly.FFMC)
	})

	t.Run("domain violations are reported, not returned", func(t *testing.T) {
		report := parse(t)
		report.Previous.DMC = -1

		got := ComputeIndices(context.Background(), report, mstResolver(), Options{}, discardLogger())

		assert.False(t, got.Valid)
		assert.Equal(t, []string{"dmc", "bui", "fwi", "dsr"}, got.Violations)
		assert.Equal(t, fwi.Invalid, got.Daily.DMC)
		assert.Equal(t, fwi.Invalid, got.NextState.DMC)
	})

	t.Run("failed resolution falls back to the observation offset", func(t *testing.T) {
		resolver := &fakeResolver{err: errors.New("unknown time zone")}
		got := ComputeIndices(context.Background(), parse(t), resolver, Options{Hourly: true}, discardLogger())

		assert.Equal(t, ZoneSourceFallback, got.ZoneSource)
		assert.Equal(t, "-07:00", got.Timezone)
		require.NotNil(t, got.Hourly)
		assert.Equal(t, fwi.HourlyFFMCLawson(85, got.Daily.FFMC, 0.35, 14*time.Hour), got.Hourly.FFMC)
	})

	t.Run("no resolver", func(t *testing.T) {
		got := ComputeIndices(context.Background(), parse(t), nil, Options{}, discardLogger())
		assert.Equal(t, ZoneSourceOffset, got.ZoneSource)
	})
}

func TestReportID(t *testing.T) {
	at := time.Date(2024, time.April, 15, 14, 0, 0, 0, mst)

	assert.Equal(t, ReportID("CYEG", at), ReportID("CYEG", at.UTC()))
	assert.NotEqual(t, ReportID("CYEG", at), ReportID("CYXD", at))
	assert.NotEqual(t, ReportID("CYEG", at), ReportID("CYEG", at.Add(time.Hour)))
	assert.Len(t, ReportID("CYEG", at), 36)
}

func TestSerializeIndexReport(t *testing.T) {
	processed := time.Date(2024, time.April, 15, 21, 5, 0, 0, time.UTC)
	report := IndexReport{
		ID:          "id-1",
		StationID:   "CYEG",
		ObservedAt:  time.Date(2024, time.April, 15, 14, 0, 0, 0, mst),
		ProcessedAt: processed,
		Daily:       fwi.DailyIndices{FFMC: 87.7, FWI: 10.1},
		Valid:       true,
		Violations:  []string{},
	}

	out, err := SerializeIndexReport(report)
	require.NoError(t, err)

	assert.Equal(t, []byte("CYEG"), out.Key)
	assert.Equal(t, EventType, out.Headers["event_type"])
	assert.Equal(t, processed.Format(time.RFC3339), out.Headers["processed_at"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Value, &body))
	assert.Equal(t, "CYEG", body["station_id"])
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, []any{}, body["violations"])
	assert.NotContains(t, body, "hourly")
	assert.Equal(t, "2024-04-15T14:00:00-07:00", body["observed_at"])
}

func TestSerializeIndexReport_NonFinite(t *testing.T) {
	report := IndexReport{ID: "id-1", StationID: "CYEG", Daily: fwi.DailyIndices{ISI: math.Inf(1)}}
	_, err := SerializeIndexReport(report)
	require.ErrorIs(t, err, ErrUnserializable)
}

func TestComputeIndices_ExtremeWindIsSerializable(t *testing.T) {
	report, err := DecodeWeatherReport([]byte(testReportJSON))
	require.NoError(t, err)
	report.Noon.WindSpeed = 20000

	got := ComputeIndices(context.Background(), report, mstResolver(), Options{}, discardLogger())
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"isi", "fwi", "dsr"}, got.Violations)
	assert.Equal(t, fwi.Invalid, got.Daily.ISI)

	_, err = SerializeIndexReport(got)
	require.NoError(t, err)
}
