// Package domain turns station weather reports into fire weather index
// reports.
//
// # Input
//
// Each source message is one station's weather report as JSON:
//
//	{
//	  "station_id": "CYEG",
//	  "observed_at": "2024-07-15T14:00:00-06:00",
//	  "latitude": 53.3, "longitude": -113.58,
//	  "timezone": "America/Edmonton",
//	  "previous": {"ffmc": 85, "dmc": 25, "dc": 200},
//	  "noon": {"temperature": 20, "relative_humidity": 0.4, "precipitation": 0, "wind_speed": 10},
//	  "hourly": {"temperature": 22, "relative_humidity": 0.35, "wind_speed": 12},
//	  "previous_hour_ffmc": 86.1
//	}
//
// Coordinates are degrees. Relative humidity is a fraction, not a percentage.
// "previous" holds yesterday's moisture codes; the report's "next_state" is
// what the producer should send as "previous" the following day.
//
// Missing station_id, observed_at, previous or noon, or coordinates off the
// globe, make the report unusable ([ErrInvalidReport]). Weather outside the
// engine's domain does not: the affected indices are reported as -98 and the
// report is marked invalid with the violated indices listed.
//
// # Time zones
//
// The engine reads local standard time and the daylight saving shift. The
// zone comes from "timezone" when given, otherwise from the offset in
// "observed_at", otherwise from the configured default. A zone that cannot be
// resolved degrades to the observation's own offset ("zone_source":
// "fallback") rather than dropping the report.
//
// # Hourly indices
//
// Hourly indices are computed when enabled and the report carries "hourly".
// The Van Wagner model steps from "previous_hour_ffmc"; without it the Lawson
// estimate for the previous hour seeds the step.
//
// # ID Generation
//
// Report IDs are name-based UUIDs (SHA-1) of station_id|observed_at in UTC.
// Replays of the same observation produce the same ID so the archive upserts
// instead of duplicating. See [ReportID].
package domain
