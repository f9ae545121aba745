package domain

import (
	"context"
	"log/slog"
	"time"
)

// ResolveZone finds the time zone a report is indexed in. If resolver is nil
// or resolution fails, the fixed offset carried by ObservedAt is used and the
// zone source records the degradation.
func ResolveZone(ctx context.Context, report WeatherReport, resolver GeoResolver, logger *slog.Logger) Zone {
	if resolver == nil {
		return offsetZone(report.ObservedAt, ZoneSourceOffset)
	}

	zone, err := resolver.Resolve(ctx, report.Timezone, report.ObservedAt)
	if err != nil {
		logger.Warn("time zone resolution failed, using observation offset",
			"station_id", report.StationID,
			"timezone", report.Timezone,
			"error", err,
		)
		return offsetZone(report.ObservedAt, ZoneSourceFallback)
	}
	return zone
}

func offsetZone(at time.Time, source string) Zone {
	_, offset := at.Zone()
	return Zone{
		Location: at.Location(),
		Standard: time.Duration(offset) * time.Second,
		Source:   source,
	}
}
