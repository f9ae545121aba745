package domain

import (
	"context"
	"time"
)

// Zone is a station's resolved time zone at the moment of an observation.
type Zone struct {
	Location *time.Location
	// Standard is the zone's offset from UTC outside daylight saving.
	Standard time.Duration
	// DST is the daylight saving shift in effect, zero when inactive.
	DST    time.Duration
	Source string
}

// GeoResolver resolves the time zone a report is indexed in.
type GeoResolver interface {
	// Resolve returns the zone named by tz at instant at. An empty tz asks the
	// resolver to fall back on the offset carried by at, then its default.
	Resolve(ctx context.Context, tz string, at time.Time) (Zone, error)
}

// Zone sources recorded on an IndexReport.
const (
	ZoneSourceIANA     = "iana"     // named IANA zone from the report
	ZoneSourceOffset   = "offset"   // fixed offset carried by observed_at
	ZoneSourceDefault  = "default"  // configured default zone
	ZoneSourceFallback = "fallback" // resolution failed, offset used instead
)
