package tzinfo

import (
	"context"
	"fmt"
	"time"

	// Embedded zone database so resolution works in minimal containers.
	_ "time/tzdata"

	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/observability"
)

// LoaderFunc loads a named IANA time zone.
type LoaderFunc func(name string) (*time.Location, error)

// Resolver implements domain.GeoResolver over the IANA zone database, caching
// loaded zones in an LRU.
type Resolver struct {
	load     LoaderFunc
	fallback *time.Location
	cache    *lruCache
	metrics  *observability.Metrics
}

// NewResolver creates a Resolver whose default zone is defaultTZ. Pass a nil
// metrics to disable cache instrumentation.
func NewResolver(defaultTZ string, cacheSize int, metrics *observability.Metrics) (*Resolver, error) {
	return newResolver(time.LoadLocation, defaultTZ, cacheSize, metrics)
}

func newResolver(load LoaderFunc, defaultTZ string, cacheSize int, metrics *observability.Metrics) (*Resolver, error) {
	fallback, err := load(defaultTZ)
	if err != nil {
		return nil, fmt.Errorf("load default time zone %q: %w", defaultTZ, err)
	}
	return &Resolver{
		load:     load,
		fallback: fallback,
		cache:    newLRUCache(cacheSize),
		metrics:  metrics,
	}, nil
}

// Resolve returns the zone named by tz at instant at. With no name, the UTC
// offset carried by at is used, and an instant in UTC falls back to the
// default zone. The host's zone is never consulted: time.Parse attaches
// time.Local when a parsed offset happens to match it, and such an instant is
// treated as a plain offset.
func (r *Resolver) Resolve(_ context.Context, tz string, at time.Time) (domain.Zone, error) {
	if tz != "" {
		loc, err := r.location(tz)
		if err != nil {
			return domain.Zone{}, err
		}
		return zoneAt(loc, at, domain.ZoneSourceIANA), nil
	}

	switch loc := at.Location(); {
	case loc == time.UTC:
		return zoneAt(r.fallback, at, domain.ZoneSourceDefault), nil
	case loc == time.Local, loc.String() == "":
		_, offset := at.Zone()
		return domain.Zone{
			Location: time.FixedZone("", offset),
			Standard: time.Duration(offset) * time.Second,
			Source:   domain.ZoneSourceOffset,
		}, nil
	default:
		return zoneAt(loc, at, domain.ZoneSourceIANA), nil
	}
}

func (r *Resolver) location(name string) (*time.Location, error) {
	if loc, ok := r.cache.get(name); ok {
		r.observe("hit")
		return loc, nil
	}
	r.observe("miss")

	loc, err := r.load(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	r.cache.put(name, loc)
	return loc, nil
}

func (r *Resolver) observe(result string) {
	if r.metrics != nil {
		r.metrics.TimezoneCache.WithLabelValues(result).Inc()
	}
}

// zoneAt splits the offset in effect at instant at into the standard offset
// and the daylight saving shift.
func zoneAt(loc *time.Location, at time.Time, source string) domain.Zone {
	local := at.In(loc)
	_, offset := local.Zone()
	current := time.Duration(offset) * time.Second

	zone := domain.Zone{Location: loc, Standard: current, Source: source}
	if local.IsDST() {
		zone.Standard = standardOffset(loc, local.Year(), current)
		zone.DST = current - zone.Standard
	}
	return zone
}

// standardOffset finds the zone's offset outside daylight saving by probing
// midwinter in both hemispheres.
func standardOffset(loc *time.Location, year int, current time.Duration) time.Duration {
	for _, month := range []time.Month{time.January, time.July} {
		probe := time.Date(year, month, 1, 12, 0, 0, 0, loc)
		if !probe.IsDST() {
			_, offset := probe.Zone()
			return time.Duration(offset) * time.Second
		}
	}
	return current - time.Hour
}
