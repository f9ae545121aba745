package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/adapter/tzinfo"
	"github.com/couchcryptid/fire-weather-etl/internal/domain"
	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stationFlags describe the station, the date and yesterday's codes.
type stationFlags struct {
	latitude, longitude float64
	timezone            string
	date                string
	yesterday           fwi.MoistureState
	noon                weatherFlags
}

// weatherFlags is one observation with RH as a percentage.
type weatherFlags struct {
	temp, rh, rain, wind float64
}

func (s *stationFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&s.latitude, "lat", defaultLatitude, "station latitude in degrees")
	fs.Float64Var(&s.longitude, "lon", defaultLongitude, "station longitude in degrees")
	fs.StringVar(&s.timezone, "timezone", defaultTimezone, "IANA time zone of the station")
	fs.StringVar(&s.date, "date", "", "local observation time, 2006-01-02T15:04 (default now)")
	fs.Float64Var(&s.yesterday.FFMC, "ffmc", defaultFFMC, "yesterday's FFMC")
	fs.Float64Var(&s.yesterday.DMC, "dmc", defaultDMC, "yesterday's DMC")
	fs.Float64Var(&s.yesterday.DC, "dc", defaultDC, "yesterday's DC")
	fs.Float64Var(&s.noon.temp, "temp", 0, "noon temperature (°C)")
	fs.Float64Var(&s.noon.rh, "rh", 0, "noon relative humidity (%)")
	fs.Float64Var(&s.noon.rain, "rain", 0, "24h precipitation to noon (mm)")
	fs.Float64Var(&s.noon.wind, "wind", 0, "noon wind speed (km/h)")
}

// report builds the weather report the service would receive for these flags.
func (s *stationFlags) report(ctx context.Context, resolver domain.GeoResolver, now time.Time) (domain.WeatherReport, error) {
	zone, err := resolver.Resolve(ctx, s.timezone, now)
	if err != nil {
		return domain.WeatherReport{}, err
	}

	observed := now.In(zone.Location)
	if s.date != "" {
		observed, err = parseLocal(s.date, zone.Location)
		if err != nil {
			return domain.WeatherReport{}, err
		}
	}

	yesterday := s.yesterday
	return domain.WeatherReport{
		StationID:  "fwicalc",
		ObservedAt: observed,
		Latitude:   s.latitude,
		Longitude:  s.longitude,
		Timezone:   s.timezone,
		Previous:   &yesterday,
		Noon: &domain.Observation{
			Temperature:      s.noon.temp,
			RelativeHumidity: s.noon.rh * 0.01,
			Precipitation:    s.noon.rain,
			WindSpeed:        s.noon.wind,
		},
	}, nil
}

func parseLocal(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid --date %q: want 2006-01-02T15:04", value)
}

func newDailyCmd(root *rootOptions) *cobra.Command {
	var station stationFlags

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Compute the daily codes and indices",
		Long:  `Compute FFMC, DMC, DC, BUI, ISI, FWI and DSR from yesterday's codes and the noon observation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndices(cmd, root, &station, nil, domain.Options{})
		},
	}
	station.register(cmd.Flags())
	return cmd
}

// hourlyFlags describe the hour being indexed and the hourly model.
type hourlyFlags struct {
	weather      weatherFlags
	rhStart      float64
	rhEnd        float64
	prevHourFFMC float64
	vanWagner    bool
	lawsonSeed   bool
	contiguous   bool
}

func newHourlyCmd(root *rootOptions) *cobra.Command {
	var (
		station stationFlags
		hourly  hourlyFlags
	)

	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Compute the daily indices and the hourly FFMC, ISI and FWI",
		Long: `Compute the daily step, then the hourly FFMC, ISI and FWI for the hour given by --date.

The hourly FFMC comes from the Lawson tables unless --van-wagner is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := domain.Options{
				Hourly: true,
				HourlyConfig: fwi.HourlyConfig{
					UseVanWagner:              hourly.vanWagner,
					UseLawsonPreviousHourSeed: hourly.lawsonSeed,
					Contiguous:                hourly.contiguous,
				},
			}
			return runIndices(cmd, root, &station, &hourly, opts)
		},
	}

	fs := cmd.Flags()
	station.register(fs)
	fs.Float64Var(&hourly.weather.temp, "hourly-temp", 0, "hourly temperature (°C)")
	fs.Float64Var(&hourly.weather.rh, "hourly-rh", 0, "hourly relative humidity (%)")
	fs.Float64Var(&hourly.weather.rain, "hourly-rain", 0, "hourly precipitation (mm)")
	fs.Float64Var(&hourly.weather.wind, "hourly-wind", 0, "hourly wind speed (km/h)")
	fs.Float64Var(&hourly.rhStart, "rh-start", -1, "relative humidity at the start of the hour (%), default --hourly-rh")
	fs.Float64Var(&hourly.rhEnd, "rh-end", -1, "relative humidity at the end of the hour (%), default --hourly-rh")
	fs.Float64Var(&hourly.prevHourFFMC, "prev-hour-ffmc", -1, "previous hour's FFMC for the Van Wagner model, default the Lawson estimate")
	fs.BoolVar(&hourly.vanWagner, "van-wagner", false, "use the Van Wagner hourly model")
	fs.BoolVar(&hourly.lawsonSeed, "lawson-seed", false, "seed the Van Wagner model with the Lawson previous-hour estimate")
	fs.BoolVar(&hourly.contiguous, "contiguous", false, "use the contiguous Lawson model")
	return cmd
}

func runIndices(cmd *cobra.Command, root *rootOptions, station *stationFlags, hourly *hourlyFlags, opts domain.Options) error {
	resolver, err := tzinfo.NewResolver("UTC", 4, nil)
	if err != nil {
		return err
	}

	report, err := station.report(cmd.Context(), resolver, time.Now())
	if err != nil {
		return err
	}
	if hourly != nil {
		obs := domain.HourlyObservation{Observation: domain.Observation{
			Temperature:      hourly.weather.temp,
			RelativeHumidity: hourly.weather.rh * 0.01,
			Precipitation:    hourly.weather.rain,
			WindSpeed:        hourly.weather.wind,
		}}
		if hourly.rhStart >= 0 {
			v := hourly.rhStart * 0.01
			obs.RelativeHumidityStart = &v
		}
		if hourly.rhEnd >= 0 {
			v := hourly.rhEnd * 0.01
			obs.RelativeHumidityEnd = &v
		}
		report.Hourly = &obs
		if hourly.prevHourFFMC >= 0 {
			v := hourly.prevHourFFMC
			report.PreviousHourFFMC = &v
		}
	}
	if err := report.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	out := domain.ComputeIndices(cmd.Context(), report, resolver, opts, logger)

	fields := []field{
		{"Local time", report.ObservedAt.Format("2006-01-02 15:04 MST")},
		{"FFMC", out.Daily.FFMC},
		{"DMC", out.Daily.DMC},
		{"DC", out.Daily.DC},
		{"BUI", out.Daily.BUI},
		{"ISI", out.Daily.ISI},
		{"FWI", out.Daily.FWI},
		{"DSR", out.Daily.DSR},
	}
	if out.Hourly != nil {
		fields = append(fields,
			field{"Hourly FFMC", out.Hourly.FFMC},
			field{"Hourly ISI", out.Hourly.ISI},
			field{"Hourly FWI", out.Hourly.FWI},
			field{"Previous hour FFMC", out.Hourly.PreviousFFMC},
		)
	}
	if !out.Valid {
		fields = append(fields, field{"Invalid", strings.Join(out.Violations, ", ")})
	}

	return render(cmd.OutOrStdout(), root.format, out, fields)
}
