package main

import (
	"fmt"
	"time"

	"github.com/couchcryptid/fire-weather-etl/internal/fwi"
	"github.com/spf13/cobra"
)

type ffmcResult struct {
	FFMC  float64 `json:"ffmc"`
	Valid bool    `json:"valid"`
}

func newPreviousHourCmd(root *rootOptions) *cobra.Command {
	var (
		current float64
		w       weatherFlags
	)

	cmd := &cobra.Command{
		Use:   "previous-hour",
		Short: "Recover the previous hour's FFMC from the current one",
		Long: `Invert the Van Wagner hourly model: given this hour's FFMC and weather,
estimate the FFMC one hour earlier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prev := fwi.PreviousHourlyFFMCVanWagner(current, w.rain, w.temp, w.rh*0.01, w.wind)
			return renderFFMC(cmd, root, "Previous hour FFMC", prev)
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&current, "ffmc", defaultFFMC, "this hour's FFMC")
	fs.Float64Var(&w.temp, "temp", 0, "temperature (°C)")
	fs.Float64Var(&w.rh, "rh", 0, "relative humidity (%)")
	fs.Float64Var(&w.rain, "rain", 0, "precipitation over the hour (mm)")
	fs.Float64Var(&w.wind, "wind", 0, "wind speed (km/h)")
	return cmd
}

func newLawsonCmd(root *rootOptions) *cobra.Command {
	var (
		prev, curr float64
		rh         float64
		rhStart    float64
		rhEnd      float64
		at         string
		contiguous bool
	)

	cmd := &cobra.Command{
		Use:   "lawson",
		Short: "Estimate the FFMC at a time of day from the Lawson tables",
		Long: `Interpolate the hourly FFMC between yesterday's and today's daily FFMC using
the Lawson diurnal tables. --time is local standard time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sinceMidnight, err := parseClock(at)
			if err != nil {
				return err
			}
			var ffmc float64
			if contiguous {
				start, end := rh, rh
				if rhStart >= 0 {
					start = rhStart
				}
				if rhEnd >= 0 {
					end = rhEnd
				}
				ffmc = fwi.HourlyFFMCLawsonContiguous(prev, curr, start*0.01, rh*0.01, end*0.01, sinceMidnight)
			} else {
				ffmc = fwi.HourlyFFMCLawson(prev, curr, rh*0.01, sinceMidnight)
			}
			return renderFFMC(cmd, root, "Hourly FFMC", ffmc)
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&prev, "prev-ffmc", defaultFFMC, "yesterday's daily FFMC")
	fs.Float64Var(&curr, "curr-ffmc", defaultFFMC, "today's daily FFMC")
	fs.Float64Var(&rh, "rh", 0, "relative humidity (%)")
	fs.Float64Var(&rhStart, "rh-start", -1, "relative humidity at the start of the hour (%), default --rh")
	fs.Float64Var(&rhEnd, "rh-end", -1, "relative humidity at the end of the hour (%), default --rh")
	fs.StringVar(&at, "time", "12:00", "local standard time, 15:04 or 15:04:05")
	fs.BoolVar(&contiguous, "contiguous", false, "use the contiguous Lawson model")
	return cmd
}

// parseClock converts a wall-clock time into the offset from midnight.
func parseClock(value string) (time.Duration, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			h, m, s := t.Clock()
			return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid --time %q: want 15:04", value)
}

func renderFFMC(cmd *cobra.Command, root *rootOptions, label string, ffmc float64) error {
	v := fwi.Value{V: ffmc}
	result := ffmcResult{FFMC: ffmc, Valid: v.Valid()}
	if !result.Valid {
		result.FFMC = fwi.Invalid
	}
	fields := []field{{label, result.FFMC}}
	if !result.Valid {
		fields = append(fields, field{"Invalid", "input outside the valid range"})
	}
	return render(cmd.OutOrStdout(), root.format, result, fields)
}
