package fwi

import (
	"errors"
	"time"
)

// GeoContext supplies the already-resolved location of a station.
type GeoContext interface {
	// Latitude in radians.
	Latitude() float64
	// Longitude in radians.
	Longitude() float64
	// TimezoneOffset is the standard time offset from UTC.
	TimezoneOffset() time.Duration
	// DSTAmount is the daylight saving shift in effect, zero when inactive.
	DSTAmount() time.Duration
}

// Calendar supplies the local date and time of an observation. time.Time
// satisfies it.
type Calendar interface {
	Month() time.Month
	Clock() (hour, min, sec int)
}

// Location is a fixed GeoContext.
type Location struct {
	LatitudeRad  float64
	LongitudeRad float64
	Offset       time.Duration
	DST          time.Duration
}

func (l Location) Latitude() float64             { return l.LatitudeRad }
func (l Location) Longitude() float64            { return l.LongitudeRad }
func (l Location) TimezoneOffset() time.Duration { return l.Offset }
func (l Location) DSTAmount() time.Duration      { return l.DST }

// MoistureState holds the three moisture codes carried from one step to the
// next.
type MoistureState struct {
	FFMC float64 `json:"ffmc"`
	DMC  float64 `json:"dmc"`
	DC   float64 `json:"dc"`
}

// Weather is a single observation. RH is a fraction in [0,1], temperature is
// °C, precipitation mm and wind speed kph.
type Weather struct {
	Temperature   float64
	RH            float64
	Precipitation float64
	WindSpeed     float64
}

// HourlyWeather adds the humidity at the start and end of the hour, which
// only the contiguous Lawson model reads.
type HourlyWeather struct {
	Weather
	RHStart float64
	RHEnd   float64
}

// DailyIndices is the output of the daily step.
type DailyIndices struct {
	FFMC float64 `json:"ffmc"`
	DMC  float64 `json:"dmc"`
	DC   float64 `json:"dc"`
	BUI  float64 `json:"bui"`
	ISI  float64 `json:"isi"`
	FWI  float64 `json:"fwi"`
	DSR  float64 `json:"dsr"`
}

// Next returns the moisture state that seeds the following day.
func (d DailyIndices) Next() MoistureState {
	return MoistureState{FFMC: d.FFMC, DMC: d.DMC, DC: d.DC}
}

// HourlyIndices is the output of the hourly step. PreviousFFMC is the Lawson
// estimate for the hour before, kept for diagnostics.
type HourlyIndices struct {
	FFMC         float64 `json:"ffmc"`
	ISI          float64 `json:"isi"`
	FWI          float64 `json:"fwi"`
	PreviousFFMC float64 `json:"previous_ffmc"`
}

// HourlyConfig selects the hourly FFMC model.
type HourlyConfig struct {
	// UseVanWagner steps the hourly FFMC with the Van Wagner model instead of
	// reading it from the Lawson tables.
	UseVanWagner bool
	// UseLawsonPreviousHourSeed seeds the Van Wagner step with the Lawson
	// estimate for the previous hour rather than HourlyInput.PreviousHourFFMC.
	UseLawsonPreviousHourSeed bool
	// Contiguous runs the Lawson model through its contiguous variant.
	Contiguous bool
}

// DailyInput is everything the daily step reads.
type DailyInput struct {
	Yesterday MoistureState
	Noon      Weather
	Geo       GeoContext
	When      Calendar
}

// HourlyInput is everything the hourly step reads. Today is the output of the
// daily step for the same day.
type HourlyInput struct {
	Yesterday        MoistureState
	Today            DailyIndices
	Hour             HourlyWeather
	PreviousHourFFMC float64
	Geo              GeoContext
	When             Calendar
	Config           HourlyConfig
}

// Input drives a full step through Compute. Hour is nil when hourly
// indices are not wanted.
type Input struct {
	Yesterday        MoistureState
	Noon             Weather
	Hour             *HourlyWeather
	PreviousHourFFMC float64
	Geo              GeoContext
	When             Calendar
	Config           HourlyConfig
}

// Output is the result of Compute. Hourly is nil when the hourly stage did
// not run.
type Output struct {
	Daily  DailyIndices
	Hourly *HourlyIndices
}

// Compute runs the daily stage and, when in.Hour is set, the hourly stage.
// Domain violations do not stop the hourly stage; the returned error joins
// every violation from both.
func Compute(in Input) (Output, error) {
	daily, dailyErr := ComputeDaily(DailyInput{
		Yesterday: in.Yesterday,
		Noon:      in.Noon,
		Geo:       in.Geo,
		When:      in.When,
	})
	out := Output{Daily: daily}
	if in.Hour == nil {
		return out, dailyErr
	}

	hourly, hourlyErr := ComputeHourly(HourlyInput{
		Yesterday:        in.Yesterday,
		Today:            daily,
		Hour:             *in.Hour,
		PreviousHourFFMC: in.PreviousHourFFMC,
		Geo:              in.Geo,
		When:             in.When,
		Config:           in.Config,
	})
	out.Hourly = &hourly
	return out, errors.Join(dailyErr, hourlyErr)
}

// ComputeDaily computes today's indices from yesterday's moisture codes and
// the noon observation. Indices that depend on an invalid code are reported
// as Invalid and every violation is returned in the joined error.
func ComputeDaily(in DailyInput) (DailyIndices, error) {
	var v validator
	lat, lon := in.Geo.Latitude(), in.Geo.Longitude()
	month := in.When.Month()
	w := in.Noon

	d := DailyIndices{
		FFMC: v.check("ffmc", DailyFFMC(in.Yesterday.FFMC, w.Precipitation, w.Temperature, w.RH, w.WindSpeed)),
		DC:   v.check("dc", DC(in.Yesterday.DC, w.Precipitation, w.Temperature, lat, lon, month)),
		DMC:  v.check("dmc", DMC(in.Yesterday.DMC, w.Precipitation, w.Temperature, lat, lon, month, w.RH)),
	}
	d.BUI = v.derive("bui", func() float64 { return BUI(d.DC, d.DMC) }, d.DC, d.DMC)
	d.ISI = v.derive("isi", func() float64 { return ISI(d.FFMC, w.WindSpeed, 24*time.Hour) }, d.FFMC)
	d.FWI = v.derive("fwi", func() float64 { return FWI(d.ISI, d.BUI) }, d.ISI, d.BUI)
	d.DSR = v.derive("dsr", func() float64 { return DSR(d.FWI) }, d.FWI)
	return d, v.err()
}

// ComputeHourly computes the indices for the hour described by in.When.
//
// The Lawson model is read at the local standard time of the observation. The
// BUI feeding the hourly FWI is yesterday's until solar noon (13:00 when
// daylight saving is in effect, 12:00 otherwise) and today's after.
func ComputeHourly(in HourlyInput) (HourlyIndices, error) {
	var v validator
	cfg := in.Config
	w := in.Hour
	hour, minute, second := in.When.Clock()
	dst := in.Geo.DSTAmount()

	lst := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second - dst
	lstHour := floorHour(lst)

	lawson := func(at time.Duration) float64 {
		if cfg.Contiguous {
			return HourlyFFMCLawsonContiguous(in.Yesterday.FFMC, in.Today.FFMC, w.RHStart, w.RH, w.RHEnd, at)
		}
		return HourlyFFMCLawson(in.Yesterday.FFMC, in.Today.FFMC, w.RH, at)
	}

	var h HourlyIndices
	h.PreviousFFMC = v.derive("previous_ffmc", func() float64 { return lawson(lstHour - time.Hour) }, in.Yesterday.FFMC, in.Today.FFMC)

	if cfg.UseVanWagner {
		seed := in.PreviousHourFFMC
		if cfg.UseLawsonPreviousHourSeed {
			seed = h.PreviousFFMC
		}
		h.FFMC = v.derive("hourly_ffmc", func() float64 {
			return HourlyFFMCVanWagner(seed, w.Precipitation, w.Temperature, w.RH, w.WindSpeed, time.Hour)
		}, seed)
	} else {
		h.FFMC = v.derive("hourly_ffmc", func() float64 { return lawson(lstHour) }, in.Yesterday.FFMC, in.Today.FFMC)
	}

	since := time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	h.ISI = v.derive("hourly_isi", func() float64 { return ISI(h.FFMC, w.WindSpeed, since) }, h.FFMC)

	noon := 12
	if dst > 0 {
		noon = 13
	}
	bui := in.Today.BUI
	if hour < noon {
		bui = v.derive("yesterday_bui", func() float64 { return BUI(in.Yesterday.DC, in.Yesterday.DMC) }, in.Yesterday.DC, in.Yesterday.DMC)
	}
	h.FWI = v.derive("hourly_fwi", func() float64 { return FWI(h.ISI, bui) }, h.ISI, bui)
	return h, v.err()
}

// floorHour truncates d down to a whole hour, rounding towards negative
// infinity so a time just before midnight LST lands on the previous day.
func floorHour(d time.Duration) time.Duration {
	t := d.Truncate(time.Hour)
	if t > d {
		t -= time.Hour
	}
	return t
}

// validator collects domain violations for one step.
type validator struct {
	errs []error
}

// check records a violation when x is the sentinel and passes x through.
func (v *validator) check(index string, x float64) float64 {
	out, err := Value{V: x}.Check(index)
	if err != nil {
		v.errs = append(v.errs, err)
	}
	return out
}

// derive evaluates f only when every input is valid. Otherwise the result is
// Invalid and a violation is recorded, so a sentinel never reaches a
// downstream formula.
func (v *validator) derive(index string, f func() float64, inputs ...float64) float64 {
	for _, x := range inputs {
		if IsInvalid(x) {
			v.errs = append(v.errs, &DomainError{Index: index})
			return Invalid
		}
	}
	return v.check(index, f())
}

func (v *validator) err() error { return errors.Join(v.errs...) }
