package fwi

import (
	"math"
	"time"
)

// convergence tolerance of the previous-hour solver.
const tolerance = 1e-7

// HourlyFFMCVanWagner steps prevFFMC forward by elapsed using Van Wagner's
// physical model. elapsed must be in (0, 2h]; it is truncated to whole
// seconds.
func HourlyFFMCVanWagner(prevFFMC, rain, temp, rh, wind float64, elapsed time.Duration) float64 {
	span := wholeSeconds(elapsed)
	if prevFFMC < 0 || prevFFMC > 101 || temp > 60 || rain < 0 || rain > 300 || span > 7200 || span <= 0 {
		return Invalid
	}
	temp = clampTemperature(temp)
	rh = clamp(rh, 0, 1)
	wind = clamp(wind, 0, 200)

	hourFrac := float64(span) / 3600
	factor := moistureFactor(hourFrac)
	rhp := rh * 100

	mo := factor * (101 - prevFFMC) / (59.5 + prevFFMC)
	if rain != 0 {
		mo += rain * 42.5 * (math.Expm1(-100/(251-mo)) + 1) * (1 - (math.Expm1(-6.93/rain) + 1))
	}
	if mo > 250 {
		mo = 250
	}

	shared := 0.18 * (21.1 - temp) * (-math.Expm1(-0.115 * rhp))
	ed := 0.942*math.Pow(rhp, 0.679) + 11*(math.Expm1((rhp-100)/10)+1) + shared
	ew := 0.618*math.Pow(rhp, 0.753) + 10*(math.Expm1((rhp-100)/10)+1) + shared
	moed := mo - ed
	moew := mo - ew

	xm := mo
	if moed != 0 && (moew < 0 || moed >= 0) {
		a1, e, moe := 1-rh, ew, moew
		if moed > 0 {
			a1, e, moe = rh, ed, moed
		}
		xkd := 0.424*(1-math.Pow(a1, 1.7)) + 0.0694*math.Sqrt(wind)*(1-math.Pow(a1, 8))
		xkd *= 0.0579 * (math.Expm1(0.0365*temp) + 1)
		xm = e + moe*math.Pow(10, -xkd*hourFrac)
	}

	return clamp(59.5*(250-xm)/(factor+xm), 0, 101)
}

// PreviousHourlyFFMCVanWagner recovers the FFMC an hour before currFFMC by
// bisecting on the one-hour forward model. The weather arguments describe
// the hour that led up to currFFMC.
//
// If the forward model leaves [0,101] while searching, currFFMC itself is
// returned. If the forward model stops responding to the guess, the current
// guess is returned.
func PreviousHourlyFFMCVanWagner(currFFMC, rain, temp, rh, wind float64) float64 {
	if currFFMC < 0 || currFFMC > 101 || temp > 60 || rain < 0 || rain > 300 {
		return Invalid
	}
	temp = clampTemperature(temp)
	rh = clamp(rh, 0, 1)
	wind = clamp(wind, 0, 200)

	in := currFFMC
	out := HourlyFFMCVanWagner(in, rain, temp, rh, wind, time.Hour)
	diff := math.Abs(out - currFFMC)
	for diff > tolerance {
		if out > currFFMC {
			in -= diff / 2
		} else {
			in += diff / 2
		}

		prior := out
		out = HourlyFFMCVanWagner(in, rain, temp, rh, wind, time.Hour)
		diff = math.Abs(out - currFFMC)

		if out < 0 || out > 101 {
			return currFFMC
		}
		if math.Abs(out-prior) < tolerance {
			break
		}
	}
	return in
}

// moistureFactor returns the FFMC to moisture content scale. Spans that do
// not end on an hour boundary use the refined constant.
func moistureFactor(hourFrac float64) float64 {
	if hourFrac-math.Floor(hourFrac) > 1e-4 {
		return 147.27723
	}
	return 147.2
}

func wholeSeconds(d time.Duration) int64 { return int64(d / time.Second) }
