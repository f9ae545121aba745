package fwi

import (
	"math"
	"time"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
	solarNoon      = 12 * secondsPerHour
	morningSeam    = 5 * secondsPerHour
)

// HourlyFFMCLawson estimates the FFMC at secondsIntoDay (LST) from the
// previous and current daily FFMC values using Lawson's diurnal tables. rh is
// a fraction in [0,1].
func HourlyFFMCLawson(prevFFMC, currFFMC, rh float64, secondsIntoDay time.Duration) float64 {
	s := wholeSeconds(secondsIntoDay)
	if s > secondsPerDay {
		return Invalid
	}
	pct := rh * 100
	return lawsonBlend(prevFFMC, currFFMC, s, pct, pct, pct, false)
}

// HourlyFFMCLawsonContiguous is HourlyFFMCLawson with linear smoothing
// between 05:00 and noon, so the curve has no step where the previous day's
// table hands over to the current day's. rhStart and rhEnd are the humidity
// at the start and end of the containing hour.
func HourlyFFMCLawsonContiguous(prevFFMC, currFFMC, rhStart, rh, rhEnd float64, secondsIntoDay time.Duration) float64 {
	s := wholeSeconds(secondsIntoDay)
	if s > secondsPerDay {
		return Invalid
	}
	return lawsonBlend(prevFFMC, currFFMC, s, rhStart*100, rh*100, rhEnd*100, true)
}

// lawsonBlend picks which daily FFMC anchors the table lookup. Humidity is in
// percent.
func lawsonBlend(prevFFMC, currFFMC float64, s int64, rh0, rht, rh1 float64, contiguous bool) float64 {
	if prevFFMC < 0 || prevFFMC > 101 || currFFMC < 0 || currFFMC > 101 || s < -solarNoon || s >= 126000 {
		return Invalid
	}

	if s >= solarNoon {
		return lawsonLookup(currFFMC, s, rht)
	}
	if s < morningSeam || !contiguous {
		return lawsonLookup(prevFFMC, s, rht)
	}

	h0 := s - s%secondsPerHour
	if h0 == s {
		return lawsonLookup(prevFFMC, s, rh0)
	}
	h1 := h0 + secondsPerHour

	ffmc1 := lawsonLookup(prevFFMC, h0, rh0)
	var ffmc2 float64
	if h1 == solarNoon {
		ffmc2 = lawsonLookup(currFFMC, h1, rh1)
	} else {
		ffmc2 = lawsonLookup(prevFFMC, h1, rh1)
	}

	sec := float64(s % secondsPerHour)
	return (ffmc2*sec + ffmc1*(secondsPerHour-sec)) / secondsPerHour
}

// lawsonLookup interpolates the adjusted FFMC for ffmc at s seconds into the
// day. rh is in percent.
func lawsonLookup(ffmc float64, s int64, rh float64) float64 {
	for s < 0 {
		s += secondsPerDay
	}
	hour, minutes := clockOf(s)
	if ffmc < 0 || ffmc > 101 {
		return Invalid
	}
	ffmc = math.Max(ffmc, 17.5)

	rh = clamp(rh, 0, 100)
	rh = math.Floor(rh*100+0.5) * 0.01
	if rh < 1 {
		rh = 95
	}

	if hour < 6 || hour > 11 {
		return clamp(mainLookup(s, ffmc), 0, 101)
	}

	band := 0
	for i := range rhClassBands {
		if 100*float64(hour) < rhClassBands[i][0] {
			band = i
			break
		}
	}
	threshold := band
	if minutes <= 30 {
		threshold = band - 1
	}

	switch {
	case rh > rhHighThreshold[threshold]:
		return tableLookup(highRHTable[:], band, s, ffmc, false)
	case rh < rhLowThreshold[threshold]:
		return tableLookup(lowRHTable[:], band, s, ffmc, false)
	default:
		// The medium table's far corner stays on the band row.
		return tableLookup(medRHTable[:], band, s, ffmc, true)
	}
}

// mainLookup finds the main table row bracketing the time of day. Times
// before 01:00 are read from the rows past 2400.
func mainLookup(s int64, ffmc float64) float64 {
	hours, minutes := clockOf(s)
	hhmm := float64(hours*100 + minutes)
	if hhmm < 100 {
		hhmm += 2400
	}

	row := 1
	for row < len(mainTable)-1 && hhmm >= mainTable[row][0] {
		row++
	}
	return tableLookup(mainTable[:], row-1, s, ffmc, false)
}

// tableLookup interpolates between rows row and row+1 at the columns
// bracketing ffmc. The column scan stops at the last bracket so ffmc = 101
// reads the final column.
func tableLookup(t [][39]float64, row int, s int64, ffmc float64, sameRowCorner bool) float64 {
	header := t[0]

	col := 1
	for col < len(header)-1 && ffmc >= header[col] {
		col++
	}
	col--

	fraction := (ffmc - header[col]) / (header[col+1] - header[col])
	corner := t[row+1][col+1]
	if sameRowCorner {
		corner = t[row][col+1]
	}
	return interpolate(t[row][col], t[row][col+1], t[row+1][col], corner, fraction, s)
}

// interpolate blends along the FFMC axis by fraction and then across the
// hour by minutes. Hour 11 blends over 59 minutes.
func interpolate(i1, i2, i3, i4, fraction float64, s int64) float64 {
	hour, minutes := clockOf(s)
	i12 := i1 + (i2-i1)*fraction
	i34 := i3 + (i4-i3)*fraction
	if hour == 11 {
		return i12 + (i34-i12)/59*float64(minutes)
	}
	return i12 + (i34-i12)/60*float64(minutes)
}

// clockOf splits s (non-negative) into hour of day and minute of hour.
func clockOf(s int64) (hour, minute int64) {
	hour = s/secondsPerHour - (s/secondsPerDay)*24
	minute = s/60 - (s/secondsPerHour)*60
	return hour, minute
}
