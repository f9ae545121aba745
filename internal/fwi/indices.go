package fwi

import (
	"math"
	"time"
)

// FF is the fine fuel moisture function shared by both ISI variants. since is
// the time elapsed since the FFMC was observed.
func FF(ffmc float64, since time.Duration) float64 {
	factor := moistureFactor(since.Seconds() / 3600)
	fm := factor * (101 - ffmc) / (59.5 + ffmc)
	return 91.9 * (math.Expm1(fm*-0.1386) + 1) * (1 + math.Pow(fm, 5.31)/49300000)
}

// ISI computes the Initial Spread Index as defined by the FWI system.
// since is truncated to whole seconds.
func ISI(ffmc, wind float64, since time.Duration) float64 {
	sf := FF(ffmc, time.Duration(wholeSeconds(since))*time.Second)
	return 0.208 * sf * (math.Expm1(0.05039*wind) + 1)
}

// ISIFBP computes the Initial Spread Index as used by the Fire Behaviour
// Prediction system, whose wind response saturates above 40 kph.
func ISIFBP(ffmc, wind float64, since time.Duration) float64 {
	sf := FF(ffmc, since)

	var fw float64
	if wind <= 40 {
		fw = math.Expm1(0.05039*wind) + 1
	} else {
		fw = 12 * (-math.Expm1(-0.0818 * (wind - 28)))
	}
	return 0.208 * fw * sf
}

// BUI computes the Buildup Index. It never falls below zero and is corrected
// upward when the ratio formula would land below dmc.
func BUI(dc, dmc float64) float64 {
	var bui float64
	if dmc != 0 || dc != 0 {
		bui = 0.8 * dc * dmc / (dmc + 0.4*dc)
	}

	if bui < dmc {
		p := (dmc - bui) / dmc
		cc := 0.92 + math.Pow(0.0114*dmc, 1.7)
		bui = math.Max(dmc-cc*p, 0)
	}
	return bui
}

// FWI computes the Fire Weather Index.
func FWI(isi, bui float64) float64 {
	var bb float64
	if bui > 80 {
		bb = 0.1 * isi * (1000 / (25 + 108.64/(math.Expm1(0.023*bui)+1)))
	} else {
		bb = 0.1 * isi * (0.626*math.Pow(bui, 0.809) + 2)
	}

	if bb <= 1 {
		return bb
	}
	return math.Expm1(2.72*math.Pow(0.434*math.Log1p(bb-1), 0.647)) + 1
}

// DSR computes the Daily Severity Rating.
func DSR(fwi float64) float64 {
	return 0.0272 * math.Pow(fwi, 1.77)
}
