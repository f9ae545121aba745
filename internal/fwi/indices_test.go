package fwi

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISI(t *testing.T) {
	t.Run("standard example", func(t *testing.T) {
		ffmc := DailyFFMC(85, 0, stdTemp, stdRH, stdWind)
		assert.InDelta(t, 10.85366107365507, ISI(ffmc, stdWind, 24*time.Hour), 1e-9)
	})

	t.Run("off-hour span uses the refined constant", func(t *testing.T) {
		onHour := FF(85, time.Hour)
		offHour := FF(85, 90*time.Minute)

		fm := func(factor float64) float64 { return factor * 16 / 144.5 }
		sf := func(fm float64) float64 { return 91.9 * math.Exp(-0.1386*fm) * (1 + math.Pow(fm, 5.31)/49300000) }
		assert.InDelta(t, sf(fm(147.2)), onHour, 1e-9)
		assert.InDelta(t, sf(fm(147.27723)), offHour, 1e-9)
		assert.InDelta(t, onHour, FF(85, 0), 1e-12)
	})

	t.Run("wind response", func(t *testing.T) {
		assert.Greater(t, ISI(90, 30, time.Hour), ISI(90, 10, time.Hour))
	})
}

func TestISIFBP(t *testing.T) {
	t.Run("matches ISI at or below 40 kph", func(t *testing.T) {
		for _, ws := range []float64{0, 10, 25, 40} {
			assert.InDelta(t, ISI(88, ws, time.Hour), ISIFBP(88, ws, time.Hour), 1e-12)
		}
	})

	t.Run("saturates above 40 kph", func(t *testing.T) {
		sf := FF(88, time.Hour)
		want := 0.208 * sf * 12 * (1 - math.Exp(-0.0818*(60-28)))
		assert.InDelta(t, want, ISIFBP(88, 60, time.Hour), 1e-9)
		assert.Less(t, ISIFBP(88, 100, time.Hour), ISI(88, 100, time.Hour))
	})
}

func TestBUI(t *testing.T) {
	t.Run("zero inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, BUI(0, 0))
	})

	t.Run("direct formula", func(t *testing.T) {
		assert.InDelta(t, 0.8*200*25/(25+0.4*200), BUI(200, 25), 1e-12)
	})

	t.Run("standard example", func(t *testing.T) {
		assert.InDelta(t, 8.490426535837184, BUI(19.014, 8.545051136), 1e-9)
	})

	t.Run("correction when ratio falls below dmc", func(t *testing.T) {
		dc, dmc := 10.0, 60.0
		ratio := 0.8 * dc * dmc / (dmc + 0.4*dc)
		p := (dmc - ratio) / dmc
		want := dmc - (0.92+math.Pow(0.0114*dmc, 1.7))*p
		assert.InDelta(t, want, BUI(dc, dmc), 1e-12)
	})

	t.Run("never negative", func(t *testing.T) {
		for _, dc := range []float64{0, 1, 10, 100, 500, 1000} {
			for _, dmc := range []float64{0, 0.5, 1, 10, 100, 300} {
				assert.GreaterOrEqual(t, BUI(dc, dmc), 0.0, "dc=%v dmc=%v", dc, dmc)
			}
		}
	})
}

func TestFWI(t *testing.T) {
	link := func(bb float64) float64 {
		if bb <= 1 {
			return bb
		}
		return math.Exp(2.72 * math.Pow(0.434*math.Log(bb), 0.647))
	}

	t.Run("low buildup branch", func(t *testing.T) {
		bb := 0.1 * 10 * (0.626*math.Pow(50, 0.809) + 2)
		assert.InDelta(t, link(bb), FWI(10, 50), 1e-9)
	})

	t.Run("high buildup branch", func(t *testing.T) {
		bb := 0.1 * 10 * (1000 / (25 + 108.64/math.Exp(0.023*90)))
		assert.InDelta(t, link(bb), FWI(10, 90), 1e-9)
	})

	t.Run("standard example", func(t *testing.T) {
		assert.InDelta(t, 10.09637139238237, FWI(10.85366107365507, 8.490426535837184), 1e-9)
	})

	t.Run("continuous at bb = 1", func(t *testing.T) {
		bui := 50.0
		isi := 1 / (0.1 * (0.626*math.Pow(bui, 0.809) + 2))
		below := FWI(isi*(1-1e-9), bui)
		above := FWI(isi*(1+1e-9), bui)
		assert.InDelta(t, 1.0, below, 1e-6)
		assert.InDelta(t, 1.0, above, 1e-3)
		assert.InDelta(t, below, above, 1e-3)
	})
}

func TestDSR(t *testing.T) {
	assert.Equal(t, 0.0, DSR(0))
	assert.InDelta(t, 0.0272*math.Pow(10, 1.77), DSR(10), 1e-12)
}
