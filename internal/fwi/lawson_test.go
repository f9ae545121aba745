package fwi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

func TestHourlyFFMCLawson(t *testing.T) {
	t.Run("afternoon reads the main table with the current day", func(t *testing.T) {
		// 85 sits exactly on a header column, so the 14:00 row value comes
		// back unchanged.
		assert.InDelta(t, 83.4, HourlyFFMCLawson(60, 85, 0.4, at(14, 0, 0)), 1e-12)
	})

	t.Run("morning reads the previous day", func(t *testing.T) {
		morning := HourlyFFMCLawson(85, 60, 0.4, at(3, 0, 0))
		assert.InDelta(t, HourlyFFMCLawson(85, 95, 0.4, at(3, 0, 0)), morning, 1e-12)
	})

	t.Run("medium humidity keeps the far corner on the band row", func(t *testing.T) {
		// 08:30 at 50% RH is in the medium class. Between the 85 and 86
		// columns the blend reaches for medRHTable[3][22] twice instead of
		// medRHTable[4][22].
		assert.InDelta(t, 75.35, HourlyFFMCLawson(85.5, 85.5, 0.5, at(8, 30, 0)), 1e-9)
	})

	t.Run("eleven o'clock blends over 59 minutes", func(t *testing.T) {
		want := 88.0 + (90.2-88.0)/59*30
		assert.InDelta(t, want, HourlyFFMCLawson(85, 85, 0.2, at(11, 30, 0)), 1e-9)
	})

	t.Run("humidity below one percent reads as 95", func(t *testing.T) {
		assert.Equal(t,
			HourlyFFMCLawson(85, 87, 0.95, at(8, 0, 0)),
			HourlyFFMCLawson(85, 87, 0.005, at(8, 0, 0)))
	})

	t.Run("ffmc of 101 reads the last column", func(t *testing.T) {
		assert.InDelta(t, 95.3, HourlyFFMCLawson(101, 101, 0.4, at(8, 0, 0)), 1e-9)
		assert.InDelta(t, 100.0, HourlyFFMCLawson(101, 101, 0.4, at(14, 0, 0)), 1e-9)
	})

	t.Run("negative seconds wrap to the previous day", func(t *testing.T) {
		assert.InDelta(t,
			HourlyFFMCLawson(85, 85, 0.4, at(23, 0, 0)),
			HourlyFFMCLawson(85, 85, 0.4, -time.Hour), 1e-12)
	})

	t.Run("domain violations", func(t *testing.T) {
		assert.Equal(t, Invalid, HourlyFFMCLawson(85, 87, 0.4, 24*time.Hour+time.Second))
		assert.Equal(t, Invalid, HourlyFFMCLawson(-1, 87, 0.4, at(14, 0, 0)))
		assert.Equal(t, Invalid, HourlyFFMCLawson(85, 101.5, 0.4, at(14, 0, 0)))
		assert.Equal(t, Invalid, HourlyFFMCLawson(85, 87, 0.4, -13*time.Hour))
	})

	t.Run("stays in range", func(t *testing.T) {
		for _, f := range []float64{0, 10, 17.5, 50, 85, 100.95, 101} {
			for s := time.Duration(0); s < 24*time.Hour; s += 10 * time.Minute {
				for _, rh := range []float64{0, 0.05, 0.4, 0.6, 0.95, 1} {
					got := HourlyFFMCLawson(f, f, rh, s)
					assert.GreaterOrEqual(t, got, 0.0)
					assert.LessOrEqual(t, got, 101.0)

					got = HourlyFFMCLawsonContiguous(f, f, rh, rh, rh, s)
					assert.GreaterOrEqual(t, got, 0.0)
					assert.LessOrEqual(t, got, 101.0)
				}
			}
		}
	})
}

func TestHourlyFFMCLawsonContiguous(t *testing.T) {
	contiguous := func(s time.Duration) float64 {
		return HourlyFFMCLawsonContiguous(85, 87, 0.4, 0.4, 0.4, s)
	}

	t.Run("continuous at 05:00", func(t *testing.T) {
		v := contiguous(at(5, 0, 0))
		assert.InDelta(t, v, contiguous(at(4, 59, 59)), 0.05)
		assert.InDelta(t, v, contiguous(at(5, 0, 1)), 0.05)
	})

	t.Run("continuous at noon", func(t *testing.T) {
		v := contiguous(at(12, 0, 0))
		assert.InDelta(t, v, contiguous(at(11, 59, 59)), 0.05)
		assert.InDelta(t, v, contiguous(at(12, 0, 1)), 0.05)
	})

	t.Run("blends across the hour", func(t *testing.T) {
		start := contiguous(at(9, 0, 0))
		end := contiguous(at(10, 0, 0))
		mid := contiguous(at(9, 30, 0))
		assert.InDelta(t, (start+end)/2, mid, 1e-9)
	})

	t.Run("matches the plain model outside the blend window", func(t *testing.T) {
		for _, s := range []time.Duration{at(2, 0, 0), at(4, 30, 0), at(13, 0, 0), at(20, 15, 0)} {
			assert.InDelta(t, HourlyFFMCLawson(85, 87, 0.4, s), contiguous(s), 1e-12)
		}
	})

	t.Run("domain violations", func(t *testing.T) {
		assert.Equal(t, Invalid, HourlyFFMCLawsonContiguous(85, 87, 0.4, 0.4, 0.4, 24*time.Hour+time.Second))
		assert.Equal(t, Invalid, HourlyFFMCLawsonContiguous(85, 87, 0.4, 0.4, 0.4, -12*time.Hour-time.Second))
		assert.Equal(t, Invalid, HourlyFFMCLawsonContiguous(102, 87, 0.4, 0.4, 0.4, at(8, 0, 0)))
	})
}
