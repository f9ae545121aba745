package fwi

import (
	"math"
	"time"
)

// DailyFFMC computes the next day's Fine Fuel Moisture Code from the previous
// day's value and the noon observation. rh is a fraction in [0,1], rain is the
// 24 hour noon-to-noon total in mm, wind is kph.
func DailyFFMC(prevFFMC, rain, temp, rh, wind float64) float64 {
	if prevFFMC < 0 || prevFFMC > 101 || temp > 60 || rain < 0 || rain > 300 {
		return Invalid
	}
	temp = clampTemperature(temp)
	rh = clamp(rh, 0, 1)
	wind = clamp(wind, 0, 200)

	rhp := rh * 100

	wmo := 147.2 * (101 - prevFFMC) / (59.5 + prevFFMC)
	if rain > 0.5 {
		rf := rain - 0.5
		wetting := 42.5 * rf * (math.Expm1(-100/(251-wmo)) + 1) * (-math.Expm1(-6.93 / rf))
		if wmo > 150 {
			over := wmo - 150
			wmo = wmo + wetting + 0.0015*over*over*math.Sqrt(rf)
		} else {
			wmo += wetting
		}
	}
	if wmo > 250 {
		wmo = 250
	}

	shared := 0.18 * (21.1 - temp) * (-math.Expm1(-0.115 * rhp))
	ed := 0.942*math.Pow(rhp, 0.679) + 11*(math.Expm1((rhp-100)/10)+1) + shared
	ew := 0.618*math.Pow(rhp, 0.753) + 10*(math.Expm1((rhp-100)/10)+1) + shared

	var wm float64
	switch {
	case wmo < ed && wmo < ew:
		k1 := 0.424*(1-math.Pow((100-rhp)/100, 1.7)) + 0.0694*math.Sqrt(wind)*(1-math.Pow(1-rh, 8))
		kw := k1 * 0.581 * (math.Expm1(0.0365*temp) + 1)
		wm = ew - (ew-wmo)/math.Pow(10, kw)
	case wmo > ed:
		ko := 0.424*(1-math.Pow(rh, 1.7)) + 0.0694*math.Sqrt(wind)*(1-math.Pow(rh, 8))
		kd := ko * 0.581 * (math.Expm1(0.0365*temp) + 1)
		wm = ed + (wmo-ed)/math.Pow(10, kd)
	default:
		wm = wmo
	}

	return clamp(59.5*(250-wm)/(147.2+wm), 0, 101)
}

// DMC computes the Duff Moisture Code. latitude and longitude are radians;
// longitude is accepted for symmetry with DC and currently unused.
func DMC(prevDMC, rain, temp, latitude, longitude float64, month time.Month, rh float64) float64 {
	m, ok := monthIndex(month)
	if prevDMC < 0 || temp > 60 || rain < 0 || rain > 300 || !ok {
		return Invalid
	}
	temp = clampTemperature(temp)
	rh = clamp(rh, 0, 1)

	el := dayLengthFactors(latitude)

	var rk float64
	if temp >= -1.1 {
		rk = 1.894 * (temp + 1.1) * (1 - rh) * el[m] * 0.01
	}

	po := prevDMC
	pr := po
	if rain > 1.5 {
		rw := 0.92*rain - 1.27
		wmi := 20 + math.Exp(5.6348-po/43.43)
		var b float64
		switch {
		case po <= 33:
			b = 100 / (0.5 + 0.3*po)
		case po > 65:
			b = 6.2*math.Log1p(po-1) - 17.2
		default:
			b = 14 - 1.3*math.Log1p(po-1)
		}
		wmr := wmi + 1000*rw/(48.77+b*rw)
		pr = 43.43 * (5.6348 - math.Log1p(wmr-21))
	}
	if pr < 0 {
		pr = 0
	}
	return math.Max(pr+rk, 0)
}

// DC computes the Drought Code. latitude and longitude are radians.
func DC(prevDC, rain, temp, latitude, longitude float64, month time.Month) float64 {
	m, ok := monthIndex(month)
	if prevDC < 0 || temp > 60 || rain < 0 || rain > 300 || !ok {
		return Invalid
	}
	temp = clampTemperature(temp)

	fl := dcFactors(latitude)

	if temp < -2.8 {
		temp = -2.8
	}
	pe := (0.36*(temp+2.8) + fl[m]) / 2

	dr := prevDC
	if rain > 2.8 {
		rd := 0.83*rain - 1.27
		smi := 800 * (math.Expm1(-prevDC/400) + 1)
		dr = math.Max(prevDC-400*math.Log1p(3.937*rd/smi), 0)
	}
	return math.Max(dr+pe, 0)
}

func dayLengthFactors(latitude float64) *[12]float64 {
	switch {
	case latitude >= DegToRad(30):
		return &dayLengthNorth
	case latitude <= DegToRad(-30):
		return &dayLengthSouth
	case latitude >= DegToRad(10):
		return &dayLengthNorth20
	case latitude <= DegToRad(-10):
		return &dayLengthSouth20
	default:
		return &dayLengthEquatorial
	}
}

func dcFactors(latitude float64) *[12]float64 {
	switch {
	case latitude >= DegToRad(10):
		return &dcFactorNorth
	case latitude <= DegToRad(-10):
		return &dcFactorSouth
	default:
		return &dcFactorEquatorial
	}
}

func monthIndex(m time.Month) (int, bool) {
	if m < time.January || m > time.December {
		return 0, false
	}
	return int(m) - 1, true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampTemperature(t float64) float64 { return clamp(t, -50, 45) }

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
