// Package fwi implements the Canadian Forest Fire Weather Index System.
//
// # Indices
//
// Three moisture codes track fuel dryness from one day to the next:
//
//	FFMC  Fine Fuel Moisture Code, litter and fine fuels, [0,101]
//	DMC   Duff Moisture Code, loosely compacted organic layers
//	DC    Drought Code, deep compact organic layers
//
// Four derived indices describe fire behaviour:
//
//	ISI   Initial Spread Index, from FFMC and wind
//	BUI   Buildup Index, from DMC and DC
//	FWI   Fire Weather Index, from ISI and BUI
//	DSR   Daily Severity Rating, from FWI
//
// # Units
//
// Temperature is °C, relative humidity is a fraction in [0,1], precipitation
// is mm and wind speed is kph. Latitude and longitude are radians. Elapsed
// times and seconds-into-day are time.Duration truncated to whole seconds.
//
// # Hourly models
//
// Hourly FFMC is either stepped forward with the Van Wagner (1977) equations
// or read from the Lawson (1996) diurnal tables. The tables are indexed by
// local standard time: before 05:00 they are read with the previous day's
// FFMC, after noon with the current day's, and in between through the
// humidity-dependent morning tables. [HourlyFFMCLawsonContiguous] removes the
// jumps at the 05:00 and 12:00 seams.
//
// # Domain violations
//
// The raw formulas return [Invalid] when a primary input is out of range.
// [ComputeDaily], [ComputeHourly] and [Compute] never pass that sentinel on;
// every index that could not be computed is reported as Invalid and named by
// a [DomainError] in the returned error.
package fwi
