// Package julian converts calendar instants into the continuous scales the
// ephemeris formulas work on: Modified Julian Date, Julian centuries since
// J2000.0, and Greenwich mean sidereal time.
package julian

import (
	"fmt"
	"math"
	"time"
)

// J2000 is the Modified Julian Date of the J2000.0 epoch, 2000-01-01 12:00.
const J2000 = 51544.5

// mjdUnixEpoch is the Modified Julian Date of 1970-01-01T00:00:00Z.
const mjdUnixEpoch = 40587.0

const (
	secondsPerDay  = 86400.0
	daysPerCentury = 36525.0
)

// Instant is a point in time on the Modified Julian Date scale. It keeps
// the calendar instant it was built from, so results derived from it carry
// the same time zone. Instants are values; deriving one never changes the
// original.
type Instant struct {
	t   time.Time
	mjd float64
}

// FromTime builds an Instant from a calendar instant. The zone attached to
// t is retained for every instant derived from this one.
func FromTime(t time.Time) Instant {
	return Instant{
		t:   t,
		mjd: float64(t.UnixMilli())/86_400_000.0 + mjdUnixEpoch,
	}
}

// Time returns the calendar instant, in the zone captured at construction.
func (i Instant) Time() time.Time { return i.t }

// MJD returns the Modified Julian Date.
func (i Instant) MJD() float64 { return i.mjd }

// AtHour returns the instant h hours later, earlier if negative. The
// offset is applied in whole seconds so that repeated stepping does not
// accumulate sub-second drift.
func (i Instant) AtHour(h float64) Instant {
	return FromTime(i.t.Add(time.Duration(math.Round(h*3600.0)) * time.Second))
}

// JulianCentury returns the number of Julian centuries since J2000.0.
func (i Instant) JulianCentury() float64 {
	return (i.mjd - J2000) / daysPerCentury
}

// AtJulianCentury returns the instant at the given Julian century value,
// the inverse of JulianCentury. The zone is preserved.
func (i Instant) AtJulianCentury(jc float64) Instant {
	mjd := jc*daysPerCentury + J2000
	ms := math.Round((mjd - mjdUnixEpoch) * 86_400_000.0)
	return FromTime(time.UnixMilli(int64(ms)).In(i.t.Location()))
}

// GreenwichMeanSiderealTime returns GMST in radians, in [0, 2π).
func (i Instant) GreenwichMeanSiderealTime() float64 {
	mjd0 := math.Floor(i.mjd)
	ut := (i.mjd - mjd0) * secondsPerDay
	t0 := (mjd0 - J2000) / daysPerCentury
	t := (i.mjd - J2000) / daysPerCentury

	gmst := 24110.54841 + 8640184.812866*t0 + 1.0027379093*ut +
		(0.093104-6.2e-6*t)*t*t

	return (2.0 * math.Pi / secondsPerDay) * mod(gmst, secondsPerDay)
}

// TrueAnomaly returns a day-of-year approximation of the Earth's true
// anomaly, zero near perihelion. Only the Sun distance consumes it, and
// minute-level event times are insensitive to its coarseness.
func (i Instant) TrueAnomaly() float64 {
	doy := float64(i.t.UTC().YearDay())
	return 2.0 * math.Pi * frac((doy-4.0)/365.256363)
}

// String formats the instant as RFC 3339 together with its Modified Julian
// Date.
func (i Instant) String() string {
	return fmt.Sprintf("%s (MJD %.5f)", i.t.Format(time.RFC3339), i.mjd)
}

func frac(x float64) float64 { return x - math.Floor(x) }

// mod wraps x into [0, y). Unlike math.Mod it never returns a negative
// value.
func mod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0.0 {
		return r + y
	}
	return r
}
