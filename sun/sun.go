// Package sun implements a low precision solar ephemeris, good to about
// one arc minute, after the closed form series of Montenbruck and Pfleger.
package sun

import (
	"math"

	"github.com/echoflaresat/almanac/earth"
	"github.com/echoflaresat/almanac/julian"
	"github.com/echoflaresat/almanac/vectors"
)

const (
	// Distance is the mean Sun-Earth distance in km.
	Distance = 149_598_000.0
	// MeanRadius is the Sun's mean radius in km.
	MeanRadius = 695_700.0
)

const pi2 = 2.0 * math.Pi

// EclipticPosition returns the Sun's geocentric ecliptic position as a
// polar vector: Phi the ecliptic longitude, Theta the (zero) latitude and
// R the distance in km.
func EclipticPosition(inst julian.Instant) vectors.Vec3 {
	jc := inst.JulianCentury()
	m := pi2 * frac(0.993133+99.997361*jc)
	l := pi2 * frac(0.7859453+m/pi2+
		(6893.0*math.Sin(m)+72.0*math.Sin(2.0*m)+6191.2*jc)/1_296_000.0)
	d := Distance * (1.0 - 0.016718*math.Cos(inst.TrueAnomaly()))
	return vectors.PolarDist(l, 0.0, d)
}

// Position returns the Sun's geocentric equatorial position: Phi the right
// ascension, Theta the declination, R the distance in km.
func Position(inst julian.Instant) vectors.Vec3 {
	return earth.EclipticMatrix(inst.JulianCentury()).Transpose().
		MulVec(EclipticPosition(inst))
}

// Horizontal returns the Sun as seen from geographic latitude lat and
// longitude lng, both in radians with east positive: Phi the azimuth
// counted from south, Theta the geocentric altitude, R the distance in km.
func Horizontal(inst julian.Instant, lat, lng float64) vectors.Vec3 {
	pos := Position(inst)
	tau := inst.GreenwichMeanSiderealTime() + lng - pos.Phi()
	return earth.EquatorialToHorizontal(tau, pos.Theta(), pos.R(), lat)
}

// Topocentric is Horizontal with the altitude reduced by the parallax of
// an observer elevationM metres above sea level.
func Topocentric(inst julian.Instant, lat, lng, elevationM float64) vectors.Vec3 {
	pos := Horizontal(inst, lat, lng)
	return vectors.PolarDist(pos.Phi(), pos.Theta()-earth.Parallax(elevationM, pos.R()), pos.R())
}

// AngularRadius returns the apparent angular radius in radians of the
// solar disc at the given distance in km.
func AngularRadius(distKm float64) float64 {
	return math.Asin(MeanRadius / distKm)
}

func frac(x float64) float64 { return x - math.Floor(x) }
