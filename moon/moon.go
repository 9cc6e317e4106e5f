// Package moon implements a truncated lunar ephemeris after Montenbruck
// and Pfleger's abridgement of Brown's theory. Positions come out to a few
// arc minutes, distances to a few hundred kilometres, which is plenty for
// rise and set times.
package moon

import (
	"math"

	"github.com/echoflaresat/almanac/earth"
	"github.com/echoflaresat/almanac/julian"
	"github.com/echoflaresat/almanac/vectors"
)

// MeanRadius is the Moon's mean radius in km.
const MeanRadius = 1737.4

const pi2 = 2.0 * math.Pi

// arcs is the number of arc seconds per radian.
const arcs = 3600.0 * 180.0 / math.Pi

// EclipticPosition returns the Moon's geocentric ecliptic position as a
// polar vector: Phi the ecliptic longitude, Theta the latitude, R the
// distance in km.
func EclipticPosition(inst julian.Instant) vectors.Vec3 {
	jc := inst.JulianCentury()

	l0 := frac(0.606433 + 1336.855225*jc)    // mean longitude, revolutions
	l := pi2 * frac(0.374897+1325.552410*jc) // mean anomaly of the Moon
	ls := pi2 * frac(0.993133+99.997361*jc)  // mean anomaly of the Sun
	d := pi2 * frac(0.827361+1236.853086*jc) // elongation from the Sun
	f := pi2 * frac(0.259086+1342.227825*jc) // argument of latitude

	// Perturbations of the longitude, in arc seconds.
	dl := 22640.0*math.Sin(l) -
		4586.0*math.Sin(l-2.0*d) +
		2370.0*math.Sin(2.0*d) +
		769.0*math.Sin(2.0*l) -
		668.0*math.Sin(ls) -
		412.0*math.Sin(2.0*f) -
		212.0*math.Sin(2.0*l-2.0*d) -
		206.0*math.Sin(l+ls-2.0*d) +
		192.0*math.Sin(l+2.0*d) -
		165.0*math.Sin(ls-2.0*d) -
		125.0*math.Sin(d) -
		110.0*math.Sin(l+ls) +
		148.0*math.Sin(l-ls) -
		55.0*math.Sin(2.0*f-2.0*d)

	s := f + (dl+412.0*math.Sin(2.0*f)+541.0*math.Sin(ls))/arcs
	h := f - 2.0*d
	n := -526.0*math.Sin(h) +
		44.0*math.Sin(l+h) -
		31.0*math.Sin(-l+h) -
		23.0*math.Sin(ls+h) +
		11.0*math.Sin(-ls+h) -
		25.0*math.Sin(-2.0*l+f) +
		21.0*math.Sin(-l+f)

	lMoon := pi2 * frac(l0+dl/1_296_000.0)
	bMoon := (18520.0*math.Sin(s) + n) / arcs

	dist := 385000.5584 -
		20905.3550*math.Cos(l) -
		3699.1109*math.Cos(2.0*d-l) -
		2955.9676*math.Cos(2.0*d) -
		569.9251*math.Cos(2.0*l)

	return vectors.PolarDist(lMoon, bMoon, dist)
}

// Position returns the Moon's geocentric equatorial position: Phi the
// right ascension, Theta the declination, R the distance in km.
func Position(inst julian.Instant) vectors.Vec3 {
	return earth.EclipticMatrix(inst.JulianCentury()).Transpose().
		MulVec(EclipticPosition(inst))
}

// Horizontal returns the Moon as seen from geographic latitude lat and
// longitude lng, both in radians with east positive: Phi the azimuth
// counted from south, Theta the geocentric altitude, R the distance in km.
func Horizontal(inst julian.Instant, lat, lng float64) vectors.Vec3 {
	pos := Position(inst)
	tau := inst.GreenwichMeanSiderealTime() + lng - pos.Phi()
	return earth.EquatorialToHorizontal(tau, pos.Theta(), pos.R(), lat)
}

// Topocentric is Horizontal with the altitude reduced by the parallax of
// an observer elevationM metres above sea level. For the Moon the
// correction runs to a degree, so it matters for every use.
func Topocentric(inst julian.Instant, lat, lng, elevationM float64) vectors.Vec3 {
	pos := Horizontal(inst, lat, lng)
	return vectors.PolarDist(pos.Phi(), pos.Theta()-earth.Parallax(elevationM, pos.R()), pos.R())
}

// AngularRadius returns the apparent angular radius in radians of the
// lunar disc at the given distance in km.
func AngularRadius(distKm float64) float64 {
	return math.Asin(MeanRadius / distKm)
}

func frac(x float64) float64 { return x - math.Floor(x) }
