// Package earth holds the Earth-bound pieces shared by the Sun and Moon
// models: the mean obliquity frame rotation, atmospheric refraction,
// parallax of an elevated observer and the equatorial to horizontal
// transform.
package earth

import (
	"math"

	"github.com/echoflaresat/almanac/vectors"
)

const Radius = 6371.0 // Earth radius in km (spherical approximation)

// RefractionAtHorizon is the atmospheric refraction at apparent altitude
// zero, about 34.5 arc minutes. ApparentRefraction returns it directly at
// the horizon, where the rise and set search needs the exact value.
const RefractionAtHorizon = 34.5 / 60.0 * math.Pi / 180.0

// Refraction returns the atmospheric refraction for a body seen at the
// given true altitude in radians, for average conditions (1010 hPa, 10 °C).
// Below the horizon the bending is taken as zero.
func Refraction(trueAlt float64) float64 {
	if trueAlt < 0.0 {
		return 0.0
	}
	return 0.000296706 / math.Tan(trueAlt+0.00313756/(trueAlt+0.0891863))
}

// ApparentRefraction is the refraction as a function of the apparent
// (already lifted) altitude in radians. Like Refraction it is zero below
// the horizon.
func ApparentRefraction(apparentAlt float64) float64 {
	if apparentAlt < 0.0 {
		return 0.0
	}
	if apparentAlt == 0.0 {
		return RefractionAtHorizon
	}
	return 0.000290888 / math.Tan(apparentAlt+0.00222675/(apparentAlt+0.0767945))
}

// Parallax returns the angle by which the topocentric altitude of a body
// at distKm kilometres falls short of the geocentric one, for an observer
// elevationM metres above sea level. The elevation term is the dip of the
// apparent horizon, so the result can go negative for mountain observers.
// Negative elevations are treated as sea level.
func Parallax(elevationM, distKm float64) float64 {
	if elevationM < 0.0 {
		elevationM = 0.0
	}
	return math.Asin(Radius/distKm) - math.Acos(Radius/(Radius+elevationM/1000.0))
}

// EclipticMatrix returns the rotation from the equatorial into the
// ecliptic frame at the given Julian century, built from the IAU 1976
// cubic for the mean obliquity of the ecliptic.
func EclipticMatrix(jc float64) vectors.Mat3 {
	eps := (23.43929111 - (46.8150+(0.00059-0.001813*jc)*jc)*jc/3600.0) * math.Pi / 180.0
	return vectors.RotateX(eps)
}

// EquatorialToHorizontal rotates the polar position (hour angle tau,
// declination dec, distance dist) into the horizon frame of an observer at
// geographic latitude lat. The result's Phi is the azimuth counted from
// south toward west, its Theta the geocentric altitude.
func EquatorialToHorizontal(tau, dec, dist, lat float64) vectors.Vec3 {
	return vectors.RotateY(math.Pi/2.0 - lat).MulVec(vectors.PolarDist(tau, dec, dist))
}
