package almanac

import (
	"fmt"
	"math"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/echoflaresat/almanac/earth"
	"github.com/echoflaresat/almanac/julian"
	"github.com/echoflaresat/almanac/moon"
	"github.com/echoflaresat/almanac/sun"
)

// SunPosition is the Sun as seen by an observer at one instant.
type SunPosition struct {
	// Azimuth of the Sun, measured from north and increasing eastward.
	Azimuth unit.Angle
	// Altitude is the apparent altitude above the horizon: the true
	// altitude lifted by atmospheric refraction.
	Altitude unit.Angle
	// TrueAltitude is the topocentric altitude without refraction.
	TrueAltitude unit.Angle
	// Distance to the Sun in km.
	Distance float64
}

// ComputeSunPosition returns the Sun's position at the given instant for
// the given observer. Every call evaluates the ephemeris afresh.
func ComputeSunPosition(at time.Time, obs Observer) SunPosition {
	inst := julian.FromTime(at)
	pos := sun.Topocentric(inst, obs.Latitude.Rad(), obs.Longitude.Rad(), obs.Elevation)
	trueAlt := pos.Theta()
	return SunPosition{
		Azimuth:      unit.Angle(wrapTwoPi(pos.Phi() + math.Pi)),
		Altitude:     unit.Angle(trueAlt + earth.Refraction(trueAlt)),
		TrueAltitude: unit.Angle(trueAlt),
		Distance:     pos.R(),
	}
}

// String formats azimuth and altitude sexagesimally.
func (p SunPosition) String() string {
	return fmt.Sprintf("az %.0s alt %.0s dist %.0f km",
		sexa.FmtAngle(p.Azimuth), sexa.FmtAngle(p.Altitude), p.Distance)
}

// MoonPosition is the Moon as seen by an observer at one instant.
type MoonPosition struct {
	// Azimuth of the Moon, measured from north and increasing eastward.
	Azimuth unit.Angle
	// Altitude is the apparent altitude above the horizon.
	Altitude unit.Angle
	// TrueAltitude is the topocentric altitude without refraction.
	TrueAltitude unit.Angle
	// ParallacticAngle between the Moon's celestial north and the
	// observer's vertical, positive west of the meridian.
	ParallacticAngle unit.Angle
	// Distance to the Moon in km.
	Distance float64
}

// ComputeMoonPosition returns the Moon's position at the given instant for
// the given observer.
func ComputeMoonPosition(at time.Time, obs Observer) MoonPosition {
	inst := julian.FromTime(at)
	lat, lng := obs.Latitude.Rad(), obs.Longitude.Rad()

	pos := moon.Position(inst)
	tau := inst.GreenwichMeanSiderealTime() + lng - pos.Phi()
	dec := pos.Theta()

	hor := earth.EquatorialToHorizontal(tau, dec, pos.R(), lat)
	trueAlt := hor.Theta() - earth.Parallax(obs.Elevation, hor.R())

	pa := math.Atan2(math.Sin(tau),
		math.Tan(lat)*math.Cos(dec)-math.Sin(dec)*math.Cos(tau))

	return MoonPosition{
		Azimuth:          unit.Angle(wrapTwoPi(hor.Phi() + math.Pi)),
		Altitude:         unit.Angle(trueAlt + earth.Refraction(trueAlt)),
		TrueAltitude:     unit.Angle(trueAlt),
		ParallacticAngle: unit.Angle(pa),
		Distance:         hor.R(),
	}
}

// String formats azimuth and altitude sexagesimally.
func (p MoonPosition) String() string {
	return fmt.Sprintf("az %.0s alt %.0s dist %.0f km",
		sexa.FmtAngle(p.Azimuth), sexa.FmtAngle(p.Altitude), p.Distance)
}

// MoonIllumination describes the sunlit part of the lunar disc as seen
// from the centre of the Earth.
type MoonIllumination struct {
	// Fraction of the disc that is lit, 0 at new moon to 1 at full.
	Fraction float64
	// Phase runs from -π at new moon through 0 at full moon and back to
	// +π at the next new moon; it is negative while the Moon waxes.
	Phase unit.Angle
	// Angle is the position angle of the midpoint of the bright limb,
	// counted eastward from the disc's celestial north point. Negative
	// when the bright limb faces east, as it does for a waxing moon.
	Angle unit.Angle
}

// ComputeMoonIllumination returns the illumination of the Moon at the
// given instant. The values are geocentric; for the angle as seen in the
// sky, subtract the parallactic angle of the same instant.
func ComputeMoonIllumination(at time.Time) MoonIllumination {
	inst := julian.FromTime(at)
	s := sun.Position(inst)
	m := moon.Position(inst)

	phi := math.Pi - math.Acos(clamp1(m.Normalize().Dot(s.Normalize())))
	if m.Cross(s).Theta() < 0.0 {
		phi = -phi
	}

	sd, sa := s.Theta(), s.Phi()
	md, ma := m.Theta(), m.Phi()
	angle := math.Atan2(
		math.Cos(sd)*math.Sin(sa-ma),
		math.Sin(sd)*math.Cos(md)-math.Cos(sd)*math.Sin(md)*math.Cos(sa-ma))

	return MoonIllumination{
		Fraction: (1.0 + math.Cos(phi)) / 2.0,
		Phase:    unit.Angle(phi),
		Angle:    unit.Angle(angle),
	}
}

// ClosestPhase returns the named phase nearest to the illumination state.
func (i MoonIllumination) ClosestPhase() Phase {
	return ClosestPhase(unit.Angle(i.Phase.Rad() + math.Pi))
}

// clamp1 guards acos against dot products a hair outside [-1, 1].
func clamp1(x float64) float64 {
	if x > 1.0 {
		return 1.0
	}
	if x < -1.0 {
		return -1.0
	}
	return x
}
