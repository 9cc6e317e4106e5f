package almanac

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"
)

const radPerDeg = math.Pi / 180.0

// Observer is a resolved observation site. Latitude is positive north,
// Longitude positive east, Elevation in metres above sea level. Validating
// the coordinates is the caller's concern; the engine only clamps negative
// elevations to sea level.
type Observer struct {
	Latitude  unit.Angle
	Longitude unit.Angle
	Elevation float64
}

// ObserverAt returns an Observer from coordinates in degrees, the form
// they usually arrive in.
func ObserverAt(latDeg, lngDeg float64) Observer {
	return Observer{
		Latitude:  unit.AngleFromDeg(latDeg),
		Longitude: unit.AngleFromDeg(lngDeg),
	}
}

const (
	// DefaultWindow is the span an event search covers when its options
	// leave Window zero.
	DefaultWindow = 24 * time.Hour
	// FullCycle is a window wide enough that rise and set must occur
	// within it at any latitude. Pass it to find, say, the end of a polar
	// night.
	FullCycle = 365 * 24 * time.Hour
)

type twilightMode int8

const (
	upperLimb twilightMode = iota // topocentric, event on the disc's upper edge
	lowerLimb
	centre // geocentric crossing of the disc's centre, no corrections
)

// Twilight selects the crossing a sun times search looks for: the angle of
// the Sun relative to the horizon and which part of the disc defines the
// event. The zero value is TwilightVisual.
//
// The visual twilights are topocentric: refraction at the horizon, the
// observer's elevation and the angular radius of the disc all shift the
// crossing. The angle-only twilights follow the conventional definitions
// and track the centre of the disc geocentrically.
type Twilight struct {
	angle float64
	mode  twilightMode
}

var (
	// TwilightVisual is the moment the upper edge of the disc touches the
	// horizon, refraction included: everyday sunrise and sunset.
	TwilightVisual = Twilight{0.0, upperLimb}
	// TwilightVisualLower is the same crossing for the lower edge of the
	// disc.
	TwilightVisualLower = Twilight{0.0, lowerLimb}
	// TwilightHorizon is the geometric horizon crossing of the disc's
	// centre, without refraction.
	TwilightHorizon = Twilight{0.0, centre}
	// TwilightCivil bounds civil twilight on its night side, centre at
	// 6° below the horizon.
	TwilightCivil = Twilight{-6.0 * radPerDeg, centre}
	// TwilightNautical: centre at 12° below the horizon.
	TwilightNautical = Twilight{-12.0 * radPerDeg, centre}
	// TwilightAstronomical: centre at 18° below the horizon.
	TwilightAstronomical = Twilight{-18.0 * radPerDeg, centre}
	// TwilightGoldenHour is the upper bound of the photographers' golden
	// hour, centre at 6° above the horizon.
	TwilightGoldenHour = Twilight{6.0 * radPerDeg, centre}
	// TwilightBlueHour is the centre of the blue hour, 4° below the
	// horizon.
	TwilightBlueHour = Twilight{-4.0 * radPerDeg, centre}
	// TwilightNightHour ends the blue hour on its night side, 8° below.
	TwilightNightHour = Twilight{-8.0 * radPerDeg, centre}
)

// TwilightAt returns a custom twilight: the geocentric crossing of the
// Sun's centre through the given angle above the horizon.
func TwilightAt(angle unit.Angle) Twilight {
	return Twilight{angle.Rad(), centre}
}

// Angle returns the horizon angle that defines the twilight.
func (t Twilight) Angle() unit.Angle { return unit.Angle(t.angle) }

func (t Twilight) topocentric() bool { return t.mode != centre }

// limb is +1 for the upper edge of the disc, -1 for the lower.
func (t Twilight) limb() float64 {
	if t.mode == lowerLimb {
		return -1.0
	}
	return 1.0
}

// Phase is a target Moon phase, given as the geocentric ecliptic
// elongation of the Moon from the Sun: 0 at new moon, π at full moon,
// increasing as the Moon waxes.
type Phase struct {
	angle float64
}

var (
	NewMoon        = Phase{0.0}
	WaxingCrescent = Phase{45.0 * radPerDeg}
	FirstQuarter   = Phase{90.0 * radPerDeg}
	WaxingGibbous  = Phase{135.0 * radPerDeg}
	FullMoon       = Phase{180.0 * radPerDeg}
	WaningGibbous  = Phase{225.0 * radPerDeg}
	LastQuarter    = Phase{270.0 * radPerDeg}
	WaningCrescent = Phase{315.0 * radPerDeg}
)

// phaseNames is indexed by multiples of 45° elongation.
var phaseNames = [...]string{
	"new moon", "waxing crescent", "first quarter", "waxing gibbous",
	"full moon", "waning gibbous", "last quarter", "waning crescent",
}

// PhaseAt returns a custom phase target at the given elongation.
func PhaseAt(angle unit.Angle) Phase {
	return Phase{wrapTwoPi(angle.Rad())}
}

// ClosestPhase returns the named phase nearest to the given elongation.
func ClosestPhase(elongation unit.Angle) Phase {
	idx := int(math.Round(wrapTwoPi(elongation.Rad())/(45.0*radPerDeg))) % 8
	return Phase{float64(idx) * 45.0 * radPerDeg}
}

// Angle returns the elongation that defines the phase.
func (p Phase) Angle() unit.Angle { return unit.Angle(p.angle) }

// String names the eight principal phases and falls back to the elongation
// in degrees for custom ones.
func (p Phase) String() string {
	idx := int(math.Round(p.angle / (45.0 * radPerDeg)))
	if idx >= 0 && idx < len(phaseNames) &&
		math.Abs(p.angle-float64(idx)*45.0*radPerDeg) < 1e-9 {
		return phaseNames[idx]
	}
	return fmt.Sprintf("phase at %.1f°", p.angle/radPerDeg)
}

// wrapTwoPi wraps an angle into [0, 2π).
func wrapTwoPi(a float64) float64 {
	a = math.Mod(a, 2.0*math.Pi)
	if a < 0.0 {
		a += 2.0 * math.Pi
	}
	return a
}

// wrapPi wraps an angle into (-π, π].
func wrapPi(a float64) float64 {
	a = math.Mod(a, 2.0*math.Pi)
	switch {
	case a <= -math.Pi:
		a += 2.0 * math.Pi
	case a > math.Pi:
		a -= 2.0 * math.Pi
	}
	return a
}
