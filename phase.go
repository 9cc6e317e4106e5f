package almanac

import (
	"time"

	"github.com/pkg/errors"

	"github.com/echoflaresat/almanac/julian"
	"github.com/echoflaresat/almanac/moon"
	"github.com/echoflaresat/almanac/solver"
	"github.com/echoflaresat/almanac/sun"
)

// MoonPhaseEvent is the instant the Moon reaches a requested phase.
type MoonPhaseEvent struct {
	// Time of the phase, in the zone of the search start.
	Time time.Time
	// Distance to the Moon at that time, in km.
	Distance float64
}

// Popular distance cutoffs: a full or new moon nearer than the super moon
// distance makes headlines, one beyond the micro moon distance makes
// slightly smaller ones. Neither term has an official definition; these
// are the cutoffs in common use.
const (
	superMoonDistance = 360_000.0
	microMoonDistance = 405_000.0
)

// IsSuperMoon reports whether the Moon was within the super moon distance
// at the event.
func (e MoonPhaseEvent) IsSuperMoon() bool { return e.Distance <= superMoonDistance }

// IsMicroMoon reports whether the Moon was beyond the micro moon distance
// at the event.
func (e MoonPhaseEvent) IsMicroMoon() bool { return e.Distance >= microMoonDistance }

const (
	// phaseStep is the coarse bracketing step, one week in Julian
	// centuries. The elongation gains about 12° per day, so a week keeps
	// at most one crossing per bracket.
	phaseStep = 7.0 / daysPerCentury
	// phaseAccuracy is the Pegasus target, thirty seconds in Julian
	// centuries.
	phaseAccuracy = 0.5 / 1440.0 / daysPerCentury

	daysPerCentury = 36525.0
)

// ComputeMoonPhase finds the first instant at or after from at which the
// Moon reaches the given phase. The offset of the elongation from the
// target is scanned in one week steps until it crosses zero from below;
// Pegasus then resolves the crossing to about half a minute.
func ComputeMoonPhase(from time.Time, phase Phase) (MoonPhaseEvent, error) {
	inst := julian.FromTime(from)

	offset := func(jc float64) float64 {
		t := inst.AtJulianCentury(jc)
		return wrapPi(moon.EclipticPosition(t).Phi() - sun.EclipticPosition(t).Phi() - phase.angle)
	}

	t0 := inst.JulianCentury()
	t1 := t0 + phaseStep
	d0, d1 := offset(t0), offset(t1)
	// Skip brackets without a sign change, and the descending ones: the
	// offset only falls where it wraps from +π to -π, which is half a
	// lunation away from the crossing.
	for d0*d1 > 0.0 || d1 < d0 {
		t0, d0 = t1, d1
		t1 += phaseStep
		d1 = offset(t1)
	}

	jc, err := solver.Pegasus(t0, t1, phaseAccuracy, offset)
	if err != nil {
		return MoonPhaseEvent{}, errors.Wrap(err, "moon phase search")
	}

	at := inst.AtJulianCentury(jc)
	return MoonPhaseEvent{
		Time:     at.Time(),
		Distance: moon.EclipticPosition(at).R(),
	}, nil
}
