package almanac

import (
	"math"
	"time"

	"github.com/echoflaresat/almanac/earth"
	"github.com/echoflaresat/almanac/julian"
	"github.com/echoflaresat/almanac/moon"
	"github.com/echoflaresat/almanac/solver"
	"github.com/echoflaresat/almanac/sun"
)

// SunTimesOptions configures a sun times search. The zero value searches
// the next 24 hours for the visual sunrise and sunset.
type SunTimesOptions struct {
	// Twilight selects the horizon crossing; the zero value is
	// TwilightVisual.
	Twilight Twilight
	// Window bounds the search, measured from the start instant. Zero
	// means DefaultWindow; FullCycle searches up to a year ahead.
	Window time.Duration
}

// MoonTimesOptions configures a moon times search. The zero value searches
// the next 24 hours.
type MoonTimesOptions struct {
	// Window bounds the search, measured from the start instant. Zero
	// means DefaultWindow; FullCycle searches up to a year ahead.
	Window time.Duration
}

// SunTimes holds the events of one sun times search. Rise, Set, Noon and
// Nadir are nil when the event does not occur within the window.
type SunTimes struct {
	// Rise and Set are the crossings of the configured twilight.
	Rise *time.Time
	Set  *time.Time
	// Noon and Nadir are the upper and lower meridian transits, found
	// whether or not the Sun clears the horizon there.
	Noon  *time.Time
	Nadir *time.Time
	// AlwaysUp and AlwaysDown classify the first day of the window when
	// it contains no crossing: polar day respectively polar night. They
	// keep that meaning even when a wider window finds a crossing later.
	AlwaysUp   bool
	AlwaysDown bool
}

// MoonTimes holds the events of one moon times search; the fields behave
// as in SunTimes. The Moon has no meridian transit fields because its
// culminations drift nearly an hour per day and carry little meaning.
type MoonTimes struct {
	Rise       *time.Time
	Set        *time.Time
	AlwaysUp   bool
	AlwaysDown bool
}

// ComputeSunTimes searches forward from a start instant for the times the
// Sun crosses the configured twilight, plus its noon and nadir transits.
// Results carry the start instant's time zone.
func ComputeSunTimes(from time.Time, obs Observer, opts SunTimesOptions) SunTimes {
	inst := julian.FromTime(from)
	sc := scanHeights(windowHours(opts.Window), true,
		sunHeight(inst, obs, opts.Twilight))
	return SunTimes{
		Rise:       eventTime(inst, sc.rise, sc.hasRise),
		Set:        eventTime(inst, sc.set, sc.hasSet),
		Noon:       eventTime(inst, sc.noon, sc.hasNoon),
		Nadir:      eventTime(inst, sc.nadir, sc.hasNadir),
		AlwaysUp:   sc.alwaysUp,
		AlwaysDown: sc.alwaysDown,
	}
}

// ComputeMoonTimes searches forward from a start instant for moonrise and
// moonset. The events are topocentric for the upper limb of the disc, the
// only convention in common use for the Moon.
func ComputeMoonTimes(from time.Time, obs Observer, opts MoonTimesOptions) MoonTimes {
	inst := julian.FromTime(from)
	sc := scanHeights(windowHours(opts.Window), false, moonHeight(inst, obs))
	return MoonTimes{
		Rise:       eventTime(inst, sc.rise, sc.hasRise),
		Set:        eventTime(inst, sc.set, sc.hasSet),
		AlwaysUp:   sc.alwaysUp,
		AlwaysDown: sc.alwaysDown,
	}
}

// sunHeight returns the corrected height function for the given twilight:
// the signed angle of the Sun above the crossing, as a function of hours
// after the base instant.
func sunHeight(base julian.Instant, obs Observer, tw Twilight) func(float64) float64 {
	lat, lng := obs.Latitude.Rad(), obs.Longitude.Rad()
	return func(hour float64) float64 {
		pos := sun.Horizontal(base.AtHour(hour), lat, lng)
		hc := tw.angle
		if tw.topocentric() {
			hc += earth.Parallax(obs.Elevation, pos.R()) -
				earth.ApparentRefraction(tw.angle) -
				tw.limb()*sun.AngularRadius(pos.R())
		}
		return pos.Theta() - hc
	}
}

// moonHeight is the corrected height of the Moon's upper limb against the
// apparent horizon.
func moonHeight(base julian.Instant, obs Observer) func(float64) float64 {
	lat, lng := obs.Latitude.Rad(), obs.Longitude.Rad()
	return func(hour float64) float64 {
		pos := moon.Horizontal(base.AtHour(hour), lat, lng)
		hc := earth.Parallax(obs.Elevation, pos.R()) -
			earth.ApparentRefraction(0.0) -
			moon.AngularRadius(pos.R())
		return pos.Theta() - hc
	}
}

const (
	// Interval halving pass over a transit found by interpolation: a
	// ±2 h frame halved 14 times resolves to under a second.
	transitFrame = 2.0
	transitDepth = 14
)

type scanResult struct {
	rise, set, noon, nadir             float64
	hasRise, hasSet, hasNoon, hasNadir bool
	alwaysUp, alwaysDown               bool
}

// scanHeights walks a corrected height function in one hour steps, fitting
// a parabola through each centred triple of samples. Roots of the parabola
// are crossings; its apex, when it falls inside the step, is a transit.
// Only the first rise, set, noon and nadir within limitHours are kept. Two
// of the three samples carry over from step to step, so a day costs about
// 25 evaluations.
func scanHeights(limitHours float64, wantTransits bool, height func(float64) float64) scanResult {
	var r scanResult

	maxHour := int(math.Ceil(limitHours))
	flagWindow := math.Min(24.0, limitHours)
	crossedEarly := false

	yMinus := height(-1.0)
	y0 := height(0.0)
	yPlus := height(1.0)
	startAbove := y0 > 0.0

	for hour := 0; hour <= maxHour; hour++ {
		if hour > 0 {
			yMinus, y0 = y0, yPlus
			yPlus = height(float64(hour) + 1.0)
		}

		q := solver.NewQuadratic(yMinus, y0, yPlus)

		switch q.NRoots {
		case 1:
			rt := float64(hour) + q.Root1
			if rt >= 0.0 && rt < limitHours {
				// Rising through the crossing if the body started the
				// step below it.
				if yMinus < 0.0 {
					if !r.hasRise {
						r.rise, r.hasRise = rt, true
					}
				} else if !r.hasSet {
					r.set, r.hasSet = rt, true
				}
				if rt < flagWindow {
					crossedEarly = true
				}
			}
		case 2:
			riseRoot, setRoot := q.Root1, q.Root2
			if q.Ye < 0.0 {
				// Apex below the crossing: the body dips under and comes
				// back up, so the set comes first.
				riseRoot, setRoot = q.Root2, q.Root1
			}
			if rt := float64(hour) + riseRoot; rt >= 0.0 && rt < limitHours {
				if !r.hasRise {
					r.rise, r.hasRise = rt, true
				}
				if rt < flagWindow {
					crossedEarly = true
				}
			}
			if rt := float64(hour) + setRoot; rt >= 0.0 && rt < limitHours {
				if !r.hasSet {
					r.set, r.hasSet = rt, true
				}
				if rt < flagWindow {
					crossedEarly = true
				}
			}
		}

		if wantTransits && math.Abs(q.Xe) <= 1.0 {
			rt := float64(hour) + q.Xe
			if rt >= 0.0 && rt < limitHours {
				if q.Maximum {
					if !r.hasNoon {
						r.noon, r.hasNoon = rt, true
					}
				} else if !r.hasNadir {
					r.nadir, r.hasNadir = rt, true
				}
			}
		}

		if r.hasRise && r.hasSet && (!wantTransits || (r.hasNoon && r.hasNadir)) {
			break
		}
	}

	if wantTransits {
		if r.hasNoon {
			r.noon = solver.RefineMax(r.noon, transitFrame, transitDepth, height)
			if r.noon < 0.0 || r.noon >= limitHours {
				r.hasNoon = false
			}
		}
		if r.hasNadir {
			r.nadir = solver.RefineMin(r.nadir, transitFrame, transitDepth, height)
			if r.nadir < 0.0 || r.nadir >= limitHours {
				r.hasNadir = false
			}
		}
	}

	// The always up/down classification belongs to the first day even
	// when a longer window runs on to find a crossing months out.
	if !crossedEarly {
		r.alwaysUp = startAbove
		r.alwaysDown = !startAbove
	}
	return r
}

func windowHours(w time.Duration) float64 {
	if w <= 0 {
		w = DefaultWindow
	}
	return w.Hours()
}

func eventTime(base julian.Instant, hour float64, ok bool) *time.Time {
	if !ok {
		return nil
	}
	t := base.AtHour(hour).Time()
	return &t
}
