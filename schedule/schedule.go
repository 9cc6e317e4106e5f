// Package schedule plugs the almanac engine into cloudeng.io/datetime's
// dynamic time of day mechanism, so date range schedulers can refer to
// sunrise, sunset, solar noon or moonrise by name and have them resolved
// per date and place.
package schedule

import (
	"time"

	"cloudeng.io/datetime"
	lru "github.com/hashicorp/golang-lru"

	"github.com/echoflaresat/almanac"
)

// cacheSize bounds each evaluator's memo. A year of daily evaluations for
// a site is the typical working set.
const cacheSize = 366

type dayKey struct {
	year, month, day int
	lat, lng         float64
	zone             string
}

// evaluator memoizes a per-day event lookup. Schedulers evaluate the same
// date and place repeatedly while expanding ranges, and one event search
// costs dozens of ephemeris evaluations.
type evaluator struct {
	name  string
	cache *lru.Cache
	at    func(midnight time.Time, obs almanac.Observer) *time.Time
}

func newEvaluator(name string, at func(time.Time, almanac.Observer) *time.Time) evaluator {
	c, _ := lru.New(cacheSize)
	return evaluator{name: name, cache: c, at: at}
}

// Name implements datetime.DynamicTimeOfDay.
func (e evaluator) Name() string { return e.name }

// Evaluate implements datetime.DynamicTimeOfDay. The event is searched
// within the day starting at local midnight. Days without the event, as in
// a polar day or night, resolve to midnight so schedules that reference
// them stay well defined.
func (e evaluator) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	loc := place.TimeLocation
	if loc == nil {
		loc = time.UTC
	}
	key := dayKey{
		year: cd.Year(), month: int(cd.Month()), day: cd.Day(),
		lat: place.Latitude, lng: place.Longitude, zone: loc.String(),
	}
	if v, ok := e.cache.Get(key); ok {
		return v.(datetime.TimeOfDay)
	}

	midnight := time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
	tod := datetime.TimeOfDayFromTime(midnight)
	if at := e.at(midnight, almanac.ObserverAt(place.Latitude, place.Longitude)); at != nil {
		tod = datetime.TimeOfDayFromTime(at.In(loc))
	}
	e.cache.Add(key, tod)
	return tod
}

// Sunrise returns a dynamic time of day that resolves to the rise crossing
// of the given twilight. Use almanac.TwilightVisual for ordinary sunrise.
func Sunrise(tw almanac.Twilight) datetime.DynamicTimeOfDay {
	return newEvaluator("Sunrise", func(midnight time.Time, obs almanac.Observer) *time.Time {
		return almanac.ComputeSunTimes(midnight, obs, almanac.SunTimesOptions{Twilight: tw}).Rise
	})
}

// Sunset returns a dynamic time of day that resolves to the set crossing
// of the given twilight.
func Sunset(tw almanac.Twilight) datetime.DynamicTimeOfDay {
	return newEvaluator("Sunset", func(midnight time.Time, obs almanac.Observer) *time.Time {
		return almanac.ComputeSunTimes(midnight, obs, almanac.SunTimesOptions{Twilight: tw}).Set
	})
}

// SolarNoon returns a dynamic time of day that resolves to the Sun's upper
// meridian transit.
func SolarNoon() datetime.DynamicTimeOfDay {
	return newEvaluator("SolarNoon", func(midnight time.Time, obs almanac.Observer) *time.Time {
		return almanac.ComputeSunTimes(midnight, obs, almanac.SunTimesOptions{}).Noon
	})
}

// Moonrise returns a dynamic time of day that resolves to the moonrise.
func Moonrise() datetime.DynamicTimeOfDay {
	return newEvaluator("Moonrise", func(midnight time.Time, obs almanac.Observer) *time.Time {
		return almanac.ComputeMoonTimes(midnight, obs, almanac.MoonTimesOptions{}).Rise
	})
}

// Moonset returns a dynamic time of day that resolves to the moonset.
func Moonset() datetime.DynamicTimeOfDay {
	return newEvaluator("Moonset", func(midnight time.Time, obs almanac.Observer) *time.Time {
		return almanac.ComputeMoonTimes(midnight, obs, almanac.MoonTimesOptions{}).Set
	})
}
