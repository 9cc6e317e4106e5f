// Package almanac computes apparent positions of the Sun and the Moon and
// the times of their everyday events: sunrise and sunset at configurable
// twilight angles, moonrise and moonset, solar noon and nadir, moon phases
// and illumination.
//
// The underlying ephemeris is the low precision closed form of Montenbruck
// and Pfleger. Positions come out to about a minute of arc, event times to
// about a minute of time, which covers calendars, dashboards, schedulers
// and photography planning. It is not a tool for eclipse work or
// telescope pointing.
//
// All queries are pure functions of their inputs and safe for concurrent
// use:
//
//	obs := almanac.ObserverAt(51.5072, -0.1275) // London
//	times := almanac.ComputeSunTimes(time.Now(), obs, almanac.SunTimesOptions{})
//	if times.Rise != nil {
//		fmt.Println("sunrise:", times.Rise.Local())
//	}
//
// Searches at polar latitudes report AlwaysUp or AlwaysDown instead of
// times; widen the window with FullCycle to find the end of a polar day
// or night.
package almanac
