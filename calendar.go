package almanac

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// SunTimesRange computes SunTimes for consecutive days, starting at start
// and stepping 24 hours, fanned out across the CPUs. The slice is in day
// order. Each day is independent, so the only error path is context
// cancellation.
func SunTimesRange(ctx context.Context, start time.Time, days int, obs Observer, opts SunTimesOptions) ([]SunTimes, error) {
	out := make([]SunTimes, days)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < days; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = ComputeSunTimes(start.Add(time.Duration(i)*24*time.Hour), obs, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MoonTimesRange is SunTimesRange for the Moon.
func MoonTimesRange(ctx context.Context, start time.Time, days int, obs Observer, opts MoonTimesOptions) ([]MoonTimes, error) {
	out := make([]MoonTimes, days)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < days; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = ComputeMoonTimes(start.Add(time.Duration(i)*24*time.Hour), obs, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MoonPhases lists every event of the given phase from start up to but not
// including end, in order. The search is sequential: each event seeds the
// next one.
func MoonPhases(start, end time.Time, phase Phase) ([]MoonPhaseEvent, error) {
	var events []MoonPhaseEvent
	cursor := start
	for cursor.Before(end) {
		ev, err := ComputeMoonPhase(cursor, phase)
		if err != nil {
			return nil, err
		}
		if !ev.Time.Before(end) {
			break
		}
		events = append(events, ev)
		// A lunation is at least 29 days; a day past the event is safely
		// before the next one.
		cursor = ev.Time.Add(24 * time.Hour)
	}
	return events, nil
}
