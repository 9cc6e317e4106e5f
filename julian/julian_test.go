package julian

import (
	"math"
	"strings"
	"testing"
	"time"

	mjulian "github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
)

func TestFromTimeKnownDates(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		mjd  float64
	}{
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 40587.0},
		{"J2000.0", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 51544.5},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 60310.0},
		{"half day", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 60310.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTime(tt.time).MJD()
			if got != tt.mjd {
				t.Errorf("MJD = %v, want %v", got, tt.mjd)
			}
		})
	}
}

func TestMJDAgainstMeeus(t *testing.T) {
	dates := []time.Time{
		time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 24, 6, 30, 0, 0, time.UTC),
		time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, d := range dates {
		inst := FromTime(d)
		want := mjulian.TimeToJD(d) - 2400000.5
		if diff := math.Abs(inst.MJD() - want); diff > 1e-6 {
			t.Errorf("%v: MJD = %.8f, meeus %.8f (diff %g)", d, inst.MJD(), want, diff)
		}
	}
}

func TestJulianCenturyAtJ2000(t *testing.T) {
	inst := FromTime(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if jc := inst.JulianCentury(); jc != 0.0 {
		t.Errorf("JulianCentury at J2000.0 = %v, want 0", jc)
	}
}

func TestAtHour(t *testing.T) {
	base := FromTime(time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC))
	tests := []struct {
		hours float64
		want  time.Duration
	}{
		{1.0, time.Hour},
		{2.5, 2*time.Hour + 30*time.Minute},
		{-1.0, -time.Hour},
		{0.0, 0},
	}
	for _, tt := range tests {
		got := base.AtHour(tt.hours).Time().Sub(base.Time())
		if got != tt.want {
			t.Errorf("AtHour(%v) moved %v, want %v", tt.hours, got, tt.want)
		}
	}
}

func TestAtHourKeepsZone(t *testing.T) {
	zone := time.FixedZone("CEST", 2*3600)
	base := FromTime(time.Date(2024, 6, 1, 0, 0, 0, 0, zone))
	if loc := base.AtHour(13.25).Time().Location(); loc != zone {
		t.Errorf("AtHour changed zone to %v", loc)
	}
}

func TestAtJulianCenturyRoundTrip(t *testing.T) {
	zone := time.FixedZone("NZST", 12*3600)
	base := FromTime(time.Date(2024, 8, 24, 10, 30, 0, 0, zone))

	back := base.AtJulianCentury(base.JulianCentury())
	if d := back.Time().Sub(base.Time()); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip drifted by %v", d)
	}
	if back.Time().Location() != zone {
		t.Errorf("round trip changed zone to %v", back.Time().Location())
	}

	day := base.AtJulianCentury(base.JulianCentury() + 1.0/daysPerCentury)
	if d := day.Time().Sub(base.Time()) - 24*time.Hour; d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("one century day off by %v", d)
	}
}

func TestGreenwichMeanSiderealTimeAgainstMeeus(t *testing.T) {
	dates := []time.Time{
		time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC),
		time.Date(2024, 8, 24, 18, 45, 30, 0, time.UTC),
		time.Date(2029, 11, 2, 7, 12, 0, 0, time.UTC),
	}
	for _, d := range dates {
		got := FromTime(d).GreenwichMeanSiderealTime()
		want := sidereal.Mean(mjulian.TimeToJD(d)).Angle().Rad()
		diff := math.Abs(math.Mod(got-want+3.0*math.Pi, 2.0*math.Pi) - math.Pi)
		// 1e-4 rad is about 1.4 seconds of time.
		if diff > 1e-4 {
			t.Errorf("%v: GMST = %.8f rad, meeus %.8f rad (diff %g)", d, got, want, diff)
		}
		if got < 0.0 || got >= 2.0*math.Pi {
			t.Errorf("%v: GMST %v outside [0, 2π)", d, got)
		}
	}
}

func TestTrueAnomaly(t *testing.T) {
	perihelion := FromTime(time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC))
	if ta := perihelion.TrueAnomaly(); ta != 0.0 {
		t.Errorf("TrueAnomaly on day 4 = %v, want 0", ta)
	}
	aphelion := FromTime(time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC))
	if ta := aphelion.TrueAnomaly(); ta < 3.0 || ta > 3.3 {
		t.Errorf("TrueAnomaly near aphelion = %v, want around π", ta)
	}
}

func TestInstantString(t *testing.T) {
	inst := FromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := inst.String()
	if !strings.Contains(s, "MJD") || !strings.Contains(s, "2024") {
		t.Errorf("String() = %q", s)
	}
}
