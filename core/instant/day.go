package instant

import "time"

// Today returns the first instant of the current civil day in tz
func Today(tz string) (Instant, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return Instant{}, err
	}
	return FromTime(startOfDay(now().In(loc))), nil
}

// StartOfDay returns the first instant of the civil day containing i in tz
func (i Instant) StartOfDay(tz string) (Instant, error) {
	t, err := i.In(tz)
	if err != nil {
		return Instant{}, err
	}
	return FromTime(startOfDay(t)), nil
}

// EndOfDay returns the last nanosecond of the civil day containing i in tz
func (i Instant) EndOfDay(tz string) (Instant, error) {
	t, err := i.In(tz)
	if err != nil {
		return Instant{}, err
	}
	y, m, d := t.Date()
	// noon of the following day always exists, unlike its midnight
	next := startOfDay(time.Date(y, m, d+1, 12, 0, 0, 0, t.Location()))
	return FromTime(next.Add(-time.Nanosecond)), nil
}

// IsWeekend reports whether i falls on a Saturday or Sunday in tz
func (i Instant) IsWeekend(tz string) (bool, error) {
	t, err := i.In(tz)
	if err != nil {
		return false, err
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}

// startOfDay returns the earliest instant whose local date equals the date
// of t. Local midnight may be skipped or repeated by a zone transition, so
// the boundary is searched for instead of built with time.Date.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	lo := time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Add(-24 * time.Hour)
	for !dateBefore(lo, y, m, d) {
		lo = lo.Add(-24 * time.Hour)
	}
	hi := t

	// lo is on an earlier date, hi is on the target date
	for hi.Sub(lo) > time.Nanosecond {
		mid := lo.Add(hi.Sub(lo) / 2)
		if dateBefore(mid, y, m, d) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

func dateBefore(t time.Time, y int, m time.Month, d int) bool {
	ty, tm, td := t.Date()
	if ty != y {
		return ty < y
	}
	if tm != m {
		return tm < m
	}
	return td < d
}
