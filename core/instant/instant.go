// Package instant provides an immutable point in time measured from the Unix
// epoch, with timezone-aware projections, strftime formatting and parsing,
// civil day boundaries and a directory of IANA timezones.
//
// An Instant never carries a timezone. Every calendar-dependent operation
// takes the zone it should be evaluated in, so the same value can be shown
// in any number of zones without conversion.
package instant

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"quantkit/internal/errors"
)

const nanosPerSecond = int64(time.Second)

// now is replaced in tests
var now = time.Now

var (
	minSeconds = decimal.NewFromInt(math.MinInt64)
	maxSeconds = decimal.NewFromInt(math.MaxInt64)
)

// Instant is a point in time at nanosecond resolution.
// The zero value is the Unix epoch.
type Instant struct {
	sec  int64
	nsec int32 // always in [0, 1e9)
}

// FromUnix returns the instant sec seconds after the epoch
func FromUnix(sec int64) Instant {
	return Instant{sec: sec}
}

// FromUnixNano returns the instant ns nanoseconds after the epoch
func FromUnixNano(ns int64) Instant {
	sec, nsec := ns/nanosPerSecond, ns%nanosPerSecond
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// FromSeconds converts fractional epoch seconds, rounding to the nearest
// nanosecond.
func FromSeconds(f float64) (Instant, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Instant{}, errors.Validation("timestamp must be finite, got %v", f)
	}
	return fromDecimal(decimal.NewFromFloat(f))
}

// FromTime returns the instant t refers to, dropping its location
func FromTime(t time.Time) Instant {
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

// Now returns the current instant
func Now() Instant {
	return FromTime(now())
}

// FromDate returns the first instant of the given civil date in tz
func FromDate(year int, month time.Month, day int, tz string) (Instant, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return Instant{}, err
	}
	return FromTime(startOfDay(time.Date(year, month, day, 12, 0, 0, 0, loc))), nil
}

func fromDecimal(seconds decimal.Decimal) (Instant, error) {
	sec := seconds.Floor()
	if sec.LessThan(minSeconds) || sec.GreaterThan(maxSeconds) {
		return Instant{}, errors.Validation("timestamp %s is out of range", seconds.String())
	}
	nsec := seconds.Sub(sec).Shift(9).Round(0).IntPart()
	if nsec == nanosPerSecond {
		if sec.Equal(maxSeconds) {
			return Instant{}, errors.Validation("timestamp %s is out of range", seconds.String())
		}
		return Instant{sec: sec.IntPart() + 1}, nil
	}
	return Instant{sec: sec.IntPart(), nsec: int32(nsec)}, nil
}

func (i Instant) decimal() decimal.Decimal {
	return decimal.NewFromInt(i.sec).Add(decimal.New(int64(i.nsec), -9))
}

// Unix returns whole seconds since the epoch, rounded toward negative infinity
func (i Instant) Unix() int64 {
	return i.sec
}

// UnixNano returns nanoseconds since the epoch. The result is undefined
// outside the years 1678 to 2262.
func (i Instant) UnixNano() int64 {
	return i.sec*nanosPerSecond + int64(i.nsec)
}

// Seconds returns fractional seconds since the epoch
func (i Instant) Seconds() float64 {
	return float64(i.sec) + float64(i.nsec)/float64(nanosPerSecond)
}

// Nanosecond returns the sub-second part in [0, 999999999]
func (i Instant) Nanosecond() int {
	return int(i.nsec)
}

// Time returns the instant as a UTC time.Time
func (i Instant) Time() time.Time {
	return time.Unix(i.sec, int64(i.nsec)).UTC()
}

// In returns the instant as a time.Time in tz. An empty tz means UTC.
func (i Instant) In(tz string) (time.Time, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return time.Time{}, err
	}
	return i.Time().In(loc), nil
}

// Add returns i+d
func (i Instant) Add(d time.Duration) Instant {
	return FromUnixNano(int64(i.nsec) + int64(d)).plusSeconds(i.sec)
}

func (i Instant) plusSeconds(sec int64) Instant {
	i.sec += sec
	return i
}

// AddSeconds returns the instant n seconds later; n may be fractional or
// negative.
func (i Instant) AddSeconds(n float64) (Instant, error) {
	return i.addScaled(n, 1)
}

// AddMinutes returns the instant n minutes later
func (i Instant) AddMinutes(n float64) (Instant, error) {
	return i.addScaled(n, 60)
}

// AddHours returns the instant n hours later
func (i Instant) AddHours(n float64) (Instant, error) {
	return i.addScaled(n, 3600)
}

// AddDays returns the instant n fixed 86400 second days later. Use
// StartOfDay for calendar days across DST changes.
func (i Instant) AddDays(n float64) (Instant, error) {
	return i.addScaled(n, 86400)
}

func (i Instant) addScaled(n float64, unit int64) (Instant, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Instant{}, errors.Validation("offset must be finite, got %v", n)
	}
	delta := decimal.NewFromFloat(n).Mul(decimal.NewFromInt(unit))
	return fromDecimal(i.decimal().Add(delta))
}

// Sub returns the duration i-other, saturating at the time.Duration limits
func (i Instant) Sub(other Instant) time.Duration {
	return i.Time().Sub(other.Time())
}

// Difference returns i-other in seconds; positive when i is later
func (i Instant) Difference(other Instant) float64 {
	return float64(i.sec) - float64(other.sec) + float64(i.nsec-other.nsec)/float64(nanosPerSecond)
}

// Compare returns -1, 0 or +1 as i is before, equal to or after other
func (i Instant) Compare(other Instant) int {
	switch {
	case i.sec < other.sec:
		return -1
	case i.sec > other.sec:
		return 1
	case i.nsec < other.nsec:
		return -1
	case i.nsec > other.nsec:
		return 1
	}
	return 0
}

// Before reports whether i is earlier than other
func (i Instant) Before(other Instant) bool {
	return i.Compare(other) < 0
}

// After reports whether i is later than other
func (i Instant) After(other Instant) bool {
	return i.Compare(other) > 0
}

// Equal reports whether i and other are the same instant
func (i Instant) Equal(other Instant) bool {
	return i == other
}

// IsZero reports whether i is the epoch
func (i Instant) IsZero() bool {
	return i == Instant{}
}
