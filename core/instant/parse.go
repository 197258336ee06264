package instant

import (
	"regexp"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"go.uber.org/zap"

	"quantkit/internal/errors"
	"quantkit/internal/logging"
)

var defaultFormats = []string{
	"%Y-%m-%d %H:%M:%S",
	"%Y-%m-%d %H:%M:%S.%f",
	"%Y-%m-%dT%H:%M:%S",
	"%Y-%m-%dT%H:%M:%S.%f",
	"%Y-%m-%dT%H:%M:%SZ",
	"%Y-%m-%dT%H:%M:%S.%fZ",
	"%Y-%m-%dT%H:%M:%S%:z",
	"%Y-%m-%d",
	"%m/%d/%Y",
	"%m/%d/%Y %H:%M:%S",
	"%d/%m/%Y",
	"%d/%m/%Y %H:%M:%S",
}

// trailing "(...)" annotations such as "2024-01-15 10:00:00 (UTC)"
var trailingComment = regexp.MustCompile(`\s*\([^)]*\)$`)

// DefaultFormats returns the strftime formats Parse tries, in order
func DefaultFormats() []string {
	out := make([]string, len(defaultFormats))
	copy(out, defaultFormats)
	return out
}

// Parse reads s with the default formats. Values without an offset are UTC.
func Parse(s string) (Instant, error) {
	return ParseWith(s, defaultFormats)
}

// ParseWith reads s with the first of formats that matches; an empty list
// means the default formats. Values without an offset are UTC.
func ParseWith(s string, formats []string) (Instant, error) {
	if len(formats) == 0 {
		formats = defaultFormats
	}
	clean := trailingComment.ReplaceAllString(strings.TrimSpace(s), "")

	for n, format := range formats {
		t, err := strftime.Parse(format, clean)
		if err != nil {
			continue
		}
		if n > 0 {
			logging.Debug("parsed timestamp with fallback format",
				zap.String("input", s),
				zap.String("format", format),
				zap.Int("attempt", n+1))
		}
		return FromTime(t), nil
	}

	return Instant{}, errors.Parsef("unable to parse date string %q", s).
		WithContext("formats", append([]string(nil), formats...))
}

// ParseFormat reads s with a single strftime format. Wall-clock values are
// interpreted in tz unless the format itself carries an offset or zone.
func ParseFormat(s, format, tz string) (Instant, error) {
	loc, err := LoadZone(tz)
	if err != nil {
		return Instant{}, err
	}

	t, err := strftime.Parse(format, strings.TrimSpace(s))
	if err != nil {
		return Instant{}, errors.Wrapf(errors.TypeParse, err, "unable to parse %q", s).
			WithContext("formats", []string{format})
	}
	if !hasZoneDirective(format) {
		t = time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	}
	return FromTime(t), nil
}

func hasZoneDirective(format string) bool {
	return strings.Contains(format, "%z") ||
		strings.Contains(format, "%:z") ||
		strings.Contains(format, "%Z")
}
