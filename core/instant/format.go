package instant

import (
	"bytes"
	"encoding/json"

	"github.com/ncruces/go-strftime"
	"github.com/shopspring/decimal"

	"quantkit/internal/errors"
)

const (
	isoLayout      = "2006-01-02T15:04:05-07:00"
	isoMicroLayout = "2006-01-02T15:04:05.000000-07:00"
	plainLayout    = "2006-01-02 15:04:05"
)

// Format renders i in tz with a strftime format such as "%Y-%m-%d %H:%M"
func (i Instant) Format(format, tz string) (string, error) {
	t, err := i.In(tz)
	if err != nil {
		return "", err
	}
	return strftime.Format(format, t), nil
}

// ISO renders i in tz as ISO 8601 with a numeric offset. Microseconds are
// included only when the instant has a sub-second part.
func (i Instant) ISO(tz string) (string, error) {
	t, err := i.In(tz)
	if err != nil {
		return "", err
	}
	if t.Nanosecond()/1000 != 0 {
		return t.Format(isoMicroLayout), nil
	}
	return t.Format(isoLayout), nil
}

// String renders i in UTC as "YYYY-MM-DD HH:MM:SS"
func (i Instant) String() string {
	return i.Time().Format(plainLayout)
}

// MarshalJSON encodes epoch seconds, with a fraction only when needed
func (i Instant) MarshalJSON() ([]byte, error) {
	return []byte(i.decimal().String()), nil
}

// UnmarshalJSON accepts epoch seconds or a string in one of the default
// formats. null leaves the value unchanged.
func (i *Instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(errors.TypeParse, "invalid timestamp", err)
		}
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*i = v
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return errors.Wrapf(errors.TypeParse, err, "invalid timestamp %s", data)
	}
	v, err := fromDecimal(d)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
