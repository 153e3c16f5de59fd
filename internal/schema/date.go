package schema

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// maxEpochMillis bounds numeric dates to the range a JavaScript Date can hold.
const maxEpochMillis = 8.64e15

// dateLayouts are tried in order when a date arrives as text.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// CoerceDate interprets v as a point in time. Text is matched against a list
// of common layouts (date-only values are midnight UTC) and numbers are taken
// as milliseconds since the Unix epoch.
func CoerceDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, fmt.Errorf("invalid date")
		}
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("invalid date")
		}
		return CoerceDate(*d)
	case string:
		return parseDate(d)
	case int:
		return fromEpochMillis(float64(d))
	case int64:
		return fromEpochMillis(float64(d))
	case uint64:
		return fromEpochMillis(float64(d))
	case float64:
		return fromEpochMillis(d)
	}
	return time.Time{}, fmt.Errorf("invalid date: cannot interpret %s as a date", typeName(v))
}

func fromEpochMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("invalid date: %v is out of range", ms)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid date: empty string")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

func coerceDateField(v any) (any, error) {
	return CoerceDate(v)
}
