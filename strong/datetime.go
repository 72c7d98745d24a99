package strong

import (
	"strings"
	"time"
)

// dateTimeLayouts are tried in order by DateTime parsing. Layouts without an
// offset are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

type dateTimeKind struct{}

func (dateTimeKind) name() string { return "datetime" }
func (dateTimeKind) equal(a, b time.Time) bool { return a.Equal(b) }
func (dateTimeKind) compare(a, b time.Time) int { return a.Compare(b) }
func (dateTimeKind) format(v time.Time) string { return v.Format(time.RFC3339Nano) }
func (dateTimeKind) text(v time.Time) string { return v.Format(time.RFC3339Nano) }
func (dateTimeKind) native(v time.Time) any { return v.Format(time.RFC3339Nano) }

// hashKey normalizes to UTC because equality compares instants.
func (dateTimeKind) hashKey(v time.Time) string { return v.UTC().Format(time.RFC3339Nano) }

func (dateTimeKind) parse(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, parseError("datetime", s, firstErr)
}

// DateTime is the point-in-time specialization. Text without an offset is
// read as UTC.
type DateTime[S any] struct {
	Of[time.Time, S, dateTimeKind]
}

// Time returns the wrapped time.
func (d DateTime[S]) Time() time.Time { return d.value }

// UTC returns a copy with the location set to UTC.
func (d DateTime[S]) UTC() S { return newSelf[S](d.value.UTC()) }

// Date returns a copy truncated to midnight in the value's location.
func (d DateTime[S]) Date() S {
	y, m, day := d.value.Date()
	return newSelf[S](time.Date(y, m, day, 0, 0, 0, 0, d.value.Location()))
}

// Before reports whether the value is before t.
func (d DateTime[S]) Before(t time.Time) bool { return d.value.Before(t) }

// After reports whether the value is after t.
func (d DateTime[S]) After(t time.Time) bool { return d.value.After(t) }

// IsZero reports whether the value is the zero time.
func (d DateTime[S]) IsZero() bool { return d.value.IsZero() }

type dateTimeOffsetKind struct {
	dateTimeKind
}

func (dateTimeOffsetKind) name() string { return "datetimeoffset" }

// parse requires an explicit offset.
func (dateTimeOffsetKind) parse(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, parseError("datetimeoffset", s, err)
	}
	return t, nil
}

// DateTimeOffset is the specialization for a point in time that carries its
// UTC offset. Equality compares instants, so values written with different
// offsets for the same moment are equal.
type DateTimeOffset[S any] struct {
	Of[time.Time, S, dateTimeOffsetKind]
}

// Time returns the wrapped time.
func (d DateTimeOffset[S]) Time() time.Time { return d.value }

// Offset returns the offset from UTC.
func (d DateTimeOffset[S]) Offset() time.Duration {
	_, seconds := d.value.Zone()
	return time.Duration(seconds) * time.Second
}

// UTC returns a copy with the offset set to zero.
func (d DateTimeOffset[S]) UTC() S { return newSelf[S](d.value.UTC()) }

// Before reports whether the value is before t.
func (d DateTimeOffset[S]) Before(t time.Time) bool { return d.value.Before(t) }

// After reports whether the value is after t.
func (d DateTimeOffset[S]) After(t time.Time) bool { return d.value.After(t) }
