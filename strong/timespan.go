package strong

import (
	"cmp"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sosodev/duration"
)

var (
	// clockDurationRegex matches the constant form [-][d.]hh:mm[:ss[.fffffff]].
	clockDurationRegex = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?$`)

	errDurationOverflow = errors.New("duration out of range")
	errEmptyDuration    = errors.New("duration has no components")
)

// Years and months count as 365 and 30 days.
const (
	isoYear  = 365 * 24 * time.Hour
	isoMonth = 30 * 24 * time.Hour
	isoWeek  = 7 * 24 * time.Hour
	isoDay   = 24 * time.Hour
)

type timeSpanKind struct{}

func (timeSpanKind) name() string { return "timespan" }
func (timeSpanKind) equal(a, b time.Duration) bool { return a == b }
func (timeSpanKind) compare(a, b time.Duration) int { return cmp.Compare(a, b) }
func (timeSpanKind) format(v time.Duration) string { return v.String() }
func (timeSpanKind) text(v time.Duration) string { return FormatISODuration(v) }
func (timeSpanKind) native(v time.Duration) any { return FormatISODuration(v) }
func (timeSpanKind) hashKey(v time.Duration) string { return strconv.FormatInt(int64(v), 10) }

// parse accepts ISO 8601 durations, Go duration syntax and the clock form.
func (timeSpanKind) parse(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(strings.TrimLeft(trimmed, "+-"), "P"):
		d, err := ParseISODuration(trimmed)
		if err != nil {
			return 0, parseError("timespan", s, err)
		}
		return d, nil
	case clockDurationRegex.MatchString(trimmed):
		return parseClockDuration(trimmed)
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, parseError("timespan", s, err)
	}
	return d, nil
}

// TimeSpan is the duration specialization. String uses Go duration syntax
// while text, JSON and YAML use ISO 8601.
type TimeSpan[S any] struct {
	Of[time.Duration, S, timeSpanKind]
}

// Duration returns the wrapped duration.
func (t TimeSpan[S]) Duration() time.Duration { return t.value }

// ISO8601 returns the ISO 8601 form, e.g. P1DT2H.
func (t TimeSpan[S]) ISO8601() string { return FormatISODuration(t.value) }

// Hours returns the duration as floating point hours.
func (t TimeSpan[S]) Hours() float64 { return t.value.Hours() }

// Minutes returns the duration as floating point minutes.
func (t TimeSpan[S]) Minutes() float64 { return t.value.Minutes() }

// Seconds returns the duration as floating point seconds.
func (t TimeSpan[S]) Seconds() float64 { return t.value.Seconds() }

// Add returns the sum of the value and d.
func (t TimeSpan[S]) Add(d time.Duration) S { return newSelf[S](t.value + d) }

// FormatISODuration writes d as an ISO 8601 duration using days, hours,
// minutes and seconds. The zero duration is PT0S.
func FormatISODuration(d time.Duration) string {
	// Work in uint64 so math.MinInt64 negates cleanly.
	n := uint64(d)
	if d < 0 {
		n = uint64(-(d + 1)) + 1
	}
	parts := duration.Duration{Negative: d < 0}
	parts.Days = float64(n / uint64(isoDay))
	n %= uint64(isoDay)
	parts.Hours = float64(n / uint64(time.Hour))
	n %= uint64(time.Hour)
	parts.Minutes = float64(n / uint64(time.Minute))
	n %= uint64(time.Minute)
	parts.Seconds, _ = decimal.New(int64(n), -9).Float64()
	return parts.String()
}

// ParseISODuration reads an ISO 8601 duration. Fractions are allowed on any
// component and a comma may be used as the decimal mark.
func ParseISODuration(s string) (time.Duration, error) {
	s = strings.Replace(strings.TrimPrefix(s, "+"), ",", ".", 1)
	if !strings.ContainsAny(s, "0123456789") {
		return 0, errEmptyDuration
	}
	if !strings.ContainsAny(s[len(s)-1:], "YMWDHS") {
		return 0, ErrFormat
	}
	parts, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for _, c := range []struct {
		amount float64
		unit   time.Duration
	}{
		{parts.Years, isoYear},
		{parts.Months, isoMonth},
		{parts.Weeks, isoWeek},
		{parts.Days, isoDay},
		{parts.Hours, time.Hour},
		{parts.Minutes, time.Minute},
		{parts.Seconds, time.Second},
	} {
		if c.amount != 0 {
			total = total.Add(decimal.NewFromFloat(c.amount).Mul(decimal.NewFromInt(int64(c.unit))))
		}
	}
	if parts.Negative {
		total = total.Neg()
	}
	return nanoseconds(total)
}

// nanoseconds truncates total to whole nanoseconds and checks that it fits
// in a time.Duration.
func nanoseconds(total decimal.Decimal) (time.Duration, error) {
	nanos := total.Truncate(0)
	if nanos.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || nanos.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, errDurationOverflow
	}
	return time.Duration(nanos.IntPart()), nil
}

func parseClockDuration(s string) (time.Duration, error) {
	m := clockDurationRegex.FindStringSubmatch(s)
	field := func(i int) decimal.Decimal {
		if m[i] == "" {
			return decimal.Zero
		}
		return decimal.RequireFromString(m[i])
	}
	hours, minutes, seconds := field(3), field(4), field(5)
	if hours.IntPart() > 23 || minutes.IntPart() > 59 || seconds.IntPart() > 59 {
		return 0, parseError("timespan", s, errDurationOverflow)
	}
	total := field(2).Mul(decimal.NewFromInt(int64(isoDay))).
		Add(hours.Mul(decimal.NewFromInt(int64(time.Hour)))).
		Add(minutes.Mul(decimal.NewFromInt(int64(time.Minute)))).
		Add(seconds.Mul(decimal.NewFromInt(int64(time.Second))))
	if m[6] != "" {
		total = total.Add(decimal.RequireFromString("0." + m[6]).Mul(decimal.NewFromInt(int64(time.Second))))
	}
	if m[1] == "-" {
		total = total.Neg()
	}
	d, err := nanoseconds(total)
	if err != nil {
		return 0, parseError("timespan", s, err)
	}
	return d, nil
}
