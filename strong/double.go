package strong

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

type doubleKind struct{}

func (doubleKind) name() string { return "double" }
func (doubleKind) compare(a, b float64) int { return cmp.Compare(a, b) }
func (doubleKind) format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func (doubleKind) text(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func (doubleKind) native(v float64) any { return v }

// equal treats NaN as equal to itself so equality stays reflexive.
func (doubleKind) equal(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (k doubleKind) hashKey(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	}
	return k.format(v)
}

func (doubleKind) parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, parseError("double", s, err)
	}
	return v, nil
}

// Double is the float64 specialization.
type Double[S any] struct {
	Of[float64, S, doubleKind]
}

// IsNaN reports whether the value is not a number.
func (d Double[S]) IsNaN() bool { return math.IsNaN(d.value) }

// IsZero reports whether the value is zero.
func (d Double[S]) IsZero() bool { return d.value == 0 }

// IsPositive reports whether the value is greater than zero.
func (d Double[S]) IsPositive() bool { return d.value > 0 }

// IsNegative reports whether the value is less than zero.
func (d Double[S]) IsNegative() bool { return d.value < 0 }
