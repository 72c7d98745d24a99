package strong

import (
	"strings"

	"github.com/shopspring/decimal"
)

type decimalKind struct{}

func (decimalKind) name() string { return "decimal" }
func (decimalKind) equal(a, b decimal.Decimal) bool { return a.Equal(b) }
func (decimalKind) compare(a, b decimal.Decimal) int { return a.Cmp(b) }
func (decimalKind) format(v decimal.Decimal) string { return v.String() }
func (decimalKind) text(v decimal.Decimal) string { return v.String() }

func (decimalKind) bareNumber() {}

// native is a string so JSON carries the exact digits.
func (decimalKind) native(v decimal.Decimal) any { return v.String() }

// hashKey relies on String trimming trailing zeros, so 1.0 and 1.00 agree.
func (decimalKind) hashKey(v decimal.Decimal) string { return v.String() }

func (decimalKind) parse(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, parseError("decimal", s, err)
	}
	return v, nil
}

// Decimal is the arbitrary precision decimal specialization.
//
//	type Price struct{ strong.Decimal[Price] }
type Decimal[S any] struct {
	Of[decimal.Decimal, S, decimalKind]
}

// IsZero reports whether the value is zero.
func (d Decimal[S]) IsZero() bool { return d.value.IsZero() }

// IsPositive reports whether the value is greater than zero.
func (d Decimal[S]) IsPositive() bool { return d.value.IsPositive() }

// IsNegative reports whether the value is less than zero.
func (d Decimal[S]) IsNegative() bool { return d.value.IsNegative() }

// Round returns a copy rounded half away from zero to places decimal places.
func (d Decimal[S]) Round(places int32) S {
	return newSelf[S](d.value.Round(places))
}

// StringFixed formats the value with exactly places decimal places.
func (d Decimal[S]) StringFixed(places int32) string {
	return d.value.StringFixed(places)
}
