package strong

import (
	"cmp"
	"strconv"
	"strings"
)

type integer interface {
	int32 | int64
}

type integerKind[T integer] struct{}

func (integerKind[T]) bits() int {
	var zero T
	if _, ok := any(zero).(int32); ok {
		return 32
	}
	return 64
}

func (k integerKind[T]) name() string { return "int" + strconv.Itoa(k.bits()) }
func (integerKind[T]) equal(a, b T) bool { return a == b }
func (integerKind[T]) compare(a, b T) int { return cmp.Compare(a, b) }
func (integerKind[T]) format(v T) string { return strconv.FormatInt(int64(v), 10) }
func (k integerKind[T]) text(v T) string { return k.format(v) }
func (integerKind[T]) native(v T) any { return v }
func (k integerKind[T]) hashKey(v T) string { return k.format(v) }

func (k integerKind[T]) parse(s string) (T, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, k.bits())
	if err != nil {
		return 0, parseError(k.name(), s, err)
	}
	return T(n), nil
}

// Int32 is the 32-bit integer specialization.
//
//	type OrderID struct{ strong.Int32[OrderID] }
type Int32[S any] struct {
	Of[int32, S, integerKind[int32]]
}

// IsZero reports whether the value is zero.
func (i Int32[S]) IsZero() bool { return i.value == 0 }

// IsPositive reports whether the value is greater than zero.
func (i Int32[S]) IsPositive() bool { return i.value > 0 }

// IsNegative reports whether the value is less than zero.
func (i Int32[S]) IsNegative() bool { return i.value < 0 }

// Int64 is the 64-bit integer specialization.
type Int64[S any] struct {
	Of[int64, S, integerKind[int64]]
}

// IsZero reports whether the value is zero.
func (i Int64[S]) IsZero() bool { return i.value == 0 }

// IsPositive reports whether the value is greater than zero.
func (i Int64[S]) IsPositive() bool { return i.value > 0 }

// IsNegative reports whether the value is less than zero.
func (i Int64[S]) IsNegative() bool { return i.value < 0 }
