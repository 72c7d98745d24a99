package strong

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Of is the generic core shared by every specialization. T is the wrapped
// primitive, S is the concrete type that embeds the specialization and K
// supplies equality, ordering and text handling for T.
//
// Of is never used directly; embed one of the specializations instead.
type Of[T any, S any, K kind[T]] struct {
	value T
}

// Wrapper is implemented by every concrete strong type.
type Wrapper interface {
	fmt.Stringer
	HashCode() uint64
	wrapped()
}

func (Of[T, S, K]) wrapped() {}

func (o *Of[T, S, K]) setValue(v T) {
	o.value = v
}

// Value returns the wrapped primitive.
func (o Of[T, S, K]) Value() T {
	return o.value
}

// String returns the primitive's string form.
func (o Of[T, S, K]) String() string {
	var k K
	return k.format(o.value)
}

// HashCode returns a hash of the wrapped value. Values that are Equal have
// the same hash code.
func (o Of[T, S, K]) HashCode() uint64 {
	var k K
	return xxhash.Sum64String(k.hashKey(o.value))
}

// Equals reports whether other is the same concrete type wrapping an equal
// value, or a raw T equal to the wrapped value.
func (o Of[T, S, K]) Equals(other any) bool {
	v, ok := o.resolve(other)
	if !ok {
		return false
	}
	var k K
	return k.equal(o.value, v)
}

// EqualsValue reports whether the wrapped value equals v.
func (o Of[T, S, K]) EqualsValue(v T) bool {
	var k K
	return k.equal(o.value, v)
}

// Compare orders two values of the same concrete type. It is suitable for
// slices.SortFunc.
func (o Of[T, S, K]) Compare(other S) int {
	var k K
	return k.compare(o.value, any(other).(valuer[T]).Value())
}

// CompareTo orders the wrapped value against other, which may be the same
// concrete type, a pointer to it, or a raw T. A nil argument sorts first.
// Any other argument yields an *ArgumentError.
func (o Of[T, S, K]) CompareTo(other any) (int, error) {
	if other == nil {
		return 1, nil
	}
	if p, ok := other.(*S); ok && p == nil {
		return 1, nil
	}
	v, ok := o.resolve(other)
	if !ok {
		return 0, &ArgumentError{Expected: typeName[S](), Got: fmt.Sprintf("%T", other)}
	}
	var k K
	return k.compare(o.value, v), nil
}

// Less reports whether the wrapped value sorts before other. Arguments of an
// unsupported type report false.
func (o Of[T, S, K]) Less(other any) bool {
	c, ok := o.lenientCompare(other)
	return ok && c < 0
}

// LessOrEqual reports whether the wrapped value sorts before or equal to other.
func (o Of[T, S, K]) LessOrEqual(other any) bool {
	c, ok := o.lenientCompare(other)
	return ok && c <= 0
}

// Greater reports whether the wrapped value sorts after other.
func (o Of[T, S, K]) Greater(other any) bool {
	c, ok := o.lenientCompare(other)
	return ok && c > 0
}

// GreaterOrEqual reports whether the wrapped value sorts after or equal to other.
func (o Of[T, S, K]) GreaterOrEqual(other any) bool {
	c, ok := o.lenientCompare(other)
	return ok && c >= 0
}

func (o Of[T, S, K]) lenientCompare(other any) (int, bool) {
	v, ok := o.resolve(other)
	if !ok {
		return 0, false
	}
	var k K
	return k.compare(o.value, v), true
}

// resolve extracts a comparable T from other. Only the concrete type S, a
// non-nil *S or a raw T are accepted.
func (o Of[T, S, K]) resolve(other any) (T, bool) {
	var zero T
	switch v := other.(type) {
	case S:
		return any(v).(valuer[T]).Value(), true
	case *S:
		if v == nil {
			return zero, false
		}
		return any(*v).(valuer[T]).Value(), true
	case T:
		return v, true
	}
	return zero, false
}
