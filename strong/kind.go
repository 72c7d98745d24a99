package strong

import (
	"fmt"
	"reflect"
)

// kind supplies the primitive-specific behaviour of a wrapper. Kinds are
// zero-size types so the core can summon one with `var k K`.
type kind[T any] interface {
	// name is used in error messages.
	name() string
	equal(a, b T) bool
	compare(a, b T) int
	// format is the value's String form.
	format(v T) string
	// text is the value's wire form for Text, JSON and YAML.
	text(v T) string
	parse(s string) (T, error)
	// native is the value handed to json and yaml encoders.
	native(v T) any
	// hashKey must return identical keys for values that compare equal.
	hashKey(v T) string
}

// valuer is satisfied by every concrete strong type through promotion.
type valuer[T any] interface {
	Value() T
}

// newSelf builds a concrete strong type from inside a specialization method,
// where the pointer constraint used by From is not available.
func newSelf[S any, T any](v T) S {
	var s S
	setter, ok := any(&s).(interface{ setValue(T) })
	if !ok {
		panic(fmt.Sprintf("strong: %T does not embed a specialization over %T", s, v))
	}
	setter.setValue(v)
	return s
}

func typeName[S any]() string {
	return reflect.TypeFor[S]().String()
}
