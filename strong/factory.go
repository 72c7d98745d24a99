package strong

import (
	"encoding"

	"github.com/authcorp/libs/go/strongof/option"
)

// Setter is the constraint satisfied by a pointer to any concrete strong
// type wrapping T. It lets generic code construct S without reflection.
type Setter[S any, T any] interface {
	*S
	setValue(T)
}

// TextSetter is the constraint satisfied by a pointer to any type that can
// be parsed from text, which includes every concrete strong type.
type TextSetter[S any] interface {
	*S
	encoding.TextUnmarshaler
}

// From wraps v in the concrete type S. It never validates and never fails.
//
//	id := strong.From[OrderID](int32(42))
func From[S any, T any, PS Setter[S, T]](v T) S {
	var s S
	PS(&s).setValue(v)
	return s
}

// FromPtr wraps the value behind p, or returns nil when p is nil.
func FromPtr[S any, T any, PS Setter[S, T]](p *T) *S {
	if p == nil {
		return nil
	}
	s := From[S, T, PS](*p)
	return &s
}

// FromOption wraps the value held by o. None stays None.
func FromOption[S any, T any, PS Setter[S, T]](o option.Option[T]) option.Option[S] {
	return option.Map(o, From[S, T, PS])
}

// FromSlice wraps every element of values, preserving order. A nil slice
// yields nil and an empty slice yields an empty slice.
func FromSlice[S any, T any, PS Setter[S, T]](values []T) []S {
	if values == nil {
		return nil
	}
	out := make([]S, len(values))
	for i, v := range values {
		out[i] = From[S, T, PS](v)
	}
	return out
}

// Values unwraps every element of wrappers, preserving order.
func Values[T any, S valuer[T]](wrappers []S) []T {
	if wrappers == nil {
		return nil
	}
	out := make([]T, len(wrappers))
	for i, w := range wrappers {
		out[i] = w.Value()
	}
	return out
}

// Parse parses s using the primitive grammar of S. Malformed input yields a
// *ParseError matching ErrFormat.
func Parse[S any, PS TextSetter[S]](s string) (S, error) {
	var out S
	if err := PS(&out).UnmarshalText([]byte(s)); err != nil {
		var zero S
		return zero, err
	}
	return out, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse[S any, PS TextSetter[S]](s string) S {
	out, err := Parse[S, PS](s)
	if err != nil {
		panic(err)
	}
	return out
}

// TryParse parses s and reports success instead of returning an error.
func TryParse[S any, PS TextSetter[S]](s string) (S, bool) {
	out, err := Parse[S, PS](s)
	return out, err == nil
}

// ParseNullable parses the text behind s. A nil s yields ErrNilArgument.
func ParseNullable[S any, PS TextSetter[S]](s *string) (S, error) {
	if s == nil {
		var zero S
		return zero, ErrNilArgument
	}
	return Parse[S, PS](*s)
}

// ParseNumber parses s with the separators of f before applying the
// primitive grammar of S.
//
//	price, err := strong.ParseNumber[Price]("1.234,50", strong.NumberFormatFor(language.German))
func ParseNumber[S any, PS TextSetter[S]](s string, f NumberFormat) (S, error) {
	normalized, err := f.normalize(s)
	if err != nil {
		var zero S
		return zero, err
	}
	return Parse[S, PS](normalized)
}
