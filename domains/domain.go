// Package domains provides validated string subtypes built on strong.Text.
//
// Every type wraps its raw string unchanged and reports through
// IsValidFormat whether that string matches the type's format. Values are
// constructed with TryCreate or Parse, which refuse invalid input:
//
//	color, ok := domains.TryCreate[domains.ColorHex]("#FF5733")
//	slug, err := domains.Parse[domains.Slug]("my-blog-post")
//
// strong.From still builds unvalidated values when the caller has already
// checked the input.
package domains

import (
	"reflect"
	"regexp"

	"github.com/authcorp/libs/go/strongof/option"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

// Validating is satisfied by every domain type, and by caller-defined text
// wrappers that add an IsValidFormat method.
type Validating interface {
	strong.Wrapper
	Value() string
	IsValidFormat() bool
}

// ruled is implemented by the domain types of this package to give Parse
// and Validate a specific error message.
type ruled interface {
	rule() validation.Validator[string]
}

// TryCreate wraps raw in S and returns it only when it is valid. It never
// returns an error and never panics.
func TryCreate[S Validating, PS strong.Setter[S, string]](raw string) (S, bool) {
	s := strong.From[S, string, PS](raw)
	if !s.IsValidFormat() {
		var zero S
		return zero, false
	}
	return s, true
}

// TryCreateOption is TryCreate returning an Option.
func TryCreateOption[S Validating, PS strong.Setter[S, string]](raw string) option.Option[S] {
	s, ok := TryCreate[S, PS](raw)
	return option.From(s, ok)
}

// Parse wraps raw in S, returning a *validation.ValidationError when it is
// invalid.
func Parse[S Validating, PS strong.Setter[S, string]](raw string) (S, error) {
	s := strong.From[S, string, PS](raw)
	if err := check(s); err != nil {
		var zero S
		return zero, err
	}
	return s, nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse[S Validating, PS strong.Setter[S, string]](raw string) S {
	s, err := Parse[S, PS](raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks v and accumulates every failure in the result.
func Validate[S Validating](v S) *validation.Result {
	result := validation.NewResult()
	if err := check(v); err != nil {
		result.AddError(*err)
	}
	return result
}

func check[S Validating](s S) *validation.ValidationError {
	name := reflect.TypeFor[S]().Name()
	var err *validation.ValidationError
	if r, ok := any(s).(ruled); ok {
		err = r.rule()(s.Value())
	} else if !s.IsValidFormat() {
		err = &validation.ValidationError{
			Message: "has an invalid format",
			Code:    validation.CodeFormat,
			Value:   s.Value(),
		}
	}
	if err == nil {
		return nil
	}
	err.Field = name
	if validation.IsPersonalData(s) {
		err.Value = nil
	}
	return err
}

// pattern builds a format rule from a compiled expression.
func pattern(re *regexp.Regexp, message string) validation.Validator[string] {
	return validation.Custom(re.MatchString, message, validation.CodeFormat)
}

// rules joins a non-empty check with the type's format checks.
func rules(validators ...validation.Validator[string]) validation.Validator[string] {
	return validation.And(append([]validation.Validator[string]{validation.Required()}, validators...)...)
}
