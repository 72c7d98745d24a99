package strong

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when text cannot be parsed into a wrapper.
	ErrFormat = errors.New("invalid format")
	// ErrArgument is returned when a comparison argument has an incompatible type.
	ErrArgument = errors.New("invalid argument")
	// ErrNilArgument is returned when a required input is missing.
	ErrNilArgument = errors.New("nil argument")
	// ErrOutOfRange is returned when an index or length falls outside a value.
	ErrOutOfRange = errors.New("argument out of range")
)

// ParseError describes a failed parse of raw text into a primitive.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, ErrFormat)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFormat.
func (e *ParseError) Is(target error) bool {
	return target == ErrFormat
}

// ArgumentError describes a comparison against a value of the wrong type.
type ArgumentError struct {
	Expected string
	Got      string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: cannot compare %s with %s", ErrArgument, e.Expected, e.Got)
}

// Is reports whether target is ErrArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func parseError(kind, input string, cause error) error {
	return &ParseError{Kind: kind, Input: input, Err: cause}
}
