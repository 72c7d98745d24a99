// Package validation provides composable string validators with error
// accumulation. The domain types build their format checks from it and
// report failures as *ValidationError.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalid matches every ValidationError under errors.Is.
var ErrInvalid = errors.New("validation failed")

// Error codes.
const (
	CodeRequired  = "required"
	CodeMinLength = "min_length"
	CodeMaxLength = "max_length"
	CodePattern   = "pattern"
	CodeOneOf     = "one_of"
	CodeChecksum  = "checksum"
	CodeFormat    = "invalid_format"
)

// PersonalData is implemented by values that must not be echoed back in
// error payloads or logs.
type PersonalData interface {
	IsPersonalData() bool
}

// IsPersonalData reports whether v is marked as personal data.
func IsPersonalData(v any) bool {
	p, ok := v.(PersonalData)
	return ok && p.IsPersonalData()
}

// ValidationError represents a single validation error. Value is left
// empty when the rejected input is personal data.
type ValidationError struct {
	Field   string `json:"field"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Is reports whether target is ErrInvalid.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Result represents validation result with error accumulation.
type Result struct {
	errors []ValidationError
}

// NewResult creates an empty validation result.
func NewResult() *Result {
	return &Result{}
}

// AddError adds a validation error.
func (r *Result) AddError(err ValidationError) *Result {
	r.errors = append(r.errors, err)
	return r
}

// AddFieldError adds a validation error for a specific field.
func (r *Result) AddFieldError(field, message, code string) *Result {
	return r.AddError(ValidationError{Field: field, Message: message, Code: code})
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) *Result {
	if other != nil {
		r.errors = append(r.errors, other.errors...)
	}
	return r
}

// IsValid returns true if no errors.
func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns all validation errors.
func (r *Result) Errors() []ValidationError {
	return r.errors
}

// Err joins the accumulated errors, or returns nil when the result is valid.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	errs := make([]error, len(r.errors))
	for i, e := range r.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// ErrorMap returns errors grouped by field.
func (r *Result) ErrorMap() map[string][]string {
	m := make(map[string][]string)
	for _, e := range r.errors {
		key := e.Field
		if e.Path != "" {
			key = e.Path
		}
		m[key] = append(m[key], e.Message)
	}
	return m
}

// ErrorMessages returns all error messages as strings.
func (r *Result) ErrorMessages() []string {
	msgs := make([]string, len(r.errors))
	for i, e := range r.errors {
		msgs[i] = e.Error()
	}
	return msgs
}

// Validator is a function that validates a value.
type Validator[T any] func(T) *ValidationError

// And combines validators with AND logic (all must pass).
func And[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *ValidationError {
		for _, validator := range validators {
			if err := validator(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Or combines validators with OR logic (at least one must pass).
func Or[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *ValidationError {
		var lastErr *ValidationError
		for _, validator := range validators {
			err := validator(v)
			if err == nil {
				return nil
			}
			lastErr = err
		}
		return lastErr
	}
}

// Not negates a validator.
func Not[T any](validator Validator[T], message, code string) Validator[T] {
	return func(v T) *ValidationError {
		if err := validator(v); err == nil {
			return &ValidationError{Message: message, Code: code}
		}
		return nil
	}
}

// Field validates a field value and tracks the field path.
func Field[T any](field string, value T, validators ...Validator[T]) *Result {
	result := NewResult()
	for _, validator := range validators {
		if err := validator(value); err != nil {
			err.Field = field
			if err.Path == "" {
				err.Path = field
			}
			result.AddError(*err)
		}
	}
	return result
}

// ValidateAll runs all validators and accumulates errors.
func ValidateAll[T any](value T, validators ...Validator[T]) *Result {
	result := NewResult()
	for _, validator := range validators {
		if err := validator(value); err != nil {
			result.AddError(*err)
		}
	}
	return result
}

// Required checks that string is not blank.
func Required() Validator[string] {
	return func(s string) *ValidationError {
		if strings.TrimSpace(s) == "" {
			return &ValidationError{Message: "is required", Code: CodeRequired}
		}
		return nil
	}
}

// MinLength checks the minimum number of runes.
func MinLength(min int) Validator[string] {
	return func(s string) *ValidationError {
		if utf8.RuneCountInString(s) < min {
			return &ValidationError{
				Message: fmt.Sprintf("must be at least %d characters", min),
				Code:    CodeMinLength,
				Value:   s,
			}
		}
		return nil
	}
}

// MaxLength checks the maximum number of runes.
func MaxLength(max int) Validator[string] {
	return func(s string) *ValidationError {
		if utf8.RuneCountInString(s) > max {
			return &ValidationError{
				Message: fmt.Sprintf("must be at most %d characters", max),
				Code:    CodeMaxLength,
				Value:   s,
			}
		}
		return nil
	}
}

// MatchesRegex checks string matches pattern.
func MatchesRegex(pattern *regexp.Regexp, message string) Validator[string] {
	return func(s string) *ValidationError {
		if !pattern.MatchString(s) {
			return &ValidationError{Message: message, Code: CodePattern, Value: s}
		}
		return nil
	}
}

// OneOf checks value is one of allowed values.
func OneOf[T comparable](allowed ...T) Validator[T] {
	return func(v T) *ValidationError {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return &ValidationError{Message: "must be one of allowed values", Code: CodeOneOf, Value: v}
	}
}

// Custom creates a custom validator.
func Custom[T any](check func(T) bool, message, code string) Validator[T] {
	return func(v T) *ValidationError {
		if !check(v) {
			err := &ValidationError{Message: message, Code: code}
			if !IsPersonalData(v) {
				err.Value = v
			}
			return err
		}
		return nil
	}
}

// Trimmed runs validator against s with surrounding white space removed.
func Trimmed(validator Validator[string]) Validator[string] {
	return func(s string) *ValidationError {
		return validator(strings.TrimSpace(s))
	}
}
