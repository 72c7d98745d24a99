package strong

import (
	"errors"
	"strconv"
	"strings"
)

var errNotBoolean = errors.New(`expected "true" or "false"`)

type booleanKind struct{}

func (booleanKind) name() string { return "boolean" }
func (booleanKind) equal(a, b bool) bool { return a == b }
func (booleanKind) format(v bool) string { return strconv.FormatBool(v) }
func (booleanKind) text(v bool) string { return strconv.FormatBool(v) }
func (booleanKind) native(v bool) any { return v }
func (booleanKind) hashKey(v bool) string { return strconv.FormatBool(v) }

// compare orders false before true.
func (booleanKind) compare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func (booleanKind) parse(s string) (bool, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(trimmed, "true"):
		return true, nil
	case strings.EqualFold(trimmed, "false"):
		return false, nil
	}
	return false, parseError("boolean", s, errNotBoolean)
}

// Boolean is the bool specialization.
//
//	type IsActive struct{ strong.Boolean[IsActive] }
type Boolean[S any] struct {
	Of[bool, S, booleanKind]
}

// IsTrue reports whether the value is true.
func (b Boolean[S]) IsTrue() bool { return b.value }

// IsFalse reports whether the value is false.
func (b Boolean[S]) IsFalse() bool { return !b.value }
