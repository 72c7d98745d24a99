package domains

import (
	"regexp"
	"strconv"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var semVerRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][a-zA-Z0-9-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][a-zA-Z0-9-]*))*))?` +
	`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var semVerRule = rules(pattern(semVerRegex, "must be a semantic version such as 1.4.2"))

// SemVer is a Semantic Versioning 2.0.0 version such as "1.4.2-rc.1+build.5".
type SemVer struct{ strong.Text[SemVer] }

func (SemVer) rule() validation.Validator[string] { return semVerRule }

// IsValidFormat reports whether the value is a semantic version.
func (v SemVer) IsValidFormat() bool { return semVerRule(v.Value()) == nil }

// Core returns the major, minor and patch numbers. ok is false when the
// value is not a valid version or a number overflows.
func (v SemVer) Core() (major, minor, patch uint64, ok bool) {
	m := semVerRegex.FindStringSubmatch(v.Value())
	if m == nil {
		return 0, 0, 0, false
	}
	var err error
	if major, err = strconv.ParseUint(m[1], 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if minor, err = strconv.ParseUint(m[2], 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if patch, err = strconv.ParseUint(m[3], 10, 64); err != nil {
		return 0, 0, 0, false
	}
	return major, minor, patch, true
}

// Prerelease returns the pre-release identifiers without the leading '-'.
func (v SemVer) Prerelease() string {
	if m := semVerRegex.FindStringSubmatch(v.Value()); m != nil {
		return m[4]
	}
	return ""
}

// Build returns the build metadata without the leading '+'.
func (v SemVer) Build() string {
	if m := semVerRegex.FindStringSubmatch(v.Value()); m != nil {
		return m[5]
	}
	return ""
}
