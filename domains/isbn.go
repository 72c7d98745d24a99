package domains

import (
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var (
	isbn10Regex = regexp.MustCompile(`^(?:\d[- ]?){9}[\dX]$`)
	isbn13Regex = regexp.MustCompile(`^97[89][- ]?(?:\d[- ]?){9}\d$`)
)

var isbnRule = rules(validation.Or(
	pattern(isbn13Regex, "must be an ISBN-10 or ISBN-13"),
	pattern(isbn10Regex, "must be an ISBN-10 or ISBN-13"),
))

// Isbn is an ISBN-10 or ISBN-13, compact or separated by hyphens or
// spaces. Only the digit layout is checked, not the check digit.
type Isbn struct{ strong.Text[Isbn] }

func (Isbn) rule() validation.Validator[string] { return isbnRule }

// IsValidFormat reports whether the value has an ISBN-10 or ISBN-13 layout.
func (i Isbn) IsValidFormat() bool { return isbnRule(i.Value()) == nil }

// IsIsbn10 reports whether the value is a valid ISBN-10.
func (i Isbn) IsIsbn10() bool { return isbn10Regex.MatchString(i.Value()) }

// IsIsbn13 reports whether the value is a valid ISBN-13.
func (i Isbn) IsIsbn13() bool { return isbn13Regex.MatchString(i.Value()) }

// Compact returns the ISBN without separators.
func (i Isbn) Compact() Isbn {
	return strong.From[Isbn](strings.NewReplacer("-", "", " ", "").Replace(i.Value()))
}
