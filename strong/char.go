package strong

import (
	"cmp"
	"errors"
	"unicode"
	"unicode/utf8"
)

var errNotSingleRune = errors.New("expected exactly one character")

type charKind struct{}

func (charKind) name() string { return "char" }
func (charKind) equal(a, b rune) bool { return a == b }
func (charKind) compare(a, b rune) int { return cmp.Compare(a, b) }
func (charKind) format(v rune) string { return string(v) }
func (charKind) text(v rune) string { return string(v) }
func (charKind) native(v rune) any { return string(v) }
func (charKind) hashKey(v rune) string { return string(v) }

func (charKind) parse(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, parseError("char", s, errNotSingleRune)
	}
	return r, nil
}

// Char is the single character specialization.
type Char[S any] struct {
	Of[rune, S, charKind]
}

// IsLetter reports whether the character is a letter.
func (c Char[S]) IsLetter() bool { return unicode.IsLetter(c.value) }

// IsDigit reports whether the character is a decimal digit.
func (c Char[S]) IsDigit() bool { return unicode.IsDigit(c.value) }

// IsWhiteSpace reports whether the character is white space.
func (c Char[S]) IsWhiteSpace() bool { return unicode.IsSpace(c.value) }

// ToUpper returns the upper case form.
func (c Char[S]) ToUpper() S { return newSelf[S](unicode.ToUpper(c.value)) }

// ToLower returns the lower case form.
func (c Char[S]) ToLower() S { return newSelf[S](unicode.ToLower(c.value)) }
