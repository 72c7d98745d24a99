package strong

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type textKind struct{}

func (textKind) name() string { return "string" }
func (textKind) equal(a, b string) bool { return a == b }
func (textKind) compare(a, b string) int { return strings.Compare(a, b) }
func (textKind) format(v string) string { return v }
func (textKind) text(v string) string { return v }
func (textKind) parse(s string) (string, error) { return s, nil }
func (textKind) native(v string) any { return v }
func (textKind) hashKey(v string) string { return v }

// Text is the string specialization.
//
//	type CustomerName struct{ strong.Text[CustomerName] }
type Text[S any] struct {
	Of[string, S, textKind]
}

// EmptyString returns the empty value of S.
func EmptyString[S any, PS Setter[S, string]]() S {
	return From[S, string, PS]("")
}

// IsEmpty reports whether the value is the empty string.
func (t Text[S]) IsEmpty() bool {
	return t.value == ""
}

// IsBlank reports whether the value is empty or only white space.
func (t Text[S]) IsBlank() bool {
	return strings.TrimFunc(t.value, unicode.IsSpace) == ""
}

// Len returns the number of runes in the value.
func (t Text[S]) Len() int {
	return utf8.RuneCountInString(t.value)
}

// TrimSpace returns a copy without leading and trailing white space.
func (t Text[S]) TrimSpace() S {
	return newSelf[S](strings.TrimSpace(t.value))
}

// ToUpper returns a copy upper-cased with language-neutral rules.
func (t Text[S]) ToUpper() S {
	return t.ToUpperIn(language.Und)
}

// ToLower returns a copy lower-cased with language-neutral rules.
func (t Text[S]) ToLower() S {
	return t.ToLowerIn(language.Und)
}

// ToUpperIn returns a copy upper-cased with the rules of tag.
func (t Text[S]) ToUpperIn(tag language.Tag) S {
	return newSelf[S](cases.Upper(tag).String(t.value))
}

// ToLowerIn returns a copy lower-cased with the rules of tag.
func (t Text[S]) ToLowerIn(tag language.Tag) S {
	return newSelf[S](cases.Lower(tag).String(t.value))
}

// Contains reports whether substr is within the value.
func (t Text[S]) Contains(substr string) bool {
	return strings.Contains(t.value, substr)
}

// ContainsFold reports whether substr is within the value under Unicode
// case folding.
func (t Text[S]) ContainsFold(substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(t.value), fold.String(substr))
}

// HasPrefix reports whether the value begins with prefix.
func (t Text[S]) HasPrefix(prefix string) bool {
	return strings.HasPrefix(t.value, prefix)
}

// HasSuffix reports whether the value ends with suffix.
func (t Text[S]) HasSuffix(suffix string) bool {
	return strings.HasSuffix(t.value, suffix)
}

// EqualFold reports whether the value equals s under Unicode case folding.
func (t Text[S]) EqualFold(s string) bool {
	return strings.EqualFold(t.value, s)
}

// Substring returns length runes starting at rune index start.
func (t Text[S]) Substring(start, length int) (S, error) {
	runes := []rune(t.value)
	if start < 0 || length < 0 || start > len(runes) || length > len(runes)-start {
		var zero S
		return zero, ErrOutOfRange
	}
	return newSelf[S](string(runes[start : start+length])), nil
}
