package strong

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// NumberFormat describes the separators used when reading numbers written
// for a particular culture.
type NumberFormat struct {
	DecimalSeparator rune
	GroupSeparator   rune
}

// InvariantNumberFormat reads numbers as "1,234.5".
var InvariantNumberFormat = NumberFormat{DecimalSeparator: '.', GroupSeparator: ','}

var (
	commaDecimal = NumberFormat{DecimalSeparator: ',', GroupSeparator: '.'}
	spaceGrouped = NumberFormat{DecimalSeparator: ',', GroupSeparator: ' '}
	swissFormat  = NumberFormat{DecimalSeparator: '.', GroupSeparator: '\''}
)

var numberFormatsByBase = map[string]NumberFormat{
	"de": commaDecimal, "es": commaDecimal, "it": commaDecimal, "pt": commaDecimal,
	"nl": commaDecimal, "tr": commaDecimal, "id": commaDecimal, "da": commaDecimal,
	"fr": spaceGrouped, "ru": spaceGrouped, "pl": spaceGrouped, "cs": spaceGrouped,
	"sv": spaceGrouped, "fi": spaceGrouped, "nb": spaceGrouped, "uk": spaceGrouped,
}

// NumberFormatFor returns the separators conventionally used for tag.
// Unknown languages fall back to InvariantNumberFormat.
func NumberFormatFor(tag language.Tag) NumberFormat {
	if region, conf := tag.Region(); conf == language.Exact && region.String() == "CH" {
		return swissFormat
	}
	base, _ := tag.Base()
	if f, ok := numberFormatsByBase[base.String()]; ok {
		return f
	}
	return InvariantNumberFormat
}

// normalize rewrites s into the invariant grammar understood by strconv.
func (f NumberFormat) normalize(s string) (string, error) {
	if f.DecimalSeparator == f.GroupSeparator {
		return "", fmt.Errorf("%w: decimal and group separators are both %q", ErrArgument, f.DecimalSeparator)
	}
	trimmed := strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(trimmed))
	seenDecimal := false
	for _, r := range trimmed {
		switch {
		case r == f.GroupSeparator, f.GroupSeparator == ' ' && (r == '\u00a0' || r == '\u202f'):
			if seenDecimal {
				return "", parseError("number", s, nil)
			}
		case r == f.DecimalSeparator:
			if seenDecimal {
				return "", parseError("number", s, nil)
			}
			seenDecimal = true
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
