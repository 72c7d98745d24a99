package domains

import (
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var ibanRegex = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{11,30}$`)

var ibanRule = rules(
	validation.Custom(func(s string) bool {
		return ibanRegex.MatchString(compactIban(s))
	}, "must be an IBAN", validation.CodeFormat),
	validation.Custom(func(s string) bool {
		return ibanChecksum(compactIban(s)) == 1
	}, "has an invalid IBAN check digit", validation.CodeChecksum),
)

// Iban is an International Bank Account Number, compact or in groups of
// four separated by spaces. The mod 97 check digits are verified.
type Iban struct{ strong.Text[Iban] }

func (Iban) rule() validation.Validator[string] { return ibanRule }

// IsValidFormat reports whether the value is an IBAN with valid check
// digits.
func (i Iban) IsValidFormat() bool { return ibanRule(i.Value()) == nil }

// Compact returns the IBAN without spaces.
func (i Iban) Compact() Iban {
	return strong.From[Iban](compactIban(i.Value()))
}

// CountryCode returns the leading country code.
func (i Iban) CountryCode() CountryCode {
	compact := compactIban(i.Value())
	if len(compact) < 2 {
		return CountryCode{}
	}
	return strong.From[CountryCode](compact[:2])
}

func compactIban(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// ibanChecksum computes the ISO 13616 remainder, which is 1 for a valid
// IBAN. The input must already match ibanRegex.
func ibanChecksum(iban string) int {
	if len(iban) < 4 {
		return 0
	}
	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			remainder = (remainder*100 + int(r-'A'+10)) % 97
		default:
			return 0
		}
	}
	return remainder
}
