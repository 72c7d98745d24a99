package domains

import (
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

// emailRegex is a simplified RFC 5322 compliant email regex.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// e164Regex validates E.164 phone number format.
var e164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

const maxEmailLength = 254

var (
	emailRule = rules(
		validation.MaxLength(maxEmailLength),
		pattern(emailRegex, "must be an email address"),
	)
	phoneRule = rules(pattern(e164Regex, "must be an E.164 phone number"))
)

// EmailAddress is an email address. It is personal data and is redacted
// by the logger.
type EmailAddress struct{ strong.Text[EmailAddress] }

func (EmailAddress) rule() validation.Validator[string] { return emailRule }

// IsValidFormat reports whether the value is an email address.
func (e EmailAddress) IsValidFormat() bool { return emailRule(e.Value()) == nil }

// LocalPart returns the part before the '@'.
func (e EmailAddress) LocalPart() string {
	local, _, _ := strings.Cut(e.Value(), "@")
	return local
}

// Domain returns the part after the '@'.
func (e EmailAddress) Domain() string {
	_, domain, _ := strings.Cut(e.Value(), "@")
	return domain
}

// Normalized returns the address trimmed and lower-cased.
func (e EmailAddress) Normalized() EmailAddress {
	return strong.From[EmailAddress](strings.ToLower(strings.TrimSpace(e.Value())))
}

// IsPersonalData marks the value for redaction.
func (EmailAddress) IsPersonalData() bool { return true }

// PhoneNumber is an E.164 phone number such as "+14155552671". It is
// personal data and is redacted by the logger.
type PhoneNumber struct{ strong.Text[PhoneNumber] }

func (PhoneNumber) rule() validation.Validator[string] { return phoneRule }

// IsValidFormat reports whether the value is an E.164 number.
func (p PhoneNumber) IsValidFormat() bool { return phoneRule(p.Value()) == nil }

// IsPersonalData marks the value for redaction.
func (PhoneNumber) IsPersonalData() bool { return true }

// Digits returns the number without its leading '+'.
func (p PhoneNumber) Digits() string {
	return strings.TrimPrefix(p.Value(), "+")
}

// NormalizePhoneNumber strips spaces, dashes, dots and parentheses from raw
// and returns the result when it is a valid E.164 number.
func NormalizePhoneNumber(raw string) (PhoneNumber, bool) {
	return TryCreate[PhoneNumber](normalizePhone(raw))
}

func normalizePhone(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, value)
}
