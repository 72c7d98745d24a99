package domains

import (
	"regexp"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var (
	countryCodeRegex  = regexp.MustCompile(`^[A-Z]{2}$`)
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	// Language, optional script and optional region or UN M.49 area.
	languageCodeRegex = regexp.MustCompile(`^[a-z]{2,3}(?:-[A-Z][a-z]{3})?(?:-(?:[A-Z]{2}|\d{3}))?$`)
)

var (
	countryCodeRule = rules(
		pattern(countryCodeRegex, "must be an ISO 3166-1 alpha-2 country code"),
		validation.Custom(func(s string) bool {
			r, err := language.ParseRegion(s)
			return err == nil && r.IsCountry()
		}, "must be an assigned ISO 3166-1 country code", validation.CodeOneOf),
	)
	currencyCodeRule = rules(
		pattern(currencyCodeRegex, "must be an ISO 4217 currency code"),
		validation.Custom(func(s string) bool {
			_, err := currency.ParseISO(s)
			return err == nil
		}, "must be a known ISO 4217 currency code", validation.CodeOneOf),
	)
	languageCodeRule = rules(
		pattern(languageCodeRegex, "must be a BCP 47 language tag such as en or pt-BR"),
		validation.Custom(func(s string) bool {
			_, err := language.Parse(s)
			return err == nil
		}, "must be a well-formed BCP 47 language tag", validation.CodeFormat),
	)
)

// CountryCode is an upper-case ISO 3166-1 alpha-2 code such as "DE".
type CountryCode struct{ strong.Text[CountryCode] }

func (CountryCode) rule() validation.Validator[string] { return countryCodeRule }

// IsValidFormat reports whether the value is an assigned country code.
func (c CountryCode) IsValidFormat() bool { return countryCodeRule(c.Value()) == nil }

// Region returns the code as a language.Region.
func (c CountryCode) Region() (language.Region, error) {
	return language.ParseRegion(c.Value())
}

// CurrencyCode is an upper-case ISO 4217 code such as "EUR".
type CurrencyCode struct{ strong.Text[CurrencyCode] }

func (CurrencyCode) rule() validation.Validator[string] { return currencyCodeRule }

// IsValidFormat reports whether the value is a known currency code.
func (c CurrencyCode) IsValidFormat() bool { return currencyCodeRule(c.Value()) == nil }

// Unit returns the code as a currency.Unit.
func (c CurrencyCode) Unit() (currency.Unit, error) {
	return currency.ParseISO(c.Value())
}

// LanguageCode is a short BCP 47 tag: a language subtag optionally
// followed by a script and a region, such as "en", "pt-BR" or "zh-Hant-TW".
type LanguageCode struct{ strong.Text[LanguageCode] }

func (LanguageCode) rule() validation.Validator[string] { return languageCodeRule }

// IsValidFormat reports whether the value is a short language tag.
func (l LanguageCode) IsValidFormat() bool { return languageCodeRule(l.Value()) == nil }

// Tag returns the value as a language.Tag, or language.Und when the value
// is not a valid language code.
func (l LanguageCode) Tag() language.Tag {
	if !l.IsValidFormat() {
		return language.Und
	}
	tag, err := language.Parse(l.Value())
	if err != nil {
		return language.Und
	}
	return tag
}
