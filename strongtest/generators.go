// Package strongtest provides rapid generators for property-based tests of
// strong types and domain strings.
package strongtest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/strong"
)

// Wrapped lifts a generator of raw values into a generator of S.
func Wrapped[S any, T any, PS strong.Setter[S, T]](g *rapid.Generator[T]) *rapid.Generator[S] {
	return rapid.Map(g, func(v T) S {
		return strong.From[S, T, PS](v)
	})
}

// Valid lifts a generator of valid raw strings into a generator of the
// domain type S. It panics if the generator yields an invalid string.
func Valid[S domains.Validating, PS strong.Setter[S, string]](g *rapid.Generator[string]) *rapid.Generator[S] {
	return rapid.Map(g, func(raw string) S {
		return domains.MustParse[S, PS](raw)
	})
}

// UUIDGen generates UUIDs from arbitrary bytes, including uuid.Nil.
func UUIDGen() *rapid.Generator[uuid.UUID] {
	return rapid.Custom(func(t *rapid.T) uuid.UUID {
		var id uuid.UUID
		copy(id[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes"))
		return id
	})
}

// ColorHexGen generates 6 or 8 digit hex colors with or without '#'.
func ColorHexGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		prefix := rapid.SampledFrom([]string{"", "#"}).Draw(t, "prefix")
		digits := rapid.SampledFrom([]int{6, 8}).Draw(t, "digits")
		return prefix + rapid.StringMatching(fmt.Sprintf(`[0-9a-fA-F]{%d}`, digits)).Draw(t, "hex")
	})
}

// IsbnGen generates ISBN-10 and ISBN-13 layouts, compact or hyphenated.
func IsbnGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var digits string
		first := 1
		if rapid.Bool().Draw(t, "isbn13") {
			first = 3
			digits = rapid.SampledFrom([]string{"978", "979"}).Draw(t, "prefix") +
				rapid.StringMatching(`[0-9]{10}`).Draw(t, "body")
		} else {
			digits = rapid.StringMatching(`[0-9]{9}[0-9X]`).Draw(t, "body")
		}
		if !rapid.Bool().Draw(t, "hyphenated") {
			return digits
		}
		var b strings.Builder
		for i, r := range digits {
			if i >= first && i < len(digits)-1 && rapid.IntRange(0, 3).Draw(t, "sep") == 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
		}
		return b.String()
	})
}

// SlugGen generates lower-case hyphenated slugs.
func SlugGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z0-9]{1,8}(-[a-z0-9]{1,8}){0,4}`)
}

// MimeTypeGen generates type/subtype pairs.
func MimeTypeGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		typ := rapid.SampledFrom([]string{"application", "text", "image", "audio", "video", "font"}).Draw(t, "type")
		sub := rapid.StringMatching(`[a-z0-9][a-z0-9.+-]{0,15}`).Draw(t, "subtype")
		return typ + "/" + sub
	})
}

// FileExtensionGen generates dotted extensions such as ".tar.gz".
func FileExtensionGen() *rapid.Generator[string] {
	return rapid.StringMatching(`(\.[a-zA-Z0-9]{1,5}){1,3}`)
}

// FilePathGen generates slash-separated paths.
func FilePathGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		root := rapid.SampledFrom([]string{"", "/", "./"}).Draw(t, "root")
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9_-]{1,10}`), 1, 5).Draw(t, "segments")
		return root + strings.Join(segments, "/") + FileExtensionGen().Draw(t, "ext")
	})
}

// EmailGen generates valid email addresses.
func EmailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9._+-]{0,10}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io", "dev"}).Draw(t, "tld")
		return fmt.Sprintf("%s@%s.%s", local, domain, tld)
	})
}

// PhoneNumberGen generates valid phone numbers (E.164 format).
func PhoneNumberGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		countryCode := rapid.SampledFrom([]string{"1", "44", "49", "33", "81"}).Draw(t, "country")
		number := rapid.StringMatching(`[0-9]{6,12}`).Draw(t, "number")
		return fmt.Sprintf("+%s%s", countryCode, number)
	})
}

// HostnameGen generates RFC 1123 host names.
func HostnameGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		labels := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]([a-z0-9-]{0,10}[a-z0-9])?`), 1, 4).Draw(t, "labels")
		return strings.Join(labels, ".")
	})
}

// UrlGen generates absolute http and https URLs.
func UrlGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		scheme := rapid.SampledFrom([]string{"http", "https"}).Draw(t, "scheme")
		host := HostnameGen().Draw(t, "host")
		path := rapid.StringMatching(`(/[a-z0-9_-]{1,8}){0,3}`).Draw(t, "path")
		return scheme + "://" + host + path
	})
}

// CountryCodeGen generates assigned ISO 3166-1 alpha-2 codes.
func CountryCodeGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"US", "DE", "FR", "GB", "BR", "JP", "CH", "IN", "ZA", "AU"})
}

// CurrencyCodeGen generates ISO 4217 codes.
func CurrencyCodeGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"USD", "EUR", "GBP", "JPY", "CHF", "BRL", "INR", "CAD"})
}

// LanguageCodeGen generates short BCP 47 tags.
func LanguageCodeGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"en", "en-US", "pt-BR", "de-CH", "fr", "zh-Hant-TW", "es-419", "tr"})
}

// IbanGen generates IBANs with correct check digits, compact or grouped.
func IbanGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		country := rapid.SampledFrom([]string{"DE", "GB", "FR", "NL", "CH"}).Draw(t, "country")
		bban := rapid.StringMatching(`[0-9A-Z]{12,24}`).Draw(t, "bban")
		iban := fmt.Sprintf("%s%02d%s", country, 98-mod97(bban+country+"00"), bban)
		if !rapid.Bool().Draw(t, "grouped") {
			return iban
		}
		var groups []string
		for len(iban) > 4 {
			groups = append(groups, iban[:4])
			iban = iban[4:]
		}
		return strings.Join(append(groups, iban), " ")
	})
}

// SemVerGen generates semantic versions with optional pre-release and
// build metadata.
func SemVerGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		v := fmt.Sprintf("%d.%d.%d",
			rapid.IntRange(0, 99).Draw(t, "major"),
			rapid.IntRange(0, 99).Draw(t, "minor"),
			rapid.IntRange(0, 999).Draw(t, "patch"))
		if rapid.Bool().Draw(t, "pre") {
			v += "-" + rapid.SampledFrom([]string{"alpha", "beta.2", "rc.1", "0.3.7", "x-y-z"}).Draw(t, "prerelease")
		}
		if rapid.Bool().Draw(t, "build") {
			v += "+" + rapid.StringMatching(`[0-9a-zA-Z-]{1,6}(\.[0-9a-zA-Z-]{1,6}){0,2}`).Draw(t, "build")
		}
		return v
	})
}

func mod97(s string) int {
	remainder := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			remainder = (remainder*100 + int(r-'A'+10)) % 97
		} else {
			remainder = (remainder*10 + int(r-'0')) % 97
		}
	}
	return remainder
}
