package domains

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
)

// Descriptor describes one domain type by name so that tools can validate
// and construct values without knowing the Go type.
type Descriptor struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Pattern     string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Example     string `json:"example" yaml:"example" toml:"example"`

	create func(raw string) (strong.Wrapper, error)
}

// ErrUnregistered is returned by a Descriptor that did not come from the
// registry.
var ErrUnregistered = errors.New("domains: descriptor is not registered")

// Validate reports why raw is not a valid value, or nil.
func (d Descriptor) Validate(raw string) error {
	_, err := d.Create(raw)
	return err
}

// Create returns raw wrapped in the described type.
func (d Descriptor) Create(raw string) (strong.Wrapper, error) {
	if d.create == nil {
		return nil, ErrUnregistered
	}
	return d.create(raw)
}

var registry = map[string]Descriptor{}

func register[S Validating, PS strong.Setter[S, string]](name, description string, re *regexp.Regexp, example string) {
	registry[strings.ToLower(name)] = Descriptor{
		Name:        name,
		Description: description,
		Pattern:     re.String(),
		Example:     example,
		create: func(raw string) (strong.Wrapper, error) {
			s, err := Parse[S, PS](raw)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

func init() {
	register[ColorHex]("ColorHex", "6 or 8 digit hex color", colorHexRegex, "#FF5733")
	register[Isbn]("Isbn", "ISBN-13 layout; ISBN-10 also accepted", isbn13Regex, "978-0-306-40615-7")
	register[Slug]("Slug", "URL path segment", slugRegex, "my-blog-post")
	register[MimeType]("MimeType", "media type", mimeTypeRegex, "application/json")
	register[FileExtension]("FileExtension", "file extension with leading dot", fileExtensionRegex, ".tar.gz")
	register[FilePath]("FilePath", "file system path", filePathRegex, "/var/log/app.log")
	register[EmailAddress]("EmailAddress", "email address", emailRegex, "ada@example.com")
	register[PhoneNumber]("PhoneNumber", "E.164 phone number", e164Regex, "+14155552671")
	register[Url]("Url", "absolute http or https URL", urlRegex, "https://example.com/docs")
	register[Hostname]("Hostname", "RFC 1123 host name", hostnameRegex, "api.example.com")
	register[CountryCode]("CountryCode", "ISO 3166-1 alpha-2 country code", countryCodeRegex, "DE")
	register[CurrencyCode]("CurrencyCode", "ISO 4217 currency code", currencyCodeRegex, "EUR")
	register[LanguageCode]("LanguageCode", "short BCP 47 language tag", languageCodeRegex, "pt-BR")
	register[Iban]("Iban", "IBAN with mod 97 check digits", ibanRegex, "DE89 3704 0044 0532 0130 00")
	register[SemVer]("SemVer", "semantic version 2.0.0", semVerRegex, "1.4.2-rc.1+build.5")
}

// Lookup returns the descriptor for name, ignoring case.
func Lookup(name string) (Descriptor, bool) {
	d, ok := registry[strings.ToLower(name)]
	return d, ok
}

// Descriptors returns every descriptor sorted by name.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Descriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
