package domains

import (
	"net/url"
	"regexp"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var (
	urlRegex      = regexp.MustCompile(`^(?i:https?)://[^\s/?#@]+(?:[/?#]\S*)?$`)
	hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
)

const maxHostnameLength = 253

var (
	urlRule = rules(
		pattern(urlRegex, "must be an absolute http or https URL"),
		validation.Custom(func(s string) bool {
			u, err := url.Parse(s)
			return err == nil && u.Hostname() != ""
		}, "must be an absolute http or https URL", validation.CodeFormat),
	)
	hostnameRule = rules(
		validation.MaxLength(maxHostnameLength),
		pattern(hostnameRegex, "must be an RFC 1123 host name"),
	)
)

// Url is an absolute http or https URL.
type Url struct{ strong.Text[Url] }

func (Url) rule() validation.Validator[string] { return urlRule }

// IsValidFormat reports whether the value is an absolute http or https URL.
func (u Url) IsValidFormat() bool { return urlRule(u.Value()) == nil }

// Parsed returns the value parsed by net/url.
func (u Url) Parsed() (*url.URL, error) {
	return url.Parse(u.Value())
}

// Scheme returns the lower-cased scheme, or "" when the value does not parse.
func (u Url) Scheme() string {
	parsed, err := u.Parsed()
	if err != nil {
		return ""
	}
	return parsed.Scheme
}

// Host returns the host and port, or "" when the value does not parse.
func (u Url) Host() string {
	parsed, err := u.Parsed()
	if err != nil {
		return ""
	}
	return parsed.Host
}

// Hostname is an RFC 1123 host name such as "api.example.com".
type Hostname struct{ strong.Text[Hostname] }

func (Hostname) rule() validation.Validator[string] { return hostnameRule }

// IsValidFormat reports whether the value is a host name.
func (h Hostname) IsValidFormat() bool { return hostnameRule(h.Value()) == nil }
