package domains

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var slugRule = rules(pattern(slugRegex, "must be lower-case letters and digits separated by single hyphens"))

// Slug is a URL path segment such as "my-blog-post".
type Slug struct{ strong.Text[Slug] }

func (Slug) rule() validation.Validator[string] { return slugRule }

// IsValidFormat reports whether the value is a slug.
func (s Slug) IsValidFormat() bool { return slugRule(s.Value()) == nil }

// Slugify derives a slug from free text: accents are stripped, letters are
// lower-cased and every other run of characters becomes a single hyphen.
// The result is empty, and so invalid, when text has no letters or digits.
func Slugify(text string) Slug {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
	if err != nil {
		stripped = text
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return strong.From[Slug](b.String())
}
