package domains

import (
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

// RFC 6838 restricted names for the type and the subtype.
var mimeTypeRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]{0,126}/[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]{0,126}$`)

var mimeTypeRule = rules(pattern(mimeTypeRegex, "must be a type/subtype media type"))

// MimeType is a media type such as "application/json". Parameters such as
// "; charset=utf-8" are not accepted.
type MimeType struct{ strong.Text[MimeType] }

func (MimeType) rule() validation.Validator[string] { return mimeTypeRule }

// IsValidFormat reports whether the value is a type/subtype pair.
func (m MimeType) IsValidFormat() bool { return mimeTypeRule(m.Value()) == nil }

// Type returns the part before the slash.
func (m MimeType) Type() string {
	t, _, _ := strings.Cut(m.Value(), "/")
	return t
}

// Subtype returns the part after the slash.
func (m MimeType) Subtype() string {
	_, sub, _ := strings.Cut(m.Value(), "/")
	return sub
}
