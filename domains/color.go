package domains

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var colorHexRegex = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var colorHexRule = rules(pattern(colorHexRegex, "must be a 6 or 8 digit hex color"))

// ColorHex is a hex color such as "#FF5733", "ff5733" or "#FF573380".
// The leading '#' is optional; eight digits carry an alpha channel.
type ColorHex struct{ strong.Text[ColorHex] }

func (ColorHex) rule() validation.Validator[string] { return colorHexRule }

// IsValidFormat reports whether the value is a 6 or 8 digit hex color.
func (c ColorHex) IsValidFormat() bool { return colorHexRule(c.Value()) == nil }

// Normalized returns the color upper-cased with a leading '#'.
func (c ColorHex) Normalized() ColorHex {
	return strong.From[ColorHex]("#" + strings.ToUpper(c.digits()))
}

// RGB returns the red, green and blue channels. ok is false when the value
// is not a valid color.
func (c ColorHex) RGB() (r, g, b uint8, ok bool) {
	if !c.IsValidFormat() {
		return 0, 0, 0, false
	}
	channels, err := hex.DecodeString(c.digits()[:6])
	if err != nil {
		return 0, 0, 0, false
	}
	return channels[0], channels[1], channels[2], true
}

// Alpha returns the alpha channel, which is 0xFF for six digit colors.
func (c ColorHex) Alpha() (uint8, bool) {
	if !c.IsValidFormat() {
		return 0, false
	}
	digits := c.digits()
	if len(digits) == 6 {
		return 0xFF, true
	}
	a, err := hex.DecodeString(digits[6:])
	if err != nil {
		return 0, false
	}
	return a[0], true
}

func (c ColorHex) digits() string {
	return strings.TrimPrefix(c.Value(), "#")
}
