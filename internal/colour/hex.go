// Package colour validates and inspects the hex colours stored in theme settings.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexPattern is the only colour syntax accepted from configuration.
// Shorthand (#abc), named colours and rgb() are rejected.
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a six digit hex colour with a leading '#'.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// OrDefault returns value when it is a valid hex colour and fallback otherwise.
// The value is returned unchanged, including its case.
func OrDefault(value, fallback string) string {
	if ValidHex(value) {
		return value
	}
	return fallback
}

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a #RRGGBB colour.
func ParseHex(s string) (RGB, error) {
	if !ValidHex(s) {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("failed to parse hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as a lower-case hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R)
	r |= r << 8
	g = uint32(rgb.G)
	g |= g << 8
	b = uint32(rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}
