// Package colorparse parses the #rrggbb hex colors used throughout the
// module parameter bundle (paper color, duotone inks, halation tint) and
// holds the standard CMYK ink color table from spec.md §6.
package colorparse

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color with no alpha; every color-valued
// parameter in spec.md §6 is opaque.
type RGB struct {
	R, G, B uint8
}

// Hex parses a "#rrggbb" string into an RGB and reports a malformed string
// as an error. The config layer does not validate color strings; the stages
// read them through MustHex, which falls back to a default color.
func Hex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("colorparse: %q is not a 6-digit hex color", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colorparse: %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustHex is Hex but falls back to fallback on error, for use with
// compile-time-constant default colors.
func MustHex(s string, fallback RGB) RGB {
	c, err := Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// Standard ink colors, spec.md §6.
var (
	InkCyan    = MustHex("#009fce", RGB{0, 159, 206})
	InkMagenta = MustHex("#d4006a", RGB{212, 0, 106})
	InkYellow  = MustHex("#f5d800", RGB{245, 216, 0})
	InkBlack   = MustHex("#100c08", RGB{16, 12, 8})
)

// Array returns c as a [3]uint8, the form raster stages compose with.
func (c RGB) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
