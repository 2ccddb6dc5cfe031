package ruler

import (
	"fmt"
	"image/color"
	"math"
)

// Common colors.
var (
	// DefaultAccent is the accent used when the host supplies none.
	DefaultAccent = color.NRGBA{R: 0xFF, G: 0x40, B: 0x81, A: 0xFF}

	Black = color.NRGBA{A: 0xFF}
	White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// LerpColor interpolates each channel (A, R, G, B) of two colors linearly
// in integer space. t is clamped to [0, 1].
func LerpColor(from, to color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: lerpChannel(from.A, to.A, t),
	}
}

// LerpAlpha interpolates an opacity value linearly, rounding to the
// nearest integer. t is clamped to [0, 1].
func LerpAlpha(from, to uint8, t float64) uint8 {
	return lerpChannel(from, to, t)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	switch {
	case !(t > 0):
		return a
	case t >= 1:
		return b
	}
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(clamp255(v)))
}

// WithAlpha returns c with its alpha channel scaled by alpha/255.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8((uint16(c.A)*uint16(alpha) + 127) / 255)
	return c
}

// ColorFromARGB unpacks a 0xAARRGGBB integer, the layout hosts commonly
// persist colors in.
func ColorFromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ARGB packs c into a 0xAARRGGBB integer.
func ARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHex parses a color from a hex string.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with or without a
// leading '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("ruler: invalid hex color %q", hex)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// FormatHex formats c as "#RRGGBB", or "#RRGGBBAA" when c is translucent.
func FormatHex(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// parseHex accumulates the hex digits of s into val. It reports false on
// the first non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
