package sr3d

import (
	"fmt"
	"math"
)

// Color is an opaque 24-bit color stored in blue-green-red order,
// the byte order of a BMP pixel row.
type Color struct {
	B, G, R uint8
}

// RGB creates a color from 8-bit red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color{B: b, G: g, R: r}
}

// RGBf creates a color from components in the range [0, 1].
// Components are scaled by 255, rounded half to even and clamped.
func RGBf(r, g, b float64) Color {
	return Color{
		B: uint8(clamp255(math.RoundToEven(b * 255))),
		G: uint8(clamp255(math.RoundToEven(g * 255))),
		R: uint8(clamp255(math.RoundToEven(r * 255))),
	}
}

// Grey creates a color with all three channels set to v.
func Grey(v uint8) Color {
	return Color{B: v, G: v, R: v}
}

// Hex parses a color from a hex string.
// Supports formats "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	default:
		ok = false
	}
	if !ok {
		return Color{}, fmt.Errorf("sr3d: invalid hex color %q", hex)
	}
	return RGB(uint8(r), uint8(g), uint8(b)), nil //nolint:gosec // at most 0xff
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
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

// Bytes returns the color as it is laid out in the pixel buffer.
func (c Color) Bytes() [3]byte {
	return [3]byte{c.B, c.G, c.R}
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
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

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
)
