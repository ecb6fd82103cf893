package lnftypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// NewColor packs the four channels into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// Opaque reports whether the alpha channel is fully set.
func (c Color) Opaque() bool { return c.A() == 0xff }

// Hex formats the color as #rrggbbaa, or #rrggbb when it is opaque.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// Colorful converts the RGB channels to a colorful.Color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}

// FromColorful packs a colorful.Color with the given alpha.
func FromColorful(cf colorful.Color, alpha uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return NewColor(r, g, b, alpha)
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa notations.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(0xff)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return 0, fmt.Errorf("invalid color %q: expected #rgb, #rrggbb or #rrggbbaa", s)
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(cf, alpha), nil
}
