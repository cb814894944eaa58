package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func HexToColor(hex uint32) color.RGBA {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseHexColor accepts "0xRRGGBB", "#RRGGBB" or "RRGGBB". An eight digit
// form carries alpha in the low byte.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")

	hex, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	switch len(raw) {
	case 6:
		c := HexToColor(uint32(hex))
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	case 8:
		return color.NRGBA{
			R: uint8(hex >> 24),
			G: uint8(hex >> 16),
			B: uint8(hex >> 8),
			A: uint8(hex),
		}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
}
