package cover

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHex parses "#rgb" or "#rrggbb" (leading '#' optional).
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// FormatHex renders c as "#rrggbb", dropping alpha.
func FormatHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// AdjustColor shifts every channel of a hex color by amount, clamping to
// [0, 255]. amount 0 is the identity. Unparseable input is returned
// unchanged so callers never have to branch on bad colors.
func AdjustColor(hex string, amount int) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	c.R = clampChannel(int(c.R) + amount)
	c.G = clampChannel(int(c.G) + amount)
	c.B = clampChannel(int(c.B) + amount)
	return FormatHex(c)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
