package cover

import (
	"math"

	"github.com/fogleman/gg"
)

// gradientSpec is the resolved background: ordered stops plus an angle in
// degrees, screen coordinate convention (0 = horizontal, 90 = vertical,
// y grows downward).
type gradientSpec struct {
	colors []string
	angle  float64
}

// resolveGradient picks the explicit two-color override when present,
// otherwise the preset (with fallback for unknown ids).
func resolveGradient(s CoverSettings) gradientSpec {
	angle := DefaultGradientAngle
	if s.GradientAngle != nil {
		angle = *s.GradientAngle
	}
	if s.GradientFrom != "" && s.GradientTo != "" {
		return gradientSpec{colors: []string{s.GradientFrom, s.GradientTo}, angle: angle}
	}
	p := LookupGradient(s.Gradient)
	return gradientSpec{colors: p.Colors, angle: angle}
}

// backgroundPaint builds the gg gradient for the full surface. Stops sit
// at i/(n-1), so a 3-color gradient has its middle stop exactly halfway.
func backgroundPaint(spec gradientSpec, w, h float64) gg.Gradient {
	rad := gg.Radians(spec.angle)
	cx, cy := w/2, h/2
	dx := math.Cos(rad) * w / 2
	dy := math.Sin(rad) * h / 2

	grad := gg.NewLinearGradient(cx-dx, cy-dy, cx+dx, cy+dy)
	n := len(spec.colors)
	for i, hex := range spec.colors {
		c, err := ParseHex(hex)
		if err != nil {
			continue
		}
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		grad.AddColorStop(offset, c)
	}
	return grad
}

func drawBackground(dc *gg.Context, spec gradientSpec) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFillStyle(backgroundPaint(spec, w, h))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}
