package cover

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	lineHeightFactor = 1.2
	subtitleGap      = 10.0
	authorGap        = 30.0
	subtitleScale    = 0.4
	authorScale      = 0.35
	strokeWidth      = 2.0
)

// textBlock is the measured title/subtitle/author stack for one render.
type textBlock struct {
	lines      []string
	titleSize  float64
	lineHeight float64

	subtitle string
	subSize  float64

	author     string
	authorSize float64

	height float64
}

// measureBlock wraps the title for the layout's width and sums the block
// height. Only present elements contribute, but a present element always
// pays its fixed gap.
func measureBlock(dc *gg.Context, s CoverSettings, l Layout) textBlock {
	b := textBlock{
		titleSize: s.FontSize * l.FontScale,
	}
	b.lineHeight = b.titleSize * lineHeightFactor

	dc.SetFontFace(FaceFor(s.Font, b.titleSize))
	b.lines = WrapText(s.Title, l.MaxTextWidth, func(str string) float64 {
		w, _ := dc.MeasureString(str)
		return w
	})
	b.height = float64(len(b.lines)) * b.lineHeight

	if s.Subtitle != "" {
		b.subtitle = s.Subtitle
		b.subSize = s.FontSize * subtitleScale
		b.height += subtitleGap + b.subSize*lineHeightFactor
	}
	if s.Author != "" && s.ShowAuthor {
		b.author = "by " + s.Author
		b.authorSize = s.FontSize * authorScale
		b.height += authorGap + b.authorSize*lineHeightFactor
	}
	return b
}

// drawText paints the whole block. The block is vertically centered on
// the layout's TextY, or stacked upward from it for bottom anchors.
func (r *Renderer) drawText(dc *gg.Context, s CoverSettings, l Layout) {
	b := measureBlock(dc, s, l)

	top := l.TextY - b.height/2
	if l.Anchor == AnchorBottom {
		top = l.TextY - b.height
	}

	x, ax := anchorX(l)
	titleColor, err := ParseHex(s.TextColor)
	if err != nil {
		titleColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}

	titleFace := FaceFor(s.Font, b.titleSize)
	titleBottom := top + float64(len(b.lines))*b.lineHeight
	drawLines := func(tc *gg.Context, dx, dy float64) {
		tc.SetFontFace(titleFace)
		y := top + b.lineHeight/2
		for _, line := range b.lines {
			tc.DrawStringAnchored(line, x+dx, y+dy, ax, 0.5)
			y += b.lineHeight
		}
	}

	switch l.Fill {
	case FillStroke:
		r.strokeTitle(dc, drawLines, titleColor)
	case FillGradient:
		paint := titlePaint(l, s, top, titleBottom)
		r.paintTitleThroughMask(dc, drawLines, paint)
	default:
		dc.SetColor(titleColor)
		drawLines(dc, 0, 0)
	}

	y := titleBottom
	if b.subtitle != "" {
		y += subtitleGap
		subHeight := b.subSize * lineHeightFactor
		dc.SetFontFace(FaceFor(s.Font, b.subSize))
		dc.SetRGBA255(int(titleColor.R), int(titleColor.G), int(titleColor.B), 204)
		dc.DrawStringAnchored(b.subtitle, x, y+subHeight/2, ax, 0.5)
		y += subHeight
	}
	if b.author != "" {
		y += authorGap
		authorHeight := b.authorSize * lineHeightFactor
		dc.SetFontFace(FaceFor(s.Font, b.authorSize))
		dc.SetRGBA255(int(titleColor.R), int(titleColor.G), int(titleColor.B), 178)
		dc.DrawStringAnchored(b.author, x, y+authorHeight/2, ax, 0.5)
	}
}

// titlePaint returns the fill paint for the title: a vertical gradient
// from the text color down to the same color darkened by 50 for the
// gradient-text theme, a solid otherwise.
func titlePaint(l Layout, s CoverSettings, top, bottom float64) gg.Pattern {
	if l.Fill == FillGradient {
		from, errFrom := ParseHex(s.TextColor)
		to, errTo := ParseHex(AdjustColor(s.TextColor, -50))
		if errFrom == nil && errTo == nil {
			grad := gg.NewLinearGradient(0, top, 0, bottom)
			grad.AddColorStop(0, from)
			grad.AddColorStop(1, to)
			return grad
		}
	}
	c, err := ParseHex(s.TextColor)
	if err != nil {
		c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return gg.NewSolidPattern(c)
}

// paintTitleThroughMask renders the title glyphs offscreen, turns them
// into an alpha mask, and fills the paint through it. gg draws text with
// a flat color only, so patterned fills go through a mask composite.
func (r *Renderer) paintTitleThroughMask(dc *gg.Context, draw func(*gg.Context, float64, float64), paint gg.Pattern) {
	w, h := dc.Width(), dc.Height()

	glyphs := gg.NewContext(w, h)
	glyphs.SetRGB(1, 1, 1)
	draw(glyphs, 0, 0)

	fill := gg.NewContext(w, h)
	if err := fill.SetMask(glyphs.AsMask()); err != nil {
		return
	}
	fill.SetFillStyle(paint)
	fill.DrawRectangle(0, 0, float64(w), float64(h))
	fill.Fill()

	dc.DrawImage(fill.Image(), 0, 0)
}

// strokeTitle draws outline-only glyphs: the union of eight offset
// copies minus the center copy leaves a ring the stroke width wide, and
// the background stays visible inside each glyph.
func (r *Renderer) strokeTitle(dc *gg.Context, draw func(*gg.Context, float64, float64), col color.NRGBA) {
	w, h := dc.Width(), dc.Height()

	outer := gg.NewContext(w, h)
	outer.SetRGB(1, 1, 1)
	for _, off := range strokeOffsets(strokeWidth) {
		draw(outer, off[0], off[1])
	}

	inner := gg.NewContext(w, h)
	inner.SetRGB(1, 1, 1)
	draw(inner, 0, 0)

	ring := subtractMask(outer.AsMask(), inner.AsMask())

	fill := gg.NewContext(w, h)
	if err := fill.SetMask(ring); err != nil {
		return
	}
	fill.SetColor(col)
	fill.DrawRectangle(0, 0, float64(w), float64(h))
	fill.Fill()

	dc.DrawImage(fill.Image(), 0, 0)
}

func strokeOffsets(lw float64) [][2]float64 {
	d := lw * 0.7071 // lw / sqrt(2)
	return [][2]float64{
		{lw, 0}, {-lw, 0}, {0, lw}, {0, -lw},
		{d, d}, {d, -d}, {-d, d}, {-d, -d},
	}
}

// subtractMask returns outer scaled down by inner's coverage, leaving
// only the ring between the dilated and original glyph shapes.
func subtractMask(outer, inner *image.Alpha) *image.Alpha {
	out := image.NewAlpha(outer.Bounds())
	for i := range outer.Pix {
		o := uint32(outer.Pix[i])
		in := uint32(inner.Pix[i])
		out.Pix[i] = uint8(o * (255 - in) / 255)
	}
	return out
}

func anchorX(l Layout) (x, ax float64) {
	switch l.Align {
	case AlignLeft:
		return l.TextX, 0
	case AlignRight:
		return l.TextX, 1
	default:
		return l.TextX, 0.5
	}
}
