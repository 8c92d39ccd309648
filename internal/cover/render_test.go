package cover

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloSettings() CoverSettings {
	return CoverSettings{
		Title:     "Hello World",
		Size:      "twitter",
		Gradient:  "purple-blue",
		Theme:     ThemeCentered,
		Font:      "inter",
		FontSize:  64,
		TextAlign: "center",
	}
}

func renderImage(t *testing.T, s CoverSettings) image.Image {
	t.Helper()
	img, err := NewRenderer().Render(context.Background(), s)
	require.NoError(t, err)
	return img
}

func assertNearColor(t *testing.T, img image.Image, x, y int, hex string, tol int) {
	t.Helper()
	want, err := ParseHex(hex)
	require.NoError(t, err)
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	for name, pair := range map[string][2]uint8{
		"r": {got.R, want.R}, "g": {got.G, want.G}, "b": {got.B, want.B},
	} {
		diff := int(pair[0]) - int(pair[1])
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, tol, "channel %s at (%d,%d): got %v want %v", name, x, y, got, want)
	}
}

func TestRenderDimensionsFollowPreset(t *testing.T) {
	img := renderImage(t, helloSettings())
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 675, img.Bounds().Dy())
}

func TestRenderCustomSize(t *testing.T) {
	s := helloSettings()
	s.Size = "custom"
	s.Width, s.Height = 640, 480
	img := renderImage(t, s)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestRenderRejectsUnusableSize(t *testing.T) {
	s := helloSettings()
	s.Size = "custom"
	s.Width, s.Height = 0, 0
	_, err := NewRenderer().Render(context.Background(), s)
	assert.Error(t, err)
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer()
	a, err := r.RenderPNG(context.Background(), helloSettings())
	require.NoError(t, err)
	b, err := r.RenderPNG(context.Background(), helloSettings())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "two renders of identical settings must be byte-identical")
}

func TestRenderBackgroundGradientEndpoints(t *testing.T) {
	// default 135deg runs top-right to bottom-left in y-down coords,
	// so the corners beyond the stops clamp to the end colors
	img := renderImage(t, helloSettings())
	assertNearColor(t, img, 1199, 0, "#667eea", 4)
	assertNearColor(t, img, 0, 674, "#764ba2", 4)
}

func TestRenderUnknownGradientFallsBack(t *testing.T) {
	s := helloSettings()
	s.Gradient = "definitely-not-a-preset"
	img := renderImage(t, s)
	assertNearColor(t, img, 1199, 0, "#667eea", 4)
	assertNearColor(t, img, 0, 674, "#764ba2", 4)
}

func TestHelloWorldFitsOneLine(t *testing.T) {
	s := helloSettings().Normalize()
	dc := gg.NewContext(1200, 675)
	b := measureBlock(dc, s, ResolveLayout(s, 1200, 675))
	assert.Len(t, b.lines, 1)
	assert.Equal(t, 64*lineHeightFactor, b.height)
}

func TestLongTitleWrapsAndGrows(t *testing.T) {
	short := helloSettings().Normalize()
	long := short
	long.Title = "A Considerably Longer Title That Cannot Possibly Fit On One Line"

	dc := gg.NewContext(1200, 675)
	layout := ResolveLayout(short, 1200, 675)
	shortBlock := measureBlock(dc, short, layout)
	longBlock := measureBlock(dc, long, layout)

	assert.GreaterOrEqual(t, len(longBlock.lines), 2)
	assert.Greater(t, longBlock.height, shortBlock.height)
	assert.Less(t, longBlock.height, 675.0, "block must stay inside the canvas")
}

func TestBlockHeightGapAccounting(t *testing.T) {
	s := helloSettings().Normalize()
	s.Subtitle = "a subtitle"
	s.Author = "someone"
	s.ShowAuthor = true

	dc := gg.NewContext(1200, 675)
	b := measureBlock(dc, s, ResolveLayout(s, 1200, 675))

	title := float64(len(b.lines)) * 64 * lineHeightFactor
	sub := subtitleGap + 64*subtitleScale*lineHeightFactor
	author := authorGap + 64*authorScale*lineHeightFactor
	assert.InDelta(t, title+sub+author, b.height, 0.001)
}

func TestTitlePaintGradientText(t *testing.T) {
	s := helloSettings().Normalize()
	p := titlePaint(Layout{Fill: FillGradient}, s, 100, 300)
	_, isGradient := p.(gg.Gradient)
	assert.True(t, isGradient, "gradient-text must paint with a gradient, not a flat color")

	p = titlePaint(Layout{Fill: FillSolid}, s, 100, 300)
	_, isGradient = p.(gg.Gradient)
	assert.False(t, isGradient)
}

func TestOutlinedDiffersFromSolid(t *testing.T) {
	solid := helloSettings()
	outlined := helloSettings()
	outlined.Theme = ThemeOutlined

	a := renderImage(t, solid).(*image.RGBA)
	b := renderImage(t, outlined).(*image.RGBA)
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestSubtractMaskLeavesRingOnly(t *testing.T) {
	outer := image.NewAlpha(image.Rect(0, 0, 4, 1))
	inner := image.NewAlpha(image.Rect(0, 0, 4, 1))
	outer.Pix = []uint8{255, 255, 255, 0}
	inner.Pix = []uint8{0, 255, 128, 0}

	ring := subtractMask(outer, inner)
	assert.Equal(t, uint8(255), ring.Pix[0], "outside glyph keeps dilated coverage")
	assert.Equal(t, uint8(0), ring.Pix[1], "glyph interior is erased")
	assert.Equal(t, uint8(127), ring.Pix[2], "partial coverage scales down")
	assert.Equal(t, uint8(0), ring.Pix[3])
}

func TestCardBackdropChangesPixels(t *testing.T) {
	plain := helloSettings()
	card := helloSettings()
	card.Theme = ThemeCard

	a := renderImage(t, plain).(*image.RGBA)
	b := renderImage(t, card).(*image.RGBA)
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestBadLogoIsSkippedNotFatal(t *testing.T) {
	s := helloSettings()
	s.CustomLogo = "/no/such/file.png"
	img := renderImage(t, s)
	assert.Equal(t, 1200, img.Bounds().Dx())

	s.CustomLogo = "data:image/png;base64,!!!not-base64!!!"
	img = renderImage(t, s)
	assert.Equal(t, 1200, img.Bounds().Dx())
}

func TestFetchedLogoIsComposited(t *testing.T) {
	logo := gg.NewContext(16, 16)
	logo.SetRGB(1, 0, 0)
	logo.Clear()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, logo.Image()))

	s := helloSettings()
	s.CustomLogo = "https://logos.test/red.png"

	withLogo := NewRenderer(WithFetch(func(ctx context.Context, url string) ([]byte, error) {
		return buf.Bytes(), nil
	}))
	withoutLogo := NewRenderer(WithFetch(func(ctx context.Context, url string) ([]byte, error) {
		return nil, errors.New("unreachable")
	}))

	a, err := withLogo.Render(context.Background(), s)
	require.NoError(t, err)
	b, err := withoutLogo.Render(context.Background(), s)
	require.NoError(t, err)
	assert.NotEqual(t, a.(*image.RGBA).Pix, b.(*image.RGBA).Pix)
}

func TestExplicitZeroAngleIsHonored(t *testing.T) {
	angle := 0.0
	s := CoverSettings{
		Title:         "Hello",
		Size:          "custom",
		Width:         400,
		Height:        200,
		GradientFrom:  "#ff0000",
		GradientTo:    "#0000ff",
		GradientAngle: &angle,
	}

	spec := resolveGradient(s.Normalize())
	assert.Equal(t, 0.0, spec.angle, "an explicit 0 degree angle must not fall back to the default")

	// 0 degrees is horizontal: color runs left to right with no
	// vertical variation
	img := renderImage(t, s)
	assertNearColor(t, img, 0, 100, "#ff0000", 4)
	assertNearColor(t, img, 399, 100, "#0000ff", 4)
	top := color.NRGBAModel.Convert(img.At(200, 0)).(color.NRGBA)
	bottom := color.NRGBAModel.Convert(img.At(200, 199)).(color.NRGBA)
	assert.Equal(t, top, bottom)
}

func TestBadgeAbbrevRuneSafe(t *testing.T) {
	assert.Equal(t, "GO", badgeAbbrev("go"))
	assert.Equal(t, "RU", badgeAbbrev("rust"))
	assert.Equal(t, "A", badgeAbbrev("a"))
	assert.Equal(t, "日本", badgeAbbrev("日本語"))
	assert.True(t, utf8.ValidString(badgeAbbrev("étoile")))
}

func TestBadgeMultibyteIconRenders(t *testing.T) {
	s := helloSettings()
	s.DevIcon = "日本語"
	img := renderImage(t, s)
	assert.Equal(t, 1200, img.Bounds().Dx())
}

func TestOutlinedGlyphInteriorKeepsBackground(t *testing.T) {
	base := CoverSettings{
		Title:        "H",
		Size:         "custom",
		Width:        400,
		Height:       400,
		GradientFrom: "#204060",
		GradientTo:   "#204060",
		FontSize:     200,
		TextColor:    "#ffffff",
	}
	solid := base
	solid.Theme = ThemeCentered
	outlined := base
	outlined.Theme = ThemeOutlined

	a := renderImage(t, solid)
	b := renderImage(t, outlined)

	// find a pixel deep inside the glyph body: fully text-colored in
	// the solid render along with its whole 5x5 neighborhood
	deepInterior := func(x, y int) bool {
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				c := color.NRGBAModel.Convert(a.At(x+dx, y+dy)).(color.NRGBA)
				if c.R < 250 || c.G < 250 || c.B < 250 {
					return false
				}
			}
		}
		return true
	}

	found := false
	for y := 150; y <= 250 && !found; y++ {
		for x := 150; x <= 250 && !found; x++ {
			if deepInterior(x, y) {
				// the same spot must show the background through
				// the outlined glyph
				assertNearColor(t, b, x, y, "#204060", 8)
				found = true
			}
		}
	}
	require.True(t, found, "no glyph-interior pixel located in the solid render")
}

func TestBadgeDrawnForDevIcon(t *testing.T) {
	plain := helloSettings()
	badged := helloSettings()
	badged.DevIcon = "go"

	a := renderImage(t, plain).(*image.RGBA)
	b := renderImage(t, badged).(*image.RGBA)
	assert.NotEqual(t, a.Pix, b.Pix)
}
