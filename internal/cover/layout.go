package cover

// FillMode selects how the title glyphs are painted.
type FillMode int

const (
	FillSolid FillMode = iota
	FillStroke
	FillGradient
)

// Align is the horizontal text alignment resolved for the render.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAnchor says how TextY is interpreted: the vertical center of the text
// block, or the bottom edge it stacks up from.
type VAnchor int

const (
	AnchorCenter VAnchor = iota
	AnchorBottom
)

// Layout is the fully-resolved placement for one render. The text
// renderer does no theme branching of its own beyond Fill.
type Layout struct {
	IconX, IconY float64
	ShowIcon     bool

	TextX, TextY float64
	Anchor       VAnchor
	Align        Align
	MaxTextWidth float64

	FontScale    float64
	Fill         FillMode
	CardBackdrop bool
}

type layoutFunc func(s CoverSettings, w, h float64) Layout

// One strategy per theme, resolved once per render instead of
// re-branching inside every drawing step.
var themeLayouts = map[string]layoutFunc{
	ThemeCentered:     layoutCentered,
	ThemeBold:         layoutBold,
	ThemeCard:         layoutCard,
	ThemeGradientText: layoutGradientText,
	ThemeOutlined:     layoutOutlined,
	ThemeModern:       layoutModern,
	ThemeCorner:       layoutCorner,
	ThemeMinimal:      layoutMinimal,
}

// ResolveLayout computes icon and text placement for the given settings
// and surface size. It is a pure function: settings are never mutated and
// unknown theme ids resolve like "centered".
func ResolveLayout(s CoverSettings, w, h float64) Layout {
	fn, ok := themeLayouts[s.Theme]
	if !ok {
		fn = layoutCentered
	}
	return fn(s, w, h)
}

func layoutCentered(s CoverSettings, w, h float64) Layout {
	align := alignFromSettings(s)
	l := Layout{
		// TextX is the left edge, center, or right edge of each line
		// depending on Align.
		TextX:        w / 2,
		TextY:        h / 2,
		Anchor:       AnchorCenter,
		Align:        align,
		MaxTextWidth: w - 2*s.Padding,
		FontScale:    1,
		Fill:         FillSolid,
	}
	switch align {
	case AlignLeft:
		l.TextX = s.Padding
	case AlignRight:
		l.TextX = w - s.Padding
	}
	if s.hasIcon() {
		// Icon sits above the text block; the block shifts down to
		// keep the pair visually centered.
		l.ShowIcon = true
		l.IconX = w / 2
		l.IconY = h/2 - s.LogoSize/2 - s.FontSize*1.2
		l.TextY = h/2 + s.LogoSize/2
	}
	return l
}

func layoutBold(s CoverSettings, w, h float64) Layout {
	l := layoutCentered(s, w, h)
	l.FontScale = 1.3
	return l
}

func layoutCard(s CoverSettings, w, h float64) Layout {
	l := layoutCentered(s, w, h)
	l.CardBackdrop = true
	return l
}

func layoutGradientText(s CoverSettings, w, h float64) Layout {
	l := layoutCentered(s, w, h)
	l.Fill = FillGradient
	return l
}

func layoutOutlined(s CoverSettings, w, h float64) Layout {
	l := layoutCentered(s, w, h)
	l.Fill = FillStroke
	return l
}

func layoutModern(s CoverSettings, w, h float64) Layout {
	textX := s.Padding
	l := Layout{
		TextX:        textX,
		TextY:        h / 2,
		Anchor:       AnchorCenter,
		Align:        AlignLeft,
		MaxTextWidth: w - textX - s.Padding,
		FontScale:    1,
		Fill:         FillSolid,
	}
	if s.hasIcon() {
		l.ShowIcon = true
		l.IconX = s.Padding + s.LogoSize/2
		l.IconY = h / 2
		l.TextX = s.Padding + s.LogoSize + 40
		l.MaxTextWidth = w - l.TextX - s.Padding
	}
	return l
}

func layoutCorner(s CoverSettings, w, h float64) Layout {
	l := Layout{
		TextX:        s.Padding,
		TextY:        h - s.Padding,
		Anchor:       AnchorBottom,
		Align:        AlignLeft,
		MaxTextWidth: w - 2*s.Padding,
		FontScale:    1,
		Fill:         FillSolid,
	}
	if s.hasIcon() {
		l.ShowIcon = true
		l.IconX = s.Padding + s.LogoSize/2
		l.IconY = s.Padding + s.LogoSize/2
	}
	return l
}

func layoutMinimal(s CoverSettings, w, h float64) Layout {
	return Layout{
		TextX:        s.Padding,
		TextY:        h / 2,
		Anchor:       AnchorCenter,
		Align:        AlignLeft,
		MaxTextWidth: w - 2*s.Padding,
		FontScale:    1,
		Fill:         FillSolid,
	}
}

func alignFromSettings(s CoverSettings) Align {
	switch s.TextAlign {
	case "left":
		return AlignLeft
	case "right":
		return AlignRight
	default:
		return AlignCenter
	}
}
