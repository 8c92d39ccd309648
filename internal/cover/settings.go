package cover

// CoverSettings is the full input to one render. The UI (or CLI) builds a
// fresh value per edit; the pipeline never mutates it.
type CoverSettings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Author   string `json:"author,omitempty"`

	Size   string `json:"size"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	Gradient     string `json:"gradient"`
	GradientFrom string `json:"gradient_from,omitempty"`
	GradientTo   string `json:"gradient_to,omitempty"`
	// GradientAngle is degrees in [0, 360]. nil means "not chosen",
	// which is distinct from an explicit 0 (horizontal).
	GradientAngle *float64 `json:"gradient_angle,omitempty"`

	Pattern        string  `json:"pattern"`
	PatternOpacity float64 `json:"pattern_opacity,omitempty"`

	Theme string `json:"theme"`
	Font  string `json:"font"`

	TextColor  string  `json:"text_color"`
	TextAlign  string  `json:"text_align"`
	FontSize   float64 `json:"font_size"`
	Padding    float64 `json:"padding"`
	ShowAuthor bool    `json:"show_author"`

	// DevIcon selects a built-in badge; CustomLogo is a data URL, http(s)
	// URL or local path. When both are set CustomLogo wins.
	DevIcon    string  `json:"dev_icon,omitempty"`
	CustomLogo string  `json:"custom_logo,omitempty"`
	LogoSize   float64 `json:"logo_size,omitempty"`
}

// Normalize fills documented defaults and enforces the icon exclusivity
// rule. It returns a copy; the receiver is untouched.
func (s CoverSettings) Normalize() CoverSettings {
	if s.Size == "" {
		s.Size = "twitter"
	}
	if s.Gradient == "" && s.GradientFrom == "" {
		s.Gradient = DefaultGradientID
	}
	if s.Pattern == "" {
		s.Pattern = PatternNone
	}
	if s.PatternOpacity <= 0 || s.PatternOpacity > 1 {
		s.PatternOpacity = 0.1
	}
	if s.Theme == "" {
		s.Theme = ThemeCentered
	}
	if s.Font == "" {
		s.Font = DefaultFontID
	}
	if s.TextColor == "" {
		s.TextColor = "#ffffff"
	}
	if s.TextAlign != "left" && s.TextAlign != "right" {
		s.TextAlign = "center"
	}
	if s.FontSize <= 0 {
		s.FontSize = 64
	}
	if s.Padding <= 0 {
		s.Padding = 60
	}
	if s.LogoSize <= 0 {
		s.LogoSize = 80
	}
	if s.DevIcon == "" {
		s.DevIcon = "none"
	}
	if s.CustomLogo != "" {
		s.DevIcon = "none"
	}
	return s
}

func (s CoverSettings) hasIcon() bool {
	return s.CustomLogo != "" || s.DevIcon != "none"
}

// dimensions resolves the target surface size. Unknown preset ids fall
// back to the default preset; "custom" uses the explicit fields.
func (s CoverSettings) dimensions() (int, int) {
	if s.Size == "custom" {
		return s.Width, s.Height
	}
	p := LookupSize(s.Size)
	return p.Width, p.Height
}
