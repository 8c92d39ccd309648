package cover

import "strings"

// SizePreset is a named output resolution.
type SizePreset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Category string `json:"category"`
}

// GradientPreset is a named 2- or 3-stop linear gradient.
type GradientPreset struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Category string   `json:"category"`
}

// Theme ids. Each one maps to a layout strategy in layout.go.
const (
	ThemeCentered     = "centered"
	ThemeModern       = "modern"
	ThemeCorner       = "corner"
	ThemeBold         = "bold"
	ThemeCard         = "card"
	ThemeGradientText = "gradient-text"
	ThemeOutlined     = "outlined"
	ThemeMinimal      = "minimal"
)

// Pattern ids. PatternNone is a no-op overlay.
const (
	PatternNone      = "none"
	PatternDots      = "dots"
	PatternGrid      = "grid"
	PatternDiagonal  = "diagonal"
	PatternWaves     = "waves"
	PatternCircuit   = "circuit"
	PatternCrosses   = "crosses"
	PatternTriangles = "triangles"
)

// DefaultGradientID is what an unknown gradient id falls back to.
const DefaultGradientID = "purple-blue"

// DefaultGradientAngle is used when the settings carry no angle.
const DefaultGradientAngle = 135.0

const defaultSizeID = "twitter"

var sizeCatalog = []SizePreset{
	{ID: "twitter", Name: "Twitter / X Post", Width: 1200, Height: 675, Category: "social"},
	{ID: "og", Name: "Open Graph", Width: 1200, Height: 630, Category: "social"},
	{ID: "facebook", Name: "Facebook Post", Width: 1200, Height: 630, Category: "social"},
	{ID: "linkedin", Name: "LinkedIn Post", Width: 1200, Height: 627, Category: "social"},
	{ID: "instagram", Name: "Instagram Post", Width: 1080, Height: 1080, Category: "social"},
	{ID: "youtube", Name: "YouTube Thumbnail", Width: 1280, Height: 720, Category: "video"},
	{ID: "devto", Name: "Dev.to Cover", Width: 1000, Height: 420, Category: "blog"},
	{ID: "hashnode", Name: "Hashnode Cover", Width: 1600, Height: 840, Category: "blog"},
	{ID: "medium", Name: "Medium Cover", Width: 1500, Height: 750, Category: "blog"},
	{ID: "custom", Name: "Custom", Category: "custom"},
}

var gradientCatalog = []GradientPreset{
	{ID: "purple-blue", Name: "Purple Blue", Colors: []string{"#667eea", "#764ba2"}, Category: "cool"},
	{ID: "ocean", Name: "Ocean", Colors: []string{"#2193b0", "#6dd5ed"}, Category: "cool"},
	{ID: "midnight", Name: "Midnight", Colors: []string{"#232526", "#414345"}, Category: "dark"},
	{ID: "deep-space", Name: "Deep Space", Colors: []string{"#000000", "#434343"}, Category: "dark"},
	{ID: "sunset", Name: "Sunset", Colors: []string{"#ff9a9e", "#fad0c4"}, Category: "warm"},
	{ID: "fire", Name: "Fire", Colors: []string{"#f12711", "#f5af19"}, Category: "warm"},
	{ID: "peach", Name: "Peach", Colors: []string{"#ffecd2", "#fcb69f"}, Category: "warm"},
	{ID: "forest", Name: "Forest", Colors: []string{"#11998e", "#38ef7d"}, Category: "nature"},
	{ID: "candy", Name: "Candy", Colors: []string{"#a18cd1", "#fbc2eb", "#fad0c4"}, Category: "pastel"},
	{ID: "aurora", Name: "Aurora", Colors: []string{"#00c9ff", "#92fe9d", "#f9f586"}, Category: "nature"},
	{ID: "royal", Name: "Royal", Colors: []string{"#141e30", "#243b55"}, Category: "dark"},
	{ID: "rose", Name: "Rose", Colors: []string{"#ee9ca7", "#ffdde1"}, Category: "pastel"},
}

// Themes lists every theme id in display order.
func Themes() []string {
	return []string{
		ThemeCentered, ThemeModern, ThemeCorner, ThemeBold,
		ThemeCard, ThemeGradientText, ThemeOutlined, ThemeMinimal,
	}
}

// Patterns lists every pattern id in display order.
func Patterns() []string {
	return []string{
		PatternNone, PatternDots, PatternGrid, PatternDiagonal,
		PatternWaves, PatternCircuit, PatternCrosses, PatternTriangles,
	}
}

// Sizes returns the size catalog, built-ins plus registered extras.
func Sizes() []SizePreset {
	out := make([]SizePreset, len(sizeCatalog))
	copy(out, sizeCatalog)
	return out
}

// Gradients returns the gradient catalog, built-ins plus registered extras.
func Gradients() []GradientPreset {
	out := make([]GradientPreset, len(gradientCatalog))
	copy(out, gradientCatalog)
	return out
}

// LookupSize resolves a size preset id. Unknown ids fall back to the
// default preset rather than erroring.
func LookupSize(id string) SizePreset {
	for _, p := range sizeCatalog {
		if p.ID == id {
			return p
		}
	}
	return LookupSize(defaultSizeID)
}

// LookupGradient resolves a gradient preset id. Unknown ids fall back to
// the default purple-blue gradient; callers never see a missing preset.
func LookupGradient(id string) GradientPreset {
	for _, p := range gradientCatalog {
		if p.ID == id {
			return p
		}
	}
	return GradientPreset{
		ID:       DefaultGradientID,
		Name:     "Purple Blue",
		Colors:   []string{"#667eea", "#764ba2"},
		Category: "cool",
	}
}

// RegisterSize appends a user-defined size preset to the catalog. Meant
// for startup-time loading only; the catalog is read-only afterwards.
func RegisterSize(p SizePreset) {
	sizeCatalog = append(sizeCatalog, p)
}

// RegisterGradient appends a user-defined gradient preset to the catalog.
func RegisterGradient(p GradientPreset) {
	gradientCatalog = append(gradientCatalog, p)
}

// PresetFilter narrows catalog listings for the presets endpoint.
type PresetFilter struct {
	Category  string `json:"category"`
	FreeWords string `json:"q"`
}

// FilterSizes returns the size presets matching f.
func FilterSizes(f PresetFilter) []SizePreset {
	var out []SizePreset
	for _, p := range Sizes() {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !matchesWords(f.FreeWords, p.ID, p.Name, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterGradients returns the gradient presets matching f.
func FilterGradients(f PresetFilter) []GradientPreset {
	var out []GradientPreset
	for _, p := range Gradients() {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !matchesWords(f.FreeWords, p.ID, p.Name, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesWords requires every query word to appear in one of the fields,
// case-insensitively. An empty query matches everything.
func matchesWords(query string, fields ...string) bool {
	for _, kw := range strings.Fields(query) {
		kw = strings.ToLower(kw)
		found := false
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
