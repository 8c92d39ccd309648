package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	s := CoverSettings{Title: "x"}.Normalize()
	assert.Equal(t, "twitter", s.Size)
	assert.Equal(t, DefaultGradientID, s.Gradient)
	assert.Equal(t, PatternNone, s.Pattern)
	assert.Equal(t, ThemeCentered, s.Theme)
	assert.Equal(t, DefaultFontID, s.Font)
	assert.Equal(t, "#ffffff", s.TextColor)
	assert.Equal(t, "center", s.TextAlign)
	assert.Equal(t, 64.0, s.FontSize)
	assert.Equal(t, 60.0, s.Padding)
	assert.Equal(t, 80.0, s.LogoSize)
	assert.Equal(t, "none", s.DevIcon)
	assert.False(t, s.hasIcon())
}

func TestNormalizeCustomLogoWins(t *testing.T) {
	s := CoverSettings{DevIcon: "go", CustomLogo: "logo.png"}.Normalize()
	assert.Equal(t, "none", s.DevIcon)
	assert.True(t, s.hasIcon())
}

func TestNormalizeKeepsExplicitGradientOverride(t *testing.T) {
	s := CoverSettings{GradientFrom: "#111111", GradientTo: "#222222"}.Normalize()
	assert.Empty(t, s.Gradient, "explicit two-color override must not be replaced by a preset")

	g := resolveGradient(s)
	assert.Equal(t, []string{"#111111", "#222222"}, g.colors)
	assert.Equal(t, DefaultGradientAngle, g.angle)
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	orig := CoverSettings{Title: "x"}
	_ = orig.Normalize()
	assert.Empty(t, orig.Size)
}
