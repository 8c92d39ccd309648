package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupGradientFallback(t *testing.T) {
	p := LookupGradient("no-such-preset")
	assert.Equal(t, DefaultGradientID, p.ID)
	assert.Equal(t, []string{"#667eea", "#764ba2"}, p.Colors)
	assert.Equal(t, 135.0, DefaultGradientAngle)
}

func TestLookupSizeFallback(t *testing.T) {
	p := LookupSize("no-such-size")
	assert.Equal(t, "twitter", p.ID)
	assert.Equal(t, 1200, p.Width)
	assert.Equal(t, 675, p.Height)
}

func TestFilterGradientsByCategory(t *testing.T) {
	out := FilterGradients(PresetFilter{Category: "dark"})
	assert.NotEmpty(t, out)
	for _, p := range out {
		assert.Equal(t, "dark", p.Category)
	}
}

func TestFilterGradientsFreeWords(t *testing.T) {
	out := FilterGradients(PresetFilter{FreeWords: "purple"})
	ids := []string{}
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "purple-blue")

	assert.Empty(t, FilterGradients(PresetFilter{FreeWords: "zzzz"}))
}

func TestFilterSizesMultiWordQuery(t *testing.T) {
	// every word must match somewhere
	assert.NotEmpty(t, FilterSizes(PresetFilter{FreeWords: "youtube video"}))
	assert.Empty(t, FilterSizes(PresetFilter{FreeWords: "youtube blog"}))
}

func TestRegisteredPresetsAreVisible(t *testing.T) {
	RegisterGradient(GradientPreset{
		ID: "test-neon", Name: "Neon", Colors: []string{"#00ff00", "#ff00ff"}, Category: "custom",
	})
	p := LookupGradient("test-neon")
	assert.Equal(t, "test-neon", p.ID)
	assert.NotEmpty(t, FilterGradients(PresetFilter{FreeWords: "neon"}))
}
