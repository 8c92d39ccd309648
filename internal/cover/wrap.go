package cover

import "strings"

// MeasureFunc reports the rendered pixel width of s for the active face.
type MeasureFunc func(s string) float64

// WrapText greedily packs whitespace-separated words into lines whose
// measured width stays within maxWidth. A single word wider than maxWidth
// is still placed alone on its own line; there is no hyphenation or
// truncation. Empty input yields no lines.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
