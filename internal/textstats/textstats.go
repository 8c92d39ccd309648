// Package textstats computes word-counter statistics for a block of text.
package textstats

import (
	"strings"
	"unicode"
)

const wordsPerMinute = 200

// Stats is the full word-counter readout.
type Stats struct {
	Characters        int `json:"characters"`
	CharactersNoSpace int `json:"characters_no_space"`
	Words             int `json:"words"`
	Sentences         int `json:"sentences"`
	Paragraphs        int `json:"paragraphs"`
	ReadingTimeMin    int `json:"reading_time_min"`
}

// Analyze computes all stats in one pass-ish over text. Reading time is
// ceil(words / 200wpm) with a floor of one minute for non-empty text.
func Analyze(text string) Stats {
	var s Stats
	s.Characters = len([]rune(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			s.CharactersNoSpace++
		}
	}
	s.Words = len(strings.Fields(text))
	s.Sentences = countSentences(text)
	s.Paragraphs = countParagraphs(text)
	if s.Words > 0 {
		s.ReadingTimeMin = (s.Words + wordsPerMinute - 1) / wordsPerMinute
	}
	return s
}

// countSentences counts runs of '.', '!' or '?' as one terminator each,
// so "Wait..." is a single sentence.
func countSentences(text string) int {
	count := 0
	inRun := false
	sawContent := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if !inRun && sawContent {
				count++
			}
			inRun = true
			sawContent = false
		case !unicode.IsSpace(r):
			inRun = false
			sawContent = true
		}
	}
	if sawContent {
		count++
	}
	return count
}

func countParagraphs(text string) int {
	count := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
