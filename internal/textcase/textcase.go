// Package textcase converts text between naming and writing conventions.
package textcase

import (
	"fmt"
	"strings"
	"unicode"
)

// Modes lists every supported conversion id in display order.
func Modes() []string {
	return []string{
		"lower", "upper", "title", "sentence", "camel", "pascal",
		"snake", "constant", "kebab", "alternating", "inverse",
	}
}

// Convert applies the named conversion to s. Unknown modes error.
func Convert(mode, s string) (string, error) {
	switch mode {
	case "lower":
		return strings.ToLower(s), nil
	case "upper":
		return strings.ToUpper(s), nil
	case "title":
		return Title(s), nil
	case "sentence":
		return Sentence(s), nil
	case "camel":
		return Camel(s), nil
	case "pascal":
		return Pascal(s), nil
	case "snake":
		return Snake(s), nil
	case "constant":
		return strings.ToUpper(Snake(s)), nil
	case "kebab":
		return Kebab(s), nil
	case "alternating":
		return Alternating(s), nil
	case "inverse":
		return Inverse(s), nil
	}
	return "", fmt.Errorf("unknown case mode %q", mode)
}

// tokenize splits on whitespace, underscores, hyphens, and lower-to-upper
// boundaries, so "someHTTPValue_x" becomes [some HTTP Value x].
func tokenize(s string) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			cur = append(cur, r)
		case unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && len(cur) > 1:
			// end of an acronym run: "HTTPValue" -> HTTP | Value
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return tokens
}

// Title uppercases the first letter of every word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// Sentence lowercases everything, then uppercases the first letter of
// each sentence (after '.', '!' or '?').
func Sentence(s string) string {
	runes := []rune(strings.ToLower(s))
	upperNext := true
	for i, r := range runes {
		if upperNext && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			upperNext = false
		}
		if r == '.' || r == '!' || r == '?' {
			upperNext = true
		}
	}
	return string(runes)
}

// Camel joins tokens as lowerCamelCase.
func Camel(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		if i == 0 {
			tokens[i] = strings.ToLower(t)
		} else {
			tokens[i] = capitalize(strings.ToLower(t))
		}
	}
	return strings.Join(tokens, "")
}

// Pascal joins tokens as UpperCamelCase.
func Pascal(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = capitalize(strings.ToLower(t))
	}
	return strings.Join(tokens, "")
}

// Snake joins tokens with underscores, lowercased.
func Snake(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return strings.Join(tokens, "_")
}

// Kebab joins tokens with hyphens, lowercased.
func Kebab(s string) string {
	return strings.ReplaceAll(Snake(s), "_", "-")
}

// Alternating flips case letter by letter, starting lowercase.
func Alternating(s string) string {
	runes := []rune(s)
	upper := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if upper {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
		upper = !upper
	}
	return string(runes)
}

// Inverse swaps the case of every letter.
func Inverse(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
