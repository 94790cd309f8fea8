// Package normalizer cleans raw journal text into the form the TF-IDF
// vectorizer was trained on: lowercase ASCII words with stop words removed.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, strips accents, removes every rune that is not
// an ASCII letter or whitespace, and drops stop-word tokens. Surviving tokens
// are rejoined with single spaces. An empty result is valid: it means every
// token was a stop word (or the input had no letters at all).
func Normalize(text string, stop Set) string {
	text = strings.ToLower(text)
	text = stripAccents(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || isWhitespace(r) {
			b.WriteRune(r)
		}
	}

	var kept []string
	for _, tok := range strings.Fields(b.String()) {
		if stop.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// stripAccents removes combining diacritical marks after NFD normalization,
// so accented letters survive as their base ASCII letter.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
