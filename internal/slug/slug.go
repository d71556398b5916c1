// Package slug produces the kebab-cased anchor identifiers used for
// in-page and cross-page heading links.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make lowercases text, folds diacritics to their ASCII base, strips
// non-word characters and turns whitespace runs into single hyphens.
func Make(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// punctuation is stripped, not hyphenated
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Path slugs each segment of a slash-separated path independently,
// keeping the separators. Output paths, navigation links and
// cross-reference URLs all derive from this so they agree.
func Path(p string) string {
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = Make(s)
	}
	return strings.Join(parts, "/")
}
