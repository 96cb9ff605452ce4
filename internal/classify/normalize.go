package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes, removes combining marks, and recomposes, so
// "Conjuréd" compares equal to "Conjured".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalise canonicalises a raw item name for comparison: lower-case,
// accents stripped, punctuation removed, internal whitespace runs
// collapsed to one space. Alphanumerics and spaces survive, nothing
// else does. Empty or whitespace-only input normalises to "".
func Normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	folded, _, err := transform.String(stripAccents, raw)
	if err == nil {
		raw = folded
	}
	var b strings.Builder
	b.Grow(len(raw))
	lastSpace := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
		}
		lastSpace = true
	}
	return strings.TrimSpace(b.String())
}

func tokenise(normalised string) []string {
	if normalised == "" {
		return nil
	}
	return strings.Fields(normalised)
}
