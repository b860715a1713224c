// Package slug derives URL-safe identifiers from document titles and holds the
// small state machine that decides when a title edit may overwrite the slug.
package slug

import (
	"strings"
	"unicode"
)

// Slugify lowercases title, drops every rune outside [a-z0-9], whitespace and
// '-', turns each whitespace run into a single hyphen and trims hyphens from
// both ends. It never fails and Slugify(Slugify(x)) == Slugify(x).
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	inSpace := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			inSpace = false
		}
	}
	return strings.Trim(b.String(), "-")
}
