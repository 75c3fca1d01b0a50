package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "Café" comes out as "Cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns free text into a URL-safe identifier: accents stripped,
// lowercased, whitespace runs collapsed to a single hyphen and everything
// outside [a-z0-9_-] dropped. The result may be empty, e.g. for input that
// is only punctuation or emoji; callers must substitute a fallback then.
func Slugify(text string) string {
	s, _, err := transform.String(stripMarks, text)
	if err != nil {
		s = text
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			r = '-'
		case r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			// keep
		default:
			continue
		}
		if r == '-' {
			if lastHyphen {
				continue
			}
			lastHyphen = true
		} else {
			lastHyphen = false
		}
		b.WriteRune(r)
	}

	return strings.Trim(b.String(), "-")
}
