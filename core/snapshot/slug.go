// ABOUTME: Converts arbitrary query strings into filesystem/key-safe slugs
// ABOUTME: Unicode-normalizes, strips diacritics, and collapses separators

package snapshot

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UntitledSlug is the reserved key for queries that slug to nothing, so the
// key space never collides with an accidentally empty name.
const UntitledSlug = "untitled"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// stripDiacritics decomposes characters and removes combining marks, so
// "Diomayé" and "Diomayé" slug identically.
var stripDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a query string to a stable cache key: ASCII lowercase
// with runs of non-alphanumerics collapsed to single hyphens.
//
//	Slugify("Sonko, Diomaye Faye") == "sonko-diomaye-faye"
func Slugify(text string) string {
	if text == "" {
		return UntitledSlug
	}

	ascii, _, err := transform.String(stripDiacritics, text)
	if err != nil {
		ascii = text
	}

	// Anything outside ASCII after decomposition cannot appear in a key.
	var b strings.Builder
	for _, r := range ascii {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	slug := nonAlnum.ReplaceAllString(strings.ToLower(b.String()), "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return UntitledSlug
	}
	return slug
}
