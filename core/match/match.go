// ABOUTME: Query matching against free text with phrase and OR-keyword modes
// ABOUTME: A comma in the query switches from exact phrase to any-token matching

package match

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Matches reports whether text satisfies the query.
//
// An empty or whitespace-only query matches everything. A query containing a
// comma is OR-mode: each trimmed, lowercased token matches independently as a
// substring of text. Any other query is a single phrase that must appear
// contiguously after whitespace runs in both strings are collapsed.
//
// The comma dichotomy is a user-facing convention carried over from the
// query syntax: "jean,abraham,cena" matches any of the three, while
// "Jonh Abraham Cena" must appear unchanged.
func Matches(query, text string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	text = strings.ToLower(text)

	if strings.Contains(query, ",") {
		for _, token := range strings.Split(query, ",") {
			token = strings.TrimSpace(token)
			if token != "" && strings.Contains(text, token) {
				return true
			}
		}
		return false
	}

	normText := whitespace.ReplaceAllString(text, " ")
	normQuery := whitespace.ReplaceAllString(query, " ")
	return strings.Contains(normText, normQuery)
}

// ContainsAny reports whether any of the terms is a case-insensitive
// substring of text. Used for exclusion filtering; terms are expected
// pre-lowercased.
func ContainsAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	text = strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}
