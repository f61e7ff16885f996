// ABOUTME: Derives a country code from a URL's registrable domain suffix
// ABOUTME: Public-suffix-aware so .co.uk resolves to uk, not co

package locale

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ExtractCountry returns the two-letter lowercase country code implied by
// the URL's public suffix, or "" when no country can be determined.
//
// The suffix's last dot-delimited label is the candidate: ".sn" gives "sn",
// ".co.uk" gives "uk". A ".com" suffix maps to "us" — a business rule
// inherited from the query surface, not a geographic fact. Every other
// suffix (".org", three-letter TLDs) is undetermined.
func ExtractCountry(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := u.Hostname()
	if host == "" {
		// Tolerate bare hosts like "site.sn/x" passed without a scheme.
		host = strings.SplitN(rawURL, "/", 2)[0]
	}
	if host == "" {
		return ""
	}

	suffix, _ := publicsuffix.PublicSuffix(strings.ToLower(host))
	if suffix == "" {
		return ""
	}

	labels := strings.Split(suffix, ".")
	last := labels[len(labels)-1]

	if len(last) == 2 && isAlpha(last) {
		return last
	}
	if last == "com" {
		return "us"
	}
	return ""
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
