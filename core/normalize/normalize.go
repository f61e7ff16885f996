// ABOUTME: Normalizer maps raw source records into canonical items in one pass
// ABOUTME: Applies date window, query, exclusion, language and country filters in order

package normalize

import (
	"strings"
	"time"

	"mediawatch-api/core/dates"
	"mediawatch-api/core/domain"
	"mediawatch-api/core/language"
	"mediawatch-api/core/locale"
	"mediawatch-api/core/match"
)

// Normalizer turns raw fetch results into filtered canonical items.
type Normalizer struct {
	detector *language.Detector
}

// New creates a normalizer using the given language detector.
func New(detector *language.Detector) *Normalizer {
	return &Normalizer{detector: detector}
}

// Apply runs the full filter chain over raw items, emitting canonical items
// in the raw (source-determined) order. Per-item failures never abort the
// pass: an item either survives every filter or is silently dropped.
//
// The normalizer does not cap the result count; bounding the fetch volume is
// the upstream fetcher's job, and capping here would silently under-fill
// when filters drop many items.
func (n *Normalizer) Apply(raw []domain.RawItem, m FieldMap, q domain.Query, now time.Time) []domain.Item {
	items := make([]domain.Item, 0, len(raw))

	for _, r := range raw {
		title := m.ResolveTitle(r)
		desc := m.ResolveDescription(r)
		text := compositeText(title, desc)

		// Machine timestamps (epoch seconds) arrive resolved; string
		// dates go through the lenient resolver. Items with no date
		// value at all can never satisfy the timestamp invariant.
		ts, rawDate, ok := m.DateValue(r)
		if !ok {
			continue
		}
		if ts.IsZero() {
			ts = dates.Resolve(rawDate, now)
		}

		if !q.InWindow(ts) {
			continue
		}

		if !match.Matches(q.Raw, text) {
			continue
		}

		if match.ContainsAny(text, q.Excludes) {
			continue
		}

		lang := n.detector.Detect(text)
		if q.Language != "" && lang != q.Language {
			continue
		}

		url := m.ResolveURL(r)
		country := locale.ExtractCountry(url)
		if q.Country != "" && country != q.Country {
			continue
		}

		items = append(items, domain.Item{
			Service:     m.Service,
			ID:          m.ResolveID(r),
			Title:       title,
			Description: desc,
			URL:         url,
			Timestamp:   ts,
			Language:    lang,
			Country:     country,
		})
	}

	return items
}

// compositeText joins title and description for text filtering, eliding
// empty parts.
func compositeText(title, desc string) string {
	switch {
	case title == "":
		return desc
	case desc == "":
		return title
	default:
		return title + "\n\n" + desc
	}
}

// Strings used by filters are compared lowercased throughout; normalize the
// caller-supplied language/country filters once at the boundary.
func CanonicalFilter(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
