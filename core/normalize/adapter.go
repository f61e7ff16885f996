// ABOUTME: Declarative per-source field mapping from raw records to canonical fields
// ABOUTME: The only source-aware part of the pipeline; everything else is shape-agnostic

package normalize

import (
	"encoding/json"
	"fmt"
	"time"

	"mediawatch-api/core/domain"
)

// FieldMap declares where a source keeps each canonical field inside its raw
// records. Candidate names are tried in priority order, mirroring how the
// sources themselves fall back (e.g. "published" then "publishedAt" then
// "date").
type FieldMap struct {
	// Service is the origin tag stamped on every emitted item
	Service string

	// ID candidates; when none is present the resolved URL stands in
	ID []string

	// Title candidates
	Title []string

	// Description candidates (summary, selftext, snippet, ...)
	Description []string

	// URL candidates
	URL []string

	// Date candidates; values may be strings or epoch seconds
	Date []string

	// URLTemplate builds a URL from the item ID for sources that return
	// identifiers instead of links (e.g. a video or status ID)
	URLTemplate string
}

// firstString returns the first candidate field holding a non-empty string.
func firstString(item domain.RawItem, candidates []string) string {
	for _, name := range candidates {
		if s := item.String(name); s != "" {
			return s
		}
	}
	return ""
}

// ResolveID returns the source-native identifier, falling back to the
// canonical URL when the source has no ID of its own.
func (m FieldMap) ResolveID(item domain.RawItem) string {
	for _, name := range m.ID {
		switch v := item[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		case json.Number:
			return v.String()
		}
	}
	return m.ResolveURL(item)
}

// ResolveURL returns the item's canonical link, building one from the ID
// template when the source only carries identifiers.
func (m FieldMap) ResolveURL(item domain.RawItem) string {
	if u := firstString(item, m.URL); u != "" {
		return u
	}
	if m.URLTemplate != "" {
		if id := firstString(item, m.ID); id != "" {
			return fmt.Sprintf(m.URLTemplate, id)
		}
	}
	return ""
}

// ResolveTitle returns the item's headline.
func (m FieldMap) ResolveTitle(item domain.RawItem) string {
	return firstString(item, m.Title)
}

// ResolveDescription returns the item's summary or body, possibly empty.
func (m FieldMap) ResolveDescription(item domain.RawItem) string {
	return firstString(item, m.Description)
}

// DateValue returns the raw date carried by the item. Numeric values are
// epoch seconds and come back as a time directly; string values need
// resolution. ok is false when the item carries no date at all — such items
// are dropped before normalization per the canonical-record invariant.
func (m FieldMap) DateValue(item domain.RawItem) (t time.Time, raw string, ok bool) {
	for _, name := range m.Date {
		switch v := item[name].(type) {
		case string:
			if v != "" {
				return time.Time{}, v, true
			}
		case float64:
			return time.Unix(int64(v), 0).UTC(), "", true
		case int64:
			return time.Unix(v, 0).UTC(), "", true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return time.Unix(int64(f), 0).UTC(), "", true
			}
		}
	}
	return time.Time{}, "", false
}
