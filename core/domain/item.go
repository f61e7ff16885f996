// ABOUTME: Item domain model represents a normalized content record from any source
// ABOUTME: RawItem is the opaque source-shaped record as returned by a fetcher

package domain

import "time"

// Item is the canonical, normalized content record. It is immutable once
// produced by the normalizer.
type Item struct {
	// Service identifies the originating source (e.g. "rss", "press")
	Service string `json:"service"`

	// ID is the source-native identifier, or the URL when no ID exists
	ID string `json:"id"`

	// Title is the item's headline
	Title string `json:"title"`

	// Description contains the item's summary or body (may be empty)
	Description string `json:"description"`

	// URL points at the full content
	URL string `json:"url"`

	// Timestamp is the publication instant, normalized to UTC.
	// Items whose date cannot be determined never reach this type.
	Timestamp time.Time `json:"date"`

	// Language is the ISO-639-1 code, or "" when undetermined
	Language string `json:"language"`

	// Country is the two-letter lowercase code, or "" when undetermined
	Country string `json:"country"`
}

// RawItem is a source-shaped record prior to normalization. Field names vary
// per source; the per-source field map in core/normalize resolves them.
type RawItem map[string]interface{}

// String returns the value of the named field as a string, or "" when the
// field is absent or not a string.
func (r RawItem) String(field string) string {
	if v, ok := r[field]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsValid checks if the item has the fields every consumer relies on.
func (i *Item) IsValid() bool {
	if i.Title == "" && i.Description == "" {
		return false
	}

	if i.Timestamp.IsZero() {
		return false
	}

	return true
}
