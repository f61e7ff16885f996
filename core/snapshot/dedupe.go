// ABOUTME: Collapses raw items sharing a canonical URL across paginated fetches
// ABOUTME: Stable and first-occurrence-wins; applied once before a snapshot is persisted

package snapshot

import "mediawatch-api/core/domain"

// KeyFunc extracts the identifying key (canonical link) from a raw item.
type KeyFunc func(domain.RawItem) string

// Dedupe removes items whose key was already seen, preserving the relative
// order of survivors. Items with an empty key are kept: there is nothing to
// collapse them on. Idempotent by construction.
func Dedupe(items []domain.RawItem, key KeyFunc) []domain.RawItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.RawItem, 0, len(items))

	for _, item := range items {
		k := key(item)
		if k != "" {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		out = append(out, item)
	}

	return out
}
