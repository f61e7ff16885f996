// ABOUTME: Maps domain items to their wire representation
// ABOUTME: Timestamps serialize as RFC 3339 in UTC

package mappers

import (
	"time"

	"mediawatch-api/api/dto/responses"
	"mediawatch-api/core/domain"
)

// ToArticles converts domain items to response articles, preserving order.
// The result is never nil: an empty match set serializes as [].
func ToArticles(items []domain.Item) []responses.Article {
	out := make([]responses.Article, 0, len(items))
	for _, item := range items {
		out = append(out, responses.Article{
			Service:     item.Service,
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Date:        item.Timestamp.UTC().Format(time.RFC3339),
			Language:    item.Language,
			Country:     item.Country,
		})
	}
	return out
}
