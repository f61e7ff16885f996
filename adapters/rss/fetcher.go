// ABOUTME: RSS/Atom fetch adapter producing raw items from configured feed URLs
// ABOUTME: Yields source-shaped records; all filtering happens downstream in the pipeline

package rss

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mmcdole/gofeed"

	"mediawatch-api/core/domain"
	"mediawatch-api/core/interfaces"
)

// Fetcher retrieves items from a fixed set of feeds. The query parameter is
// ignored at fetch time — RSS has no server-side search, so the pipeline's
// matcher does the narrowing.
type Fetcher struct {
	feedURLs []string
	client   interfaces.HTTPClient
	logger   interfaces.Logger
	parser   *gofeed.Parser
}

// NewFetcher creates an RSS fetcher over the given feed URLs.
func NewFetcher(feedURLs []string, client interfaces.HTTPClient, logger interfaces.Logger) *Fetcher {
	return &Fetcher{
		feedURLs: feedURLs,
		client:   client,
		logger:   logger,
		parser:   gofeed.NewParser(),
	}
}

// Fetch returns up to maxCount raw items across all configured feeds. A feed
// that fails to download or parse is skipped; one broken feed must not empty
// the whole result set.
func (f *Fetcher) Fetch(ctx context.Context, _ string, maxCount int) ([]domain.RawItem, error) {
	items := make([]domain.RawItem, 0, maxCount)

	for _, feedURL := range f.feedURLs {
		if len(items) >= maxCount {
			break
		}

		feed, err := f.fetchFeed(ctx, feedURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if f.logger != nil {
				f.logger.Warn("Skipping feed", map[string]interface{}{
					"url":   feedURL,
					"error": err.Error(),
				})
			}
			continue
		}

		for _, entry := range feed.Items {
			if len(items) >= maxCount {
				break
			}
			items = append(items, convertEntry(entry))
		}
	}

	return items, nil
}

// fetchFeed downloads and parses one feed.
func (f *Fetcher) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	resp, err := f.client.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	return f.parser.ParseString(string(body))
}

// convertEntry maps a gofeed entry to the raw shape the rss field map
// expects. Entries with no parseable date get no "published" key at all, so
// the normalizer drops them rather than inventing a timestamp.
func convertEntry(entry *gofeed.Item) domain.RawItem {
	item := domain.RawItem{
		"title":   entry.Title,
		"summary": entry.Description,
		"link":    entry.Link,
	}

	if entry.GUID != "" {
		item["id"] = entry.GUID
	} else if entry.Link != "" {
		item["id"] = entry.Link
	}

	if entry.PublishedParsed != nil {
		item["published"] = entry.PublishedParsed.UTC().Format(time.RFC3339)
	} else if entry.UpdatedParsed != nil {
		item["published"] = entry.UpdatedParsed.UTC().Format(time.RFC3339)
	} else if entry.Published != "" {
		item["published"] = entry.Published
	}

	return item
}
