// ABOUTME: Press-site fetch adapter scraping article listings from a base page
// ABOUTME: Prefers <article> markup, falls back to internal links with substantial titles

package press

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mediawatch-api/core/domain"
	"mediawatch-api/core/interfaces"
)

// minFallbackTitleLen filters navigation links out of the fallback pass;
// real headlines are longer than menu labels.
const minFallbackTitleLen = 20

// Fetcher scrapes a press site's front page for article links.
type Fetcher struct {
	baseURL string
	client  interfaces.HTTPClient
	logger  interfaces.Logger

	// now is replaceable in tests; articles without a <time> tag are
	// stamped with the fetch time.
	now func() time.Time
}

// NewFetcher creates a press fetcher for the given site.
func NewFetcher(baseURL string, client interfaces.HTTPClient, logger interfaces.Logger) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch scrapes the base page and returns up to maxCount raw items. The
// query parameter is ignored at fetch time; the pipeline's matcher narrows
// results afterwards.
func (f *Fetcher) Fetch(ctx context.Context, _ string, maxCount int) ([]domain.RawItem, error) {
	resp, err := f.client.Get(ctx, f.baseURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("press site returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, err
	}

	items := f.fromArticles(doc, maxCount)
	if len(items) == 0 {
		items = f.fromLinks(doc, maxCount)
	}

	return items, nil
}

// fromArticles extracts one item per <article> element carrying an internal
// link. An optional <time datetime> supplies the publication date.
func (f *Fetcher) fromArticles(doc *goquery.Document, maxCount int) []domain.RawItem {
	fetchedAt := f.now().UTC().Format(time.RFC3339)
	items := make([]domain.RawItem, 0)

	doc.Find("article").EachWithBreak(func(_ int, art *goquery.Selection) bool {
		link := art.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		href = f.absolute(href)
		title := strings.TrimSpace(link.Text())
		if title == "" || !strings.HasPrefix(href, f.baseURL) {
			return true
		}

		date := fetchedAt
		if dt, ok := art.Find("time").First().Attr("datetime"); ok && dt != "" {
			date = dt
		}

		items = append(items, domain.RawItem{
			"id":    href,
			"title": title,
			"url":   href,
			"date":  date,
		})
		return len(items) < maxCount
	})

	return items
}

// fromLinks is the fallback for pages without <article> markup: internal
// links whose text is long enough to be a headline.
func (f *Fetcher) fromLinks(doc *goquery.Document, maxCount int) []domain.RawItem {
	fetchedAt := f.now().UTC().Format(time.RFC3339)
	items := make([]domain.RawItem, 0)

	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		href = f.absolute(href)
		title := strings.TrimSpace(link.Text())

		if len(title) < minFallbackTitleLen || !strings.HasPrefix(href, f.baseURL) {
			return true
		}

		items = append(items, domain.RawItem{
			"id":    href,
			"title": title,
			"url":   href,
			"date":  fetchedAt,
		})
		return len(items) < maxCount
	})

	return items
}

// absolute resolves a possibly relative href against the base URL.
func (f *Fetcher) absolute(href string) string {
	base, err := url.Parse(f.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
