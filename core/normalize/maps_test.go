package normalize

import (
	"testing"
	"time"

	"mediawatch-api/core/domain"
)

// The social-source maps are exercised through the full chain so each map's
// quirks (URL templates, epoch dates, fuzzy date strings) stay honest even
// while their fetchers live outside this repository.

func TestTwitterMap_BuildsStatusURL(t *testing.T) {
	raw := []domain.RawItem{
		{"id_str": "1789456123", "text": "Sonko annonce un meeting à Dakar", "created_at": "2024-05-01T10:00:00Z"},
	}

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	items := testNormalizer().Apply(raw, TwitterMap, windowQuery("sonko"), now)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if got.Service != "twitter" {
		t.Errorf("Service = %q, want twitter", got.Service)
	}
	if got.URL != "https://twitter.com/i/web/status/1789456123" {
		t.Errorf("URL = %q, want the templated status link", got.URL)
	}
	if got.ID != "1789456123" {
		t.Errorf("ID = %q, want the id_str value", got.ID)
	}
	if got.Country != "us" {
		t.Errorf("Country = %q, want us (twitter.com suffix)", got.Country)
	}
}

func TestRedditMap_EpochSecondsDate(t *testing.T) {
	raw := []domain.RawItem{
		{
			"id":          "1cg7xyz",
			"title":       "Sonko discussion thread",
			"selftext":    "What does the rally mean for the coalition?",
			"url":         "https://www.reddit.com/r/africa/comments/1cg7xyz",
			"created_utc": float64(1714521600),
		},
	}

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	items := testNormalizer().Apply(raw, RedditMap, windowQuery("sonko"), now)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !got.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v from epoch seconds", got.Timestamp, want)
	}
	if got.Description != "What does the rally mean for the coalition?" {
		t.Errorf("Description = %q, want the selftext body", got.Description)
	}
}

func TestYouTubeMap_BuildsWatchURL(t *testing.T) {
	raw := []domain.RawItem{
		{"videoId": "dQw4w9WgXcQ", "title": "Sonko speech highlights", "publishedAt": "2024-05-01T00:00:00Z"},
	}

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	items := testNormalizer().Apply(raw, YouTubeMap, windowQuery("sonko"), now)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("URL = %q, want the watch URL derived from videoId", items[0].URL)
	}
}

func TestLinkedInMap_FuzzyDates(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	raw := []domain.RawItem{
		{"id": "p1", "title": "Sonko on growth", "url": "https://www.linkedin.com/posts/p1", "published": "3h"},
		{"id": "p2", "title": "Sonko interview", "url": "https://www.linkedin.com/posts/p2", "published": "yesterday"},
	}

	items := testNormalizer().Apply(raw, LinkedInMap, windowQuery("sonko"), now)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if want := now.Add(-3 * time.Hour); !items[0].Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v (resolved '3h')", items[0].Timestamp, want)
	}
	if want := now.AddDate(0, 0, -1); !items[1].Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v (resolved 'yesterday')", items[1].Timestamp, want)
	}
}
