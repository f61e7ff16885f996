package rss

import (
	"context"
	"testing"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Sonko rally draws crowds</title>
      <description>Thousands gathered in Dakar.</description>
      <link>https://news.sn/sonko-rally</link>
      <guid>tag:news.sn,2024:1</guid>
      <pubDate>Wed, 01 May 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Budget vote postponed</title>
      <description>The assembly adjourned.</description>
      <link>https://news.sn/budget-vote</link>
      <pubDate>Thu, 02 May 2024 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Undated notice</title>
      <link>https://news.sn/notice</link>
    </item>
  </channel>
</rss>`

func TestFetch_ConvertsEntries(t *testing.T) {
	client := &mockClient{responses: map[string]*mockResponse{
		"https://news.sn/feed": {status: 200, body: feedXML},
	}}
	f := NewFetcher([]string{"https://news.sn/feed"}, client, &mockLogger{})

	items, err := f.Fetch(context.Background(), "sonko", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	first := items[0]
	if first.String("title") != "Sonko rally draws crowds" {
		t.Errorf("title = %q", first.String("title"))
	}
	if first.String("summary") != "Thousands gathered in Dakar." {
		t.Errorf("summary = %q", first.String("summary"))
	}
	if first.String("link") != "https://news.sn/sonko-rally" {
		t.Errorf("link = %q", first.String("link"))
	}
	if first.String("id") != "tag:news.sn,2024:1" {
		t.Errorf("id = %q, want the GUID", first.String("id"))
	}
	if first.String("published") != "2024-05-01T10:00:00Z" {
		t.Errorf("published = %q, want the parsed pubDate in RFC 3339", first.String("published"))
	}

	// No GUID falls back to the link.
	if items[1].String("id") != "https://news.sn/budget-vote" {
		t.Errorf("id = %q, want the link fallback", items[1].String("id"))
	}

	// Undated entries carry no published key at all.
	if _, ok := items[2]["published"]; ok {
		t.Error("undated entry should have no published field")
	}
}

func TestFetch_RespectsMaxCount(t *testing.T) {
	client := &mockClient{responses: map[string]*mockResponse{
		"https://news.sn/feed": {status: 200, body: feedXML},
	}}
	f := NewFetcher([]string{"https://news.sn/feed"}, client, &mockLogger{})

	items, err := f.Fetch(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}

func TestFetch_BrokenFeedIsSkipped(t *testing.T) {
	client := &mockClient{responses: map[string]*mockResponse{
		"https://down.example/feed": {status: 500, body: ""},
		"https://news.sn/feed":      {status: 200, body: feedXML},
	}}
	logger := &mockLogger{}
	f := NewFetcher([]string{"https://down.example/feed", "https://news.sn/feed"}, client, logger)

	items, err := f.Fetch(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v (one broken feed must not fail the fetch)", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3 from the healthy feed", len(items))
	}
	if logger.warnings != 1 {
		t.Errorf("warnings = %d, want 1 for the skipped feed", logger.warnings)
	}
}

func TestFetch_UnparseableFeedIsSkipped(t *testing.T) {
	client := &mockClient{responses: map[string]*mockResponse{
		"https://garbage.example/feed": {status: 200, body: "<html>not a feed</html>"},
	}}
	f := NewFetcher([]string{"https://garbage.example/feed"}, client, &mockLogger{})

	items, err := f.Fetch(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestFetch_CanceledContextAborts(t *testing.T) {
	client := &mockClient{responses: map[string]*mockResponse{}}
	f := NewFetcher([]string{"https://news.sn/feed"}, client, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Fetch(ctx, "", 10); err == nil {
		t.Error("Fetch() with canceled context succeeded")
	}
}
