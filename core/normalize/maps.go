// ABOUTME: Canned field maps for the sources the monitoring surface knows about
// ABOUTME: New sources register a FieldMap here instead of touching pipeline code

package normalize

// Field maps for the known source shapes. Fetchers for some of these live
// outside this repository; callers register a map together with whatever
// fetcher implementation they own.
var (
	// RSSMap covers items produced by the RSS fetch adapter.
	RSSMap = FieldMap{
		Service:     "rss",
		ID:          []string{"id"},
		Title:       []string{"title"},
		Description: []string{"summary", "description"},
		URL:         []string{"link"},
		Date:        []string{"published", "updated"},
	}

	// PressMap covers items scraped from press sites.
	PressMap = FieldMap{
		Service:     "press",
		ID:          []string{"id"},
		Title:       []string{"title"},
		Description: []string{"description"},
		URL:         []string{"url", "link"},
		Date:        []string{"date"},
	}

	// TwitterMap covers recent-search results; tweets carry no link of
	// their own, so one is built from the status ID.
	TwitterMap = FieldMap{
		Service:     "twitter",
		ID:          []string{"id_str", "id"},
		Title:       []string{"text"},
		Description: nil,
		URL:         []string{"url"},
		Date:        []string{"created_at"},
		URLTemplate: "https://twitter.com/i/web/status/%s",
	}

	// RedditMap covers submission listings; created_utc is epoch seconds.
	RedditMap = FieldMap{
		Service:     "reddit",
		ID:          []string{"id"},
		Title:       []string{"title"},
		Description: []string{"selftext"},
		URL:         []string{"url"},
		Date:        []string{"created_utc", "date"},
	}

	// YouTubeMap covers search results; the watch URL is derived from the
	// video ID when the fetcher did not precompute it.
	YouTubeMap = FieldMap{
		Service:     "youtube",
		ID:          []string{"videoId", "id"},
		Title:       []string{"title"},
		Description: []string{"description"},
		URL:         []string{"url"},
		Date:        []string{"publishedAt", "date"},
		URLTemplate: "https://www.youtube.com/watch?v=%s",
	}

	// LinkedInMap covers public post search results, whose date field is
	// the fuzzy kind ("3h", "yesterday", ...).
	LinkedInMap = FieldMap{
		Service:     "linkedin",
		ID:          []string{"id", "position"},
		Title:       []string{"title"},
		Description: []string{"description", "snippet", "summary"},
		URL:         []string{"url", "link"},
		Date:        []string{"published", "publishedAt", "date"},
	}
)
