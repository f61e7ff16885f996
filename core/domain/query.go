// ABOUTME: Query domain model carries the caller's filter parameters
// ABOUTME: Provides defaulting and validation for the date window and counts

package domain

import (
	"regexp"
	"strings"
	"time"
)

// DefaultWindowStart is the lower bound of the date window when the caller
// supplies none.
var DefaultWindowStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// Query holds one filtered-read request against a source.
type Query struct {
	// Raw is the query string. A comma switches matching to OR-mode;
	// otherwise the whole string is one phrase.
	Raw string

	// Excludes are terms that disqualify an item on substring match
	Excludes []string

	// Language filters on the detected ISO-639-1 code ("" = no filter)
	Language string

	// Country filters on the extracted country code ("" = no filter)
	Country string

	// N is the desired number of raw items fetched upstream
	N int

	// Start and End bound the inclusive date window, compared at day
	// granularity. End defaults to the evaluation instant.
	Start time.Time
	End   time.Time
}

var excludeSplitter = regexp.MustCompile(`[,\s]+`)

// SplitExcludes splits a comma/whitespace separated exclude parameter into
// lowercased terms, dropping empties.
func SplitExcludes(raw string) []string {
	parts := excludeSplitter.Split(strings.ToLower(raw), -1)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

// ApplyDefaults fills the date window and count when the caller left them
// unset. The window's upper bound is relative to the evaluation time, not
// fixed at construction.
func (q *Query) ApplyDefaults(now time.Time, defaultN int) {
	if q.Start.IsZero() {
		q.Start = DefaultWindowStart
	}
	if q.End.IsZero() {
		q.End = now
	}
	if q.N <= 0 {
		q.N = defaultN
	}
}

// InWindow reports whether t falls inside the inclusive [Start, End] window,
// compared at day granularity in UTC.
func (q *Query) InWindow(t time.Time) bool {
	day := dayOf(t)
	if day.Before(dayOf(q.Start)) {
		return false
	}
	if day.After(dayOf(q.End)) {
		return false
	}
	return true
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
