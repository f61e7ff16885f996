// ABOUTME: Resolves fuzzy or absolute date expressions into UTC instants
// ABOUTME: Ordered parse strategies with a guaranteed fallback to the current time

package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// relative matches expressions like "3h", "2 d", "4W": an integer count
// followed by a unit in hours, days, weeks, months or years.
var relative = regexp.MustCompile(`^(\d+)\s*([hdwmy])$`)

// strategy attempts one interpretation of a raw date expression.
// It reports failure by returning ok == false; Resolve short-circuits on the
// first success.
type strategy func(raw string, now time.Time) (time.Time, bool)

var strategies = []strategy{
	parseISO,
	parseToday,
	parseYesterday,
	parseRelative,
	parseFreeForm,
}

// Resolve converts a raw date expression into a UTC instant. It never fails:
// an expression no strategy recognizes resolves to now, pushing the item
// toward the filter boundary instead of aborting the pipeline.
func Resolve(raw string, now time.Time) time.Time {
	t, _ := ResolveStrict(raw, now)
	return t
}

// ResolveStrict behaves like Resolve but reports whether any strategy
// succeeded, letting callers distinguish a real date from the now-fallback.
func ResolveStrict(raw string, now time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC(), false
	}

	for _, s := range strategies {
		if t, ok := s(raw, now); ok {
			return t.UTC(), true
		}
	}
	return now.UTC(), false
}

// parseISO handles well-formed ISO-8601 timestamps directly so that
// timezone offsets from clean sources survive the trip to UTC without
// passing through the fuzzy matcher.
func parseISO(raw string, _ time.Time) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseToday(raw string, now time.Time) (time.Time, bool) {
	// "aujourd'hui" appears in sources serving francophone markets; both
	// apostrophe variants occur in the wild.
	switch strings.ToLower(raw) {
	case "today", "aujourd'hui", "aujourd’hui":
		return now, true
	}
	return time.Time{}, false
}

func parseYesterday(raw string, now time.Time) (time.Time, bool) {
	if strings.EqualFold(raw, "yesterday") {
		return now.AddDate(0, 0, -1), true
	}
	return time.Time{}, false
}

// parseRelative shifts now backwards by the given count of hours, days,
// weeks, calendar months or calendar years. Month and year arithmetic uses
// AddDate, not fixed 30/365-day multiples.
func parseRelative(raw string, now time.Time) (time.Time, bool) {
	m := relative.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return time.Time{}, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	switch m[2] {
	case "h":
		return now.Add(-time.Duration(n) * time.Hour), true
	case "d":
		return now.AddDate(0, 0, -n), true
	case "w":
		return now.AddDate(0, 0, -7*n), true
	case "m":
		return now.AddDate(0, -n, 0), true
	case "y":
		return now.AddDate(-n, 0, 0), true
	}
	return time.Time{}, false
}

// parseFreeForm is the last real attempt: day-month-year orderings, month
// names, and the long tail of formats dateparse understands.
func parseFreeForm(raw string, _ time.Time) (time.Time, bool) {
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
