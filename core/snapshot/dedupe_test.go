package snapshot

import (
	"reflect"
	"testing"

	"mediawatch-api/core/domain"
)

func urlKey(item domain.RawItem) string {
	return item.String("url")
}

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	items := []domain.RawItem{
		{"url": "https://x.com/1", "title": "first"},
		{"url": "https://y.org/2", "title": "second"},
		{"url": "https://x.com/1", "title": "duplicate"},
	}

	got := Dedupe(items, urlKey)

	if len(got) != 2 {
		t.Fatalf("Dedupe returned %d items, want 2", len(got))
	}
	if got[0].String("title") != "first" {
		t.Errorf("first survivor = %q, want the earliest occurrence", got[0].String("title"))
	}
	if got[1].String("title") != "second" {
		t.Errorf("second survivor = %q, want 'second'", got[1].String("title"))
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	items := []domain.RawItem{
		{"url": "c"}, {"url": "a"}, {"url": "b"}, {"url": "a"}, {"url": "c"},
	}

	got := Dedupe(items, urlKey)

	want := []string{"c", "a", "b"}
	for i, w := range want {
		if got[i].String("url") != w {
			t.Errorf("position %d = %q, want %q (order must be first-seen, not sorted)", i, got[i].String("url"), w)
		}
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	items := []domain.RawItem{
		{"url": "a"}, {"url": "b"}, {"url": "a"},
	}

	once := Dedupe(items, urlKey)
	twice := Dedupe(once, urlKey)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Dedupe is not idempotent: %v != %v", once, twice)
	}
}

func TestDedupe_EmptyKeysAreKept(t *testing.T) {
	items := []domain.RawItem{
		{"title": "no url"},
		{"title": "also no url"},
	}

	got := Dedupe(items, urlKey)

	if len(got) != 2 {
		t.Errorf("Dedupe dropped keyless items: got %d, want 2", len(got))
	}
}

func TestDedupe_EmptyInput(t *testing.T) {
	got := Dedupe(nil, urlKey)

	if got == nil {
		t.Error("Dedupe should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("Dedupe(nil) returned %d items", len(got))
	}
}
