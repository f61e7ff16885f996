package snapshot

import "testing"

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"simple phrase", "Sonko, Diomaye Faye", "sonko-diomaye-faye"},
		{"single word", "newdealtechnologique", "newdealtechnologique"},
		{"diacritics stripped", "Diomayé Fayé", "diomaye-faye"},
		{"mixed separators collapse", "a  -- b__c", "a-b-c"},
		{"leading and trailing junk", "  !hello!  ", "hello"},
		{"digits kept", "top 10 stories", "top-10-stories"},
		{"empty input", "", "untitled"},
		{"only separators", "!!! ???", "untitled"},
		{"non latin only", "日本語", "untitled"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugify_Stable(t *testing.T) {
	// Slugs are cache keys; slugging a slug must not change it.
	slug := Slugify("Sonko, Diomaye Faye")
	if again := Slugify(slug); again != slug {
		t.Errorf("Slugify is not stable: %q -> %q", slug, again)
	}
}
