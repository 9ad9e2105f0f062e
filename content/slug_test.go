package content_test

import (
	"testing"

	"github.com/amalfoundation/foundation-cms/content"
)

func TestSlugifyLatinTitles(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Education Program", "education-program"},
		{"mixed case and punctuation", "Annual Report: 2024!", "annual-report-2024"},
		{"whitespace runs", "  Water   for\tAll  ", "water-for-all"},
		{"underscores", "spring_campaign_2025", "spring-campaign-2025"},
		{"leading and trailing separators", "--hello world--", "hello-world"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := content.Slugify(tc.input); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugifyPreservesArabicLetters(t *testing.T) {
	got := content.Slugify("برنامج التعليم للجميع")
	want := "برنامج-التعليم-للجميع"
	if got != want {
		t.Fatalf("Slugify arabic = %q, want %q", got, want)
	}
}

func TestSlugifyStripsDisallowedRunes(t *testing.T) {
	got := content.Slugify("حملة (2024) / الصيف")
	want := "حملة-2024-الصيف"
	if got != want {
		t.Fatalf("Slugify mixed arabic = %q, want %q", got, want)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"Education Program",
		"Annual Report: 2024!",
		"برنامج التعليم للجميع",
	}
	for _, input := range inputs {
		once := content.Slugify(input)
		twice := content.Slugify(once)
		if once != twice {
			t.Fatalf("Slugify not idempotent for %q: %q then %q", input, once, twice)
		}
		if !content.IsValidSlug(once) {
			t.Fatalf("IsValidSlug(%q) = false after Slugify", once)
		}
	}
}

func TestIsValidSlugRejectsRawTitles(t *testing.T) {
	for _, raw := range []string{"Hello World", "UPPER", "a b", ""} {
		if content.IsValidSlug(raw) {
			t.Fatalf("IsValidSlug(%q) = true, want false", raw)
		}
	}
}
