package content_test

import (
	"testing"
	"time"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
)

func TestSyncPublicationStampsOnceOnPublish(t *testing.T) {
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	article := &content.NewsArticle{}
	article.IsPublished = true

	article.SyncPublication(first)
	if article.PublishedAt == nil || !article.PublishedAt.Equal(first) {
		t.Fatalf("expected PublishedAt stamped at %v, got %v", first, article.PublishedAt)
	}

	// A later save while still published must keep the original stamp.
	article.SyncPublication(later)
	if !article.PublishedAt.Equal(first) {
		t.Fatalf("expected PublishedAt to stay %v, got %v", first, article.PublishedAt)
	}
}

func TestSyncPublicationClearsOnUnpublish(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	article := &content.NewsArticle{}
	article.IsPublished = true
	article.SyncPublication(now)

	article.IsPublished = false
	article.SyncPublication(now.Add(time.Hour))
	if article.PublishedAt != nil {
		t.Fatalf("expected PublishedAt cleared after unpublish, got %v", article.PublishedAt)
	}

	// Publishing again stamps the new flip time, not the old one.
	flip := now.Add(2 * time.Hour)
	article.IsPublished = true
	article.SyncPublication(flip)
	if article.PublishedAt == nil || !article.PublishedAt.Equal(flip) {
		t.Fatalf("expected PublishedAt restamped at %v, got %v", flip, article.PublishedAt)
	}
}

func TestLocaleVisibility(t *testing.T) {
	program := &content.Program{}
	program.IsEnglish = true
	program.IsArabic = false

	if !program.LocaleVisible(domain.LocaleEnglish) {
		t.Fatal("expected english visibility")
	}
	if program.LocaleVisible(domain.LocaleArabic) {
		t.Fatal("expected no arabic visibility")
	}
}

func TestMatchesQueryChecksTitlesAndBodyNotTags(t *testing.T) {
	activity := &content.Activity{
		TitleEn:   "Summer Camp",
		TitleAr:   "مخيم الصيف",
		ContentEn: "Outdoor learning for children.",
		TagList:   []string{"education"},
	}
	activity.IsPublished = true

	if !activity.MatchesQuery("summer") {
		t.Fatal("expected title match")
	}
	if !activity.MatchesQuery("مخيم") {
		t.Fatal("expected arabic title match")
	}
	if !activity.MatchesQuery("outdoor") {
		t.Fatal("expected body match")
	}
	if activity.MatchesQuery("education") {
		t.Fatal("tags must not be reachable through free-text search")
	}
}

func TestMatchesCategorySubstring(t *testing.T) {
	tags := []string{"Educational Outreach", "Health"}

	if !content.MatchesCategory(tags, "education") {
		t.Fatal("expected case-insensitive substring match")
	}
	if !content.MatchesCategory(tags, "  HEALTH ") {
		t.Fatal("expected trimmed match")
	}
	if content.MatchesCategory(tags, "water") {
		t.Fatal("unexpected match")
	}
	if !content.MatchesCategory(tags, "") {
		t.Fatal("empty category must pass everything")
	}
}

func TestListOptionsNormalize(t *testing.T) {
	opts := content.ListOptions{
		Search:   "  water ",
		Category: " health ",
		Order:    "ASC",
		Limit:    0,
		Offset:   -3,
	}

	normalized := opts.Normalize()
	if normalized.Search != "water" {
		t.Fatalf("search = %q", normalized.Search)
	}
	if normalized.Category != "health" {
		t.Fatalf("category = %q", normalized.Category)
	}
	if normalized.Order != "asc" {
		t.Fatalf("order = %q", normalized.Order)
	}
	if normalized.Limit != content.DefaultListLimit {
		t.Fatalf("limit = %d", normalized.Limit)
	}
	if normalized.Offset != 0 {
		t.Fatalf("offset = %d", normalized.Offset)
	}

	capped := content.ListOptions{Limit: 10_000, Order: "junk"}.Normalize()
	if capped.Limit != content.MaxListLimit {
		t.Fatalf("capped limit = %d", capped.Limit)
	}
	if capped.Order != "desc" {
		t.Fatalf("fallback order = %q", capped.Order)
	}
}

func TestSlugsFollowTitles(t *testing.T) {
	program := &content.Program{
		TitleEn: "Clean Water Initiative",
		TitleAr: "مبادرة المياه النظيفة",
	}
	program.SyncSlugs()

	if program.SlugEn != "clean-water-initiative" {
		t.Fatalf("SlugEn = %q", program.SlugEn)
	}
	if program.SlugAr != "مبادرة-المياه-النظيفة" {
		t.Fatalf("SlugAr = %q", program.SlugAr)
	}
	if program.SlugFor(domain.LocaleEnglish) != program.SlugEn {
		t.Fatal("SlugFor(en) mismatch")
	}
	if program.SlugFor(domain.LocaleArabic) != program.SlugAr {
		t.Fatal("SlugFor(ar) mismatch")
	}
}

func TestValidateRequiresBilingualTitles(t *testing.T) {
	program := &content.Program{TitleEn: "Only English"}
	if err := program.Validate(); err == nil {
		t.Fatal("expected validation error for missing arabic title")
	}

	program.TitleAr = "عنوان"
	if err := program.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
