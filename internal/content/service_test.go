package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	contentlib "github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
	contentsvc "github.com/amalfoundation/foundation-cms/internal/content"
	"github.com/amalfoundation/foundation-cms/pkg/activity"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newNewsService(now time.Time, notifier activity.Notifier) (contentlib.Service[*contentlib.NewsArticle], *contentsvc.MemoryRepository[*contentlib.NewsArticle]) {
	repo := contentsvc.NewMemoryRepository[*contentlib.NewsArticle](contentsvc.ResourceNews)
	opts := []contentsvc.ServiceOption[*contentlib.NewsArticle]{
		contentsvc.WithClock[*contentlib.NewsArticle](fixedClock(now)),
	}
	if notifier != nil {
		opts = append(opts, contentsvc.WithNotifier[*contentlib.NewsArticle](notifier))
	}
	return contentsvc.NewService[*contentlib.NewsArticle](contentsvc.ResourceNews, repo, opts...), repo
}

func TestCreateStampsSlugsAndTimestamps(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)

	created, err := svc.Create(context.Background(), &contentlib.NewsArticle{
		TitleEn: "Annual Gala Announced",
		TitleAr: "الإعلان عن الحفل السنوي",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.GetID() == 0 {
		t.Fatal("expected assigned id")
	}
	if created.SlugEn != "annual-gala-announced" {
		t.Fatalf("SlugEn = %q", created.SlugEn)
	}
	if created.SlugAr != "الإعلان-عن-الحفل-السنوي" {
		t.Fatalf("SlugAr = %q", created.SlugAr)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v / %v, want %v", created.CreatedAt, created.UpdatedAt, now)
	}
	if created.PublishedAt != nil {
		t.Fatal("draft must not carry a publish stamp")
	}
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)

	article := &contentlib.NewsArticle{TitleEn: "Go Live", TitleAr: "انطلاق"}
	article.IsPublished = true

	created, err := svc.Create(context.Background(), article)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PublishedAt == nil || !created.PublishedAt.Equal(now) {
		t.Fatalf("PublishedAt = %v, want %v", created.PublishedAt, now)
	}
}

func TestCreateRejectsMissingTitles(t *testing.T) {
	svc, _ := newNewsService(time.Now(), nil)

	if _, err := svc.Create(context.Background(), &contentlib.NewsArticle{TitleEn: "Half"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestUpdateMergesPatchAndKeepsID(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{
		TitleEn:   "Original Title",
		TitleAr:   "العنوان الأصلي",
		SummaryEn: "keep me",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	patch := json.RawMessage(`{
		"id": 999,
		"titleEn": "Updated Title",
		"unknownField": "dropped",
		"pageViews": 5000,
		"slugEn": "attacker-slug"
	}`)

	updated, err := svc.Update(ctx, created.GetID(), patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.GetID() != created.GetID() {
		t.Fatalf("id changed: %d -> %d", created.GetID(), updated.GetID())
	}
	if updated.TitleEn != "Updated Title" {
		t.Fatalf("TitleEn = %q", updated.TitleEn)
	}
	if updated.SummaryEn != "keep me" {
		t.Fatalf("unpatched field lost: SummaryEn = %q", updated.SummaryEn)
	}
	if updated.PageViews != 0 {
		t.Fatalf("pageViews must be server-owned, got %d", updated.PageViews)
	}
	if updated.SlugEn != "updated-title" {
		t.Fatalf("slug must re-derive from title, got %q", updated.SlugEn)
	}
}

func TestUpdateKeepsLargeIntegerValues(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{
		TitleEn: "Reference Links",
		TitleAr: "روابط مرجعية",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 2^53+1 rounds if the patch value passes through a float64.
	patch := json.RawMessage(`{"categoryId": 9007199254740993}`)
	updated, err := svc.Update(ctx, created.GetID(), patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CategoryID == nil || *updated.CategoryID != 9007199254740993 {
		t.Fatalf("CategoryID = %v, want 9007199254740993", updated.CategoryID)
	}
}

func TestUpdatePublishFlipStampsOnce(t *testing.T) {
	start := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	clock := start
	repo := contentsvc.NewMemoryRepository[*contentlib.NewsArticle](contentsvc.ResourceNews)
	svc := contentsvc.NewService[*contentlib.NewsArticle](contentsvc.ResourceNews, repo,
		contentsvc.WithClock[*contentlib.NewsArticle](func() time.Time { return clock }))
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{TitleEn: "Story", TitleAr: "قصة"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clock = start.Add(time.Hour)
	published, err := svc.Update(ctx, created.GetID(), json.RawMessage(`{"isPublished":true}`))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.PublishedAt == nil || !published.PublishedAt.Equal(clock) {
		t.Fatalf("PublishedAt = %v, want %v", published.PublishedAt, clock)
	}
	firstStamp := *published.PublishedAt

	// A content edit while published keeps the original stamp.
	clock = start.Add(2 * time.Hour)
	edited, err := svc.Update(ctx, created.GetID(), json.RawMessage(`{"summaryEn":"edited"}`))
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.PublishedAt == nil || !edited.PublishedAt.Equal(firstStamp) {
		t.Fatalf("PublishedAt moved on edit: %v", edited.PublishedAt)
	}

	// Unpublishing clears the stamp entirely.
	clock = start.Add(3 * time.Hour)
	draft, err := svc.Update(ctx, created.GetID(), json.RawMessage(`{"isPublished":false}`))
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Fatalf("PublishedAt not cleared: %v", draft.PublishedAt)
	}
}

func TestUpdateRejectsMalformedPatch(t *testing.T) {
	svc, _ := newNewsService(time.Now(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{TitleEn: "A", TitleAr: "ب"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, created.GetID(), json.RawMessage(`{not json`))
	if !errors.Is(err, contentlib.ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch, got %v", err)
	}

	if _, err := svc.Update(ctx, 0, json.RawMessage(`{}`)); !errors.Is(err, contentlib.ErrRecordIDRequired) {
		t.Fatalf("expected ErrRecordIDRequired, got %v", err)
	}
}

func TestViewIncrementsPageViewsAndHidesDrafts(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)
	ctx := context.Background()

	published := &contentlib.NewsArticle{TitleEn: "Open", TitleAr: "مفتوح"}
	published.IsPublished = true
	created, err := svc.Create(ctx, published)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	viewed, err := svc.View(ctx, created.GetID())
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if viewed.PageViews != 1 {
		t.Fatalf("PageViews = %d, want 1", viewed.PageViews)
	}
	again, err := svc.View(ctx, created.GetID())
	if err != nil {
		t.Fatalf("second view: %v", err)
	}
	if again.PageViews != 2 {
		t.Fatalf("PageViews = %d, want 2", again.PageViews)
	}

	draft, err := svc.Create(ctx, &contentlib.NewsArticle{TitleEn: "Hidden", TitleAr: "مخفي"})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.View(ctx, draft.GetID()); !contentlib.IsNotFound(err) {
		t.Fatalf("expected not found for draft view, got %v", err)
	}
}

func TestListFiltersSearchLocaleAndCategory(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	svc, _ := newNewsService(now, nil)
	ctx := context.Background()

	seed := []*contentlib.NewsArticle{
		{TitleEn: "Water Project Update", TitleAr: "تحديث مشروع المياه", TagList: []string{"water"}},
		{TitleEn: "School Opening", TitleAr: "افتتاح مدرسة", TagList: []string{"education"}},
		{TitleEn: "Hidden Draft", TitleAr: "مسودة"},
	}
	seed[0].IsPublished = true
	seed[0].IsEnglish = true
	seed[0].IsArabic = true
	seed[1].IsPublished = true
	seed[1].IsArabic = true

	for _, article := range seed {
		if _, err := svc.Create(ctx, article); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	records, total, err := svc.List(ctx, contentlib.PublishedOnly(domain.LocaleArabic))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(records) != 2 {
		t.Fatalf("published arabic: total=%d len=%d", total, len(records))
	}

	records, total, err = svc.List(ctx, contentlib.ListOptions{Search: "water"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || records[0].TitleEn != "Water Project Update" {
		t.Fatalf("search result: total=%d", total)
	}

	// Tag text is reachable only through the category filter.
	_, total, err = svc.List(ctx, contentlib.ListOptions{Search: "education"})
	if err != nil {
		t.Fatalf("tag search: %v", err)
	}
	if total != 0 {
		t.Fatalf("free-text search matched tags: total=%d", total)
	}

	_, total, err = svc.List(ctx, contentlib.ListOptions{Category: "education"})
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if total != 1 {
		t.Fatalf("category filter: total=%d", total)
	}
}

func TestListTotalsIgnorePagination(t *testing.T) {
	now := time.Now()
	svc, _ := newNewsService(now, nil)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		article := &contentlib.NewsArticle{TitleEn: "Item", TitleAr: "عنصر"}
		article.IsPublished = true
		if _, err := svc.Create(ctx, article); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	records, total, err := svc.List(ctx, contentlib.ListOptions{Limit: 3, Offset: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 7 {
		t.Fatalf("total = %d, want 7", total)
	}
	if len(records) != 3 {
		t.Fatalf("page length = %d, want 3", len(records))
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, _ := newNewsService(time.Now(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{TitleEn: "Gone", TitleAr: "ذهب"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.GetID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.GetID()); !contentlib.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMutationsEmitActivityEvents(t *testing.T) {
	sink := &activity.Memory{}
	svc, _ := newNewsService(time.Now(), sink)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.NewsArticle{TitleEn: "Audit", TitleAr: "تدقيق"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, created.GetID(), json.RawMessage(`{"summaryEn":"x"}`)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(ctx, created.GetID()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	verbs := make([]string, 0, len(sink.Events))
	for _, event := range sink.Events {
		verbs = append(verbs, event.Verb)
		if event.ObjectType != contentsvc.ResourceNews {
			t.Fatalf("object type = %q", event.ObjectType)
		}
		if event.Channel != "cms" {
			t.Fatalf("channel = %q", event.Channel)
		}
	}
	want := []string{"create", "update", "delete"}
	if len(verbs) != len(want) {
		t.Fatalf("verbs = %v", verbs)
	}
	for i := range want {
		if verbs[i] != want[i] {
			t.Fatalf("verbs = %v, want %v", verbs, want)
		}
	}
}

func TestUpdateRejectsMalformedSections(t *testing.T) {
	repo := contentsvc.NewMemoryRepository[*contentlib.Program](contentsvc.ResourcePrograms)
	svc := contentsvc.NewService[*contentlib.Program](contentsvc.ResourcePrograms, repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &contentlib.Program{TitleEn: "P", TitleAr: "ب"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// partners entries need both names; a bare string is rejected outright.
	bad := json.RawMessage(`{"partners":[{"nameEn":"Only English"}]}`)
	if _, err := svc.Update(ctx, created.GetID(), bad); err == nil {
		t.Fatal("expected section schema rejection")
	}

	good := json.RawMessage(`{"partners":[{"nameEn":"ACME","nameAr":"أكمي"}]}`)
	updated, err := svc.Update(ctx, created.GetID(), good)
	if err != nil {
		t.Fatalf("valid sections rejected: %v", err)
	}
	if len(updated.Partners) != 1 || updated.Partners[0].ID == uuid.Nil {
		t.Fatalf("expected stamped partner entry, got %+v", updated.Partners)
	}
}
