package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/hr"
)

func seedPublicNews(t *testing.T, f *apiFixture) (*content.NewsArticle, *content.NewsArticle) {
	t.Helper()
	ctx := context.Background()

	published := &content.NewsArticle{
		TitleEn:   "Clean Water Milestone",
		TitleAr:   "إنجاز المياه النظيفة",
		ContentEn: "# Milestone\n\nTen new wells.",
		ContentAr: "# إنجاز\n\nعشرة آبار جديدة.",
	}
	published.IsPublished = true
	published.IsEnglish = true
	published.IsArabic = true
	published.SitemapEn = true
	published.SitemapAr = true

	draft := &content.NewsArticle{TitleEn: "Draft Story", TitleAr: "مسودة"}
	draft.IsEnglish = true
	draft.IsArabic = true

	publishedOut, err := f.services.News.Create(ctx, published)
	if err != nil {
		t.Fatalf("seed published: %v", err)
	}
	draftOut, err := f.services.News.Create(ctx, draft)
	if err != nil {
		t.Fatalf("seed draft: %v", err)
	}
	return publishedOut, draftOut
}

func TestPublicListShowsOnlyPublished(t *testing.T) {
	f := newAPIFixture(t)
	seedPublicNews(t, f)

	rec := f.do(t, http.MethodGet, "/api/news", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d", rec.Code)
	}
	var body struct {
		Items []content.NewsArticle `json:"items"`
		Total int                   `json:"total"`
	}
	decodeBody(t, rec, &body)
	if body.Total != 1 || len(body.Items) != 1 {
		t.Fatalf("total=%d len=%d, drafts leaked", body.Total, len(body.Items))
	}
	if body.Items[0].TitleEn != "Clean Water Milestone" {
		t.Fatalf("item = %q", body.Items[0].TitleEn)
	}
}

func TestPublicDetailByIDAndSlug(t *testing.T) {
	f := newAPIFixture(t)
	published, draft := seedPublicNews(t, f)

	rec := f.do(t, http.MethodGet, "/api/news/1", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("by id = %d", rec.Code)
	}
	var byID struct {
		Data content.NewsArticle `json:"data"`
	}
	decodeBody(t, rec, &byID)
	if byID.Data.ID != published.ID {
		t.Fatalf("id = %d", byID.Data.ID)
	}
	if byID.Data.PageViews != 1 {
		t.Fatalf("pageViews = %d, want 1 after view", byID.Data.PageViews)
	}

	bySlug := f.do(t, http.MethodGet, "/api/news/"+published.SlugEn, "", false)
	if bySlug.Code != http.StatusOK {
		t.Fatalf("by slug = %d", bySlug.Code)
	}
	var slugBody struct {
		Data content.NewsArticle `json:"data"`
	}
	decodeBody(t, bySlug, &slugBody)
	if slugBody.Data.ID != published.ID {
		t.Fatalf("slug resolved to id %d", slugBody.Data.ID)
	}
	if slugBody.Data.PageViews != 2 {
		t.Fatalf("pageViews = %d, want 2", slugBody.Data.PageViews)
	}

	// Arabic slug resolves the same record.
	arabic := f.do(t, http.MethodGet, "/api/news/"+published.SlugAr, "", false)
	if arabic.Code != http.StatusOK {
		t.Fatalf("arabic slug = %d", arabic.Code)
	}

	// Drafts stay invisible to the public surface.
	if rec := f.do(t, http.MethodGet, "/api/news/2", "", false); rec.Code != http.StatusNotFound {
		t.Fatalf("draft by id = %d, want 404", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/api/news/"+draft.SlugEn, "", false); rec.Code != http.StatusNotFound {
		t.Fatalf("draft by slug = %d, want 404", rec.Code)
	}
}

func TestPublicDetailHTMLFormat(t *testing.T) {
	f := newAPIFixture(t)
	published, _ := seedPublicNews(t, f)

	rec := f.do(t, http.MethodGet, "/api/news/"+published.SlugEn+"?format=html", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("html format = %d", rec.Code)
	}
	var body struct {
		Data map[string]any `json:"data"`
	}
	decodeBody(t, rec, &body)
	rendered, _ := body.Data["contentEn"].(string)
	if !strings.Contains(rendered, "<h1") {
		t.Fatalf("expected rendered markdown, got %q", rendered)
	}
}

func TestPublicDetailHTMLFormatRendersDescriptions(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	program := &content.Program{
		TitleEn:       "Rural Health Program",
		TitleAr:       "برنامج الصحة الريفية",
		DescriptionEn: "## Clinics\n\nMobile clinics reach **remote** villages.",
		DescriptionAr: "## عيادات\n\nعيادات متنقلة تصل القرى **النائية**.",
	}
	program.IsPublished = true
	program.IsEnglish = true
	program.IsArabic = true
	created, err := f.services.Programs.Create(ctx, program)
	if err != nil {
		t.Fatalf("seed program: %v", err)
	}

	rec := f.do(t, http.MethodGet, "/api/programs/"+created.SlugEn+"?format=html", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("html format = %d", rec.Code)
	}
	var body struct {
		Data map[string]any `json:"data"`
	}
	decodeBody(t, rec, &body)
	english, _ := body.Data["descriptionEn"].(string)
	if !strings.Contains(english, "<h2") || !strings.Contains(english, "<strong>remote</strong>") {
		t.Fatalf("descriptionEn not rendered, got %q", english)
	}
	arabic, _ := body.Data["descriptionAr"].(string)
	if !strings.Contains(arabic, "<h2") {
		t.Fatalf("descriptionAr not rendered, got %q", arabic)
	}
}

func TestPublicCareerSubmission(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/careers/apply",
		`{"name":"Omar","email":"omar@example.org","position":"Driver","status":"hired"}`, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply = %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Data hr.JobApplication `json:"data"`
	}
	decodeBody(t, rec, &body)
	if string(body.Data.Status) != "pending" {
		t.Fatalf("status = %q, want forced pending", body.Data.Status)
	}

	bad := f.do(t, http.MethodPost, "/api/careers/apply",
		`{"name":"Omar","email":"nope"}`, false)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("bad email = %d, want 400", bad.Code)
	}
}

func TestPublicVolunteerSubmission(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/volunteers/apply",
		`{"name":"Sara","email":"sara@example.org","areas":["events"]}`, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply = %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Data hr.VolunteerRequest `json:"data"`
	}
	decodeBody(t, rec, &body)
	if string(body.Data.Status) != "pending" {
		t.Fatalf("status = %q", body.Data.Status)
	}
}

func TestPublicSitemapRoute(t *testing.T) {
	f := newAPIFixture(t)
	seedPublicNews(t, f)

	rec := f.do(t, http.MethodGet, "/api/sitemap/en", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap = %d body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("content type = %q", ct)
	}
	out := rec.Body.String()
	if !strings.Contains(out, "<urlset") {
		t.Fatalf("missing urlset: %s", out)
	}
	if !strings.Contains(out, "/en/news/clean-water-milestone") {
		t.Fatalf("missing news url: %s", out)
	}
}
