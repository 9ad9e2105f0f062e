package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/domain"
)

// NewsArticle is a dated editorial piece.
type NewsArticle struct {
	bun.BaseModel `bun:"table:news,alias:nws"`
	Meta

	TitleEn    string   `bun:"title_en,notnull" json:"titleEn"`
	TitleAr    string   `bun:"title_ar,notnull" json:"titleAr"`
	SummaryEn  string   `bun:"summary_en" json:"summaryEn,omitempty"`
	SummaryAr  string   `bun:"summary_ar" json:"summaryAr,omitempty"`
	ContentEn  string   `bun:"content_en" json:"contentEn"`
	ContentAr  string   `bun:"content_ar" json:"contentAr"`
	SlugEn     string   `bun:"slug_en" json:"slugEn"`
	SlugAr     string   `bun:"slug_ar" json:"slugAr"`
	ImageURL   string   `bun:"image_url" json:"imageUrl,omitempty"`
	CategoryID *int64   `bun:"category_id,nullzero" json:"categoryId,omitempty"`
	Keywords   []string `bun:"keywords,type:jsonb" json:"keywords,omitempty"`
	TagList    []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (n *NewsArticle) SyncSlugs() {
	n.SlugEn = Slugify(n.TitleEn)
	n.SlugAr = Slugify(n.TitleAr)
}

func (n *NewsArticle) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return n.SlugEn
	}
	return n.SlugAr
}

func (n *NewsArticle) MatchesQuery(query string) bool {
	return matchAny(query, n.TitleEn, n.TitleAr, n.ContentEn, n.ContentAr)
}

func (n *NewsArticle) Tags() []string { return n.TagList }

func (n *NewsArticle) Validate() error {
	return validation.ValidateStruct(n,
		validation.Field(&n.TitleEn, validation.Required),
		validation.Field(&n.TitleAr, validation.Required),
	)
}

// Publication is a downloadable document (studies, guides, booklets).
type Publication struct {
	bun.BaseModel `bun:"table:publications,alias:pub"`
	Meta

	TitleEn       string   `bun:"title_en,notnull" json:"titleEn"`
	TitleAr       string   `bun:"title_ar,notnull" json:"titleAr"`
	DescriptionEn string   `bun:"description_en" json:"descriptionEn"`
	DescriptionAr string   `bun:"description_ar" json:"descriptionAr"`
	SlugEn        string   `bun:"slug_en" json:"slugEn"`
	SlugAr        string   `bun:"slug_ar" json:"slugAr"`
	FileURL       string   `bun:"file_url" json:"fileUrl,omitempty"`
	CoverURL      string   `bun:"cover_url" json:"coverUrl,omitempty"`
	Year          int      `bun:"year" json:"year,omitempty"`
	TagList       []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (p *Publication) SyncSlugs() {
	p.SlugEn = Slugify(p.TitleEn)
	p.SlugAr = Slugify(p.TitleAr)
}

func (p *Publication) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return p.SlugEn
	}
	return p.SlugAr
}

func (p *Publication) MatchesQuery(query string) bool {
	return matchAny(query, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr)
}

func (p *Publication) Tags() []string { return p.TagList }

func (p *Publication) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.TitleEn, validation.Required),
		validation.Field(&p.TitleAr, validation.Required),
		validation.Field(&p.Year, validation.When(p.Year != 0, validation.Min(1900), validation.Max(2100))),
	)
}

// Report is a periodic accountability document (annual/financial reports).
type Report struct {
	bun.BaseModel `bun:"table:reports,alias:rpt"`
	Meta

	TitleEn       string   `bun:"title_en,notnull" json:"titleEn"`
	TitleAr       string   `bun:"title_ar,notnull" json:"titleAr"`
	DescriptionEn string   `bun:"description_en" json:"descriptionEn"`
	DescriptionAr string   `bun:"description_ar" json:"descriptionAr"`
	SlugEn        string   `bun:"slug_en" json:"slugEn"`
	SlugAr        string   `bun:"slug_ar" json:"slugAr"`
	FileURL       string   `bun:"file_url" json:"fileUrl,omitempty"`
	CoverURL      string   `bun:"cover_url" json:"coverUrl,omitempty"`
	Year          int      `bun:"year" json:"year,omitempty"`
	TagList       []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (r *Report) SyncSlugs() {
	r.SlugEn = Slugify(r.TitleEn)
	r.SlugAr = Slugify(r.TitleAr)
}

func (r *Report) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return r.SlugEn
	}
	return r.SlugAr
}

func (r *Report) MatchesQuery(query string) bool {
	return matchAny(query, r.TitleEn, r.TitleAr, r.DescriptionEn, r.DescriptionAr)
}

func (r *Report) Tags() []string { return r.TagList }

func (r *Report) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TitleEn, validation.Required),
		validation.Field(&r.TitleAr, validation.Required),
		validation.Field(&r.Year, validation.When(r.Year != 0, validation.Min(1900), validation.Max(2100))),
	)
}

// GalleryImage is a media-gallery photograph with bilingual captions.
type GalleryImage struct {
	bun.BaseModel `bun:"table:images,alias:img"`
	Meta

	TitleEn       string   `bun:"title_en" json:"titleEn"`
	TitleAr       string   `bun:"title_ar" json:"titleAr"`
	DescriptionEn string   `bun:"description_en" json:"descriptionEn,omitempty"`
	DescriptionAr string   `bun:"description_ar" json:"descriptionAr,omitempty"`
	SlugEn        string   `bun:"slug_en" json:"slugEn"`
	SlugAr        string   `bun:"slug_ar" json:"slugAr"`
	URL           string   `bun:"url,notnull" json:"url"`
	ActivityID    *int64   `bun:"activity_id,nullzero" json:"activityId,omitempty"`
	TagList       []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (g *GalleryImage) SyncSlugs() {
	g.SlugEn = Slugify(g.TitleEn)
	g.SlugAr = Slugify(g.TitleAr)
}

func (g *GalleryImage) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return g.SlugEn
	}
	return g.SlugAr
}

func (g *GalleryImage) MatchesQuery(query string) bool {
	return matchAny(query, g.TitleEn, g.TitleAr, g.DescriptionEn, g.DescriptionAr)
}

func (g *GalleryImage) Tags() []string { return g.TagList }

// Validate only requires the image URL. Captions are optional.
func (g *GalleryImage) Validate() error {
	return validation.ValidateStruct(g,
		validation.Field(&g.URL, validation.Required),
	)
}

// Video is an embedded media item (hosted externally, URLs are opaque).
type Video struct {
	bun.BaseModel `bun:"table:videos,alias:vid"`
	Meta

	TitleEn       string   `bun:"title_en,notnull" json:"titleEn"`
	TitleAr       string   `bun:"title_ar,notnull" json:"titleAr"`
	DescriptionEn string   `bun:"description_en" json:"descriptionEn,omitempty"`
	DescriptionAr string   `bun:"description_ar" json:"descriptionAr,omitempty"`
	SlugEn        string   `bun:"slug_en" json:"slugEn"`
	SlugAr        string   `bun:"slug_ar" json:"slugAr"`
	URL           string   `bun:"url,notnull" json:"url"`
	ThumbnailURL  string   `bun:"thumbnail_url" json:"thumbnailUrl,omitempty"`
	ProgramID     *int64   `bun:"program_id,nullzero" json:"programId,omitempty"`
	TagList       []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (v *Video) SyncSlugs() {
	v.SlugEn = Slugify(v.TitleEn)
	v.SlugAr = Slugify(v.TitleAr)
}

func (v *Video) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return v.SlugEn
	}
	return v.SlugAr
}

func (v *Video) MatchesQuery(query string) bool {
	return matchAny(query, v.TitleEn, v.TitleAr, v.DescriptionEn, v.DescriptionAr)
}

func (v *Video) Tags() []string { return v.TagList }

func (v *Video) Validate() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.TitleEn, validation.Required),
		validation.Field(&v.TitleAr, validation.Required),
		validation.Field(&v.URL, validation.Required),
	)
}

// SuccessStory is a beneficiary story tied optionally to a project.
type SuccessStory struct {
	bun.BaseModel `bun:"table:stories,alias:sty"`
	Meta

	TitleEn      string   `bun:"title_en,notnull" json:"titleEn"`
	TitleAr      string   `bun:"title_ar,notnull" json:"titleAr"`
	PersonNameEn string   `bun:"person_name_en" json:"personNameEn,omitempty"`
	PersonNameAr string   `bun:"person_name_ar" json:"personNameAr,omitempty"`
	ContentEn    string   `bun:"content_en" json:"contentEn"`
	ContentAr    string   `bun:"content_ar" json:"contentAr"`
	SlugEn       string   `bun:"slug_en" json:"slugEn"`
	SlugAr       string   `bun:"slug_ar" json:"slugAr"`
	ImageURL     string   `bun:"image_url" json:"imageUrl,omitempty"`
	ProjectID    *int64   `bun:"project_id,nullzero" json:"projectId,omitempty"`
	TagList      []string `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (s *SuccessStory) SyncSlugs() {
	s.SlugEn = Slugify(s.TitleEn)
	s.SlugAr = Slugify(s.TitleAr)
}

func (s *SuccessStory) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return s.SlugEn
	}
	return s.SlugAr
}

func (s *SuccessStory) MatchesQuery(query string) bool {
	return matchAny(query, s.TitleEn, s.TitleAr, s.ContentEn, s.ContentAr)
}

func (s *SuccessStory) Tags() []string { return s.TagList }

func (s *SuccessStory) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.TitleEn, validation.Required),
		validation.Field(&s.TitleAr, validation.Required),
	)
}

// HeroSlide is a homepage carousel entry. Slides have no slugs; ordering is
// explicit through Position.
type HeroSlide struct {
	bun.BaseModel `bun:"table:hero_slides,alias:hsl"`
	Meta

	TitleEn    string `bun:"title_en,notnull" json:"titleEn"`
	TitleAr    string `bun:"title_ar,notnull" json:"titleAr"`
	SubtitleEn string `bun:"subtitle_en" json:"subtitleEn,omitempty"`
	SubtitleAr string `bun:"subtitle_ar" json:"subtitleAr,omitempty"`
	ImageURL   string `bun:"image_url,notnull" json:"imageUrl"`
	LinkURL    string `bun:"link_url" json:"linkUrl,omitempty"`
	Position   int    `bun:"position" json:"position"`
}

func (h *HeroSlide) SyncSlugs() {}

func (h *HeroSlide) SlugFor(domain.Locale) string { return "" }

func (h *HeroSlide) MatchesQuery(query string) bool {
	return matchAny(query, h.TitleEn, h.TitleAr, h.SubtitleEn, h.SubtitleAr)
}

func (h *HeroSlide) Tags() []string { return nil }

func (h *HeroSlide) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.TitleEn, validation.Required),
		validation.Field(&h.TitleAr, validation.Required),
		validation.Field(&h.ImageURL, validation.Required),
	)
}
