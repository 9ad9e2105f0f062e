package content

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/domain"
)

// Entry is the behavior every bilingual content record exposes to the
// service, listing, and sitemap layers. Records own their derived state:
// slugs recomputed from titles, publication timestamps stamped on flips.
type Entry interface {
	GetID() int64
	SetID(id int64)
	Published() bool
	LocaleVisible(locale domain.Locale) bool
	SitemapVisible(locale domain.Locale) bool
	IncrementPageViews()
	ModifiedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
	SyncSlugs()
	SyncPublication(now time.Time)
	SlugFor(locale domain.Locale) string
	MatchesQuery(query string) bool
	Tags() []string
	// Validate runs the resource's field rules before create/update.
	Validate() error
	// StampSections assigns identifiers to nested section entries added
	// without one, so editors address entries by ID instead of position.
	StampSections()
}

// Meta carries the publication and engagement state shared by every content
// record. Embedding types add their bilingual payload plus slug handling.
type Meta struct {
	ID          int64      `bun:"id,pk,autoincrement" json:"id"`
	IsPublished bool       `bun:"is_published" json:"isPublished"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"publishedAt,omitempty"`
	IsEnglish   bool       `bun:"is_english" json:"isEnglish"`
	IsArabic    bool       `bun:"is_arabic" json:"isArabic"`
	SitemapEn   bool       `bun:"sitemap_en" json:"sitemapEn"`
	SitemapAr   bool       `bun:"sitemap_ar" json:"sitemapAr"`
	PageViews   int64      `bun:"page_views" json:"pageViews"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

func (m *Meta) GetID() int64           { return m.ID }
func (m *Meta) SetID(id int64)         { m.ID = id }
func (m *Meta) Published() bool        { return m.IsPublished }
func (m *Meta) IncrementPageViews()    { m.PageViews++ }
func (m *Meta) ModifiedAt() time.Time  { return m.UpdatedAt }
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *Meta) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// StampSections is a no-op for records without nested section payloads.
func (m *Meta) StampSections() {}

// OrderKey maps the shared orderable columns onto a sortable key so
// non-SQL stores can honor the same ListOptions.OrderBy values. Columns
// living outside Meta (titles, dates, positions) report false.
func (m *Meta) OrderKey(column string) (int64, bool) {
	switch column {
	case "", "id":
		return m.ID, true
	case "created_at":
		return m.CreatedAt.UnixNano(), true
	case "updated_at":
		return m.UpdatedAt.UnixNano(), true
	case "published_at":
		if m.PublishedAt == nil {
			return 0, true
		}
		return m.PublishedAt.UnixNano(), true
	case "page_views":
		return m.PageViews, true
	}
	return 0, false
}

// LocaleVisible reports whether the record is available in the locale.
func (m *Meta) LocaleVisible(locale domain.Locale) bool {
	if locale.IsEnglish() {
		return m.IsEnglish
	}
	return m.IsArabic
}

// SitemapVisible reports whether the record opted into the locale's sitemap.
func (m *Meta) SitemapVisible(locale domain.Locale) bool {
	if locale.IsEnglish() {
		return m.SitemapEn
	}
	return m.SitemapAr
}

// SyncPublication stamps PublishedAt when the record is published without a
// timestamp and clears it when the record is unpublished.
func (m *Meta) SyncPublication(now time.Time) {
	if !m.IsPublished {
		m.PublishedAt = nil
		return
	}
	if m.PublishedAt == nil {
		stamped := now
		m.PublishedAt = &stamped
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchAny(query string, fields ...string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}
	for _, field := range fields {
		if containsFold(field, trimmed) {
			return true
		}
	}
	return false
}

// Category is the flat lookup used to group programs, projects, and news.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`
	Meta

	NameEn string `bun:"name_en,notnull" json:"nameEn"`
	NameAr string `bun:"name_ar,notnull" json:"nameAr"`
	SlugEn string `bun:"slug_en" json:"slugEn"`
	SlugAr string `bun:"slug_ar" json:"slugAr"`
}

func (c *Category) SyncSlugs() {
	c.SlugEn = Slugify(c.NameEn)
	c.SlugAr = Slugify(c.NameAr)
}

func (c *Category) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return c.SlugEn
	}
	return c.SlugAr
}

func (c *Category) MatchesQuery(query string) bool {
	return matchAny(query, c.NameEn, c.NameAr)
}

func (c *Category) Tags() []string { return nil }

func (c *Category) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NameEn, validation.Required),
		validation.Field(&c.NameAr, validation.Required),
	)
}

// Program is a long-running foundation program with its own statistics,
// partners, and slides.
type Program struct {
	bun.BaseModel `bun:"table:programs,alias:prg"`
	Meta

	TitleEn       string                `bun:"title_en,notnull" json:"titleEn"`
	TitleAr       string                `bun:"title_ar,notnull" json:"titleAr"`
	DescriptionEn string                `bun:"description_en" json:"descriptionEn"`
	DescriptionAr string                `bun:"description_ar" json:"descriptionAr"`
	SlugEn        string                `bun:"slug_en" json:"slugEn"`
	SlugAr        string                `bun:"slug_ar" json:"slugAr"`
	ImageURL      string                `bun:"image_url" json:"imageUrl,omitempty"`
	CategoryID    *int64                `bun:"category_id,nullzero" json:"categoryId,omitempty"`
	Goals         []domain.SectionEntry `bun:"goals,type:jsonb" json:"goals,omitempty"`
	Statistics    []domain.Statistic    `bun:"statistics,type:jsonb" json:"statistics,omitempty"`
	Partners      []domain.SectionEntry `bun:"partners,type:jsonb" json:"partners,omitempty"`
	Donors        []domain.SectionEntry `bun:"donors,type:jsonb" json:"donors,omitempty"`
	Funders       []domain.SectionEntry `bun:"funding_providers,type:jsonb" json:"fundingProviders,omitempty"`
	Slides        []domain.Slide        `bun:"slides,type:jsonb" json:"slides,omitempty"`
	TagList       []string              `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (p *Program) SyncSlugs() {
	p.SlugEn = Slugify(p.TitleEn)
	p.SlugAr = Slugify(p.TitleAr)
}

func (p *Program) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return p.SlugEn
	}
	return p.SlugAr
}

func (p *Program) MatchesQuery(query string) bool {
	return matchAny(query, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr)
}

func (p *Program) Tags() []string { return p.TagList }

func (p *Program) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.TitleEn, validation.Required),
		validation.Field(&p.TitleAr, validation.Required),
	)
}

func (p *Program) StampSections() {
	p.Goals = domain.StampSectionEntries(p.Goals)
	p.Partners = domain.StampSectionEntries(p.Partners)
	p.Donors = domain.StampSectionEntries(p.Donors)
	p.Funders = domain.StampSectionEntries(p.Funders)
	p.Statistics = domain.StampStatistics(p.Statistics)
	p.Slides = domain.StampSlides(p.Slides)
}

// Project is a concrete funded effort under a program.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:prj"`
	Meta

	TitleEn       string                `bun:"title_en,notnull" json:"titleEn"`
	TitleAr       string                `bun:"title_ar,notnull" json:"titleAr"`
	DescriptionEn string                `bun:"description_en" json:"descriptionEn"`
	DescriptionAr string                `bun:"description_ar" json:"descriptionAr"`
	SlugEn        string                `bun:"slug_en" json:"slugEn"`
	SlugAr        string                `bun:"slug_ar" json:"slugAr"`
	ImageURL      string                `bun:"image_url" json:"imageUrl,omitempty"`
	ProgramID     *int64                `bun:"program_id,nullzero" json:"programId,omitempty"`
	CategoryID    *int64                `bun:"category_id,nullzero" json:"categoryId,omitempty"`
	Statistics    []domain.Statistic    `bun:"statistics,type:jsonb" json:"statistics,omitempty"`
	Costs         []domain.Statistic    `bun:"costs,type:jsonb" json:"costs,omitempty"`
	Deliverables  []domain.Statistic    `bun:"deliverables,type:jsonb" json:"deliverables,omitempty"`
	Partners      []domain.SectionEntry `bun:"partners,type:jsonb" json:"partners,omitempty"`
	Donors        []domain.SectionEntry `bun:"donors,type:jsonb" json:"donors,omitempty"`
	Funders       []domain.SectionEntry `bun:"funding_providers,type:jsonb" json:"fundingProviders,omitempty"`
	Beneficiaries []domain.SectionEntry `bun:"beneficiaries,type:jsonb" json:"beneficiaries,omitempty"`
	TagList       []string              `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (p *Project) SyncSlugs() {
	p.SlugEn = Slugify(p.TitleEn)
	p.SlugAr = Slugify(p.TitleAr)
}

func (p *Project) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return p.SlugEn
	}
	return p.SlugAr
}

func (p *Project) MatchesQuery(query string) bool {
	return matchAny(query, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr)
}

func (p *Project) Tags() []string { return p.TagList }

func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.TitleEn, validation.Required),
		validation.Field(&p.TitleAr, validation.Required),
	)
}

func (p *Project) StampSections() {
	p.Partners = domain.StampSectionEntries(p.Partners)
	p.Donors = domain.StampSectionEntries(p.Donors)
	p.Funders = domain.StampSectionEntries(p.Funders)
	p.Beneficiaries = domain.StampSectionEntries(p.Beneficiaries)
	p.Statistics = domain.StampStatistics(p.Statistics)
	p.Costs = domain.StampStatistics(p.Costs)
	p.Deliverables = domain.StampStatistics(p.Deliverables)
}

// Activity is a dated event tied optionally to a program or project.
type Activity struct {
	bun.BaseModel `bun:"table:activities,alias:act"`
	Meta

	TitleEn    string     `bun:"title_en,notnull" json:"titleEn"`
	TitleAr    string     `bun:"title_ar,notnull" json:"titleAr"`
	ContentEn  string     `bun:"content_en" json:"contentEn"`
	ContentAr  string     `bun:"content_ar" json:"contentAr"`
	SlugEn     string     `bun:"slug_en" json:"slugEn"`
	SlugAr     string     `bun:"slug_ar" json:"slugAr"`
	ImageURL   string     `bun:"image_url" json:"imageUrl,omitempty"`
	LocationEn string     `bun:"location_en" json:"locationEn,omitempty"`
	LocationAr string     `bun:"location_ar" json:"locationAr,omitempty"`
	Date       *time.Time `bun:"date,nullzero" json:"date,omitempty"`
	ProgramID  *int64     `bun:"program_id,nullzero" json:"programId,omitempty"`
	ProjectID  *int64     `bun:"project_id,nullzero" json:"projectId,omitempty"`
	TagList    []string   `bun:"tags,type:jsonb" json:"tags,omitempty"`
}

func (a *Activity) SyncSlugs() {
	a.SlugEn = Slugify(a.TitleEn)
	a.SlugAr = Slugify(a.TitleAr)
}

func (a *Activity) SlugFor(locale domain.Locale) string {
	if locale.IsEnglish() {
		return a.SlugEn
	}
	return a.SlugAr
}

// MatchesQuery checks titles and body content. Tag strings are reachable
// only through the category filter, never through free-text search.
func (a *Activity) MatchesQuery(query string) bool {
	return matchAny(query, a.TitleEn, a.TitleAr, a.ContentEn, a.ContentAr)
}

func (a *Activity) Tags() []string { return a.TagList }

func (a *Activity) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.TitleEn, validation.Required),
		validation.Field(&a.TitleAr, validation.Required),
	)
}
