package content

// Resource names double as URL path segments and audit object types.
const (
	ResourceCategories   = "categories"
	ResourcePrograms     = "programs"
	ResourceProjects     = "projects"
	ResourceActivities   = "activities"
	ResourceNews         = "news"
	ResourcePublications = "publications"
	ResourceReports      = "reports"
	ResourceImages       = "images"
	ResourceVideos       = "videos"
	ResourceStories      = "stories"
	ResourceHeroSlides   = "hero-slides"
)

func baseOrderColumns(extra ...string) []string {
	cols := []string{"id", "created_at", "updated_at", "published_at", "page_views"}
	return append(cols, extra...)
}

var bilingualSlugs = []string{"slug_en", "slug_ar"}

// Table specs pin the queryable surface per resource. Search stays on
// titles and body text; tag strings are reachable only through the
// category filter.
var (
	CategoryTable = TableSpec{
		Resource:      ResourceCategories,
		SearchColumns: []string{"name_en", "name_ar"},
		SlugColumns:   bilingualSlugs,
		OrderColumns:  baseOrderColumns("name_en"),
	}

	ProgramTable = TableSpec{
		Resource:      ResourcePrograms,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	ProjectTable = TableSpec{
		Resource:      ResourceProjects,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	ActivityTable = TableSpec{
		Resource:      ResourceActivities,
		SearchColumns: []string{"title_en", "title_ar", "content_en", "content_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en", "date"),
		DefaultOrder:  "date",
	}

	NewsTable = TableSpec{
		Resource:      ResourceNews,
		SearchColumns: []string{"title_en", "title_ar", "content_en", "content_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	PublicationTable = TableSpec{
		Resource:      ResourcePublications,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en", "year"),
		DefaultOrder:  "year",
	}

	ReportTable = TableSpec{
		Resource:      ResourceReports,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en", "year"),
		DefaultOrder:  "year",
	}

	ImageTable = TableSpec{
		Resource:      ResourceImages,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	VideoTable = TableSpec{
		Resource:      ResourceVideos,
		SearchColumns: []string{"title_en", "title_ar", "description_en", "description_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	StoryTable = TableSpec{
		Resource:      ResourceStories,
		SearchColumns: []string{"title_en", "title_ar", "content_en", "content_ar"},
		SlugColumns:   bilingualSlugs,
		TagsColumn:    "tags",
		OrderColumns:  baseOrderColumns("title_en"),
	}

	HeroSlideTable = TableSpec{
		Resource:      ResourceHeroSlides,
		SearchColumns: []string{"title_en", "title_ar", "subtitle_en", "subtitle_ar"},
		OrderColumns:  baseOrderColumns("position"),
		DefaultOrder:  "position",
	}
)
