package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// arabicDivider splits a document body into its English and Arabic halves.
// Text before the marker is English, text after it is Arabic.
const arabicDivider = "<!-- ar -->"

// articleFrontMatter is the metadata block expected at the top of each
// importable news document.
type articleFrontMatter struct {
	TitleEn   string         `yaml:"titleEn"`
	TitleAr   string         `yaml:"titleAr"`
	SummaryEn string         `yaml:"summaryEn"`
	SummaryAr string         `yaml:"summaryAr"`
	ImageURL  string         `yaml:"image"`
	Tags      []string       `yaml:"tags"`
	Keywords  []string       `yaml:"keywords"`
	Published bool           `yaml:"published"`
	Date      time.Time      `yaml:"date"`
	Custom    map[string]any `yaml:",inline"`
}

// ImporterOption configures the importer.
type ImporterOption func(*Importer)

// WithLogger overrides the importer logger.
func WithLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.log = logger
		}
	}
}

// Importer seeds news articles from Markdown files with YAML frontmatter.
// Existing articles are matched by slug and left alone, so re-running an
// import never duplicates content.
type Importer struct {
	articles content.Service[*content.NewsArticle]
	log      interfaces.Logger
}

// NewImporter constructs an importer over the news article service.
func NewImporter(articles content.Service[*content.NewsArticle], opts ...ImporterOption) *Importer {
	i := &Importer{
		articles: articles,
		log:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportDir walks the filesystem for Markdown documents and imports each
// one. It returns how many new articles were created.
func (i *Importer) ImportDir(ctx context.Context, fsys fs.FS) (int, error) {
	imported := 0
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		source, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		article, err := i.ImportFile(ctx, path, source)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		if article != nil {
			imported++
		}
		return nil
	})
	return imported, err
}

// ImportFile parses one Markdown document and creates a news article from
// it. A nil article with a nil error means the slug already exists.
func (i *Importer) ImportFile(ctx context.Context, path string, source []byte) (*content.NewsArticle, error) {
	var meta articleFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if strings.TrimSpace(meta.TitleEn) == "" && strings.TrimSpace(meta.TitleAr) == "" {
		return nil, fmt.Errorf("document %s carries no title", path)
	}

	bodyEn, bodyAr := splitBody(string(body))

	article := &content.NewsArticle{
		TitleEn:   meta.TitleEn,
		TitleAr:   meta.TitleAr,
		SummaryEn: meta.SummaryEn,
		SummaryAr: meta.SummaryAr,
		ContentEn: bodyEn,
		ContentAr: bodyAr,
		ImageURL:  meta.ImageURL,
		Keywords:  meta.Keywords,
		TagList:   meta.Tags,
	}
	article.IsPublished = meta.Published
	if !meta.Date.IsZero() {
		stamped := meta.Date
		article.PublishedAt = &stamped
	}
	article.IsEnglish = bodyEn != "" || meta.TitleEn != ""
	article.IsArabic = bodyAr != "" || meta.TitleAr != ""
	article.SitemapEn = article.IsEnglish
	article.SitemapAr = article.IsArabic

	slug := content.Slugify(meta.TitleEn)
	if slug == "" {
		slug = content.Slugify(meta.TitleAr)
	}
	if existing, err := i.articles.GetBySlug(ctx, slug); err == nil && existing != nil {
		i.log.Debug("skipping existing article", "path", path, "slug", slug)
		return nil, nil
	} else if err != nil && !content.IsNotFound(err) {
		return nil, err
	}

	created, err := i.articles.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	i.log.Info("imported article", "path", path, "slug", created.SlugEn, "id", created.ID)
	return created, nil
}

func splitBody(body string) (string, string) {
	english, arabic, found := strings.Cut(body, arabicDivider)
	english = strings.TrimSpace(english)
	if !found {
		return english, ""
	}
	return english, strings.TrimSpace(arabic)
}
