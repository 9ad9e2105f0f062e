package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Item is one sitemap candidate: a published record's slug and its last
// modification time for the locale being generated.
type Item struct {
	Slug     string
	Modified time.Time
}

// Source feeds one resource's published entries into the generator.
type Source interface {
	Route() string
	Items(ctx context.Context, locale domain.Locale) ([]Item, error)
}

// NewServiceSource adapts a content service into a Source. Only published
// records that opted into the locale's sitemap and carry a slug are
// emitted.
func NewServiceSource[T content.Entry](route string, service content.Service[T]) Source {
	return &serviceSource[T]{route: route, service: service}
}

type serviceSource[T content.Entry] struct {
	route   string
	service content.Service[T]
}

func (s *serviceSource[T]) Route() string { return s.route }

func (s *serviceSource[T]) Items(ctx context.Context, locale domain.Locale) ([]Item, error) {
	opts := content.PublishedOnly(locale)
	opts.Limit = content.MaxListLimit

	items := make([]Item, 0)
	for {
		records, total, err := s.service.List(ctx, opts)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if !record.SitemapVisible(locale) {
				continue
			}
			slug := record.SlugFor(locale)
			if slug == "" {
				continue
			}
			items = append(items, Item{Slug: slug, Modified: record.ModifiedAt()})
		}
		opts.Offset += len(records)
		if len(records) == 0 || opts.Offset >= total {
			break
		}
	}
	return items, nil
}

// Generator renders per-language sitemaps. URLs come from a urlkit route
// manager so the path layout lives in one place.
type Generator struct {
	manager *urlkit.RouteManager
	sources []Source
}

// NewGenerator builds the route manager for the public site layout rooted
// at baseURL and registers the given sources.
func NewGenerator(baseURL string, sources ...Source) *Generator {
	resourcePaths := map[string]string{
		"home":         "/",
		"programs":     "/programs/:slug",
		"projects":     "/projects/:slug",
		"activities":   "/activities/:slug",
		"news":         "/news/:slug",
		"publications": "/publications/:slug",
		"reports":      "/reports/:slug",
		"stories":      "/success-stories/:slug",
		"videos":       "/videos/:slug",
		"images":       "/gallery/:slug",
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: baseURL,
				Paths:   map[string]string{"home": "/"},
				Groups: []urlkit.GroupConfig{
					{Name: "en", Path: "/en", Paths: resourcePaths},
					{Name: "ar", Path: "/ar", Paths: resourcePaths},
				},
			},
		},
	})

	return &Generator{manager: manager, sources: sources}
}

type urlEntry struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Generate renders the sitemap XML for one locale.
func (g *Generator) Generate(ctx context.Context, locale domain.Locale) ([]byte, error) {
	group, err := g.localeGroup(locale)
	if err != nil {
		return nil, err
	}

	set := urlSet{XMLNS: xmlns}

	home, err := g.buildURL(group, "home", "")
	if err == nil && home != "" {
		set.URLs = append(set.URLs, urlEntry{Loc: home})
	}

	for _, source := range g.sources {
		items, err := source.Items(ctx, locale)
		if err != nil {
			return nil, fmt.Errorf("sitemap source %s: %w", source.Route(), err)
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Slug < items[j].Slug })
		for _, item := range items {
			loc, err := g.buildURL(group, source.Route(), item.Slug)
			if err != nil {
				return nil, fmt.Errorf("sitemap url %s/%s: %w", source.Route(), item.Slug, err)
			}
			entry := urlEntry{Loc: loc}
			if !item.Modified.IsZero() {
				entry.LastMod = item.Modified.UTC().Format("2006-01-02")
			}
			set.URLs = append(set.URLs, entry)
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap marshal: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func (g *Generator) localeGroup(locale domain.Locale) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("sitemap: route group %q not found", locale)
		}
	}()
	root := g.manager.Group("site")
	group = root.Group(string(locale))
	return group, nil
}

func (g *Generator) buildURL(group *urlkit.Group, route, slug string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = fmt.Errorf("sitemap: route %q not registered", route)
		}
	}()
	builder := group.Builder(route)
	if slug != "" {
		builder = builder.WithParam("slug", slug)
	}
	return builder.Build()
}
