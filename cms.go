// Package cms is the runtime façade for the foundation's bilingual content
// website and its back office: published listings and detail pages on the
// public side, full content management, HR workflows, and session-guarded
// APIs on the admin side.
package cms

import (
	"context"
	"net/http"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/identity"
	"github.com/amalfoundation/foundation-cms/internal/di"
	cmshttp "github.com/amalfoundation/foundation-cms/internal/http"
	"github.com/amalfoundation/foundation-cms/internal/markdown"
	"github.com/amalfoundation/foundation-cms/internal/sitemap"
)

// HRService exports the application and volunteer workflow contract.
type HRService = hr.Service

// IdentityService exports the authentication and profile contract.
type IdentityService = identity.Service

// CategoryService exports the category content service binding.
type CategoryService = content.Service[*content.Category]

// ProgramService exports the program content service binding.
type ProgramService = content.Service[*content.Program]

// ProjectService exports the project content service binding.
type ProjectService = content.Service[*content.Project]

// NewsService exports the news article content service binding.
type NewsService = content.Service[*content.NewsArticle]

// Module represents the top level CMS runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a CMS module using the provided configuration and optional
// DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Bootstrap creates the database schema when a relational store is wired.
func (m *Module) Bootstrap(ctx context.Context) error {
	return m.container.Bootstrap(ctx)
}

// Content returns the per-resource content service bindings.
func (m *Module) Content() cmshttp.ContentServices {
	return m.container.ContentServices()
}

// HR returns the job application and volunteer request workflows.
func (m *Module) HR() HRService {
	return m.container.HRService()
}

// Identity returns authentication, session, and profile operations.
func (m *Module) Identity() IdentityService {
	return m.container.IdentityService()
}

// Importer returns the markdown directory importer, nil unless enabled.
func (m *Module) Importer() *markdown.Importer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownImporter()
}

// Sitemap returns the per-language sitemap generator, nil unless enabled.
func (m *Module) Sitemap() *sitemap.Generator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SitemapGenerator()
}

// Handler returns an http.Handler serving both the public and the admin API.
func (m *Module) Handler() (http.Handler, error) {
	return m.container.Handler()
}
