// Package di wires the CMS runtime: storage, repositories, services, and
// the HTTP APIs, with in-memory fallbacks when no database is configured.
package di

import (
	"context"
	"net/http"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/identity"
	contentsvc "github.com/amalfoundation/foundation-cms/internal/content"
	hrsvc "github.com/amalfoundation/foundation-cms/internal/hr"
	cmshttp "github.com/amalfoundation/foundation-cms/internal/http"
	identitysvc "github.com/amalfoundation/foundation-cms/internal/identity"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/internal/logging/gologger"
	"github.com/amalfoundation/foundation-cms/internal/markdown"
	"github.com/amalfoundation/foundation-cms/internal/runtimeconfig"
	"github.com/amalfoundation/foundation-cms/internal/sitemap"
	"github.com/amalfoundation/foundation-cms/pkg/activity"
	"github.com/amalfoundation/foundation-cms/pkg/activity/usersink"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
	"github.com/amalfoundation/foundation-cms/pkg/storage"
)

// Container wires module dependencies for one CMS instance.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	provider      interfaces.LoggerProvider
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	notifier      activity.Notifier
	clock         func() time.Time

	applicationRepo hr.ApplicationRepository
	volunteerRepo   hr.VolunteerRepository
	userRepo        identity.UserRepository
	sessionRepo     identity.SessionRepository

	contentSvcs cmshttp.ContentServices
	hrSvc       hr.Service
	identitySvc identity.Service

	renderer *markdown.Renderer
	importer *markdown.Importer
	sitemap  *sitemap.Generator
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB attaches a relational store. Without it every repository runs
// in memory.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache wiring.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the go-logger backed default provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithNotifier overrides the audit event sink used by every service.
func WithNotifier(notifier activity.Notifier) Option {
	return func(c *Container) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithActivitySink bridges audit events into a go-users activity sink.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(c *Container) {
		if sink != nil {
			c.notifier = usersink.Hook{Sink: sink}
		}
	}
}

// WithClock overrides the time source, for deterministic wiring in tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithHRService overrides the default HR service binding.
func WithHRService(svc hr.Service) Option {
	return func(c *Container) {
		c.hrSvc = svc
	}
}

// WithIdentityService overrides the default identity service binding.
func WithIdentityService(svc identity.Service) Option {
	return func(c *Container) {
		c.identitySvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		notifier: activity.NoOp(),
		clock:    time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureServices()
	c.configureContentExtras()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.provider != nil || !c.Config.Logging.Enabled {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	c.provider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if c.bunDB == nil {
		return
	}

	if c.cacheService == nil {
		service, err := repocache.NewCacheService(repocache.DefaultConfig())
		if err == nil {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		c.applicationRepo = hrsvc.NewMemoryApplicationRepository()
		c.volunteerRepo = hrsvc.NewMemoryVolunteerRepository()
		c.userRepo = identitysvc.NewMemoryUserRepository()
		c.sessionRepo = identitysvc.NewMemorySessionRepository()
		return
	}

	c.applicationRepo = hrsvc.NewBunApplicationRepository(c.bunDB)
	c.volunteerRepo = hrsvc.NewBunVolunteerRepository(c.bunDB)
	c.userRepo = identitysvc.NewBunUserRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.sessionRepo = identitysvc.NewBunSessionRepository(c.bunDB)
}

func (c *Container) configureServices() {
	c.contentSvcs = cmshttp.ContentServices{
		Categories:   newContentService[*content.Category](c, contentsvc.CategoryTable),
		Programs:     newContentService[*content.Program](c, contentsvc.ProgramTable),
		Projects:     newContentService[*content.Project](c, contentsvc.ProjectTable),
		Activities:   newContentService[*content.Activity](c, contentsvc.ActivityTable),
		News:         newContentService[*content.NewsArticle](c, contentsvc.NewsTable),
		Publications: newContentService[*content.Publication](c, contentsvc.PublicationTable),
		Reports:      newContentService[*content.Report](c, contentsvc.ReportTable),
		Images:       newContentService[*content.GalleryImage](c, contentsvc.ImageTable),
		Videos:       newContentService[*content.Video](c, contentsvc.VideoTable),
		Stories:      newContentService[*content.SuccessStory](c, contentsvc.StoryTable),
		HeroSlides:   newContentService[*content.HeroSlide](c, contentsvc.HeroSlideTable),
	}

	if c.hrSvc == nil {
		c.hrSvc = hrsvc.NewService(
			c.applicationRepo,
			c.volunteerRepo,
			hrsvc.WithClock(c.clock),
			hrsvc.WithNotifier(c.notifier),
			hrsvc.WithLogger(logging.HRLogger(c.provider)),
		)
	}

	if c.identitySvc == nil {
		identityOpts := []identitysvc.ServiceOption{
			identitysvc.WithClock(c.clock),
			identitysvc.WithLogger(logging.IdentityLogger(c.provider)),
		}
		if c.Config.Sessions.TTL > 0 {
			identityOpts = append(identityOpts, identitysvc.WithSessionTTL(c.Config.Sessions.TTL))
		}
		c.identitySvc = identitysvc.NewService(c.userRepo, c.sessionRepo, identityOpts...)
	}
}

func (c *Container) configureContentExtras() {
	c.renderer = markdown.NewRenderer()

	if c.Config.Features.MarkdownImport {
		c.importer = markdown.NewImporter(
			c.contentSvcs.News,
			markdown.WithLogger(logging.ImportLogger(c.provider)),
		)
	}

	if c.Config.Features.Sitemap && strings.TrimSpace(c.Config.Sitemap.BaseURL) != "" {
		c.sitemap = sitemap.NewGenerator(c.Config.Sitemap.BaseURL,
			sitemap.NewServiceSource("programs", c.contentSvcs.Programs),
			sitemap.NewServiceSource("projects", c.contentSvcs.Projects),
			sitemap.NewServiceSource("activities", c.contentSvcs.Activities),
			sitemap.NewServiceSource("news", c.contentSvcs.News),
			sitemap.NewServiceSource("publications", c.contentSvcs.Publications),
			sitemap.NewServiceSource("reports", c.contentSvcs.Reports),
			sitemap.NewServiceSource("stories", c.contentSvcs.Stories),
			sitemap.NewServiceSource("videos", c.contentSvcs.Videos),
			sitemap.NewServiceSource("images", c.contentSvcs.Images),
		)
	}
}

// newContentService binds one record type to its storage and service. Each
// resource gets the bun repository when a database is attached and the
// in-memory repository otherwise.
func newContentService[T content.Entry](c *Container, spec contentsvc.TableSpec) content.Service[T] {
	var repo content.Repository[T]
	if c.bunDB != nil {
		repo = contentsvc.NewBunRepository[T](c.bunDB, spec)
	} else {
		repo = contentsvc.NewMemoryRepository[T](spec.Resource)
	}
	return contentsvc.NewService[T](
		spec.Resource,
		repo,
		contentsvc.WithClock[T](c.clock),
		contentsvc.WithNotifier[T](c.notifier),
		contentsvc.WithLogger[T](logging.ContentLogger(c.provider)),
	)
}

// SeedAdminUser provisions a CMS administrator when no account exists for
// the email. Existing accounts are left untouched.
func (c *Container) SeedAdminUser(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	if _, err := c.userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := identitysvc.HashPassword(password)
	if err != nil {
		return err
	}
	now := c.clock()
	_, err = c.userRepo.Create(ctx, &identity.User{
		ID:           identitysvc.UserUUID(email),
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}

// Bootstrap creates the schema when a relational store is attached.
func (c *Container) Bootstrap(ctx context.Context) error {
	if c.bunDB == nil {
		return nil
	}
	return storage.Bootstrap(ctx, c.bunDB)
}

// DB exposes the attached bun database, nil when running in memory.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}

// LoggerProvider exposes the configured logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// ContentServices exposes the per-resource content service bindings.
func (c *Container) ContentServices() cmshttp.ContentServices {
	return c.contentSvcs
}

// HRService exposes the job application and volunteer workflows.
func (c *Container) HRService() hr.Service {
	return c.hrSvc
}

// IdentityService exposes authentication, sessions, and profiles.
func (c *Container) IdentityService() identity.Service {
	return c.identitySvc
}

// MarkdownRenderer exposes the shared goldmark renderer.
func (c *Container) MarkdownRenderer() *markdown.Renderer {
	return c.renderer
}

// MarkdownImporter exposes the directory importer, nil unless the feature
// is enabled.
func (c *Container) MarkdownImporter() *markdown.Importer {
	return c.importer
}

// SitemapGenerator exposes the per-language sitemap builder, nil unless the
// feature is enabled.
func (c *Container) SitemapGenerator() *sitemap.Generator {
	return c.sitemap
}

// PublicAPI builds the visitor-facing API bound to this container.
func (c *Container) PublicAPI() *cmshttp.PublicAPI {
	return cmshttp.NewPublicAPI(
		cmshttp.WithPublicBasePath(c.Config.HTTP.PublicBase),
		cmshttp.WithPublicContentServices(c.contentSvcs),
		cmshttp.WithPublicHRService(c.hrSvc),
		cmshttp.WithMarkdownRenderer(c.renderer),
		cmshttp.WithSitemapGenerator(c.sitemap),
		cmshttp.WithPublicLogger(logging.HTTPLogger(c.provider)),
	)
}

// AdminAPI builds the back-office API bound to this container.
func (c *Container) AdminAPI() *cmshttp.AdminAPI {
	auth := cmshttp.NewAuthenticator(c.identitySvc, c.Config.HTTP.SessionCookie)
	return cmshttp.NewAdminAPI(
		cmshttp.WithAdminBasePath(c.Config.HTTP.AdminBase),
		cmshttp.WithAuthenticator(auth),
		cmshttp.WithIdentityService(c.identitySvc),
		cmshttp.WithHRService(c.hrSvc),
		cmshttp.WithContentServices(c.contentSvcs),
		cmshttp.WithAdminLogger(logging.HTTPLogger(c.provider)),
	)
}

// Handler registers both API surfaces on a fresh mux.
func (c *Container) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := c.PublicAPI().Register(mux); err != nil {
		return nil, err
	}
	if err := c.AdminAPI().Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}
