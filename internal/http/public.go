package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
	"github.com/amalfoundation/foundation-cms/hr"
	contentsvc "github.com/amalfoundation/foundation-cms/internal/content"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/internal/markdown"
	"github.com/amalfoundation/foundation-cms/internal/sitemap"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// PublicAPI registers the visitor-facing endpoints: published content
// listings and detail views, HR submissions, and per-language sitemaps.
// No route here requires a session.
type PublicAPI struct {
	basePath string
	services ContentServices
	hr       hr.Service
	renderer *markdown.Renderer
	sitemap  *sitemap.Generator
	log      interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
		log:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithPublicBasePath overrides the base API path (defaults to "/api").
func WithPublicBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPublicContentServices wires the per-resource content services.
func WithPublicContentServices(services ContentServices) PublicOption {
	return func(api *PublicAPI) {
		api.services = services
	}
}

// WithPublicHRService wires career and volunteer submissions.
func WithPublicHRService(service hr.Service) PublicOption {
	return func(api *PublicAPI) {
		api.hr = service
	}
}

// WithMarkdownRenderer enables HTML rendering of stored Markdown bodies
// through the "format=html" query parameter.
func WithMarkdownRenderer(renderer *markdown.Renderer) PublicOption {
	return func(api *PublicAPI) {
		api.renderer = renderer
	}
}

// WithSitemapGenerator wires the per-language sitemap endpoint.
func WithSitemapGenerator(generator *sitemap.Generator) PublicOption {
	return func(api *PublicAPI) {
		api.sitemap = generator
	}
}

// WithPublicLogger overrides the API logger.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.log = logger
		}
	}
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}

	base := joinPath(api.basePath, "")

	registerPublicResource(api, mux, base, contentsvc.ResourceCategories, api.services.Categories)
	registerPublicResource(api, mux, base, contentsvc.ResourcePrograms, api.services.Programs)
	registerPublicResource(api, mux, base, contentsvc.ResourceProjects, api.services.Projects)
	registerPublicResource(api, mux, base, contentsvc.ResourceActivities, api.services.Activities)
	registerPublicResource(api, mux, base, contentsvc.ResourceNews, api.services.News)
	registerPublicResource(api, mux, base, contentsvc.ResourcePublications, api.services.Publications)
	registerPublicResource(api, mux, base, contentsvc.ResourceReports, api.services.Reports)
	registerPublicResource(api, mux, base, contentsvc.ResourceImages, api.services.Images)
	registerPublicResource(api, mux, base, contentsvc.ResourceVideos, api.services.Videos)
	registerPublicResource(api, mux, base, contentsvc.ResourceStories, api.services.Stories)
	registerPublicResource(api, mux, base, contentsvc.ResourceHeroSlides, api.services.HeroSlides)

	api.registerSubmissionRoutes(mux, base)
	api.registerSitemapRoutes(mux, base)

	return nil
}

// registerPublicResource wires the read-only surface for one collection.
// Listings and detail views are always restricted to published records.
func registerPublicResource[T content.Entry](api *PublicAPI, mux *http.ServeMux, base, resource string, service content.Service[T]) {
	if service == nil {
		return
	}

	root := joinPath(base, resource)

	mux.HandleFunc("GET "+root, func(w http.ResponseWriter, r *http.Request) {
		opts := parseListOptions(r)
		published := true
		opts.Published = &published
		if opts.Locale == "" {
			opts.Locale = domain.ParseLocale(r.URL.Query().Get("locale"))
		}

		records, total, err := service.List(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: records, Total: total})
	})

	mux.HandleFunc("GET "+root+"/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")

		var record T
		if id, err := parseID(key); err == nil {
			record, err = service.View(r.Context(), id)
			if err != nil {
				writeError(w, err)
				return
			}
		} else {
			found, err := service.GetBySlug(r.Context(), key)
			if err != nil {
				writeError(w, err)
				return
			}
			record, err = service.View(r.Context(), found.GetID())
			if err != nil {
				writeError(w, err)
				return
			}
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "html") && api.renderer != nil {
			payload, err := api.renderBodies(record)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, dataResponse{Data: payload})
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: record})
	})
}

// renderBodies converts the Markdown body fields of a record to HTML
// without the handler knowing the concrete record type. Resources that
// carry their body in the description pair get the same treatment.
func (api *PublicAPI) renderBodies(record any) (map[string]any, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{}
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, err
	}

	for _, field := range []string{"contentEn", "contentAr", "descriptionEn", "descriptionAr"} {
		raw, ok := payload[field].(string)
		if !ok || raw == "" {
			continue
		}
		rendered, err := api.renderer.Render(raw)
		if err != nil {
			return nil, err
		}
		payload[field] = rendered
	}
	return payload, nil
}

func (api *PublicAPI) registerSubmissionRoutes(mux *http.ServeMux, base string) {
	if api.hr == nil {
		return
	}

	mux.HandleFunc("POST "+joinPath(base, "careers/apply"), func(w http.ResponseWriter, r *http.Request) {
		var application hr.JobApplication
		if err := decodeJSON(r, &application); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		created, err := api.hr.SubmitApplication(r.Context(), &application)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dataResponse{Data: created})
	})

	mux.HandleFunc("POST "+joinPath(base, "volunteers/apply"), func(w http.ResponseWriter, r *http.Request) {
		var request hr.VolunteerRequest
		if err := decodeJSON(r, &request); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		created, err := api.hr.SubmitVolunteerRequest(r.Context(), &request)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dataResponse{Data: created})
	})
}

func (api *PublicAPI) registerSitemapRoutes(mux *http.ServeMux, base string) {
	if api.sitemap == nil {
		return
	}

	mux.HandleFunc("GET "+joinPath(base, "sitemap")+"/{locale}", func(w http.ResponseWriter, r *http.Request) {
		locale := domain.ParseLocale(r.PathValue("locale"))
		out, err := api.sitemap.Generate(r.Context(), locale)
		if err != nil {
			api.log.Error("sitemap generation failed", "locale", string(locale), "error", err)
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	})
}
