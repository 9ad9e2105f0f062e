package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/identity"
	contentsvc "github.com/amalfoundation/foundation-cms/internal/content"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// AdminAPI registers the back-office endpoints: content CRUD, HR review,
// authentication, and profile self-service. Every route, reads included,
// sits behind the session guard.
type AdminAPI struct {
	basePath string
	auth     *Authenticator
	identity identity.Service
	hr       hr.Service
	services ContentServices
	log      interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/api/cms",
		log:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithAdminBasePath overrides the base API path (defaults to "/api/cms").
func WithAdminBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithAuthenticator wires the session guard.
func WithAuthenticator(auth *Authenticator) AdminOption {
	return func(api *AdminAPI) {
		api.auth = auth
	}
}

// WithIdentityService wires authentication and profile handling.
func WithIdentityService(service identity.Service) AdminOption {
	return func(api *AdminAPI) {
		api.identity = service
	}
}

// WithHRService wires job application and volunteer review.
func WithHRService(service hr.Service) AdminOption {
	return func(api *AdminAPI) {
		api.hr = service
	}
}

// WithContentServices wires the per-resource content services.
func WithContentServices(services ContentServices) AdminOption {
	return func(api *AdminAPI) {
		api.services = services
	}
}

// WithAdminLogger overrides the API logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.log = logger
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api.auth == nil {
		return fmt.Errorf("http: admin api requires an authenticator")
	}

	base := joinPath(api.basePath, "")

	api.registerAuthRoutes(mux, base)
	api.registerProfileRoutes(mux, base)
	api.registerHRRoutes(mux, base)

	registerResource(api, mux, base, contentsvc.ResourceCategories, api.services.Categories)
	registerResource(api, mux, base, contentsvc.ResourcePrograms, api.services.Programs)
	registerResource(api, mux, base, contentsvc.ResourceProjects, api.services.Projects)
	registerResource(api, mux, base, contentsvc.ResourceActivities, api.services.Activities)
	registerResource(api, mux, base, contentsvc.ResourceNews, api.services.News)
	registerResource(api, mux, base, contentsvc.ResourcePublications, api.services.Publications)
	registerResource(api, mux, base, contentsvc.ResourceReports, api.services.Reports)
	registerResource(api, mux, base, contentsvc.ResourceImages, api.services.Images)
	registerResource(api, mux, base, contentsvc.ResourceVideos, api.services.Videos)
	registerResource(api, mux, base, contentsvc.ResourceStories, api.services.Stories)
	registerResource(api, mux, base, contentsvc.ResourceHeroSlides, api.services.HeroSlides)

	return nil
}

// registerResource wires the uniform CRUD surface for one content
// collection. The same handlers serve all eleven resources.
func registerResource[T content.Entry](api *AdminAPI, mux *http.ServeMux, base, resource string, service content.Service[T]) {
	if service == nil {
		return
	}

	root := joinPath(base, resource)
	guard := api.auth.Require

	mux.HandleFunc("GET "+root, guard(func(w http.ResponseWriter, r *http.Request) {
		records, total, err := service.List(r.Context(), parseListOptions(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: records, Total: total})
	}))

	mux.HandleFunc("POST "+root, guard(func(w http.ResponseWriter, r *http.Request) {
		record := newRecord[T]()
		if err := decodeJSON(r, record); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		created, err := service.Create(r.Context(), record)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dataResponse{Data: created})
	}))

	mux.HandleFunc("GET "+root+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		record, err := service.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: record})
	}))

	update := guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		patch, err := readBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid body"})
			return
		}
		updated, err := service.Update(r.Context(), id, patch)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: updated})
	})
	mux.HandleFunc("PATCH "+root+"/{id}", update)
	mux.HandleFunc("PUT "+root+"/{id}", update)

	mux.HandleFunc("DELETE "+root+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		if err := service.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *identity.User `json:"user"`
}

func (api *AdminAPI) registerAuthRoutes(mux *http.ServeMux, base string) {
	if api.identity == nil {
		return
	}

	root := joinPath(base, "auth")

	mux.HandleFunc("POST "+root+"/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}

		session, err := api.identity.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := api.identity.SessionUser(r.Context(), session.Token)
		if err != nil {
			writeError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     api.auth.CookieName(),
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, dataResponse{Data: loginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			User:      user,
		}})
	})

	mux.HandleFunc("POST "+root+"/logout", func(w http.ResponseWriter, r *http.Request) {
		if err := api.identity.Logout(r.Context(), api.auth.Token(r)); err != nil {
			writeError(w, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     api.auth.CookieName(),
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	})
}

func (api *AdminAPI) registerProfileRoutes(mux *http.ServeMux, base string) {
	if api.identity == nil {
		return
	}

	root := joinPath(base, "profile")
	guard := api.auth.Require

	mux.HandleFunc("GET "+root, guard(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, identity.ErrUnauthorized)
			return
		}
		profile, err := api.identity.Profile(r.Context(), user.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: profile})
	}))

	// Profile saves surface the persistence gap as 501 rather than
	// acknowledging an edit that was never stored.
	mux.HandleFunc("PATCH "+root, guard(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, identity.ErrUnauthorized)
			return
		}
		var patch identity.ProfilePatch
		if err := decodeJSON(r, &patch); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		writeError(w, api.identity.UpdateProfile(r.Context(), user.ID, patch))
	}))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (api *AdminAPI) registerHRRoutes(mux *http.ServeMux, base string) {
	if api.hr == nil {
		return
	}

	guard := api.auth.Require
	applications := joinPath(base, "hr/applications")
	volunteers := joinPath(base, "hr/volunteers")

	mux.HandleFunc("GET "+applications, guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		opts := hr.ApplicationListOptions{
			Search: query.Get("search"),
			Status: domain.ApplicationStatus(strings.TrimSpace(query.Get("status"))),
			Limit:  parseIntQuery(query.Get("limit"), 0),
			Offset: parseIntQuery(query.Get("offset"), 0),
		}
		records, total, err := api.hr.ListApplications(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: records, Total: total})
	}))

	mux.HandleFunc("GET "+applications+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		record, err := api.hr.GetApplication(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: record})
	}))

	mux.HandleFunc("PATCH "+applications+"/{id}/status", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		updated, err := api.hr.UpdateApplicationStatus(r.Context(), id, domain.ApplicationStatus(strings.TrimSpace(req.Status)))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: updated})
	}))

	mux.HandleFunc("DELETE "+applications+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		if err := api.hr.DeleteApplication(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}))

	mux.HandleFunc("GET "+volunteers, guard(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		opts := hr.VolunteerListOptions{
			Search: query.Get("search"),
			Status: domain.VolunteerStatus(strings.TrimSpace(query.Get("status"))),
			Limit:  parseIntQuery(query.Get("limit"), 0),
			Offset: parseIntQuery(query.Get("offset"), 0),
		}
		records, total, err := api.hr.ListVolunteerRequests(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: records, Total: total})
	}))

	mux.HandleFunc("GET "+volunteers+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		record, err := api.hr.GetVolunteerRequest(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: record})
	}))

	mux.HandleFunc("PATCH "+volunteers+"/{id}/status", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
		updated, err := api.hr.UpdateVolunteerStatus(r.Context(), id, domain.VolunteerStatus(strings.TrimSpace(req.Status)))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: updated})
	}))

	mux.HandleFunc("DELETE "+volunteers+"/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
			return
		}
		if err := api.hr.DeleteVolunteerRequest(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}))
}
