package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/amalfoundation/foundation-cms/identity"
)

// DefaultSessionCookie names the cookie carrying the CMS session token.
const DefaultSessionCookie = "cms_session"

type contextKey string

const userContextKey contextKey = "cms.user"

// UserFromContext returns the authenticated staff account, when present.
func UserFromContext(ctx context.Context) (*identity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*identity.User)
	return user, ok
}

// Authenticator guards back-office routes behind a session check. Every
// admin route, including reads, goes through it.
type Authenticator struct {
	identity identity.Service
	cookie   string
}

// NewAuthenticator builds the session guard. An empty cookie name falls
// back to DefaultSessionCookie.
func NewAuthenticator(service identity.Service, cookieName string) *Authenticator {
	name := strings.TrimSpace(cookieName)
	if name == "" {
		name = DefaultSessionCookie
	}
	return &Authenticator{identity: service, cookie: name}
}

// CookieName exposes the configured session cookie name.
func (a *Authenticator) CookieName() string { return a.cookie }

// Token extracts the session token from the cookie or a bearer header.
func (a *Authenticator) Token(r *http.Request) string {
	if cookie, err := r.Cookie(a.cookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Require wraps a handler with session resolution. Unauthenticated requests
// stop here with 401.
func (a *Authenticator) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a == nil || a.identity == nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "authentication not configured"})
			return
		}
		user, err := a.identity.SessionUser(r.Context(), a.Token(r))
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}
