package runtimeconfig

import (
	"errors"
	"strings"
	"time"

	"github.com/amalfoundation/foundation-cms/pkg/storage"
)

var (
	ErrLoggingProviderRequired = errors.New("config: logging provider required when logging is enabled")
	ErrLoggingLevelInvalid     = errors.New("config: logging level invalid")
	ErrLoggingFormatInvalid    = errors.New("config: logging format invalid")
	ErrSessionTTLInvalid       = errors.New("config: session ttl must be positive")
	ErrBaseURLRequired         = errors.New("config: sitemap base url required when sitemaps are enabled")
)

// Config is the root runtime configuration for the CMS module.
type Config struct {
	Storage  storage.Config
	Logging  LoggingConfig
	HTTP     HTTPConfig
	Sessions SessionConfig
	Import   ImportConfig
	Sitemap  SitemapConfig
	Features Features
}

// LoggingConfig selects the logging provider behaviour.
type LoggingConfig struct {
	Enabled   bool
	Level     string // trace|debug|info|warn|error|fatal
	Format    string // json|console|pretty
	AddSource bool
}

// HTTPConfig configures the served API surface.
type HTTPConfig struct {
	Addr          string
	PublicBase    string // defaults to /api
	AdminBase     string // defaults to /api/cms
	SessionCookie string // defaults to cms_session
}

// SessionConfig governs CMS session issuance.
type SessionConfig struct {
	TTL time.Duration
}

// ImportConfig points the markdown importer at a content directory.
type ImportConfig struct {
	Enabled    bool
	ContentDir string
}

// SitemapConfig drives per-language sitemap generation.
type SitemapConfig struct {
	Enabled bool
	BaseURL string
}

// Features toggles optional subsystems.
type Features struct {
	Sitemap        bool
	MarkdownImport bool
	ActivityLog    bool
}

// DefaultConfig returns the configuration used when the host supplies
// nothing: in-memory sqlite, JSON logging at info, one-day sessions.
func DefaultConfig() Config {
	return Config{
		Storage: storage.Config{Driver: "sqlite"},
		Logging: LoggingConfig{Enabled: true, Level: "info", Format: "json"},
		HTTP: HTTPConfig{
			Addr:          ":8080",
			PublicBase:    "/api",
			AdminBase:     "/api/cms",
			SessionCookie: "cms_session",
		},
		Sessions: SessionConfig{TTL: 24 * time.Hour},
	}
}

// Validate rejects configurations the runtime cannot honor.
func (c Config) Validate() error {
	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}
	if c.Sessions.TTL < 0 {
		return ErrSessionTTLInvalid
	}
	if c.Features.Sitemap && strings.TrimSpace(c.Sitemap.BaseURL) == "" {
		return ErrBaseURLRequired
	}
	return nil
}

// Normalize fills defaulted fields on a partially specified config.
func (c Config) Normalize() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Storage.Driver) == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		c.HTTP.Addr = defaults.HTTP.Addr
	}
	if strings.TrimSpace(c.HTTP.PublicBase) == "" {
		c.HTTP.PublicBase = defaults.HTTP.PublicBase
	}
	if strings.TrimSpace(c.HTTP.AdminBase) == "" {
		c.HTTP.AdminBase = defaults.HTTP.AdminBase
	}
	if strings.TrimSpace(c.HTTP.SessionCookie) == "" {
		c.HTTP.SessionCookie = defaults.HTTP.SessionCookie
	}
	if c.Sessions.TTL == 0 {
		c.Sessions.TTL = defaults.Sessions.TTL
	}
	return c
}
