package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amalfoundation/foundation-cms/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.HTTP.AdminBase != "/api/cms" || cfg.HTTP.PublicBase != "/api" {
		t.Fatalf("unexpected base paths: %+v", cfg.HTTP)
	}
	if cfg.Sessions.TTL != 24*time.Hour {
		t.Fatalf("session ttl = %v", cfg.Sessions.TTL)
	}
}

func TestValidateRejectsBadLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("err = %v", err)
	}

	// disabled logging skips level checks entirely
	cfg.Logging.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled logging still validated: %v", err)
	}
}

func TestValidateRejectsBadLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRejectsNegativeSessionTTL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Sessions.TTL = -time.Minute
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSessionTTLInvalid) {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRequiresSitemapBaseURL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Sitemap = true
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrBaseURLRequired) {
		t.Fatalf("err = %v", err)
	}

	cfg.Sitemap.BaseURL = "https://amal.example.org"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("base url supplied, still invalid: %v", err)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var cfg runtimeconfig.Config
	cfg = cfg.Normalize()

	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.SessionCookie != "cms_session" {
		t.Fatalf("http defaults missing: %+v", cfg.HTTP)
	}
	if cfg.Sessions.TTL != 24*time.Hour {
		t.Fatalf("ttl = %v", cfg.Sessions.TTL)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := runtimeconfig.Config{}
	cfg.HTTP.Addr = ":9090"
	cfg.HTTP.SessionCookie = "back_office"
	cfg.Sessions.TTL = time.Hour

	cfg = cfg.Normalize()
	if cfg.HTTP.Addr != ":9090" || cfg.HTTP.SessionCookie != "back_office" {
		t.Fatalf("explicit values overwritten: %+v", cfg.HTTP)
	}
	if cfg.Sessions.TTL != time.Hour {
		t.Fatalf("ttl = %v", cfg.Sessions.TTL)
	}
}
