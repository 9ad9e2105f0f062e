// Command server runs the foundation website APIs: the public content and
// HR submission endpoints plus the session-guarded back office.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	cms "github.com/amalfoundation/foundation-cms"
	"github.com/amalfoundation/foundation-cms/internal/di"
	"github.com/amalfoundation/foundation-cms/pkg/storage"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := configFromEnv()

	db, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer db.Close()

	module, err := cms.New(cfg, di.WithBunDB(db))
	if err != nil {
		log.Fatalf("build cms: %v", err)
	}

	if err := module.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}

	if email := os.Getenv("CMS_ADMIN_EMAIL"); email != "" {
		if err := module.Container().SeedAdminUser(ctx, email, os.Getenv("CMS_ADMIN_PASSWORD")); err != nil {
			log.Fatalf("seed admin user: %v", err)
		}
	}

	if importer := module.Importer(); importer != nil && cfg.Import.ContentDir != "" {
		count, err := importer.ImportDir(ctx, os.DirFS(cfg.Import.ContentDir))
		if err != nil {
			log.Fatalf("import markdown content: %v", err)
		}
		log.Printf("imported %d markdown articles from %s", count, cfg.Import.ContentDir)
	}

	handler, err := module.Handler()
	if err != nil {
		log.Fatalf("register routes: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

func configFromEnv() cms.Config {
	cfg := cms.DefaultConfig()

	cfg.Storage.Driver = envString("CMS_DB_DRIVER", cfg.Storage.Driver)
	cfg.Storage.DSN = envString("CMS_DB_DSN", cfg.Storage.DSN)

	cfg.HTTP.Addr = envString("CMS_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.PublicBase = envString("CMS_PUBLIC_BASE", cfg.HTTP.PublicBase)
	cfg.HTTP.AdminBase = envString("CMS_ADMIN_BASE", cfg.HTTP.AdminBase)
	cfg.HTTP.SessionCookie = envString("CMS_SESSION_COOKIE", cfg.HTTP.SessionCookie)

	cfg.Logging.Level = envString("CMS_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = envString("CMS_LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.AddSource = envBool("CMS_LOG_SOURCE", cfg.Logging.AddSource)

	if ttl := envString("CMS_SESSION_TTL", ""); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.Sessions.TTL = parsed
		}
	}

	if dir := envString("CMS_CONTENT_DIR", ""); dir != "" {
		cfg.Import.Enabled = true
		cfg.Import.ContentDir = dir
		cfg.Features.MarkdownImport = true
	}

	if base := envString("CMS_SITE_BASE_URL", ""); base != "" {
		cfg.Sitemap.Enabled = true
		cfg.Sitemap.BaseURL = base
		cfg.Features.Sitemap = true
	}

	return cfg
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
