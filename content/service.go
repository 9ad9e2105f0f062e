package content

import (
	"context"
	"encoding/json"
)

// Service exposes the bilingual content use cases for one resource. The
// implementation in internal/content is generic over the record type; each
// resource (programs, projects, news...) binds its own instance.
type Service[T Entry] interface {
	Create(ctx context.Context, record T) (T, error)
	Get(ctx context.Context, id int64) (T, error)
	GetBySlug(ctx context.Context, slug string) (T, error)
	List(ctx context.Context, opts ListOptions) ([]T, int, error)
	// Update applies a partial camelCase JSON document on top of the stored
	// record. Client-supplied ids are discarded, unknown keys are dropped,
	// slugs are re-derived from titles, and publication flips stamp or
	// clear PublishedAt.
	Update(ctx context.Context, id int64, patch json.RawMessage) (T, error)
	Delete(ctx context.Context, id int64) error
	// View fetches a published record and increments its page view counter.
	View(ctx context.Context, id int64) (T, error)
}

// Repository abstracts storage for one content resource.
type Repository[T Entry] interface {
	Create(ctx context.Context, record T) (T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	GetBySlug(ctx context.Context, slug string) (T, error)
	List(ctx context.Context, opts ListOptions) ([]T, int, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id int64) error
}
