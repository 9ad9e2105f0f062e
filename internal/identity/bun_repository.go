package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/identity"
)

// BunUserRepository adapts the generic bun repository to the identity
// contract, optionally caching reads.
type BunUserRepository struct {
	repo repository.Repository[*identity.User]
}

func NewBunUserRepository(db *bun.DB) *BunUserRepository {
	return NewBunUserRepositoryWithCache(db, nil, nil)
}

func NewBunUserRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunUserRepository {
	base := NewUserRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunUserRepository{repo: wrapped}
}

func (r *BunUserRepository) Create(ctx context.Context, user *identity.User) (*identity.User, error) {
	created, err := r.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("user repository error: %w", err)
	}
	return created, nil
}

func (r *BunUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return result, nil
}

func (r *BunUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	result, err := r.repo.GetByIdentifier(ctx, email)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return result, nil
}

func (r *BunUserRepository) Update(ctx context.Context, user *identity.User) (*identity.User, error) {
	updated, err := r.repo.Update(ctx, user)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return updated, nil
}

// BunSessionRepository stores sessions directly through bun. The generic
// repository keys records by UUID; session tokens are opaque strings, so
// sessions bypass it.
type BunSessionRepository struct {
	db *bun.DB
}

func NewBunSessionRepository(db *bun.DB) *BunSessionRepository {
	return &BunSessionRepository{db: db}
}

func (r *BunSessionRepository) Create(ctx context.Context, session *identity.Session) (*identity.Session, error) {
	if _, err := r.db.NewInsert().Model(session).Exec(ctx); err != nil {
		return nil, fmt.Errorf("session insert: %w", err)
	}
	return session, nil
}

func (r *BunSessionRepository) GetByToken(ctx context.Context, token string) (*identity.Session, error) {
	session := new(identity.Session)
	err := r.db.NewSelect().Model(session).Where("token = ?", token).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrUnauthorized
		}
		return nil, fmt.Errorf("session select: %w", err)
	}
	return session, nil
}

func (r *BunSessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.NewDelete().Model((*identity.Session)(nil)).Where("token = ?", token).Exec(ctx); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return identity.ErrUserNotFound
	}
	return fmt.Errorf("user repository error: %w", err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
