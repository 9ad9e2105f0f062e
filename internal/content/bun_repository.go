package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/content"
)

// TableSpec describes how one content table is queried: which columns feed
// free-text search, which hold the per-language slugs, where tag strings
// live, and which orderings a client may request.
type TableSpec struct {
	Resource      string
	SearchColumns []string
	SlugColumns   []string
	TagsColumn    string
	OrderColumns  []string
	DefaultOrder  string
}

func (t TableSpec) orderColumn(requested string) string {
	for _, col := range t.OrderColumns {
		if col == requested {
			return col
		}
	}
	if t.DefaultOrder != "" {
		return t.DefaultOrder
	}
	return "created_at"
}

// BunRepository persists one content resource through bun. Filtering and
// pagination run in SQL so the reported total covers the whole filtered
// set, never just the fetched page.
type BunRepository[T content.Entry] struct {
	db   *bun.DB
	spec TableSpec
}

// NewBunRepository binds a table spec to a bun connection.
func NewBunRepository[T content.Entry](db *bun.DB, spec TableSpec) *BunRepository[T] {
	return &BunRepository[T]{db: db, spec: spec}
}

func (r *BunRepository[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return zero, fmt.Errorf("%s insert: %w", r.spec.Resource, err)
	}
	return record, nil
}

func (r *BunRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	record := r.newRecord()
	err := r.db.NewSelect().Model(record).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, &content.NotFoundError{Resource: r.spec.Resource, Key: strconv.FormatInt(id, 10)}
		}
		return zero, fmt.Errorf("%s select: %w", r.spec.Resource, err)
	}
	return record, nil
}

func (r *BunRepository[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
	var zero T
	if len(r.spec.SlugColumns) == 0 {
		return zero, &content.NotFoundError{Resource: r.spec.Resource, Key: slug}
	}

	record := r.newRecord()
	q := r.db.NewSelect().Model(record).WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
		for _, col := range r.spec.SlugColumns {
			sq = sq.WhereOr("? = ?", bun.Ident(col), slug)
		}
		return sq
	})
	err := q.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, &content.NotFoundError{Resource: r.spec.Resource, Key: slug}
		}
		return zero, fmt.Errorf("%s select: %w", r.spec.Resource, err)
	}
	return record, nil
}

func (r *BunRepository[T]) List(ctx context.Context, opts content.ListOptions) ([]T, int, error) {
	records := make([]T, 0)
	q := r.db.NewSelect().Model(&records)

	if opts.Published != nil {
		q = q.Where("is_published = ?", *opts.Published)
	}
	if opts.Locale != "" {
		if opts.Locale.IsEnglish() {
			q = q.Where("is_english = ?", true)
		} else {
			q = q.Where("is_arabic = ?", true)
		}
	}
	if opts.Search != "" && len(r.spec.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		q = q.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			for _, col := range r.spec.SearchColumns {
				sq = sq.WhereOr("lower(?) LIKE ?", bun.Ident(col), pattern)
			}
			return sq
		})
	}
	if opts.Category != "" {
		if r.spec.TagsColumn == "" {
			return []T{}, 0, nil
		}
		q = q.Where("lower(?) LIKE ?", bun.Ident(r.spec.TagsColumn), "%"+strings.ToLower(opts.Category)+"%")
	}

	direction := "DESC"
	if opts.Order == "asc" {
		direction = "ASC"
	}
	q = q.OrderExpr("? ?", bun.Ident(r.spec.orderColumn(opts.OrderBy)), bun.Safe(direction))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s list: %w", r.spec.Resource, err)
	}
	return records, total, nil
}

func (r *BunRepository[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T
	res, err := r.db.NewUpdate().Model(record).WherePK().Exec(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s update: %w", r.spec.Resource, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return zero, &content.NotFoundError{Resource: r.spec.Resource, Key: strconv.FormatInt(record.GetID(), 10)}
	}
	return record, nil
}

func (r *BunRepository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().Model(r.newRecord()).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("%s delete: %w", r.spec.Resource, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &content.NotFoundError{Resource: r.spec.Resource, Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

// newRecord allocates a fresh instance of the underlying model type.
func (r *BunRepository[T]) newRecord() T {
	var zero T
	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(T)
}
