package hr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/hr"
)

// BunApplicationRepository persists job applications through bun.
type BunApplicationRepository struct {
	db *bun.DB
}

func NewBunApplicationRepository(db *bun.DB) *BunApplicationRepository {
	return &BunApplicationRepository{db: db}
}

func (r *BunApplicationRepository) Create(ctx context.Context, record *hr.JobApplication) (*hr.JobApplication, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("job application insert: %w", err)
	}
	return record, nil
}

func (r *BunApplicationRepository) GetByID(ctx context.Context, id int64) (*hr.JobApplication, error) {
	record := new(hr.JobApplication)
	err := r.db.NewSelect().Model(record).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("job application select: %w", err)
	}
	return record, nil
}

func (r *BunApplicationRepository) List(ctx context.Context, opts hr.ApplicationListOptions) ([]*hr.JobApplication, int, error) {
	records := make([]*hr.JobApplication, 0)
	q := r.db.NewSelect().Model(&records)

	if opts.Status != "" {
		q = q.Where("status = ?", string(opts.Status))
	}
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		q = q.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.
				WhereOr("lower(name) LIKE ?", pattern).
				WhereOr("lower(email) LIKE ?", pattern).
				WhereOr("lower(position) LIKE ?", pattern)
		})
	}

	q = q.Order("applied_at DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("job application list: %w", err)
	}
	return records, total, nil
}

func (r *BunApplicationRepository) Update(ctx context.Context, record *hr.JobApplication) (*hr.JobApplication, error) {
	res, err := r.db.NewUpdate().Model(record).WherePK().Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("job application update: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(record.ID, 10)}
	}
	return record, nil
}

func (r *BunApplicationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().Model((*hr.JobApplication)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("job application delete: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

// BunVolunteerRepository persists volunteer requests through bun.
type BunVolunteerRepository struct {
	db *bun.DB
}

func NewBunVolunteerRepository(db *bun.DB) *BunVolunteerRepository {
	return &BunVolunteerRepository{db: db}
}

func (r *BunVolunteerRepository) Create(ctx context.Context, record *hr.VolunteerRequest) (*hr.VolunteerRequest, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("volunteer request insert: %w", err)
	}
	return record, nil
}

func (r *BunVolunteerRepository) GetByID(ctx context.Context, id int64) (*hr.VolunteerRequest, error) {
	record := new(hr.VolunteerRequest)
	err := r.db.NewSelect().Model(record).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("volunteer request select: %w", err)
	}
	return record, nil
}

func (r *BunVolunteerRepository) List(ctx context.Context, opts hr.VolunteerListOptions) ([]*hr.VolunteerRequest, int, error) {
	records := make([]*hr.VolunteerRequest, 0)
	q := r.db.NewSelect().Model(&records)

	if opts.Status != "" {
		q = q.Where("status = ?", string(opts.Status))
	}
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		q = q.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.
				WhereOr("lower(name) LIKE ?", pattern).
				WhereOr("lower(email) LIKE ?", pattern).
				WhereOr("lower(motivation) LIKE ?", pattern)
		})
	}

	q = q.Order("applied_at DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("volunteer request list: %w", err)
	}
	return records, total, nil
}

func (r *BunVolunteerRepository) Update(ctx context.Context, record *hr.VolunteerRequest) (*hr.VolunteerRequest, error) {
	res, err := r.db.NewUpdate().Model(record).WherePK().Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("volunteer request update: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(record.ID, 10)}
	}
	return record, nil
}

func (r *BunVolunteerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().Model((*hr.VolunteerRequest)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("volunteer request delete: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}
