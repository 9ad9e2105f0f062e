package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/internal/validation"
	"github.com/amalfoundation/foundation-cms/pkg/activity"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// ServiceOption configures the service at construction time.
type ServiceOption[T content.Entry] func(*service[T])

// WithClock overrides the clock used to stamp records.
func WithClock[T content.Entry](clock func() time.Time) ServiceOption[T] {
	return func(s *service[T]) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithNotifier routes audit events for every mutating operation.
func WithNotifier[T content.Entry](notifier activity.Notifier) ServiceOption[T] {
	return func(s *service[T]) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger[T content.Entry](logger interfaces.Logger) ServiceOption[T] {
	return func(s *service[T]) {
		if logger != nil {
			s.log = logger
		}
	}
}

// service implements content.Service for one resource. The same code backs
// every content collection; the record type carries the resource-specific
// behavior (slug sources, search fields, section payloads).
type service[T content.Entry] struct {
	resource string
	repo     content.Repository[T]
	now      func() time.Time
	notifier activity.Notifier
	log      interfaces.Logger
}

// NewService constructs the content service for a single resource.
func NewService[T content.Entry](resource string, repo content.Repository[T], opts ...ServiceOption[T]) content.Service[T] {
	s := &service[T]{
		resource: resource,
		repo:     repo,
		now:      time.Now,
		notifier: activity.NoOp(),
		log:      logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	if err := record.Validate(); err != nil {
		return zero, err
	}

	now := s.now()
	record.SetID(0)
	record.StampSections()
	record.SyncSlugs()
	record.SyncPublication(now)
	record.SetCreatedAt(now)
	record.SetUpdatedAt(now)

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return zero, err
	}

	s.notify(ctx, "create", created)
	return created, nil
}

func (s *service[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if id == 0 {
		return zero, content.ErrRecordIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
	var zero T
	if slug == "" {
		return zero, &content.NotFoundError{Resource: s.resource}
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service[T]) List(ctx context.Context, opts content.ListOptions) ([]T, int, error) {
	return s.repo.List(ctx, opts.Normalize())
}

// Update applies a partial camelCase document over the stored record.
// Server-owned fields are discarded from the patch before the merge; slugs
// and the publication timestamp are re-derived afterwards so clients can
// never set them directly.
func (s *service[T]) Update(ctx context.Context, id int64, patch json.RawMessage) (T, error) {
	var zero T
	if id == 0 {
		return zero, content.ErrRecordIDRequired
	}

	// UseNumber keeps large integer values intact through the merge
	// round trip instead of rounding them as float64.
	fields := map[string]any{}
	if len(patch) > 0 {
		dec := json.NewDecoder(bytes.NewReader(patch))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			return zero, fmt.Errorf("%w: %v", content.ErrInvalidPatch, err)
		}
	}

	if err := validation.ValidateSections(fields); err != nil {
		return zero, err
	}

	for _, owned := range []string{"id", "createdAt", "updatedAt", "publishedAt", "pageViews", "slugEn", "slugAr"} {
		delete(fields, owned)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", content.ErrInvalidPatch, err)
	}
	if err := json.Unmarshal(merged, existing); err != nil {
		return zero, fmt.Errorf("%w: %v", content.ErrInvalidPatch, err)
	}

	existing.SetID(id)
	existing.StampSections()
	existing.SyncSlugs()

	if err := existing.Validate(); err != nil {
		return zero, err
	}

	now := s.now()
	existing.SyncPublication(now)
	existing.SetUpdatedAt(now)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return zero, err
	}

	s.notify(ctx, "update", updated)
	return updated, nil
}

func (s *service[T]) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return content.ErrRecordIDRequired
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, "delete", existing)
	return nil
}

// View serves a published record to the public site and bumps its page view
// counter. Drafts stay invisible; requesting one reads as not found.
func (s *service[T]) View(ctx context.Context, id int64) (T, error) {
	var zero T

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if !record.Published() {
		return zero, &content.NotFoundError{Resource: s.resource, Key: strconv.FormatInt(id, 10)}
	}

	record.IncrementPageViews()
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		// The read succeeded; losing one counter tick is acceptable.
		s.log.Warn("page view increment failed", "resource", s.resource, "id", id, "error", err)
		return record, nil
	}
	return updated, nil
}

func (s *service[T]) notify(ctx context.Context, verb string, record T) {
	event := activity.Event{
		Verb:       verb,
		ObjectType: s.resource,
		ObjectID:   strconv.FormatInt(record.GetID(), 10),
		Channel:    "cms",
		OccurredAt: s.now(),
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn("activity notification failed", "resource", s.resource, "verb", verb, "error", err)
	}
}
