package content

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"sync"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/domain"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
// Records are cloned through JSON on the way in and out so callers never
// share state with the store.
type MemoryRepository[T content.Entry] struct {
	mu       sync.RWMutex
	nextID   int64
	records  map[int64]T
	resource string
}

// NewMemoryRepository creates an empty in-memory repository for a resource.
func NewMemoryRepository[T content.Entry](resource string) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		records:  make(map[int64]T),
		resource: resource,
	}
}

func (m *MemoryRepository[T]) Create(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	m.nextID++
	copied.SetID(m.nextID)
	m.records[copied.GetID()] = copied
	return cloneRecord(copied), nil
}

func (m *MemoryRepository[T]) GetByID(_ context.Context, id int64) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		var zero T
		return zero, &content.NotFoundError{Resource: m.resource, Key: strconv.FormatInt(id, 10)}
	}
	return cloneRecord(record), nil
}

func (m *MemoryRepository[T]) GetBySlug(_ context.Context, slug string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		if record.SlugFor(domain.LocaleEnglish) == slug || record.SlugFor(domain.LocaleArabic) == slug {
			return cloneRecord(record), nil
		}
	}
	var zero T
	return zero, &content.NotFoundError{Resource: m.resource, Key: slug}
}

// orderable is the optional accessor Meta provides for the shared
// orderable columns.
type orderable interface {
	OrderKey(column string) (int64, bool)
}

// List applies the shared in-memory predicate, sorts by the requested
// order column, and paginates. Columns outside the shared Meta set
// (titles, dates, positions) fall back to id order.
func (m *MemoryRepository[T]) List(_ context.Context, opts content.ListOptions) ([]T, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := make([]T, 0, len(m.records))
	for _, record := range m.records {
		if opts.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	key := func(record T) int64 {
		if with, ok := any(record).(orderable); ok {
			if v, ok := with.OrderKey(opts.OrderBy); ok {
				return v
			}
		}
		return record.GetID()
	}
	sort.Slice(filtered, func(i, j int) bool {
		ki, kj := key(filtered[i]), key(filtered[j])
		if ki == kj {
			return filtered[i].GetID() < filtered[j].GetID()
		}
		if opts.Order == "asc" {
			return ki < kj
		}
		return ki > kj
	})

	total := len(filtered)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := total
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	out := make([]T, 0, end-start)
	for _, record := range filtered[start:end] {
		out = append(out, cloneRecord(record))
	}
	return out, total, nil
}

func (m *MemoryRepository[T]) Update(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.GetID()]; !ok {
		var zero T
		return zero, &content.NotFoundError{Resource: m.resource, Key: strconv.FormatInt(record.GetID(), 10)}
	}

	copied := cloneRecord(record)
	m.records[copied.GetID()] = copied
	return cloneRecord(copied), nil
}

func (m *MemoryRepository[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &content.NotFoundError{Resource: m.resource, Key: strconv.FormatInt(id, 10)}
	}
	delete(m.records, id)
	return nil
}

func cloneRecord[T content.Entry](src T) T {
	data, err := json.Marshal(src)
	if err != nil {
		return src
	}
	out := reflect.New(reflect.TypeOf(src).Elem()).Interface().(T)
	if err := json.Unmarshal(data, out); err != nil {
		return src
	}
	return out
}
