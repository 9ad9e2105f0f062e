package hr

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/amalfoundation/foundation-cms/hr"
)

// MemoryApplicationRepository is an in-memory store for scaffolding and tests.
type MemoryApplicationRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*hr.JobApplication
}

func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{records: make(map[int64]*hr.JobApplication)}
}

func (m *MemoryApplicationRepository) Create(_ context.Context, record *hr.JobApplication) (*hr.JobApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.nextID++
	copied.ID = m.nextID
	m.records[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (m *MemoryApplicationRepository) GetByID(_ context.Context, id int64) (*hr.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(id, 10)}
	}
	out := *record
	return &out, nil
}

func (m *MemoryApplicationRepository) List(_ context.Context, opts hr.ApplicationListOptions) ([]*hr.JobApplication, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := make([]*hr.JobApplication, 0, len(m.records))
	for _, record := range m.records {
		if opts.Status != "" && record.Status != opts.Status {
			continue
		}
		if opts.Search != "" && !matchAny(opts.Search, record.Name, record.Email, record.Position) {
			continue
		}
		copied := *record
		filtered = append(filtered, &copied)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].AppliedAt.After(filtered[j].AppliedAt)
	})

	total := len(filtered)
	return page(filtered, opts.Limit, opts.Offset), total, nil
}

func (m *MemoryApplicationRepository) Update(_ context.Context, record *hr.JobApplication) (*hr.JobApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(record.ID, 10)}
	}
	copied := *record
	m.records[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (m *MemoryApplicationRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &hr.NotFoundError{Resource: "job application", Key: strconv.FormatInt(id, 10)}
	}
	delete(m.records, id)
	return nil
}

// MemoryVolunteerRepository is an in-memory store for scaffolding and tests.
type MemoryVolunteerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*hr.VolunteerRequest
}

func NewMemoryVolunteerRepository() *MemoryVolunteerRepository {
	return &MemoryVolunteerRepository{records: make(map[int64]*hr.VolunteerRequest)}
}

func (m *MemoryVolunteerRepository) Create(_ context.Context, record *hr.VolunteerRequest) (*hr.VolunteerRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	copied.Areas = append([]string(nil), record.Areas...)
	m.nextID++
	copied.ID = m.nextID
	m.records[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (m *MemoryVolunteerRepository) GetByID(_ context.Context, id int64) (*hr.VolunteerRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(id, 10)}
	}
	out := *record
	out.Areas = append([]string(nil), record.Areas...)
	return &out, nil
}

func (m *MemoryVolunteerRepository) List(_ context.Context, opts hr.VolunteerListOptions) ([]*hr.VolunteerRequest, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := make([]*hr.VolunteerRequest, 0, len(m.records))
	for _, record := range m.records {
		if opts.Status != "" && record.Status != opts.Status {
			continue
		}
		if opts.Search != "" && !matchAny(opts.Search, record.Name, record.Email, record.Motivation) {
			continue
		}
		copied := *record
		copied.Areas = append([]string(nil), record.Areas...)
		filtered = append(filtered, &copied)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].AppliedAt.After(filtered[j].AppliedAt)
	})

	total := len(filtered)
	return page(filtered, opts.Limit, opts.Offset), total, nil
}

func (m *MemoryVolunteerRepository) Update(_ context.Context, record *hr.VolunteerRequest) (*hr.VolunteerRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(record.ID, 10)}
	}
	copied := *record
	copied.Areas = append([]string(nil), record.Areas...)
	m.records[copied.ID] = &copied

	out := copied
	return &out, nil
}

func (m *MemoryVolunteerRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &hr.NotFoundError{Resource: "volunteer request", Key: strconv.FormatInt(id, 10)}
	}
	delete(m.records, id)
	return nil
}

func matchAny(query string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func page[T any](records []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset > len(records) {
		offset = len(records)
	}
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end]
}
