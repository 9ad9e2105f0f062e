package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/amalfoundation/foundation-cms/identity"
)

// MemoryUserRepository is an in-memory store for scaffolding and tests.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*identity.User
	emailIndex map[string]uuid.UUID
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[uuid.UUID]*identity.User),
		emailIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryUserRepository) Create(_ context.Context, user *identity.User) (*identity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneUser(user)
	m.users[copied.ID] = copied
	m.emailIndex[normalizeEmail(copied.Email)] = copied.ID
	return cloneUser(copied), nil
}

func (m *MemoryUserRepository) GetByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (m *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*identity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emailIndex[normalizeEmail(email)]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return cloneUser(m.users[id]), nil
}

func (m *MemoryUserRepository) Update(_ context.Context, user *identity.User) (*identity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.users[user.ID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	delete(m.emailIndex, normalizeEmail(existing.Email))

	copied := cloneUser(user)
	m.users[copied.ID] = copied
	m.emailIndex[normalizeEmail(copied.Email)] = copied.ID
	return cloneUser(copied), nil
}

// MemorySessionRepository is an in-memory session store.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*identity.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]*identity.Session)}
}

func (m *MemorySessionRepository) Create(_ context.Context, session *identity.Session) (*identity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *session
	m.sessions[copied.Token] = &copied

	out := copied
	return &out, nil
}

func (m *MemorySessionRepository) GetByToken(_ context.Context, token string) (*identity.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[token]
	if !ok {
		return nil, identity.ErrUnauthorized
	}
	out := *session
	return &out, nil
}

func (m *MemorySessionRepository) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

func cloneUser(src *identity.User) *identity.User {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Permissions = append([]string(nil), src.Permissions...)
	if src.LastLoginAt != nil {
		at := *src.LastLoginAt
		copied.LastLoginAt = &at
	}
	return &copied
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
