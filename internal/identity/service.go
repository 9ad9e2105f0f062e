package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amalfoundation/foundation-cms/identity"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// DefaultSessionTTL bounds session lifetime when no override is configured.
const DefaultSessionTTL = 24 * time.Hour

const tokenBytes = 32

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used for expiry checks and login stamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithSessionTTL overrides how long issued sessions stay valid.
func WithSessionTTL(ttl time.Duration) ServiceOption {
	return func(s *service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTokenSource overrides session token generation, for tests.
func WithTokenSource(source func() (string, error)) ServiceOption {
	return func(s *service) {
		if source != nil {
			s.token = source
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.log = logger
		}
	}
}

type service struct {
	users    identity.UserRepository
	sessions identity.SessionRepository
	now      func() time.Time
	ttl      time.Duration
	token    func() (string, error)
	log      interfaces.Logger
}

// NewService constructs the identity service over user and session storage.
func NewService(users identity.UserRepository, sessions identity.SessionRepository, opts ...ServiceOption) identity.Service {
	s := &service{
		users:    users,
		sessions: sessions,
		now:      time.Now,
		ttl:      DefaultSessionTTL,
		token:    randomToken,
		log:      logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Authenticate verifies credentials and issues a session. Unknown accounts
// and wrong passwords read the same so the endpoint does not leak which
// emails exist.
func (s *service) Authenticate(ctx context.Context, email, password string) (*identity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, identity.ErrAccountInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	token, err := s.token()
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &identity.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	stamped := now
	user.LastLoginAt = &stamped
	if _, err := s.users.Update(ctx, user); err != nil {
		// Login already succeeded; the stamp is informational.
		s.log.Warn("last login stamp failed", "user", user.ID.String(), "error", err)
	}

	return created, nil
}

func (s *service) SessionUser(ctx context.Context, token string) (*identity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, identity.ErrUnauthorized
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, identity.ErrUnauthorized
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.Warn("expired session cleanup failed", "error", err)
		}
		return nil, identity.ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, identity.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, identity.ErrAccountInactive
	}
	return user, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*identity.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &identity.Profile{
		User:            user,
		RoleLabel:       identity.RoleLabel(user.Role),
		AllowedSections: identity.AllowedSections(user.Permissions),
	}, nil
}

// UpdateProfile reports the persistence gap instead of pretending the edit
// saved. The handler surfaces this as 501.
func (s *service) UpdateProfile(context.Context, uuid.UUID, identity.ProfilePatch) error {
	return identity.ErrNotImplemented
}

// HashPassword produces the bcrypt hash stored on staff accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func randomToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
