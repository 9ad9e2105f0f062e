package identity

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the self-service view of the signed-in account.
type Profile struct {
	User            *User    `json:"user"`
	RoleLabel       string   `json:"roleLabel"`
	AllowedSections []string `json:"allowedSections"`
}

// Service exposes authentication and profile use cases.
type Service interface {
	// Authenticate verifies credentials and issues a session.
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	// SessionUser resolves the user behind a session token, rejecting
	// expired or unknown tokens.
	SessionUser(ctx context.Context, token string) (*User, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// UpdateProfile is a stated limitation: persistence for profile edits
	// is not implemented and the call returns ErrNotImplemented.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) error
}

// ProfilePatch carries the editable profile fields.
type ProfilePatch struct {
	NameEn string `json:"nameEn,omitempty"`
	NameAr string `json:"nameAr,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// UserRepository abstracts storage for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}

// SessionRepository abstracts storage for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) (*Session, error)
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
