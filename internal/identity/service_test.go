package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	identitylib "github.com/amalfoundation/foundation-cms/identity"
	identitysvc "github.com/amalfoundation/foundation-cms/internal/identity"
)

type fixture struct {
	svc   identitylib.Service
	users *identitysvc.MemoryUserRepository
	clock *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	users := identitysvc.NewMemoryUserRepository()
	sessions := identitysvc.NewMemorySessionRepository()

	svc := identitysvc.NewService(users, sessions,
		identitysvc.WithClock(func() time.Time { return now }),
		identitysvc.WithSessionTTL(time.Hour),
	)

	return &fixture{svc: svc, users: users, clock: &now}
}

func (f *fixture) seedUser(t *testing.T, email, password string, active bool) *identitylib.User {
	t.Helper()

	hash, err := identitysvc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := f.users.Create(context.Background(), &identitylib.User{
		ID:           identitysvc.UserUUID(email),
		Email:        email,
		PasswordHash: hash,
		NameEn:       "Test User",
		Role:         "editor",
		IsActive:     active,
		Permissions:  []string{"news:edit", "programs:edit", "news:delete"},
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthenticateIssuesSession(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "editor@example.org", "s3cret", true)
	ctx := context.Background()

	session, err := f.svc.Authenticate(ctx, "Editor@Example.org", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected session token")
	}
	if session.UserID != user.ID {
		t.Fatalf("session user = %v, want %v", session.UserID, user.ID)
	}
	if want := f.clock.Add(time.Hour); !session.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt = %v, want %v", session.ExpiresAt, want)
	}

	stored, err := f.users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.LastLoginAt == nil || !stored.LastLoginAt.Equal(*f.clock) {
		t.Fatalf("LastLoginAt = %v", stored.LastLoginAt)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "editor@example.org", "s3cret", true)
	ctx := context.Background()

	if _, err := f.svc.Authenticate(ctx, "editor@example.org", "wrong"); !errors.Is(err, identitylib.ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	// Unknown emails read identically to wrong passwords.
	if _, err := f.svc.Authenticate(ctx, "ghost@example.org", "s3cret"); !errors.Is(err, identitylib.ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v", err)
	}
	if _, err := f.svc.Authenticate(ctx, "", ""); !errors.Is(err, identitylib.ErrInvalidCredentials) {
		t.Fatalf("empty credentials: %v", err)
	}
}

func TestAuthenticateRejectsInactiveAccount(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "former@example.org", "s3cret", false)

	if _, err := f.svc.Authenticate(context.Background(), "former@example.org", "s3cret"); !errors.Is(err, identitylib.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestSessionUserResolvesAndExpires(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "editor@example.org", "s3cret", true)
	ctx := context.Background()

	session, err := f.svc.Authenticate(ctx, "editor@example.org", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	resolved, err := f.svc.SessionUser(ctx, session.Token)
	if err != nil {
		t.Fatalf("session user: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved = %v", resolved.ID)
	}

	if _, err := f.svc.SessionUser(ctx, ""); !errors.Is(err, identitylib.ErrUnauthorized) {
		t.Fatalf("empty token: %v", err)
	}
	if _, err := f.svc.SessionUser(ctx, "unknown-token"); !errors.Is(err, identitylib.ErrUnauthorized) {
		t.Fatalf("unknown token: %v", err)
	}

	// Push the clock past the TTL; the session must now read as expired.
	*f.clock = f.clock.Add(2 * time.Hour)
	if _, err := f.svc.SessionUser(ctx, session.Token); !errors.Is(err, identitylib.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	// The expired session is deleted; a second use is plain unauthorized.
	if _, err := f.svc.SessionUser(ctx, session.Token); !errors.Is(err, identitylib.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after cleanup, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "editor@example.org", "s3cret", true)
	ctx := context.Background()

	session, err := f.svc.Authenticate(ctx, "editor@example.org", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := f.svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.svc.SessionUser(ctx, session.Token); !errors.Is(err, identitylib.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
	// Logging out without a token is a no-op.
	if err := f.svc.Logout(ctx, ""); err != nil {
		t.Fatalf("empty logout: %v", err)
	}
}

func TestProfileDerivesRoleAndSections(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "editor@example.org", "s3cret", true)

	profile, err := f.svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.RoleLabel != "Content Editor" {
		t.Fatalf("RoleLabel = %q", profile.RoleLabel)
	}
	want := []string{"news", "programs"}
	if len(profile.AllowedSections) != len(want) {
		t.Fatalf("AllowedSections = %v", profile.AllowedSections)
	}
	for i := range want {
		if profile.AllowedSections[i] != want[i] {
			t.Fatalf("AllowedSections = %v, want %v", profile.AllowedSections, want)
		}
	}
}

func TestUpdateProfileIsNotImplemented(t *testing.T) {
	f := newFixture(t)
	user := f.seedUser(t, "editor@example.org", "s3cret", true)

	err := f.svc.UpdateProfile(context.Background(), user.ID, identitylib.ProfilePatch{NameEn: "New Name"})
	if !errors.Is(err, identitylib.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestUserUUIDIsDeterministic(t *testing.T) {
	a := identitysvc.UserUUID("Staff@Example.org")
	b := identitysvc.UserUUID("staff@example.org")
	if a != b {
		t.Fatalf("case-folded emails must map to one id: %v vs %v", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if a == identitysvc.UserUUID("other@example.org") {
		t.Fatal("different emails must not collide")
	}
}
