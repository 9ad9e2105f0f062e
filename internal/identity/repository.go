package identity

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/identity"
)

// NewUserRepository builds the generic bun repository for staff accounts.
// Email doubles as the natural identifier for lookups.
func NewUserRepository(db *bun.DB) repository.Repository[*identity.User] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*identity.User]{
		NewRecord: func() *identity.User { return &identity.User{} },
		GetID: func(u *identity.User) uuid.UUID {
			return u.ID
		},
		SetID: func(u *identity.User, id uuid.UUID) {
			u.ID = id
		},
		GetIdentifier: func() string {
			return "email"
		},
		GetIdentifierValue: func(u *identity.User) string {
			return u.Email
		},
	})
}
