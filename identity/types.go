package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is a CMS staff account with a bilingual display name and a list of
// back-office sections the account may open.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Email        string     `bun:"email,notnull" json:"email"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	NameEn       string     `bun:"name_en" json:"nameEn"`
	NameAr       string     `bun:"name_ar" json:"nameAr"`
	Phone        string     `bun:"phone" json:"phone,omitempty"`
	Bio          string     `bun:"bio" json:"bio,omitempty"`
	Role         string     `bun:"role,notnull,default:'editor'" json:"role"`
	IsActive     bool       `bun:"is_active,notnull,default:true" json:"isActive"`
	LastLoginAt  *time.Time `bun:"last_login_at,nullzero" json:"lastLoginAt,omitempty"`
	Permissions  []string   `bun:"permissions,type:jsonb" json:"permissions,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// Session is an authenticated CMS session. Tokens are opaque strings handed
// to the client as a cookie.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:ses"`

	Token     string    `bun:"token,pk" json:"token"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"userId"`
	ExpiresAt time.Time `bun:"expires_at,notnull" json:"expiresAt"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// roleLabels maps stored role keys onto display labels. Unknown roles fall
// back to a generic label instead of erroring.
var roleLabels = map[string]string{
	"admin":  "Administrator",
	"editor": "Content Editor",
	"hr":     "HR Officer",
	"viewer": "Viewer",
}

// RoleLabel resolves the display label for a stored role key.
func RoleLabel(role string) string {
	if label, ok := roleLabels[strings.ToLower(strings.TrimSpace(role))]; ok {
		return label
	}
	return "Staff Member"
}

// AllowedSections derives the CMS sections an account may open from its raw
// permission tokens. Tokens use the "section:action" form; a bare token
// grants its section. Duplicates collapse, order follows first appearance.
func AllowedSections(permissions []string) []string {
	seen := make(map[string]bool, len(permissions))
	sections := make([]string, 0, len(permissions))
	for _, token := range permissions {
		section := strings.TrimSpace(token)
		if idx := strings.IndexByte(section, ':'); idx >= 0 {
			section = section[:idx]
		}
		section = strings.ToLower(section)
		if section == "" || seen[section] {
			continue
		}
		seen[section] = true
		sections = append(sections, section)
	}
	return sections
}
