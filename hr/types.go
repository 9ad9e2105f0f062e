package hr

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/amalfoundation/foundation-cms/domain"
)

// JobApplication is a public career submission. Applicant-supplied fields
// are immutable once submitted; staff can only move the status.
type JobApplication struct {
	bun.BaseModel `bun:"table:job_applications,alias:app"`

	ID          int64                    `bun:"id,pk,autoincrement" json:"id"`
	Name        string                   `bun:"name,notnull" json:"name"`
	Email       string                   `bun:"email,notnull" json:"email"`
	Phone       string                   `bun:"phone" json:"phone,omitempty"`
	Position    string                   `bun:"position" json:"position,omitempty"`
	CoverLetter string                   `bun:"cover_letter" json:"coverLetter,omitempty"`
	CVURL       string                   `bun:"cv_url" json:"cvUrl,omitempty"`
	Status      domain.ApplicationStatus `bun:"status,notnull,default:'pending'" json:"status"`
	AppliedAt   time.Time                `bun:"applied_at,nullzero,default:current_timestamp" json:"appliedAt"`
	UpdatedAt   time.Time                `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}

// VolunteerRequest is a public volunteering submission.
type VolunteerRequest struct {
	bun.BaseModel `bun:"table:volunteer_requests,alias:vol"`

	ID         int64                  `bun:"id,pk,autoincrement" json:"id"`
	Name       string                 `bun:"name,notnull" json:"name"`
	Email      string                 `bun:"email,notnull" json:"email"`
	Phone      string                 `bun:"phone" json:"phone,omitempty"`
	Motivation string                 `bun:"motivation" json:"motivation,omitempty"`
	Areas      []string               `bun:"areas,type:jsonb" json:"areas,omitempty"`
	Status     domain.VolunteerStatus `bun:"status,notnull,default:'pending'" json:"status"`
	AppliedAt  time.Time              `bun:"applied_at,nullzero,default:current_timestamp" json:"appliedAt"`
	UpdatedAt  time.Time              `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
}
