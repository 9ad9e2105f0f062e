package hr

import (
	"context"

	"github.com/amalfoundation/foundation-cms/domain"
)

// ApplicationListOptions filters CMS application listings.
type ApplicationListOptions struct {
	Search string
	Status domain.ApplicationStatus
	Limit  int
	Offset int
}

// VolunteerListOptions filters CMS volunteer request listings.
type VolunteerListOptions struct {
	Search string
	Status domain.VolunteerStatus
	Limit  int
	Offset int
}

// Service exposes the HR workflows: public submission and staff review.
// Review mutates exactly one field, the status.
type Service interface {
	SubmitApplication(ctx context.Context, application *JobApplication) (*JobApplication, error)
	GetApplication(ctx context.Context, id int64) (*JobApplication, error)
	ListApplications(ctx context.Context, opts ApplicationListOptions) ([]*JobApplication, int, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id int64) error

	SubmitVolunteerRequest(ctx context.Context, request *VolunteerRequest) (*VolunteerRequest, error)
	GetVolunteerRequest(ctx context.Context, id int64) (*VolunteerRequest, error)
	ListVolunteerRequests(ctx context.Context, opts VolunteerListOptions) ([]*VolunteerRequest, int, error)
	UpdateVolunteerStatus(ctx context.Context, id int64, status domain.VolunteerStatus) (*VolunteerRequest, error)
	DeleteVolunteerRequest(ctx context.Context, id int64) error
}

// ApplicationRepository abstracts storage for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, record *JobApplication) (*JobApplication, error)
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	List(ctx context.Context, opts ApplicationListOptions) ([]*JobApplication, int, error)
	Update(ctx context.Context, record *JobApplication) (*JobApplication, error)
	Delete(ctx context.Context, id int64) error
}

// VolunteerRepository abstracts storage for volunteer requests.
type VolunteerRepository interface {
	Create(ctx context.Context, record *VolunteerRequest) (*VolunteerRequest, error)
	GetByID(ctx context.Context, id int64) (*VolunteerRequest, error)
	List(ctx context.Context, opts VolunteerListOptions) ([]*VolunteerRequest, int, error)
	Update(ctx context.Context, record *VolunteerRequest) (*VolunteerRequest, error)
	Delete(ctx context.Context, id int64) error
}
