package hr

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/amalfoundation/foundation-cms/domain"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/internal/logging"
	"github.com/amalfoundation/foundation-cms/pkg/activity"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

const (
	defaultListLimit = 24
	maxListLimit     = 100
)

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithNotifier routes audit events for submissions and status moves.
func WithNotifier(notifier activity.Notifier) ServiceOption {
	return func(s *service) {
		if notifier != nil {
			s.notifier = notifier
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
	applications hr.ApplicationRepository
	volunteers   hr.VolunteerRepository
	now          func() time.Time
	notifier     activity.Notifier
	log          interfaces.Logger
}

// NewService constructs the HR service over application and volunteer storage.
func NewService(applications hr.ApplicationRepository, volunteers hr.VolunteerRepository, opts ...ServiceOption) hr.Service {
	s := &service{
		applications: applications,
		volunteers:   volunteers,
		now:          time.Now,
		notifier:     activity.NoOp(),
		log:          logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SubmitApplication records a public career submission. The status is
// forced to pending regardless of what the client sent.
func (s *service) SubmitApplication(ctx context.Context, application *hr.JobApplication) (*hr.JobApplication, error) {
	if err := validateSubmitter(application.Name, application.Email); err != nil {
		return nil, err
	}

	now := s.now()
	application.ID = 0
	application.Status = domain.ApplicationPending
	application.AppliedAt = now
	application.UpdatedAt = now

	created, err := s.applications.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "submit", "job_applications", created.ID, nil)
	return created, nil
}

func (s *service) GetApplication(ctx context.Context, id int64) (*hr.JobApplication, error) {
	if id == 0 {
		return nil, hr.ErrIDRequired
	}
	return s.applications.GetByID(ctx, id)
}

func (s *service) ListApplications(ctx context.Context, opts hr.ApplicationListOptions) ([]*hr.JobApplication, int, error) {
	opts.Search = strings.TrimSpace(opts.Search)
	opts.Limit, opts.Offset = clampPage(opts.Limit, opts.Offset)
	if opts.Status != "" && !opts.Status.IsValid() {
		return nil, 0, hr.ErrStatusInvalid
	}
	return s.applications.List(ctx, opts)
}

// UpdateApplicationStatus moves an application through the review pipeline.
// Applicant-supplied fields stay untouched; only the status and the update
// timestamp change.
func (s *service) UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*hr.JobApplication, error) {
	if id == 0 {
		return nil, hr.ErrIDRequired
	}
	if !status.IsValid() {
		return nil, hr.ErrStatusInvalid
	}

	record, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = status
	record.UpdatedAt = s.now()

	updated, err := s.applications.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "status", "job_applications", updated.ID, map[string]any{"status": string(status)})
	return updated, nil
}

func (s *service) DeleteApplication(ctx context.Context, id int64) error {
	if id == 0 {
		return hr.ErrIDRequired
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, "delete", "job_applications", id, nil)
	return nil
}

// SubmitVolunteerRequest records a public volunteering submission with the
// same forced-pending semantics as job applications.
func (s *service) SubmitVolunteerRequest(ctx context.Context, request *hr.VolunteerRequest) (*hr.VolunteerRequest, error) {
	if err := validateSubmitter(request.Name, request.Email); err != nil {
		return nil, err
	}

	now := s.now()
	request.ID = 0
	request.Status = domain.VolunteerPending
	request.AppliedAt = now
	request.UpdatedAt = now

	created, err := s.volunteers.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "submit", "volunteer_requests", created.ID, nil)
	return created, nil
}

func (s *service) GetVolunteerRequest(ctx context.Context, id int64) (*hr.VolunteerRequest, error) {
	if id == 0 {
		return nil, hr.ErrIDRequired
	}
	return s.volunteers.GetByID(ctx, id)
}

func (s *service) ListVolunteerRequests(ctx context.Context, opts hr.VolunteerListOptions) ([]*hr.VolunteerRequest, int, error) {
	opts.Search = strings.TrimSpace(opts.Search)
	opts.Limit, opts.Offset = clampPage(opts.Limit, opts.Offset)
	if opts.Status != "" && !opts.Status.IsValid() {
		return nil, 0, hr.ErrStatusInvalid
	}
	return s.volunteers.List(ctx, opts)
}

func (s *service) UpdateVolunteerStatus(ctx context.Context, id int64, status domain.VolunteerStatus) (*hr.VolunteerRequest, error) {
	if id == 0 {
		return nil, hr.ErrIDRequired
	}
	if !status.IsValid() {
		return nil, hr.ErrStatusInvalid
	}

	record, err := s.volunteers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = status
	record.UpdatedAt = s.now()

	updated, err := s.volunteers.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "status", "volunteer_requests", updated.ID, map[string]any{"status": string(status)})
	return updated, nil
}

func (s *service) DeleteVolunteerRequest(ctx context.Context, id int64) error {
	if id == 0 {
		return hr.ErrIDRequired
	}
	if err := s.volunteers.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, "delete", "volunteer_requests", id, nil)
	return nil
}

func (s *service) notify(ctx context.Context, verb, objectType string, id int64, metadata map[string]any) {
	event := activity.Event{
		Verb:       verb,
		ObjectType: objectType,
		ObjectID:   strconv.FormatInt(id, 10),
		Channel:    "hr",
		Metadata:   metadata,
		OccurredAt: s.now(),
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn("activity notification failed", "object", objectType, "verb", verb, "error", err)
	}
}

func validateSubmitter(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return hr.ErrNameRequired
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return hr.ErrEmailRequired
	}
	if err := is.Email.Validate(email); err != nil {
		return hr.ErrEmailInvalid
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
