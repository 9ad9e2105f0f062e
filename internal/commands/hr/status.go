package hrcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/amalfoundation/foundation-cms/domain"
	"github.com/amalfoundation/foundation-cms/hr"
	"github.com/amalfoundation/foundation-cms/internal/commands"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

const (
	applicationStatusMessageType = "cms.hr.application.update_status"
	volunteerStatusMessageType   = "cms.hr.volunteer.update_status"
)

// UpdateApplicationStatusCommand moves a job application through review.
type UpdateApplicationStatusCommand struct {
	ApplicationID int64                    `json:"application_id"`
	Status        domain.ApplicationStatus `json:"status"`
}

// Type implements command.Message.
func (UpdateApplicationStatusCommand) Type() string { return applicationStatusMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateApplicationStatusCommand) Validate() error {
	errs := validation.Errors{}
	if m.ApplicationID <= 0 {
		errs["application_id"] = validation.NewError("cms.hr.application.update_status.id_required", "application_id is required")
	}
	if !m.Status.IsValid() {
		errs["status"] = validation.NewError("cms.hr.application.update_status.status_invalid", "status is not an accepted value")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateApplicationStatusHandler applies review moves via the HR service.
type UpdateApplicationStatusHandler struct {
	inner *commands.Handler[UpdateApplicationStatusCommand]
}

func NewUpdateApplicationStatusHandler(service hr.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateApplicationStatusCommand]) *UpdateApplicationStatusHandler {
	exec := func(ctx context.Context, msg UpdateApplicationStatusCommand) error {
		_, err := service.UpdateApplicationStatus(ctx, msg.ApplicationID, msg.Status)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateApplicationStatusCommand]{
		commands.WithLogger[UpdateApplicationStatusCommand](logger),
		commands.WithOperation[UpdateApplicationStatusCommand]("hr.application.update_status"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateApplicationStatusHandler{
		inner: commands.NewHandler[UpdateApplicationStatusCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateApplicationStatusCommand].Execute.
func (h *UpdateApplicationStatusHandler) Execute(ctx context.Context, msg UpdateApplicationStatusCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateVolunteerStatusCommand approves or rejects a volunteer request.
type UpdateVolunteerStatusCommand struct {
	RequestID int64                  `json:"request_id"`
	Status    domain.VolunteerStatus `json:"status"`
}

// Type implements command.Message.
func (UpdateVolunteerStatusCommand) Type() string { return volunteerStatusMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateVolunteerStatusCommand) Validate() error {
	errs := validation.Errors{}
	if m.RequestID <= 0 {
		errs["request_id"] = validation.NewError("cms.hr.volunteer.update_status.id_required", "request_id is required")
	}
	if !m.Status.IsValid() {
		errs["status"] = validation.NewError("cms.hr.volunteer.update_status.status_invalid", "status is not an accepted value")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateVolunteerStatusHandler applies review moves via the HR service.
type UpdateVolunteerStatusHandler struct {
	inner *commands.Handler[UpdateVolunteerStatusCommand]
}

func NewUpdateVolunteerStatusHandler(service hr.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateVolunteerStatusCommand]) *UpdateVolunteerStatusHandler {
	exec := func(ctx context.Context, msg UpdateVolunteerStatusCommand) error {
		_, err := service.UpdateVolunteerStatus(ctx, msg.RequestID, msg.Status)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateVolunteerStatusCommand]{
		commands.WithLogger[UpdateVolunteerStatusCommand](logger),
		commands.WithOperation[UpdateVolunteerStatusCommand]("hr.volunteer.update_status"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateVolunteerStatusHandler{
		inner: commands.NewHandler[UpdateVolunteerStatusCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateVolunteerStatusCommand].Execute.
func (h *UpdateVolunteerStatusHandler) Execute(ctx context.Context, msg UpdateVolunteerStatusCommand) error {
	return h.inner.Execute(ctx, msg)
}
