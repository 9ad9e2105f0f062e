package contentcmd

import (
	"context"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/amalfoundation/foundation-cms/content"
	"github.com/amalfoundation/foundation-cms/internal/commands"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

const setPublishStateMessageType = "cms.content.set_publish_state"

// SetPublishStateCommand publishes or unpublishes one content record.
type SetPublishStateCommand struct {
	Resource string `json:"resource"`
	RecordID int64  `json:"record_id"`
	Publish  bool   `json:"publish"`
}

// Type implements command.Message.
func (SetPublishStateCommand) Type() string { return setPublishStateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SetPublishStateCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID <= 0 {
		errs["record_id"] = validation.NewError("cms.content.set_publish_state.record_id_required", "record_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPublishStateHandler flips publication through the content service so
// the PublishedAt stamp and slug sync follow the same path as API edits.
type SetPublishStateHandler[T content.Entry] struct {
	inner *commands.Handler[SetPublishStateCommand]
}

// NewSetPublishStateHandler constructs a handler wired to one resource's service.
func NewSetPublishStateHandler[T content.Entry](service content.Service[T], logger interfaces.Logger, opts ...commands.HandlerOption[SetPublishStateCommand]) *SetPublishStateHandler[T] {
	exec := func(ctx context.Context, msg SetPublishStateCommand) error {
		patch := json.RawMessage(fmt.Sprintf(`{"isPublished":%t}`, msg.Publish))
		_, err := service.Update(ctx, msg.RecordID, patch)
		return err
	}

	handlerOpts := []commands.HandlerOption[SetPublishStateCommand]{
		commands.WithLogger[SetPublishStateCommand](logger),
		commands.WithOperation[SetPublishStateCommand]("content.set_publish_state"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SetPublishStateHandler[T]{
		inner: commands.NewHandler[SetPublishStateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SetPublishStateCommand].Execute.
func (h *SetPublishStateHandler[T]) Execute(ctx context.Context, msg SetPublishStateCommand) error {
	return h.inner.Execute(ctx, msg)
}
