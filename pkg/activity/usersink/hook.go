// Package usersink bridges CMS audit events into a go-users activity sink so
// host applications can reuse their existing activity pipeline.
package usersink

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amalfoundation/foundation-cms/pkg/activity"
	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// Hook adapts activity.Notifier onto an interfaces.ActivitySink.
type Hook struct {
	Sink interfaces.ActivitySink
}

// Notify maps the event onto a go-users ActivityRecord and forwards it.
// Events without a verb are skipped.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil || strings.TrimSpace(event.Verb) == "" {
		return nil
	}

	record := interfaces.ActivityRecord{
		Verb:       event.Verb,
		ObjectType: event.ObjectType,
		ObjectID:   event.ObjectID,
		Channel:    event.Channel,
		OccurredAt: event.OccurredAt,
	}
	record.ActorID = parseID(event.ActorID)
	record.UserID = parseID(event.UserID)
	record.TenantID = parseID(event.TenantID)

	data := make(map[string]any, len(event.Metadata))
	for key, value := range event.Metadata {
		data[key] = value
	}
	if len(data) > 0 {
		record.Data = data
	}

	return h.Sink.Log(ctx, record)
}

func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}
