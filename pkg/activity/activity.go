package activity

import (
	"context"
	"time"
)

// Event describes one audited CMS action: who did what to which record.
type Event struct {
	Verb       string
	ActorID    string
	UserID     string
	TenantID   string
	ObjectType string
	ObjectID   string
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// Notifier receives audit events from the CMS services. Implementations
// must tolerate partially populated events; an empty verb marks a no-op.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NoOp returns a notifier that discards every event.
func NoOp() Notifier {
	return noopNotifier{}
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Event) error { return nil }

// Memory collects events in order, for wiring without a go-users sink and
// for assertions in tests.
type Memory struct {
	Events []Event
}

// Notify appends the event.
func (m *Memory) Notify(_ context.Context, event Event) error {
	if event.Verb == "" {
		return nil
	}
	m.Events = append(m.Events, event)
	return nil
}
