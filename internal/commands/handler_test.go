package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/amalfoundation/foundation-cms/internal/commands"
)

type noteMessage struct {
	Body string
}

func (noteMessage) Type() string { return "cms.test.note" }

func (m noteMessage) Validate() error {
	if m.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

func TestExecuteRunsCommandFunc(t *testing.T) {
	var got noteMessage
	handler := commands.NewHandler[noteMessage](func(_ context.Context, msg noteMessage) error {
		got = msg
		return nil
	})

	if err := handler.Execute(context.Background(), noteMessage{Body: "hello"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Body != "hello" {
		t.Fatalf("message not delivered: %+v", got)
	}
}

func TestExecuteRejectsInvalidMessage(t *testing.T) {
	called := false
	handler := commands.NewHandler[noteMessage](func(context.Context, noteMessage) error {
		called = true
		return nil
	})

	err := handler.Execute(context.Background(), noteMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsWrapped(err) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
	if called {
		t.Fatal("command func ran despite invalid message")
	}
}

func TestExecuteStopsOnCanceledContext(t *testing.T) {
	called := false
	handler := commands.NewHandler[noteMessage](func(context.Context, noteMessage) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := handler.Execute(ctx, noteMessage{Body: "hello"}); err == nil {
		t.Fatal("expected context error")
	}
	if called {
		t.Fatal("command func ran on a canceled context")
	}
}

func TestExecuteEnforcesTimeout(t *testing.T) {
	handler := commands.NewHandler[noteMessage](func(ctx context.Context, _ noteMessage) error {
		<-ctx.Done()
		return ctx.Err()
	}, commands.WithTimeout[noteMessage](10*time.Millisecond))

	if err := handler.Execute(context.Background(), noteMessage{Body: "slow"}); err == nil {
		t.Fatal("expected deadline error")
	}
}

func TestExecuteWrapsFailures(t *testing.T) {
	boom := errors.New("storage offline")
	handler := commands.NewHandler[noteMessage](func(context.Context, noteMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), noteMessage{Body: "hello"})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsWrapped(err) {
		t.Fatalf("expected wrapped error, got %T", err)
	}
}
