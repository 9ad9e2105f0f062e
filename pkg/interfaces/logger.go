package interfaces

import "context"

// Logger is the leveled logging contract used throughout the module. It
// matches the surface of github.com/goliatone/go-logger, so hosts already
// on that package can hand their loggers in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. A provider may scope children per
// module name or return one shared instance for every caller.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that carry persistent
// structured fields. Implementations return a child logger that attaches
// the fields to every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
