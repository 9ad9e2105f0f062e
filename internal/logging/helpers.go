package logging

import (
	"maps"

	"github.com/amalfoundation/foundation-cms/pkg/interfaces"
)

// WithFields attaches structured fields to a logger when it supports the
// optional FieldsLogger extension, and returns the logger unchanged
// otherwise. The field map is copied before handing it over.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fieldsLogger.WithFields(copied)
}
