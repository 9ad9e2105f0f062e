package content

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired    = errors.New("content: a title is required in at least one language")
	ErrRecordIDRequired = errors.New("content: record id required")
	ErrIDImmutable      = errors.New("content: id cannot be changed")
	ErrInvalidPatch     = errors.New("content: invalid patch payload")
	ErrSectionsInvalid  = errors.New("content: section payload invalid")
	ErrResourceUnknown  = errors.New("content: unknown resource")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
