package hr

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired  = errors.New("hr: applicant name is required")
	ErrEmailRequired = errors.New("hr: applicant email is required")
	ErrEmailInvalid  = errors.New("hr: applicant email is invalid")
	ErrStatusInvalid = errors.New("hr: status is not an accepted value")
	ErrIDRequired    = errors.New("hr: record id required")
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
