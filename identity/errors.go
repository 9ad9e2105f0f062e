package identity

import "errors"

var (
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrAccountInactive    = errors.New("identity: account is inactive")
	ErrSessionExpired     = errors.New("identity: session expired")
	ErrUnauthorized       = errors.New("identity: authentication required")
	ErrUserNotFound       = errors.New("identity: user not found")
	// ErrNotImplemented marks the profile persistence gap carried over
	// from the current back office. Callers surface it instead of
	// reporting a save that never happened.
	ErrNotImplemented = errors.New("identity: profile persistence not implemented")
)
