package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources. Ownership
	// mismatches collapse into it so callers cannot probe for other users'
	// rows.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for credential failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream marks a failed call to an external provider.
	ErrUpstream = errors.New("upstream failure")
)
