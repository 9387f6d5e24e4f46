package application

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")

	errMediaStoreUnconfigured = errors.New("media store not configured")
)

// ValidationError is a rejected write: a missing required field, an invalid
// enum value, a cross-field rule (pause time past the video's duration,
// submission type differing from the task's type) or an unresolvable
// reference. No side effect has happened when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// UpstreamError is a media-store failure. The record that would have
// referenced the media is never created when one is returned.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
