package repository

import "errors"

// ErrNotFound is returned when an operation targets an id that does not exist.
// Deleting an already-deleted record returns it too; callers treat that as a
// clean 404, never a crash.
var ErrNotFound = errors.New("not found")
