package domain

import "errors"

// ErrNotFound is returned by service functions when the requested trip,
// nested entity or history entry does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule checked by a
// caller (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNothingToUndo is returned by undo when the history log is empty.
// Handlers should map this to HTTP 409 Conflict.
var ErrNothingToUndo = errors.New("nothing to undo")
