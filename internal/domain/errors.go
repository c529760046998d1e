package domain

import "errors"

// ErrNotFound is returned when an operation targets an id that is not present
// in the document. Get, update, and toggle operations surface it to the
// caller; delete operations treat the same condition as a silent no-op.
var ErrNotFound = errors.New("not found")
