package state

import "errors"

// Rejection reasons surfaced to callers. None of these are faults; the
// snapshot is unchanged whenever one is returned.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrDuplicateEmail   = errors.New("an account with this email already exists")
	ErrEmptyComment     = errors.New("comment text is empty")
	ErrNotFound         = errors.New("not found")
)
