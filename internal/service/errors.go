package service

import "errors"

// Service layer errors. Invariant checks return these, usually wrapped in a
// *RuleError that carries the user copy.

// ===== Lookup Errors =====
var (
	// ErrNotFound covers both missing records and records owned by another
	// user, so callers can't probe for other users' data.
	ErrNotFound = errors.New("not found")
)

// ===== Rule Errors =====
var (
	ErrLimitReached = errors.New("limit reached")
	ErrDuplicate    = errors.New("already exists")
	ErrGoalLinkage  = errors.New("invalid goal linkage")
)

// RuleError is a rejected write with the message to show the user.
// errors.Is matches it against the sentinel it wraps.
type RuleError struct {
	Message string
	err     error
}

func newRuleError(sentinel error, message string) *RuleError {
	return &RuleError{Message: message, err: sentinel}
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.err
}
