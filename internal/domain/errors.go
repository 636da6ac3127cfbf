package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAdvisoryUnavailable = errors.New("match advisory unavailable")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// ValidationError reports malformed or missing input. It is raised before
// any store interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports a missing item, claim or user.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InvalidStateError reports an operation that is not permitted in the
// entity's current status. The status is included for diagnosability.
type InvalidStateError struct {
	Entity string
	ID     int32
	Status string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d in status %q: %s", e.Entity, e.ID, e.Status, e.Reason)
}

// OperationFailedError wraps a transactional or store failure. The wrapped
// error is preserved for logging; callers see only the operation name.
type OperationFailedError struct {
	Op  string
	Err error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("operation %s failed", e.Op)
}

func (e *OperationFailedError) Unwrap() error { return e.Err }
