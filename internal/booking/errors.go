package booking

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the caller's role lacks the capability
// for the requested operation.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError is a business-rule violation the caller can fix: a
// duplicate name, a bad interval, a missing reference. Detail is surfaced
// verbatim to the caller.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func validationf(format string, args ...any) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown id. Out-of-tenant access is reported
// with this same error so callers cannot probe for resources in other
// tenants.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s with the id '%s' found", e.Kind, e.ID)
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
