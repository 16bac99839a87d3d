package domain

import "errors"

// ErrNotFound marks a resource id that does not resolve. Callers wrap it with
// context; the HTTP layer maps it to a generic 404 body.
var ErrNotFound = errors.New("resource not found")

// DefaultAuthorizationReason is used when a denial carries no specific reason.
const DefaultAuthorizationReason = "This action is unauthorized."

// AuthorizationError is returned when an action is denied by the gate or a
// policy. Reason is safe to show to the caller.
type AuthorizationError struct {
	Reason string
}

// NewAuthorizationError builds an AuthorizationError, falling back to the
// default reason when none is given.
func NewAuthorizationError(reason string) *AuthorizationError {
	if reason == "" {
		reason = DefaultAuthorizationReason
	}
	return &AuthorizationError{Reason: reason}
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// ValidationError carries per-field messages for request payloads that failed
// validation.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return "the given data was invalid"
}
