package service

import (
	"errors"
	"fmt"
)

// Session error taxonomy. Remote failures reach callers only as one of these
// kinds, usually wrapped in an [*AuthError].
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidation         = errors.New("validation error")
	ErrServerFault        = errors.New("server fault")
	ErrNetworkUnreachable = errors.New("network unreachable")
	ErrTimeout            = errors.New("request timed out")

	// ErrNoAssociations and ErrSelectionRequired are terminal states, not
	// failures. [SelectionResult.Err] returns them for callers that prefer
	// error values.
	ErrNoAssociations    = errors.New("user has no associations")
	ErrSelectionRequired = errors.New("association selection required")

	// ErrInconsistentAssociation is the fatal data-integrity state reached
	// when the active association stays inconsistent after a forced refresh.
	ErrInconsistentAssociation = errors.New("inconsistent active association")

	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionSuperseded  = errors.New("session changed while the operation was in flight")
	ErrUnknownAssociation = errors.New("unknown association")
)

// AuthError is a typed session failure. Kind is one of the taxonomy
// sentinels and is what [errors.Is] matches; Err keeps the underlying cause
// for logs only.
type AuthError struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

func newAuthError(kind error, status int, message string, err error) *AuthError {
	return &AuthError{Kind: kind, Status: status, Message: message, Err: err}
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the taxonomy kind. The transport cause is deliberately not
// reachable through errors.Is.
func (e *AuthError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// InconsistentAssociationError reports the outcome that remained
// inconsistent after one forced refresh.
type InconsistentAssociationError struct {
	Outcome ReconcileOutcome
}

func (e *InconsistentAssociationError) Error() string {
	o := e.Outcome
	switch o.Reason {
	case ReasonDivergentStudent:
		return fmt.Sprintf("%s: %s (expected student %s, %s has %s)",
			ErrInconsistentAssociation, o.Reason, o.Expected, o.Source, o.Actual)
	default:
		return fmt.Sprintf("%s: %s", ErrInconsistentAssociation, o.Reason)
	}
}

func (e *InconsistentAssociationError) Unwrap() error {
	return ErrInconsistentAssociation
}
