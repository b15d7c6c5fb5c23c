package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClanNotFound    = errors.New("clan not found")
	ErrMemberNotFound  = errors.New("clan member not found")
	ErrInvalidFeatures = errors.New("invalid clan features")
	ErrNoRequester     = errors.New("clan is not bound to a requester")
	ErrDuplicateMember = errors.New("duplicate clan member")

	ErrUnsupportedOperation = errors.New("operation unsupported")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrOperatorExists     = errors.New("operator already exists")
	ErrInvalidOperator    = errors.New("invalid operator details")
	ErrForbidden          = errors.New("access forbidden")
)

// UnsupportedOperationError reports an operation that needs an OAuth2
// authorization flow this gateway does not model. It is never transient.
type UnsupportedOperationError struct {
	Op Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s requires an authorized moderation flow", ErrUnsupportedOperation, e.Op)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}
