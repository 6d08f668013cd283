package services

import (
	"errors"
	"strings"
)

// Domain errors surfaced to handlers. Handlers map these onto HTTP statuses;
// nothing here is swallowed silently.
var (
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrForbidden           = errors.New("not authorized")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state for this operation")
	ErrNothingToRemove     = errors.New("no reaction to remove")
	ErrInvalidReactionKind = errors.New("invalid reaction type")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)

// ValidationError collects missing/malformed form fields. The caller is
// expected to re-prompt, so every problem is reported at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
