package model

import "errors"

var (
	// ErrNotFound reports an unknown record id within a collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials reports a failed credential check. It never
	// says which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized reports a mutation attempted without a live session.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
