package usecases

import "errors"

var (
	// ErrNotFound covers both a genuinely absent resource and one owned
	// by another user; callers must not be able to tell the difference.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is deliberately the same for an unknown
	// email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError marks missing or malformed input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validation(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError marks a duplicate unique field (email or username).
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string { return e.msg }

func conflict(msg string) error {
	return &ConflictError{msg: msg}
}
