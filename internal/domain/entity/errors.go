package entity

import (
	"errors"
)

// Domain error taxonomy. Usecases wrap these with fmt.Errorf("%w: ...") and
// handlers map them to HTTP status codes.
var (
	// ErrValidation marks missing or malformed input (400).
	ErrValidation = errors.New("validation error")
	// ErrConflict marks a duplicate unique field such as email (409).
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized marks bad credentials or a missing/invalid token (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks a valid principal lacking rights, or a revoked or
	// unmatched refresh token (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a missing record (404).
	ErrNotFound = errors.New("not found")
	// ErrInternal marks store or unexpected failures (500).
	ErrInternal = errors.New("internal error")
)
