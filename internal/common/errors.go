// Package common defines shared constants and sentinel errors used across
// the storage, service and transport layers. Callers should use errors.Is
// to match these values and errors.As to inspect the structured ones.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrMalformedZoneKey is returned when a zone key string does not follow
	// the "<city>(<localNameOfCity>)/<province>" layout.
	ErrMalformedZoneKey = errors.New("malformed zone key")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Violation is a single field-level rejection.
type Violation struct {
	Field  string
	Reason string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Reason
}

// ValidationError carries the ordered list of field violations that made a
// proposed change inadmissible.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrorValidation }

// NewValidationError returns nil when there are no violations, so callers can
// write `if err := NewValidationError(vs); err != nil`.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// DuplicateValueError reports that another row already holds a value that
// must be unique.
type DuplicateValueError struct {
	Field string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateValueError) Unwrap() error { return ErrorAlreadyExists }

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrorNotFound }
