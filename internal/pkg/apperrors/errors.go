package apperrors

import "errors"

// Common errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrCompanyNotFound = errors.New("company not found")
)

// ConflictField identifies the column implicated in a uniqueness conflict.
// It is set by the storage adapter from the violated constraint, never parsed
// out of an error message.
type ConflictField string

const (
	ConflictFieldUSN   ConflictField = "usn"
	ConflictFieldEmail ConflictField = "email"
	ConflictFieldData  ConflictField = "data"
)

// ValidationError signals rejected input: a missing required field, a
// disallowed upload type, or an oversized upload.
type ValidationError struct {
	Message string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// DuplicateError signals a uniqueness conflict, either found by a pre-check
// or surfaced by the storage layer's constraints.
type DuplicateError struct {
	Field   ConflictField
	Message string
}

// Error implements error interface
func (e *DuplicateError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "duplicate " + string(e.Field)
}

// NewDuplicateError creates a DuplicateError for the given field
func NewDuplicateError(field ConflictField, message string) *DuplicateError {
	return &DuplicateError{Field: field, Message: message}
}

// IsDuplicate reports whether err is a DuplicateError and returns it.
func IsDuplicate(err error) (*DuplicateError, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
