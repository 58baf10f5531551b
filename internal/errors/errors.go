package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict on a single field
type AlreadyExistsError struct {
	Field string // human readable, e.g. "Group name"
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Field == t.Field
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound   = &NotFoundError{Entity: "User"}
	ErrGroupNotFound  = &NotFoundError{Entity: "Group"}
	ErrEventNotFound  = &NotFoundError{Entity: "Event"}
	ErrSurveyNotFound = &NotFoundError{Entity: "Survey"}
)

// Already Exists Errors
var (
	ErrUsernameExists  = &AlreadyExistsError{Field: "Username"}
	ErrEmailExists     = &AlreadyExistsError{Field: "Email"}
	ErrGroupNameExists = &AlreadyExistsError{Field: "Group name"}
)

// Validation Errors
var (
	ErrNothingToUpdate  = &ValidationError{Message: "No fields to update"}
	ErrInvalidTimeRange = &ValidationError{Field: "time_end", Message: "End time must be after start time"}
	ErrInvalidForm      = &ValidationError{Field: "form", Message: "Invalid form JSON"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// PublicMessage returns the client-facing text for a typed error. Unknown errors
// yield an empty string so callers can substitute a generic message.
func PublicMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var existsErr *AlreadyExistsError
	if errors.As(err, &existsErr) {
		return existsErr.Error()
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a field
func NewAlreadyExistsError(field string) error {
	return &AlreadyExistsError{Field: field}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
