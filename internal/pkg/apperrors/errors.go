package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrAdminNotFound     = errors.New("admin not found")
)

// Profile errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrLecturerNotFound  = errors.New("lecturer not found")
)

// Course errors
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseCodeExists   = errors.New("course with this code already exists")
	ErrAssignmentNotFound = errors.New("lecturer-course assignment not found")
	ErrAssignmentExists   = errors.New("lecturer already assigned to this course")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("applied course not found")
	ErrApplicationExists   = errors.New("applied course already exists")
)

// Selection errors
var (
	ErrSelectionNotFound = errors.New("selected candidate not found")
	ErrAlreadySelected   = errors.New("candidate already selected")
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
