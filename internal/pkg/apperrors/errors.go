package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEnrollmentNoExists = errors.New("enrollment number already exists")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this name already exists")
)

// Fee ledger errors
var (
	ErrTransactionNotFound = errors.New("fee transaction not found")
	ErrInvalidAmount       = errors.New("amount must be a finite number")
)

// Certificate errors
var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateExists   = errors.New("certificate already issued for this enrollment number")
	ErrCertificateNoExists = errors.New("certificate number already exists")
)

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError pairs a sentinel with a caller-facing message. Matching
// with errors.Is goes through Unwrap, so the sentinel still decides the
// HTTP status.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
