package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Request errors
	ErrBadRequest = errors.New("bad request")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Course errors
var (
	ErrCourseNotFound = NewResourceNotFoundError("course not found")
	ErrDuplicateCode  = NewConflictError("course with this code already exists")
)

// Student errors
var (
	ErrStudentNotFound = NewResourceNotFoundError("student not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error whose message is also shown to API callers
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:       ErrBadRequest,
		Message:   message,
		StatusMsg: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
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

// WithStatusMsg sets the message returned to API callers
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// StatusMessage returns the caller-facing message of err, or fallback when err carries none.
func StatusMessage(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.StatusMsg != "" {
		return ce.StatusMsg
	}
	return fallback
}
