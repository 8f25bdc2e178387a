package apperror

import "fmt"

type AppError struct {
	Code       string            // Error code (e.g., INVALID_INPUT)
	Message    string            // User-friendly message
	HTTPStatus int               // HTTP status code
	Details    map[string]string // Field level messages, keyed by json field name
	Err        error             // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on code and message so that copies produced by WithDetails
// still satisfy errors.Is against the package level sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message && e.HTTPStatus == t.HTTPStatus
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a copy carrying field level details. The receiver is
// usually a shared sentinel, so it is never mutated.
func (e *AppError) WithDetails(details map[string]string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithField is a shorthand for a single field detail.
func (e *AppError) WithField(field, message string) *AppError {
	return e.WithDetails(map[string]string{field: message})
}

// Field attaches the error's own message to one field.
func (e *AppError) Field(field string) *AppError {
	return e.WithField(field, e.Message)
}
