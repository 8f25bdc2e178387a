package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to perform this action.",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication credentials were not provided.",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"invalid id",
		http.StatusBadRequest,
	)

	ErrRateLimited = New(
		CodeRateLimited,
		"Request was throttled. Please try again later.",
		http.StatusTooManyRequests,
	)

	ErrServiceUnavailable = New(
		CodeServiceUnavailable,
		"Service temporarily unavailable",
		http.StatusServiceUnavailable,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeValidationError, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidationError, field+" is invalid", http.StatusBadRequest)
}

// FieldError is a VALIDATION_ERROR whose message is attached to field.
func FieldError(field, message string) *AppError {
	return New(CodeValidationError, message, http.StatusBadRequest).WithField(field, message)
}
