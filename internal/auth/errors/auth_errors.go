package autherrors

import (
	"net/http"

	"go-logbook/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials. Please check your email and password.",
		http.StatusUnauthorized,
	)

	ErrAccountInactive = apperror.New(
		apperror.CodeUnauthorized,
		"Account is inactive.",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Given token not valid for any token type",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeInvalidToken,
		"Token is expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeInvalidToken,
		"Token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrRefreshTokenRequired = apperror.New(
		apperror.CodeValidationError,
		"Refresh token is required.",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
